package organize

// Package organize implements the core classification-and-placement engine:
// it walks a source directory, decides a destination per file, resolves
// naming conflicts, and applies or simulates the move/copy action, streaming
// one outcome record per file. The Service type wraps the engine for
// asynchronous GUI runs with progress callbacks.
