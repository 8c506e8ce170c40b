package classify

// Package classify maps files to destination category folders. It owns the
// built-in extension-to-category table, the JSON override loader, and the
// classifier itself. Tables are immutable after construction; there is no
// ambient default table, callers thread an explicit value through.
