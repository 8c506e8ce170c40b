package platform

// Package platform contains OS/filesystem integration glue: directory
// creation, the move/copy primitives the engine is built on, and opening the
// organized folder in the system file manager.
