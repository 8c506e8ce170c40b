package model

// Package model defines domain data structures used across the app: file
// entries, per-file outcome records, organize runs, and the option and status
// enums. Structures are designed for direct binding in the UI and explicit
// state transitions.
