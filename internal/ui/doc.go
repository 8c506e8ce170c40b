package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the organize run service and
// renders progress, per-file outcomes, and settings. All UI strings are
// localized via Localization.
