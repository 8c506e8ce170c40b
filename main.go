package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fileorg/file-organizer/internal/organize"
	"github.com/fileorg/file-organizer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.fileorg.file-organizer"
	AppName = "File Organizer"

	WindowWidth  = 700
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	organizeSvc := organize.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, organizeSvc)

	// Show and run
	myWindow.ShowAndRun()
}
