package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/galaview/gala-presenter/internal/config"
	"github.com/galaview/gala-presenter/internal/export"
	"github.com/galaview/gala-presenter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.galaview.gala-presenter"
	AppName = "Gala Presenter"

	WindowWidth  = 1280
	WindowHeight = 720
)

func main() {
	fmt.Printf("Gala Presenter v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply the stage theme
	myApp.Settings().SetTheme(ui.NewStageTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	exportSvc := export.NewService(settings.GetAssetsDir(), ui.BackgroundsFileName)

	// Create and setup UI
	presenter := ui.NewPresenterUI(myWindow, myApp, exportSvc)
	myWindow.SetOnClosed(presenter.Stop)

	// Show and run
	myWindow.ShowAndRun()
}
