package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/galaview/gala-presenter/internal/config"
	"github.com/galaview/gala-presenter/internal/export"
	"github.com/galaview/gala-presenter/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.galaview.gala-presenter")
	myApp.Settings().SetTheme(ui.NewStageTheme())

	myWindow := myApp.NewWindow("Gala Presenter")
	myWindow.Resize(fyne.NewSize(1280, 720))

	// Create and setup UI
	settings := config.NewSettings(myApp)
	exportSvc := export.NewService(settings.GetAssetsDir(), ui.BackgroundsFileName)
	presenter := ui.NewPresenterUI(myWindow, myApp, exportSvc)
	myWindow.SetOnClosed(presenter.Stop)

	// Show and run
	myWindow.ShowAndRun()
}
