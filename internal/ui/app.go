package ui

import (
	"shapeboard/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

func RunApp() {
	myApp := app.NewWithID(config.AppID)
	cfg := config.Load(myApp.Preferences())

	myWindow := myApp.NewWindow("Shapes")
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	// Create the interactive board widget
	board := NewBoard(cfg)

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(board, myWindow)

	// Set up the main layout
	content := container.NewBorder(toolbar, nil, nil, nil, board)

	myWindow.SetContent(content)
	myWindow.SetOnClosed(func() {
		config.SaveWindowSize(myApp.Preferences(), myWindow.Canvas().Size())
	})
	myWindow.ShowAndRun()
}
