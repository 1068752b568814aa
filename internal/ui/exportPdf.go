package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

func showExportDialog(win fyne.Window, board *BoardWidget) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[UI] Save dialog error: %v", err)
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}

		log.Printf("[UI] Exporting board to %s", writer.URI())
		if err := board.ExportPDF(writer); err != nil {
			log.Printf("[UI] %v", err)
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFileName("shapes.pdf")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.Show()
}
