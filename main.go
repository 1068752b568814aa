package main

import (
	"log"

	"shapeboard/internal/ui"
)

func main() {
	log.Println("Starting shape board")
	ui.RunApp()
}
