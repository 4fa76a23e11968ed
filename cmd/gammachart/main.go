package main

import (
	"os"

	"fyne.io/fyne/v2/app"

	"gammachart/pkg/config"
	"gammachart/pkg/logging"
	"gammachart/pkg/ui"
)

func main() {
	cfg := config.Default()
	logging.SetLevel(cfg.LogLevel)

	a := app.NewWithID(cfg.AppID)
	win, err := ui.Build(a, cfg)
	if err != nil {
		logging.Errorf("building gamma charts: %v", err)
		os.Exit(1)
	}

	win.ShowAndRun()
}
