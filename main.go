// Package main provides the entry point for the Chart Tracer application.
package main

import (
	"log"
	"os"
	"time"

	"chart-tracer/internal/app"
	"chart-tracer/ui/mainwindow"
	"chart-tracer/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const (
	appTitle   = "Chart Tracer"
	appVersion = "0.1.0"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, appVersion)

	fyneApp := fyneapp.NewWithID("io.charttracer.app")
	fyneApp.Settings().SetTheme(&app.ChartTracerTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// A chart given on the command line wins over the remembered one.
	if len(os.Args) > 1 {
		win.OpenChart(os.Args[1])
	} else {
		win.RestoreLastChart()
	}

	setupHotReload(win, appState)

	win.ShowAndRun()
}

// setupHotReload configures automatic restart detection when the binary is
// recompiled, and piggybacks periodic saves on its tick.
func setupHotReload(win *mainwindow.MainWindow, state *app.State) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s (modified %s)",
		reloader.ExecPath(), reloader.StartupTime().Format("15:04:05"))

	reloader.OnTick(func() {
		win.SavePreferencesIfChanged()
	})

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(confirmed bool) {
				if confirmed {
					log.Println("Hot reload: saving state before restart...")
					win.SavePreferences()
					if err := state.SaveProgress(); err != nil {
						log.Printf("Hot reload: failed to save progress: %v", err)
					}
					log.Println("Hot reload: restarting...")
					if err := reloader.Restart(); err != nil {
						log.Printf("Hot reload: restart failed: %v", err)
					}
				} else {
					reloader.ResetBaseline()
					reloader.Start()
				}
			}, win.Window)
	})

	reloader.Start()
}
