// Package main provides the entry point for the Snapframe application.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"snapframe/internal/app"
	"snapframe/internal/clipboard"
	"snapframe/internal/config"
	"snapframe/internal/version"
	"snapframe/ui/mainwindow"
	"snapframe/ui/prefs"
)

const appID = "io.snapframe.app"

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: snapframe [options] [image]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s", version.String())

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Config: %v (using defaults where invalid)", err)
	}

	a := fyneapp.NewWithID(appID)
	a.Settings().SetTheme(&app.SnapframeTheme{})

	state := app.NewState(cfg.PresentationState())
	appPrefs := prefs.Load()

	var cb mainwindow.Clipboard
	if sys, err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
	} else {
		cb = sys
	}

	win := mainwindow.New(a, state, cfg, appPrefs, cb)

	// Handle command line arguments
	if flag.NArg() > 0 {
		path := flag.Arg(0)
		if err := state.LoadImageFile(path); err != nil {
			log.Printf("Failed to load image %s: %v", path, err)
		}
	}

	win.ShowAndRun()
}
