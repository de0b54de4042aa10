// Command weather-tty shows the weather dashboard in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/weather-visualization/internal/app"
	"github.com/iburimskiy/weather-visualization/internal/tui"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	city       = flag.String("city", "", "city to show on start")
	logPath    = flag.String("log", "weather-tty.log", "log file; the terminal is busy drawing")
)

func main() {
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	a, err := app.Setup(*configPath, *city)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	t := tui.New(screen, tui.Options{
		Config:     a.Config,
		Dashboard:  a.Dashboard,
		Controller: a.Controller,
		Layer:      a.Layer,
		Prefs:      a.Prefs,
		Locator:    a.Locator,
		Thunder:    a.Thunder,
	})
	defer t.Close()

	t.Run()
}
