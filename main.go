package main

import (
	"flag"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/weather-visualization/internal/app"
	"github.com/iburimskiy/weather-visualization/internal/game"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	city       = flag.String("city", "", "city to show on start")
)

func main() {
	flag.Parse()

	a, err := app.Setup(*configPath, *city)
	if err != nil {
		_ = zenity.Error(err.Error(), zenity.Title("Weather"), zenity.ErrorIcon)
		log.Fatal(err)
	}

	g := game.New(game.Options{
		Config:     a.Config,
		Dashboard:  a.Dashboard,
		Controller: a.Controller,
		Layer:      a.Layer,
		Prefs:      a.Prefs,
		Locator:    a.Locator,
		Thunder:    a.Thunder,
	})
	err = game.Run(g)
	a.Close()
	if err != nil {
		log.Fatal(err)
	}
}
