package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/GeorgeVince/wave-function/pkg/app"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable log output")
	configPath := flag.String("config", "", "path to a YAML config file")
	steps := flag.Int("steps", 0, "override the number of grid divisions per axis")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		StepCount:  *steps,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(a.WindowWidth(), a.WindowHeight())
	ebiten.SetWindowTitle("Wave Function")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
