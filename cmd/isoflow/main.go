//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"isoflow/internal/anim"
	"isoflow/internal/app"
	"isoflow/internal/noise"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	driver := anim.NewDriver(noise.NewSource(flags.Noise, flags.Seed))
	game := app.New(driver, flags.Anim())

	ebiten.SetWindowTitle("isoflow")
	ebiten.SetWindowSize(flags.Width, flags.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
