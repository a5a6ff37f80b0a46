package main

import (
	"flag"
	"fmt"
	"os"

	"gridlight/internal/game"
)

func main() {
	mapName := flag.String("map", "outpost", "Sample map to load (outpost, thin, arena)")
	radius := flag.Float64("radius", 8, "Light radius in cells")
	mute := flag.Bool("mute", false, "Disable the noise source tone")
	flag.Parse()

	g, err := game.New(game.Options{
		MapName: *mapName,
		Radius:  *radius,
		Mute:    *mute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
