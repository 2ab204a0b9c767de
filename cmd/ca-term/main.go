package main

import (
	"flag"
	"log"
	"os"
	"time"

	"rulescroll/internal/render"
	"rulescroll/pkg/automaton"
)

func main() {
	width := flag.Int("width", 40, "cells per generation")
	height := flag.Int("height", 24, "generations kept on screen")
	rule := flag.Int("rule", 150, "Wolfram rule (0-255)")
	steps := flag.Int("steps", 23, "generations to compute")
	stream := flag.Bool("stream", false, "print each new generation as it is computed")
	delay := flag.Duration("delay", 0, "pause between streamed generations")
	ascii := flag.Bool("ascii", false, "use # and . instead of block glyphs")
	flag.Parse()

	if *rule < 0 || *rule > 255 {
		log.Fatalf("rule must be in 0..255, got %d", *rule)
	}
	e, err := automaton.New(*width, *height, uint8(*rule))
	if err != nil {
		log.Fatal(err)
	}
	e.Fill(e.Width()/2, e.Height()-1)

	on, off := render.BlockOn, render.BlockOff
	if *ascii {
		on, off = "#", "."
	}

	if !*stream {
		for i := 0; i < *steps; i++ {
			e.Advance()
		}
		if err := render.WriteText(os.Stdout, e.Grid(), on, off); err != nil {
			log.Fatal(err)
		}
		return
	}

	bottom := e.Height() - 1
	for i := 0; i <= *steps; i++ {
		if i > 0 {
			e.Advance()
		}
		if err := render.WriteText(os.Stdout, e.Grid()[bottom:], on, off); err != nil {
			log.Fatal(err)
		}
		if *delay > 0 {
			time.Sleep(*delay)
		}
	}
}
