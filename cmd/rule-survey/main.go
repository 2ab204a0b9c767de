package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"rulescroll/internal/survey"
)

func main() {
	opts := survey.DefaultOptions()
	flag.IntVar(&opts.Width, "width", opts.Width, "cells per generation")
	flag.IntVar(&opts.Height, "height", opts.Height, "history rows kept for period detection")
	flag.IntVar(&opts.Steps, "steps", opts.Steps, "generations per rule")
	flag.IntVar(&opts.Workers, "workers", opts.Workers, "parallel rule evaluations")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := survey.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	fmt.Fprintln(out, "rule\tpopulation\tdensity\tstable\tperiod")
	for _, r := range results {
		fmt.Fprintf(out, "%d\t%d\t%.3f\t%t\t%d\n", r.Rule, r.Population, r.Density, r.Stable, r.Period)
	}
	log.Printf("surveyed %d rules (%d workers, %d steps) in %s", len(results), opts.Workers, opts.Steps, time.Since(start).Round(time.Millisecond))
}
