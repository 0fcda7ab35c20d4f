package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"ca-survey/internal/app"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ca: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := app.Run(ctx, cfg, os.Stdout)
	if err != nil {
		if app.IsInputError(err) {
			log.Print(err)
			if hint := app.InputHint(cfg, err); hint != "" {
				log.Print(hint)
			}
			stop()
			os.Exit(2)
		}
		log.Fatal(err)
	}

	if !cfg.View {
		return
	}
	if err := app.Show(out, cfg.Scale, cfg.TPS); err != nil {
		log.Fatal(err)
	}
}
