package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/natefaubion/haskellweekly/internal/app"
	"github.com/natefaubion/haskellweekly/internal/config"
	"github.com/natefaubion/haskellweekly/internal/site"
)

func main() {
	flags := parseFlags()

	// charger la config (créée depuis l'exemple embarqué si absente)
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// construction du renderer sur les templates embarqués
	renderer, err := site.DefaultRenderer()
	if err != nil {
		log.Fatalf("impossible de construire le renderer: %v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, flags, renderer)
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "haskellweekly.yaml", "chemin du fichier de configuration")
	flag.BoolVar(&f.List, "list", false, "lister les épisodes et sortir")
	flag.IntVar(&f.Episode, "episode", 0, "afficher le transcript de l'épisode N au lieu de générer le site")
	flag.BoolVar(&f.Clipboard, "clipboard", false, "copier le transcript dans le presse-papier (avec -episode)")
	flag.StringVar(&f.Out, "out", "", "dossier de sortie (remplace output_dir de la config)")
	flag.Parse()
	return f
}
