// Package app orchestre la génération du site : chargement des épisodes,
// parsing des fichiers .vtt, rendu des transcripts, des pages HTML et du
// flux RSS. Tout l'I/O vit ici ; les packages vtt et transcript restent purs.
package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/natefaubion/haskellweekly/internal/config"
	"github.com/natefaubion/haskellweekly/internal/feed"
	"github.com/natefaubion/haskellweekly/internal/fsutil"
	"github.com/natefaubion/haskellweekly/internal/podcast"
	"github.com/natefaubion/haskellweekly/internal/site"
	"github.com/natefaubion/haskellweekly/pkg/model"
)

const filePerm = 0o644

// CLIFlags contient les information venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	List       bool   // lister les épisodes et sortir
	Episode    int    // numéro d'épisode pour le mode transcript seul (0 = désactivé)
	Clipboard  bool   // copier le transcript dans le presse-papier (mode -episode)
	Out        string // remplace output_dir de la config si non vide
}

// App orchestre les différentes dépendances (config, renderer, FS).
type App struct {
	cfg      *config.Config
	flags    *CLIFlags
	renderer *site.Renderer
}

// New construit l'application. Pour les tests, on préférera construire App
// avec un renderer sur des templates de test.
func New(cfg *config.Config, flags *CLIFlags, renderer *site.Renderer) *App {
	return &App{
		cfg:      cfg,
		flags:    flags,
		renderer: renderer,
	}
}

// Run exécute le flux principal selon les flags : listing, transcript d'un
// seul épisode, ou génération complète du site.
func (a *App) Run(ctx context.Context) error {
	if a.flags.Out != "" {
		a.cfg.OutputDir = filepath.Clean(a.flags.Out)
	}

	episodes, err := podcast.LoadEpisodes(a.cfg.EpisodesFile)
	if err != nil {
		return fmt.Errorf("load episodes: %w", err)
	}

	switch {
	case a.flags.List:
		fmt.Println(episodeTable(episodes))
		return nil
	case a.flags.Episode > 0:
		return a.runSingleEpisode(episodes)
	default:
		return a.generate(ctx, episodes)
	}
}

// channel construit les métadonnées du flux depuis la config.
func (a *App) channel() feed.Channel {
	return feed.Channel{
		Title:       a.cfg.Site.Title,
		Link:        a.cfg.Site.BaseURL,
		Description: a.cfg.Site.Description,
		Language:    a.cfg.Site.Language,
	}
}

// generate produit l'intégralité du site dans OutputDir : une page par
// épisode, le transcript texte de ceux qui en ont un, l'index et feed.xml.
func (a *App) generate(ctx context.Context, episodes []model.Episode) error {
	for _, w := range a.cfg.CaptionsWarnings() {
		log.Printf("warning: %s", w)
	}

	ch := a.channel()
	transcripts := 0

	for _, e := range episodes {
		// annulation coopérative entre deux épisodes
		if err := ctx.Err(); err != nil {
			return err
		}

		lines, err := a.episodeTranscript(e)
		if err != nil {
			return err
		}
		if len(lines) > 0 {
			if err := a.saveTranscript(e, lines); err != nil {
				return err
			}
			transcripts++
		}

		page, err := a.renderer.Episode(site.EpisodeData{
			Channel: ch,
			Episode: e,
			Lines:   lines,
		})
		if err != nil {
			return fmt.Errorf("render %s: %w", e.PageName(), err)
		}
		dest := filepath.Join(a.cfg.OutputDir, e.PageName())
		if err := fsutil.WriteFileAtomic(dest, page, filePerm); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}
	}

	index, err := a.renderer.Index(site.IndexData{Channel: ch, Episodes: episodes})
	if err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	indexPath := filepath.Join(a.cfg.OutputDir, "index.html")
	if err := fsutil.WriteFileAtomic(indexPath, index, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", indexPath, err)
	}

	rss, err := feed.Build(ch, episodes)
	if err != nil {
		return fmt.Errorf("build feed: %w", err)
	}
	feedPath := filepath.Join(a.cfg.OutputDir, "feed.xml")
	if err := fsutil.WriteFileAtomic(feedPath, rss, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", feedPath, err)
	}

	fmt.Printf("site généré dans %s : %d épisodes, %d transcripts\n",
		a.cfg.OutputDir, len(episodes), transcripts)
	return nil
}

// saveTranscript écrit le transcript texte d'un épisode (une ligne par
// prise de parole) dans OutputDir/transcripts/.
func (a *App) saveTranscript(e model.Episode, lines []string) error {
	dest := filepath.Join(a.cfg.OutputDir, "transcripts", e.Slug()+".txt")
	content := strings.Join(lines, "\n") + "\n"
	if err := fsutil.WriteFileAtomic(dest, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write transcript %s: %w", dest, err)
	}
	return nil
}
