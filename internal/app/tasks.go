package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefaubion/haskellweekly/internal/clipboard"
	"github.com/natefaubion/haskellweekly/internal/podcast"
	"github.com/natefaubion/haskellweekly/internal/transcript"
	"github.com/natefaubion/haskellweekly/internal/vtt"
	"github.com/natefaubion/haskellweekly/pkg/model"
)

// episodeTranscript lit le fichier .vtt de l'épisode, le parse et le projette
// en lignes de transcript. Retourne (nil, nil) si l'épisode n'a pas de
// sous-titres déclarés. Un fichier illisible ou malformé est une erreur :
// le corpus est petit et édité à la main, on préfère échouer franchement
// plutôt que de publier un épisode sans son transcript.
func (a *App) episodeTranscript(e model.Episode) ([]string, error) {
	if !e.HasCaptions() {
		return nil, nil
	}

	path := filepath.Join(a.cfg.CaptionsDir, e.Captions)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("épisode %d : lecture de %s impossible : %w", e.Number, path, err)
	}

	captions, err := vtt.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("épisode %d : %s : %w", e.Number, path, err)
	}
	return transcript.Render(captions), nil
}

// runSingleEpisode affiche le transcript d'un seul épisode sur stdout,
// et le copie dans le presse-papier si demandé.
func (a *App) runSingleEpisode(episodes []model.Episode) error {
	e, ok := podcast.Find(episodes, a.flags.Episode)
	if !ok {
		return fmt.Errorf("épisode %d introuvable dans %s", a.flags.Episode, a.cfg.EpisodesFile)
	}
	if !e.HasCaptions() {
		return fmt.Errorf("épisode %d : pas de sous-titres déclarés", e.Number)
	}

	lines, err := a.episodeTranscript(e)
	if err != nil {
		return err
	}
	text := strings.Join(lines, "\n") + "\n"
	fmt.Print(text)

	if a.flags.Clipboard || a.cfg.CopyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copie dans le presse-papier impossible : %w", err)
		}
		fmt.Fprintln(os.Stderr, "transcript copié dans le presse-papier")
	}
	return nil
}
