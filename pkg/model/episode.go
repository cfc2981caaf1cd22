package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Episode regroupe les métadonnées d'un épisode du podcast, telles que
// déclarées dans le fichier episodes.yaml (voir internal/podcast).
type Episode struct {
	Number     int       // numéro d'épisode, > 0, unique dans le flux
	Title      string    // titre de l'épisode
	Date       time.Time // date de publication
	GUID       uuid.UUID // identifiant stable pour le flux RSS
	AudioURL   string    // URL du mp3
	AudioBytes int64     // taille du mp3 en octets (enclosure RSS)
	Duration   Seconds   // durée de l'audio
	Captions   string    // nom du fichier .vtt, vide si pas de transcription
}

// HasCaptions indique si un fichier de sous-titres est déclaré pour l'épisode.
func (e Episode) HasCaptions() bool {
	return strings.TrimSpace(e.Captions) != ""
}

// Slug retourne l'identifiant utilisé pour les chemins de sortie
// (page HTML, transcript texte). Exemple : "episode-12".
func (e Episode) Slug() string {
	return fmt.Sprintf("episode-%d", e.Number)
}

// PageName retourne le nom de la page HTML de l'épisode.
func (e Episode) PageName() string {
	return e.Slug() + ".html"
}

func (e Episode) String() string {
	return fmt.Sprintf("Episode(number=%d, title=%q, date=%s)",
		e.Number, e.Title, e.Date.Format("2006-01-02"))
}

// Validate vérifie les invariants d'un épisode. Retourne la première
// violation rencontrée ; nil si tout est cohérent.
func (e Episode) Validate() error {
	if e.Number <= 0 {
		return fmt.Errorf("numéro d'épisode invalide : %d", e.Number)
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("épisode %d : titre vide", e.Number)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("épisode %d : date manquante", e.Number)
	}
	if e.GUID == uuid.Nil {
		return fmt.Errorf("épisode %d : GUID manquant", e.Number)
	}
	if strings.TrimSpace(e.AudioURL) == "" {
		return fmt.Errorf("épisode %d : URL audio vide", e.Number)
	}
	if e.AudioBytes <= 0 {
		return fmt.Errorf("épisode %d : taille audio invalide : %d", e.Number, e.AudioBytes)
	}
	if e.Duration <= 0 {
		return fmt.Errorf("épisode %d : durée invalide : %d", e.Number, e.Duration)
	}
	return nil
}
