// Package site rend les pages HTML du site du podcast : un index listant les
// épisodes et une page par épisode avec son transcript.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"sync"

	"github.com/natefaubion/haskellweekly/internal/assets"
	"github.com/natefaubion/haskellweekly/internal/feed"
	"github.com/natefaubion/haskellweekly/pkg/model"
)

const (
	indexTemplate   = "index.html.tmpl"
	episodeTemplate = "episode.html.tmpl"
)

// IndexData : données passées au template de la page d'index.
type IndexData struct {
	Channel  feed.Channel
	Episodes []model.Episode
}

// EpisodeData : données passées au template d'une page d'épisode.
// Lines est vide quand l'épisode n'a pas de transcript.
type EpisodeData struct {
	Channel feed.Channel
	Episode model.Episode
	Lines   []string
}

// Renderer gère le parsing paresseux (lazy) des templates et fournit des
// méthodes de rendu. Sûr pour un usage concurrent après construction.
type Renderer struct {
	templates *template.Template // templates parsés
	fsys      fs.FS              // source des templates (embed.FS ou os.DirFS)
	patterns  []string           // patterns relatifs au fsys, ex: "index.html.tmpl"
	once      sync.Once          // protège l'initialisation paresseuse
	err       error              // mémorise l'erreur d'initialisation (utile avec once)
}

// NewRendererFromFS construit un Renderer configuré pour parser ultérieurement
// les patterns fournis depuis le fsys (ne parse pas immédiatement).
func NewRendererFromFS(fsys fs.FS, patterns []string) (*Renderer, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fsys est nil")
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("aucun template fourni")
	}
	// copy patterns pour sécurité
	cp := append([]string(nil), patterns...)
	return &Renderer{
		fsys:     fsys,
		patterns: cp,
	}, nil
}

// DefaultRenderer construit un Renderer sur les templates embarqués et parse
// tout de suite.
func DefaultRenderer() (*Renderer, error) {
	fsys, err := fs.Sub(assets.Embedded, assets.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("sous-arborescence des templates inaccessible : %w", err)
	}
	r, err := NewRendererFromFS(fsys, assets.DefaultTemplatePatterns)
	if err != nil {
		return nil, err
	}
	if err := r.ParseNow(); err != nil {
		return nil, err
	}
	return r, nil
}

// parseTemplates effectue le parsing des templates une seule fois (sync.Once).
func (r *Renderer) parseTemplates() error {
	r.once.Do(func() {
		t := template.New("root")
		var lastErr error
		for _, p := range r.patterns {
			var parseErr error
			t, parseErr = t.ParseFS(r.fsys, p)
			if parseErr != nil {
				lastErr = fmt.Errorf("parse pattern %q: %w", p, parseErr)
				// stoppe ici : il est préférable de remonter l'erreur immédiatement
				break
			}
		}
		if lastErr != nil {
			r.err = lastErr
			return
		}
		r.templates = t
	})
	return r.err
}

// ParseNow force l'initialisation / parsing immédiat et retourne l'erreur si problème.
func (r *Renderer) ParseNow() error {
	if r == nil {
		return fmt.Errorf("nil renderer")
	}
	return r.parseTemplates()
}

// render exécute le template nommé avec data.
func (r *Renderer) render(name string, data any) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	if err := r.parseTemplates(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Index rend la page d'accueil (liste des épisodes).
func (r *Renderer) Index(data IndexData) ([]byte, error) {
	return r.render(indexTemplate, data)
}

// Episode rend la page d'un épisode, transcript inclus si présent.
func (r *Renderer) Episode(data EpisodeData) ([]byte, error) {
	return r.render(episodeTemplate, data)
}
