// Package podcast charge la liste des épisodes depuis le fichier YAML
// episodes.yaml et la convertit en types du domaine (pkg/model).
package podcast

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/natefaubion/haskellweekly/pkg/model"
)

// dateLayout : les dates du fichier YAML sont en "AAAA-MM-JJ".
const dateLayout = "2006-01-02"

// rawFile représente le fichier episodes.yaml tel quel, avant validation.
type rawFile struct {
	Episodes []rawEpisode `yaml:"episodes"`
}

type rawEpisode struct {
	Number     int    `yaml:"number"`
	Title      string `yaml:"title"`
	Date       string `yaml:"date"`
	GUID       string `yaml:"guid"`
	AudioURL   string `yaml:"audio_url"`
	AudioBytes int64  `yaml:"audio_bytes"`
	Duration   int64  `yaml:"duration_seconds"`
	Captions   string `yaml:"captions,omitempty"`
}

// toEpisode convertit une entrée brute en model.Episode validé.
func (r rawEpisode) toEpisode() (model.Episode, error) {
	var empty model.Episode

	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return empty, fmt.Errorf("épisode %d : date %q invalide : %w", r.Number, r.Date, err)
	}
	guid, err := uuid.Parse(r.GUID)
	if err != nil {
		return empty, fmt.Errorf("épisode %d : GUID %q invalide : %w", r.Number, r.GUID, err)
	}

	e := model.Episode{
		Number:     r.Number,
		Title:      r.Title,
		Date:       date,
		GUID:       guid,
		AudioURL:   r.AudioURL,
		AudioBytes: r.AudioBytes,
		Duration:   model.Seconds(r.Duration),
		Captions:   r.Captions,
	}
	if err := e.Validate(); err != nil {
		return empty, err
	}
	return e, nil
}

// ParseEpisodes déserialise et valide le contenu d'un fichier episodes.yaml.
// Les épisodes sont retournés du plus récent au plus ancien (numéro
// décroissant) ; un numéro en double est une erreur.
func ParseEpisodes(data []byte) ([]model.Episode, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("analyse du fichier d'épisodes impossible : %w", err)
	}
	if len(raw.Episodes) == 0 {
		return nil, fmt.Errorf("aucun épisode déclaré")
	}

	episodes := make([]model.Episode, 0, len(raw.Episodes))
	seen := make(map[int]struct{}, len(raw.Episodes))
	for _, r := range raw.Episodes {
		e, err := r.toEpisode()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[e.Number]; dup {
			return nil, fmt.Errorf("numéro d'épisode en double : %d", e.Number)
		}
		seen[e.Number] = struct{}{}
		episodes = append(episodes, e)
	}

	// tri stable : du plus récent au plus ancien
	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].Number > episodes[j].Number
	})
	return episodes, nil
}

// LoadEpisodes lit le fichier YAML à path et retourne les épisodes validés.
func LoadEpisodes(path string) ([]model.Episode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier d'épisodes %s impossible : %w", path, err)
	}
	episodes, err := ParseEpisodes(data)
	if err != nil {
		return nil, fmt.Errorf("%s : %w", path, err)
	}
	return episodes, nil
}

// Find retourne l'épisode portant le numéro demandé.
func Find(episodes []model.Episode, number int) (model.Episode, bool) {
	for _, e := range episodes {
		if e.Number == number {
			return e, true
		}
	}
	return model.Episode{}, false
}
