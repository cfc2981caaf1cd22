package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/natefaubion/haskellweekly/internal/assets"
	"github.com/natefaubion/haskellweekly/internal/fsutil"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Entrées
	EpisodesFile string `yaml:"episodes_file"`
	CaptionsDir  string `yaml:"captions_dir"`

	// Sortie
	OutputDir string `yaml:"output_dir"`

	// Métadonnées du site et du flux RSS
	Site struct {
		BaseURL     string `yaml:"base_url"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Language    string `yaml:"language"`
	} `yaml:"site"`

	// Presse-papier (mode -episode)
	CopyToClipboard bool `yaml:"copy_to_clipboard"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Entrées
	c.EpisodesFile = "episodes.yaml"
	c.CaptionsDir = "captions"

	// Sortie
	c.OutputDir = "_site"

	// Site
	c.Site.BaseURL = "https://haskellweekly.news"
	c.Site.Title = "Haskell Weekly"
	c.Site.Description = "Short conversations about the Haskell programming language."
	c.Site.Language = "en-US"

	c.CopyToClipboard = false
	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config ; si le fichier n'existe pas, on le crée à partir de
// l'exemple embarqué dans internal/assets.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "haskellweekly.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalize()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	// log utile pour le debugging
	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalize() {
	// Nettoyage des chemins
	c.EpisodesFile = filepath.Clean(strings.TrimSpace(c.EpisodesFile))
	c.CaptionsDir = filepath.Clean(strings.TrimSpace(c.CaptionsDir))
	c.OutputDir = filepath.Clean(strings.TrimSpace(c.OutputDir))

	// Trim des métadonnées + fallback sur les defaults
	d := defaultConfig()
	c.Site.BaseURL = strings.TrimSpace(c.Site.BaseURL)
	if c.Site.BaseURL == "" {
		c.Site.BaseURL = d.Site.BaseURL
	}
	c.Site.Title = strings.TrimSpace(c.Site.Title)
	if c.Site.Title == "" {
		c.Site.Title = d.Site.Title
	}
	c.Site.Description = strings.TrimSpace(c.Site.Description)
	c.Site.Language = strings.TrimSpace(c.Site.Language)
	if c.Site.Language == "" {
		c.Site.Language = d.Site.Language
	}
}

// validate vérifie les invariants qui rendraient toute exécution impossible.
func (c *Config) validate() error {
	if c.EpisodesFile == "" || c.EpisodesFile == "." {
		return fmt.Errorf("episodes_file ne peut pas être vide")
	}
	if !strings.HasPrefix(c.Site.BaseURL, "http://") && !strings.HasPrefix(c.Site.BaseURL, "https://") {
		return fmt.Errorf("site.base_url doit être une URL http(s) : %q", c.Site.BaseURL)
	}
	return nil
}

// CaptionsWarnings retourne des avertissements non fatals sur le dossier de
// sous-titres (inexistant, ou pas un dossier). L'absence de captions_dir
// n'empêche pas de générer le site : les épisodes sans transcript restent valides.
func (c *Config) CaptionsWarnings() []string {
	var warnings []string
	st, err := os.Stat(c.CaptionsDir)
	switch {
	case os.IsNotExist(err):
		warnings = append(warnings, fmt.Sprintf("le dossier de sous-titres n'existe pas : %s", c.CaptionsDir))
	case err != nil:
		warnings = append(warnings, fmt.Sprintf("impossible d'accéder au dossier de sous-titres %s : %v", c.CaptionsDir, err))
	case !st.IsDir():
		warnings = append(warnings, fmt.Sprintf("captions_dir n'est pas un répertoire : %s", c.CaptionsDir))
	}
	return warnings
}

// Path retourne le chemin du fichier de configuration chargé.
func (c *Config) Path() string {
	return c.configFilePath
}
