package assets

import "embed"

//go:embed haskellweekly.example.yaml
//go:embed templates/*.tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "haskellweekly.example.yaml"

// TemplatesDir : racine des templates HTML dans Embedded.
const TemplatesDir = "templates"

// DefaultTemplatePatterns : patterns relatifs à TemplatesDir, dans l'ordre
// de parsing attendu par site.NewRendererFromFS.
var DefaultTemplatePatterns = []string{
	"index.html.tmpl",
	"episode.html.tmpl",
}
