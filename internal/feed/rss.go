// Package feed construit le flux RSS 2.0 du podcast à partir de la liste
// d'épisodes. Sérialisation via encoding/xml, pas de dépendance externe.
package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/natefaubion/haskellweekly/pkg/model"
)

// Channel regroupe les métadonnées du flux (remplies depuis la config).
type Channel struct {
	Title       string
	Link        string // URL racine du site, avec slash final ou non
	Description string
	Language    string
}

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title     string       `xml:"title"`
	Link      string       `xml:"link"`
	GUID      rssGUID      `xml:"guid"`
	PubDate   string       `xml:"pubDate"`
	Enclosure rssEnclosure `xml:"enclosure"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Length int64  `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

// Build sérialise le flux complet (en-tête XML inclus). L'ordre des items
// suit l'ordre des épisodes fournis : le chargeur les donne déjà du plus
// récent au plus ancien.
func Build(ch Channel, episodes []model.Episode) ([]byte, error) {
	if strings.TrimSpace(ch.Title) == "" {
		return nil, fmt.Errorf("titre de flux vide")
	}

	items := make([]rssItem, 0, len(episodes))
	for _, e := range episodes {
		items = append(items, rssItem{
			Title:   e.Title,
			Link:    pageURL(ch.Link, e),
			GUID:    rssGUID{IsPermaLink: false, Value: e.GUID.String()},
			PubDate: e.Date.Format(time.RFC1123Z),
			Enclosure: rssEnclosure{
				URL:    e.AudioURL,
				Length: e.AudioBytes,
				Type:   "audio/mpeg",
			},
		})
	}

	doc := rss{
		Version: "2.0",
		Channel: rssChannel{
			Title:       ch.Title,
			Link:        ch.Link,
			Description: ch.Description,
			Language:    ch.Language,
			Items:       items,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("sérialisation du flux RSS impossible : %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// pageURL compose l'URL de la page d'un épisode à partir de la racine du site.
func pageURL(base string, e model.Episode) string {
	return strings.TrimRight(base, "/") + "/" + e.PageName()
}
