// Package transcript condense une suite de cues en un transcript segmenté
// par orateur : les retours à la ligne d'origine (le "wrapping" des
// sous-titres) disparaissent, et une nouvelle ligne ne commence que sur le
// marqueur de changement d'orateur ">>".
package transcript

import (
	"strings"

	"github.com/natefaubion/haskellweekly/internal/vtt"
)

// speakerToken : un mot doit être exactement ">>" pour marquer un changement
// d'orateur ; ">>Bonjour" collé n'est pas un marqueur.
const speakerToken = ">>"

// Render projette les cues en lignes de transcript. Fonction pure et totale :
// jamais d'erreur, une entrée vide donne une sortie vide, et les cues
// consécutifs d'un même orateur fusionnent en une seule ligne.
//
// Les mots qui précèdent le tout premier ">>" forment un tampon à part :
// s'il existe au moins un segment marqué, ce tampon (propos non attribuables
// à un orateur) est écarté de la sortie ; s'il n'existe aucun marqueur dans
// tout le document, le tampon devient l'unique ligne du transcript.
func Render(captions []vtt.Caption) []string {
	words := flattenWords(captions)

	var segments [][]string
	var buffer []string // mots avant le premier marqueur
	var current []string
	marked := false

	for _, w := range words {
		if w == speakerToken {
			if marked {
				segments = append(segments, current)
			}
			current = []string{w}
			marked = true
			continue
		}
		if !marked {
			buffer = append(buffer, w)
			continue
		}
		current = append(current, w)
	}

	if marked {
		segments = append(segments, current)
	} else if len(buffer) > 0 {
		segments = append(segments, buffer)
	}

	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		lines = append(lines, strings.Join(seg, " "))
	}
	return lines
}

// flattenWords concatène les lignes de payload de tous les cues (les
// frontières de cue ne sont pas des coupures) puis redécoupe le tout en mots
// délimités par des blancs.
func flattenWords(captions []vtt.Caption) []string {
	var words []string
	for _, c := range captions {
		for _, line := range c.Payload.Lines() {
			words = append(words, strings.Fields(line)...)
		}
	}
	return words
}
