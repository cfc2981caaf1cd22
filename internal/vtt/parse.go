// Package vtt parse le sous-ensemble de WebVTT utilisé par les transcriptions
// du podcast : un en-tête "WEBVTT" suivi de blocs de cues numérotés, au format
// de timestamp fixe "HH:MM:SS.mmm". Tout le reste de la norme WebVTT (styles,
// réglages de cue, régions, commentaires, fins de ligne \r\n) est hors champ
// et fait échouer le parse.
package vtt

import (
	"strconv"
	"strings"
)

// Parse reconnaît un document complet et retourne ses cues dans l'ordre du
// document. Descente récursive déterministe qui suit la grammaire strictement
// de haut en bas :
//
//	document  = "WEBVTT" \n \n caption (\n caption)*  |  "WEBVTT" \n \n
//	caption   = chiffres \n timestamp " --> " timestamp \n ligne+
//	ligne     = [^\n]+ \n
//
// Le document doit être consommé en entier : tout reliquat, toute déviation
// de la grammaire, ou un cue dont start >= end, rend ErrMalformed — sans
// résultat partiel ni position d'erreur. Les lignes de payload ne pouvant pas
// être vides, la ligne vide qui sépare deux blocs suffit à désambiguïser :
// une ligne de payload composée uniquement de chiffres reste du payload.
func Parse(document string) ([]Caption, error) {
	p := parser{src: document}
	if !p.lit("WEBVTT\n\n") {
		return nil, ErrMalformed
	}
	captions := []Caption{}
	for !p.eof() {
		if len(captions) > 0 && !p.lit("\n") {
			return nil, ErrMalformed
		}
		c, ok := p.caption()
		if !ok {
			return nil, ErrMalformed
		}
		captions = append(captions, c)
	}
	return captions, nil
}

// parser : curseur sur la chaîne source. Aucune méthode ne consomme d'entrée
// quand elle retourne false, sauf caption() dont l'échec est de toute façon
// fatal pour le document entier.
type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

// lit consomme le littéral s ou retourne false sans avancer.
func (p *parser) lit(s string) bool {
	if !strings.HasPrefix(p.src[p.pos:], s) {
		return false
	}
	p.pos += len(s)
	return true
}

// caption reconnaît un bloc de cue complet.
func (p *parser) caption() (Caption, bool) {
	var zero Caption

	id, ok := p.identifier()
	if !ok {
		return zero, false
	}
	if !p.lit("\n") {
		return zero, false
	}
	start, ok := p.timestamp()
	if !ok {
		return zero, false
	}
	if !p.lit(" --> ") {
		return zero, false
	}
	end, ok := p.timestamp()
	if !ok {
		return zero, false
	}
	if !p.lit("\n") {
		return zero, false
	}
	// validation sémantique : intervalle strictement croissant
	if !start.Before(end) {
		return zero, false
	}
	payload, err := NewPayload(p.payloadLines())
	if err != nil {
		return zero, false
	}
	return Caption{ID: id, Start: start, End: end, Payload: payload}, true
}

// identifier reconnaît une suite de 1+ chiffres décimaux. Un dépassement de
// capacité de uint64 est un échec de parse, jamais un wrap silencieux.
func (p *parser) identifier() (uint64, bool) {
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, false
	}
	n, err := strconv.ParseUint(p.src[start:p.pos], 10, 64)
	if err != nil {
		p.pos = start
		return 0, false
	}
	return n, true
}

// timestamp reconnaît exactement "HH:MM:SS.mmm" (2/2/2/3 chiffres).
// Un chiffre de trop fait échouer le séparateur qui suit ; un chiffre
// manquant fait échouer la lecture du groupe.
func (p *parser) timestamp() (Timestamp, bool) {
	start := p.pos
	fail := func() (Timestamp, bool) {
		p.pos = start
		return 0, false
	}

	h, ok := p.digits(2)
	if !ok || !p.lit(":") {
		return fail()
	}
	m, ok := p.digits(2)
	if !ok || !p.lit(":") {
		return fail()
	}
	s, ok := p.digits(2)
	if !ok || !p.lit(".") {
		return fail()
	}
	ms, ok := p.digits(3)
	if !ok {
		return fail()
	}
	t, ok := newTimestamp(h, m, s, ms)
	if !ok {
		return fail()
	}
	return t, true
}

// digits lit exactement n chiffres décimaux et retourne leur valeur.
func (p *parser) digits(n int) (uint64, bool) {
	if p.pos+n > len(p.src) {
		return 0, false
	}
	var v uint64
	for i := 0; i < n; i++ {
		c := p.src[p.pos+i]
		if !isDigit(c) {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
	}
	p.pos += n
	return v, true
}

// payloadLines consomme les lignes de texte du cue courant : chaque ligne est
// faite de 1+ caractères hors newline, terminée par \n. La ligne vide qui
// sépare deux blocs (ou la fin du document) arrête la collecte. Une dernière
// ligne sans \n final n'est pas consommée : le reliquat fera échouer Parse.
func (p *parser) payloadLines() []string {
	var lines []string
	for {
		rest := p.src[p.pos:]
		i := strings.IndexByte(rest, '\n')
		if i <= 0 {
			// i == 0 : ligne vide (séparateur de blocs)
			// i < 0  : pas de \n terminal
			return lines
		}
		lines = append(lines, rest[:i])
		p.pos += i + 1
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
