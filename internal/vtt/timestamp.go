package vtt

import "fmt"

// Timestamp représente une heure du jour en millisecondes depuis minuit.
// Type non signé : une valeur négative est impossible par construction.
type Timestamp uint64

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// newTimestamp compose heures/minutes/secondes/millisecondes en un Timestamp.
// Arithmétique entière uniquement (pas de flottants : la précision
// milliseconde est préservée exactement). Les champs sont bornés par leur
// nombre de chiffres dans la grammaire (2/2/2/3), donc la composition ne peut
// pas déborder un uint64 ; on valide quand même les bornes sémantiques.
func newTimestamp(h, m, s, ms uint64) (Timestamp, bool) {
	if m >= 60 || s >= 60 || ms >= 1000 {
		return 0, false
	}
	return Timestamp(h*msPerHour + m*msPerMinute + s*msPerSecond + ms), true
}

// Milliseconds retourne la valeur brute en millisecondes.
func (t Timestamp) Milliseconds() uint64 {
	return uint64(t)
}

// Before retourne true si t est strictement antérieur à u.
func (t Timestamp) Before(u Timestamp) bool {
	return t < u
}

// String formate le Timestamp dans la syntaxe d'origine "HH:MM:SS.mmm".
func (t Timestamp) String() string {
	v := uint64(t)
	h := v / msPerHour
	m := (v % msPerHour) / msPerMinute
	s := (v % msPerMinute) / msPerSecond
	ms := v % msPerSecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
