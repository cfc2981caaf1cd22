package vtt

import "errors"

// ErrMalformed est la seule erreur renvoyée par Parse : le corpus de fichiers
// est petit et édité à la main, on ne localise pas l'échec (voir parse.go).
var ErrMalformed = errors.New("document WebVTT malformé")

// ErrEmptyPayload : un cue doit contenir au moins une ligne de texte.
var ErrEmptyPayload = errors.New("payload de cue vide")

// Payload est la séquence NON VIDE des lignes de texte d'un cue.
// L'invariant "au moins une ligne" est garanti par le constructeur :
// on ne peut pas fabriquer un Payload vide ailleurs que par le zero value,
// que le parseur ne produit jamais.
type Payload struct {
	lines []string
}

// NewPayload construit un Payload à partir des lignes fournies.
// Retourne ErrEmptyPayload si lines est vide. Les lignes sont copiées :
// le Payload ne partage pas de mémoire avec l'appelant.
func NewPayload(lines []string) (Payload, error) {
	if len(lines) == 0 {
		return Payload{}, ErrEmptyPayload
	}
	cp := append([]string(nil), lines...)
	return Payload{lines: cp}, nil
}

// Lines retourne une copie des lignes (le Payload reste immuable).
func (p Payload) Lines() []string {
	return append([]string(nil), p.lines...)
}

// Len retourne le nombre de lignes du payload.
func (p Payload) Len() int {
	return len(p.lines)
}

// Caption est un bloc de cue parsé : identifiant, intervalle temporel et
// lignes de texte. Immuable une fois construit par le parseur.
// Les identifiants ne sont uniques que par convention : aucun contrôle
// croisé entre cues (ni unicité, ni ordre, ni chevauchement des intervalles).
type Caption struct {
	ID      uint64
	Start   Timestamp
	End     Timestamp
	Payload Payload
}
