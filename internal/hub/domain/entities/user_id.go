package entities

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const (
	prefixLen    = 3
	suffixHexLen = 8
	padRune      = 'x'
)

// NewUserID derives the human-readable user identifier from the user's name:
// a 3-character lower-cased prefix of each name part, right-padded with 'x'
// when a part is shorter than 3 characters, followed by 8 random hex
// characters. The result is always 14 characters. Collisions are considered
// negligible and are additionally caught by the primary key.
func NewUserID(firstName, lastName string) string {
	u := uuid.New()
	suffix := hex.EncodeToString(u[:])[:suffixHexLen]
	return namePrefix(firstName) + namePrefix(lastName) + suffix
}

func namePrefix(name string) string {
	p := strings.ToLower(name)
	if len(p) > prefixLen {
		p = p[:prefixLen]
	}
	for len(p) < prefixLen {
		p += string(padRune)
	}
	return p
}
