package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eventbuddy/eventbuddy/pkg/constants"
)

// Participant is a person that events can reference by id.
// The surrounding application only ever toggles event membership, so
// participants carry no mutable state beyond their profile fields.
type Participant struct {
	ID     int    `json:"id" yaml:"id"`                         // Unique participant identifier, immutable after creation
	Name   string `json:"name" yaml:"name"`                     // Full name
	Email  string `json:"email,omitempty" yaml:"email,omitempty"` // Contact address
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"` // Short initials string, derived from Name when empty
}

// normalize derives the avatar initials when none were supplied.
func (p *Participant) normalize() {
	if p.Avatar == "" {
		p.Avatar = deriveAvatar(p.Name)
	}
}

var upper = cases.Upper(language.Und)

// deriveAvatar builds initials from the first letters of up to the first
// two space-separated name tokens, uppercased.
func deriveAvatar(name string) string {
	var b strings.Builder
	for i, token := range strings.Fields(name) {
		if i == constants.AvatarMaxInitials {
			break
		}
		runes := []rune(token)
		b.WriteRune(runes[0])
	}
	return upper.String(b.String())
}
