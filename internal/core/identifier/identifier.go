// Package identifier normalizes opaque profile and entity identifiers.
package identifier

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Mode selects how strictly identifiers are checked.
type Mode string

const (
	// ModeLenient accepts any non-blank value other than the "null" sentinel.
	ModeLenient Mode = "lenient"
	// ModeUUID additionally requires the canonical 36 character UUID form.
	ModeUUID Mode = "uuid"
)

const nullSentinel = "null"

// ParseMode maps a configuration value onto a Mode. Blank means lenient.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeLenient:
		return ModeLenient, nil
	case ModeUUID:
		return ModeUUID, nil
	default:
		return "", fmt.Errorf("unknown identifier mode %q", value)
	}
}

// Validator is safe for concurrent use. The zero value is lenient.
type Validator struct {
	mode Mode
}

func NewValidator(mode Mode) Validator {
	if mode != ModeUUID {
		mode = ModeLenient
	}
	return Validator{mode: mode}
}

func (v Validator) Mode() Mode {
	if v.mode == "" {
		return ModeLenient
	}
	return v.mode
}

// Validate returns the trimmed identifier and whether it is usable.
func (v Validator) Validate(raw string) (string, bool) {
	id := strings.TrimSpace(raw)
	if id == "" || strings.EqualFold(id, nullSentinel) {
		return "", false
	}
	if v.mode == ModeUUID && !isCanonicalUUID(id) {
		return "", false
	}
	return id, true
}

// ValidatePtr is Validate for optional fields.
func (v Validator) ValidatePtr(raw *string) (string, bool) {
	if raw == nil {
		return "", false
	}
	return v.Validate(*raw)
}

// isCanonicalUUID rejects the urn, braced and unhyphenated forms uuid.Parse tolerates.
func isCanonicalUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
