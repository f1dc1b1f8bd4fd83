package user

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxNameLength = 255

// Characters that break account names when used as canonical keys in URLs,
// wikitext-style links and log lines.
const reservedNameChars = "#<>[]|{}"

// ValidateName reports whether the proposed account name is usable as a
// canonical account key.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidUsername)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d bytes", ErrInvalidUsername, maxNameLength)
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("%w: name is not valid UTF-8", ErrInvalidUsername)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: leading or trailing whitespace", ErrInvalidUsername)
	}
	if strings.ContainsAny(name, reservedNameChars) {
		return fmt.Errorf("%w: name contains reserved characters", ErrInvalidUsername)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: name contains control characters", ErrInvalidUsername)
		}
	}
	return nil
}
