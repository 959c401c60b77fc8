package model

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validation limits for the fallback display text
const (
	MinDisplayTextLen = 1
	MaxDisplayTextLen = 4
)

var (
	// ErrNameRequired means the favorite has no display name
	ErrNameRequired = errors.New("name is required")

	// ErrURLRequired means the favorite has no target URL
	ErrURLRequired = errors.New("url is required")

	// ErrVisualContent means the image/text rule is broken: exactly one of
	// ImageURL and DisplayText must be set
	ErrVisualContent = errors.New("exactly one of image or display text must be set")
)

// Validate checks a favorite before it is allowed to reach the board.
// Invalid favorites are rejected at the form boundary; the board never
// stores one.
func (f Favorite) Validate() error {
	if f.Name == "" {
		return ErrNameRequired
	}
	if f.URL == "" {
		return ErrURLRequired
	}
	if !f.Type.IsValid() {
		return fmt.Errorf("unknown kind: %q", f.Type)
	}
	if !f.OpenBehavior.IsValid() {
		return fmt.Errorf("unknown open behavior: %q", f.OpenBehavior)
	}
	hasImage := f.ImageURL != ""
	hasText := f.DisplayText != ""
	if hasImage == hasText {
		return ErrVisualContent
	}
	if hasText {
		if n := utf8.RuneCountInString(f.DisplayText); n < MinDisplayTextLen || n > MaxDisplayTextLen {
			return fmt.Errorf("display text must be %d-%d characters, got %d",
				MinDisplayTextLen, MaxDisplayTextLen, n)
		}
	}
	return nil
}
