// Package branding holds the display strings and brand colors a site is rendered with.
//
// Values are plain structs passed by copy. Nothing in this package keeps a
// shared instance, so a Brand handed to a renderer cannot change underneath it.
package branding

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Info is the product and company copy shown on the landing page.
type Info struct {
	Name    string `json:"name" yaml:"name" validate:"notblank"`
	Company string `json:"company" yaml:"company" validate:"notblank"`
	Mission string `json:"mission" yaml:"mission" validate:"notblank"`
	Contact string `json:"contact" yaml:"contact" validate:"notblank"`
}

// Default returns the FLYFOX AI branding.
func Default() Info {
	return Info{
		Name:    "FLYFOX AI",
		Company: "Goliath of All Trade Inc.",
		Mission: "SOLVE PROBLEMS & PROVIDE DYNAMIC AI SOLUTIONS",
		Contact: "john.britton@goliathomniedge.com",
	}
}

// Validate reports every blank field.
func (i Info) Validate() error {
	return validateStruct(i)
}

// Glyph returns the single upper-case letter used as the logo mark.
func (i Info) Glyph() string {
	name := strings.TrimSpace(i.Name)
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// Brand pairs the copy with the palette it is styled with.
type Brand struct {
	Info    Info
	Palette Palette
}

// New validates both halves and returns the combined brand.
func New(info Info, palette Palette) (Brand, error) {
	if err := info.Validate(); err != nil {
		return Brand{}, err
	}
	if err := palette.Validate(); err != nil {
		return Brand{}, err
	}
	return Brand{Info: info, Palette: palette}, nil
}
