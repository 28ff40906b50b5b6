package branding

// Palette maps the three semantic brand colors to #RRGGBB values.
type Palette struct {
	Primary   string `json:"primary" yaml:"primary" validate:"required,len=7,hexcolor"`
	Secondary string `json:"secondary" yaml:"secondary" validate:"required,len=7,hexcolor"`
	Accent    string `json:"accent" yaml:"accent" validate:"required,len=7,hexcolor"`
}

// DefaultPalette returns the FLYFOX AI colors.
func DefaultPalette() Palette {
	return Palette{
		Primary:   "#FF6B35",
		Secondary: "#2C3E50",
		Accent:    "#E74C3C",
	}
}

// Validate requires each color to be '#' followed by six hex digits.
func (p Palette) Validate() error {
	return validateStruct(p)
}

// Colors returns the semantic name to hex mapping consumed by the style layer.
func (p Palette) Colors() map[string]string {
	return map[string]string{
		"primary":   p.Primary,
		"secondary": p.Secondary,
		"accent":    p.Accent,
	}
}
