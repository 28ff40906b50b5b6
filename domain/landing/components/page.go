package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
)

// LandingPage is the whole document for brand. Only brand changes the output.
func LandingPage(brand branding.Brand) g.Node {
	info := brand.Info

	return Layout(
		PageConfig{
			Title:       info.Name + " - Quantum AI Solutions",
			Description: Tagline,
			Palette:     brand.Palette,
		},
		PageHeader(info),
		Main(
			Class("container mx-auto px-6 py-12"),
			Hero(info),
			Promotions(info),
		),
		PageFooter(info),
	)
}
