package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
)

// Tagline is the hero subtitle, also used as the page description.
const Tagline = "Revolutionary quantum AI solutions for modern businesses"

func Hero(info branding.Info) g.Node {
	return Div(
		ID("technology"),
		Class("text-center mb-12"),
		H1(Class("text-4xl font-bold text-gray-900 mb-4"), g.Textf("%s Platform", info.Name)),
		P(Class("text-xl text-gray-600 max-w-3xl mx-auto"), g.Text(Tagline)),
	)
}
