package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
)

// PromoCard is one offering. Title is appended to the product name.
// The action button is display-only.
type PromoCard struct {
	Title       string
	Description string
	Action      string
}

var PromoCards = []PromoCard{
	{
		Title:       "Quantum Voice Calling",
		Description: "Revolutionary voice calling powered by quantum computing and OpenAI technology.",
		Action:      "Start Quantum Call",
	},
	{
		Title:       "Video Creation",
		Description: "Create professional videos with AI-powered avatars and quantum-enhanced scripting.",
		Action:      "Generate Video",
	},
}

func Promotions(info branding.Info) g.Node {
	return Div(
		ID("solutions"),
		Class("grid grid-cols-1 lg:grid-cols-2 gap-8"),
		g.Group(g.Map(PromoCards, func(card PromoCard) g.Node {
			return promoCard(info, card)
		})),
	)
}

func promoCard(info branding.Info, card PromoCard) g.Node {
	return Div(
		Class("bg-white p-6 rounded-lg shadow-md"),
		H3(Class("text-xl font-semibold text-gray-900 mb-4"), g.Textf("%s %s", info.Name, card.Title)),
		P(Class("text-gray-600 mb-6"), g.Text(card.Description)),
		Button(
			Type("button"),
			Class("bg-brand-primary text-white px-4 py-2 rounded-lg hover:bg-brand-accent"),
			g.Text(card.Action),
		),
	)
}
