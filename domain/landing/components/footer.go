package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
)

// PageFooter is the only place company, mission and contact are shown.
func PageFooter(info branding.Info) g.Node {
	return Footer(
		ID("contact"),
		Class("bg-gray-900 text-white mt-12"),
		Div(
			Class("container mx-auto px-6 py-12"),
			Div(
				Class("text-center"),
				H3(Class("text-xl font-bold mb-4"), g.Text(info.Name)),
				P(Class("text-gray-300 mb-2"), g.Textf("by %s", info.Company)),
				P(Class("text-gray-300 mb-4"), g.Text(info.Mission)),
				P(Class("text-gray-300"), g.Textf("Contact: %s", info.Contact)),
			),
		),
	)
}
