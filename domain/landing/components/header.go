package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
)

type NavLink struct {
	Label string
	Href  string
}

// NavLinks are the header links in display order.
var NavLinks = []NavLink{
	{"Solutions", "#solutions"},
	{"Technology", "#technology"},
	{"Partners", "/partners"},
	{"Contact", "#contact"},
}

func Logo(info branding.Info) g.Node {
	return Div(
		Class("flex items-center space-x-4"),
		Div(
			Class("w-8 h-8 bg-gradient-to-r from-brand-primary to-brand-accent rounded-lg flex items-center justify-center"),
			Span(Class("text-white font-bold text-sm"), g.Text(info.Glyph())),
		),
		Span(Class("text-xl font-bold text-gray-900"), g.Text(info.Name)),
	)
}

func PageHeader(info branding.Info) g.Node {
	return Header(
		Class("bg-white border-b border-gray-200 shadow-sm"),
		Div(
			Class("container mx-auto px-6 py-4"),
			Div(
				Class("flex items-center justify-between"),
				Logo(info),
				Nav(
					Class("flex items-center space-x-6"),
					g.Group(g.Map(NavLinks, func(l NavLink) g.Node {
						return A(Href(l.Href), Class("text-gray-700 hover:text-brand-primary"), g.Text(l.Label))
					})),
				),
			),
		),
	)
}
