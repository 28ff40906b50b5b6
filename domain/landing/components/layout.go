package components

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
)

// ColorNamespace prefixes the palette's Tailwind color utilities,
// e.g. bg-brand-primary.
const ColorNamespace = "brand"

const tailwindScript = "https://cdn.tailwindcss.com"

type PageConfig struct {
	Title       string
	Description string
	Palette     branding.Palette
}

// Layout wraps content in the HTML document shell.
func Layout(config PageConfig, content ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(Src(tailwindScript)),
				Script(g.Raw(TailwindConfig(config.Palette))),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("min-h-screen bg-gray-50"),
				g.Group(content),
			),
		),
	)
}

// TailwindConfig is the inline script that registers the palette as
// Tailwind colors under ColorNamespace.
func TailwindConfig(p branding.Palette) string {
	cfg := map[string]any{
		"theme": map[string]any{
			"extend": map[string]any{
				"colors": map[string]any{
					ColorNamespace: p.Colors(),
				},
			},
		},
	}
	// A map of strings always marshals.
	data, _ := json.Marshal(cfg)
	return "tailwind.config = " + string(data) + ";"
}
