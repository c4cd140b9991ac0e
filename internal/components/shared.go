package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return Span(
		Class("font-display text-2xl text-amber-50"),
		g.Text("Lamassu Studio"),
	)
}

// Icon renders an iconify icon. An empty label hides it from assistive tech.
func Icon(name, ariaLabel, classes string) g.Node {
	if classes == "" {
		classes = "w-5 h-5"
	}

	if ariaLabel != "" {
		return Span(
			Class("iconify inline-block "+classes),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class("iconify inline-block "+classes),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// ExternalLink opens href in a new tab.
func ExternalLink(href string, children ...g.Node) g.Node {
	return A(
		Href(href),
		Target("_blank"),
		Rel("noopener noreferrer"),
		g.Group(children),
	)
}

// Notice is a dismissable banner shown above page content.
func Notice(kind, message string) g.Node {
	classes := "bg-amber-100 text-amber-900 border-amber-300"
	if kind == "success" {
		classes = "bg-emerald-100 text-emerald-900 border-emerald-300"
	}
	return Div(
		Class("rounded-xl border px-4 py-3 text-sm "+classes),
		g.Attr("role", "status"),
		g.Text(message),
	)
}
