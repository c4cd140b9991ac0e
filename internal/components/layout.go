package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	brandPurple = "#46236A"
	brandPlum   = "#3c145a"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
	// RefreshSeconds, when positive, makes the browser reload the page.
	RefreshSeconds int
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Lamassu Studio | استودیو لاماسو"
	}

	if config.Description == "" {
		config.Description = "عکاسی، فیلمبرداری، تیزر تبلیغاتی و تولید محتوا. با لاماسو شروع‌کن، بزرگ فکرکن، دیده شو"
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/pattern.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("fa"),
			g.Attr("dir", "rtl"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				g.If(config.RefreshSeconds > 0,
					Meta(g.Attr("http-equiv", "refresh"), Content(strconv.Itoa(config.RefreshSeconds))),
				),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Lalezar&family=Vazirmatn:wght@400;600;700&display=swap")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("font-body antialiased"),
				g.Group(content),

				Script(Src("/static/js/menu.js"), g.Attr("defer", "")),
			),
		),
	})
}

// patternBackground is the studio's purple backdrop with the tiled pattern.
func patternBackground(attachFixed bool) g.Node {
	style := "background-color: " + brandPurple + "; background-image: url('/static/images/pattern.svg'); background-size: cover; background-position: center;"
	if attachFixed {
		style += " background-attachment: fixed;"
	}
	return Style(style)
}
