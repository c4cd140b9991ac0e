package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type footerLink struct {
	Label    string
	Href     string
	External bool
}

type footerColumn struct {
	Title string
	Links []footerLink
}

var (
	otherPages = footerColumn{"سایر صفحات", []footerLink{
		{"خانه", "#top", false},
		{"دوره های آموزشی", "https://www.instagram.com/niloofar_rajabi_/", true},
		{"نمونه کارها", "#", false},
		{"مقالات آموزشی", "#", false},
		{"درباره ما", "#about", false},
		{"تماس با ما", "#order-form", false},
	}}
	collaborationForms = footerColumn{"فرم های همکاری", []footerLink{
		{"پرسشنامه شناخت برند", "#", false},
		{"پرسشنامه ثبت سفارش عکاسی", "#", false},
		{"پرسشنامه ثبت سفارش ویدیو", "#", false},
		{"پرسشنامه ثبت سفارش گرافیک", "#", false},
	}}
	moreLinks = footerColumn{"لینک های بیشتر", []footerLink{
		{"شرایط خدمات دهی", "#", false},
		{"سوالات متداول", "#", false},
	}}
)

func (c footerColumn) render() g.Node {
	return Div(
		Class("flex flex-col items-center sm:items-start"),
		H3(Class("font-display text-xl mb-4"), g.Text(c.Title)),
		Ul(
			Class("space-y-3 text-sm"),
			g.Group(g.Map(c.Links, func(l footerLink) g.Node {
				if l.External {
					return Li(ExternalLink(l.Href, Class("text-white/80 hover:text-white transition-colors"), g.Text(l.Label)))
				}
				return Li(A(Href(l.Href), Class("text-white/80 hover:text-white transition-colors"), g.Text(l.Label)))
			})),
		),
	)
}

func studioColumn() g.Node {
	return Div(
		Class("flex flex-col items-center sm:items-start"),
		H3(Class("font-display text-xl mb-4"), g.Text("لامآسو استودیو")),
		P(
			Class("text-white/80 text-sm mb-4 leading-relaxed"),
			g.Text("تبلیغات یعنی درگیر کردن احساس مخاطب. برند شدن ارایه یک هویت است؛ هویتی که از یک رویا شکل می‌گیرد."),
		),
		Ul(
			Class("space-y-3 text-sm text-white/80 mb-4"),
			Li(
				Class("flex items-center justify-center sm:justify-start gap-3"),
				Icon("lucide:map-pin", "", "w-5 h-5 flex-shrink-0"),
				Span(g.Text("شاهین شهر")),
			),
			Li(
				Class("flex items-center justify-center sm:justify-start gap-3"),
				Icon("lucide:mail", "", "w-5 h-5 flex-shrink-0"),
				A(Href("mailto:contact@lamassu.studio"), g.Text("contact@lamassu.studio")),
			),
		),
		Div(
			Class("flex items-center gap-4 mt-auto"),
			ExternalLink("https://wa.me/your-number",
				g.Attr("aria-label", "WhatsApp"),
				Class("text-white/80 hover:text-white transition-colors"),
				Icon("simple-icons:whatsapp", "", "w-7 h-7"),
			),
			ExternalLink("https://www.instagram.com/lamassu_studio/",
				g.Attr("aria-label", "Instagram"),
				Class("text-white/80 hover:text-white transition-colors"),
				Icon("simple-icons:instagram", "", "w-7 h-7"),
			),
		),
	)
}

func PageFooter() g.Node {
	return Footer(
		Class("w-full text-white"),
		Style("background: linear-gradient(90deg, #3c145a 0%, #8c1c6f 100%);"),

		Div(
			Class("container mx-auto px-6 sm:px-8 py-6 text-center sm:text-right"),
			Div(
				Class("grid grid-cols-1 sm:grid-cols-2 gap-8"),
				studioColumn(),
				otherPages.render(),
			),

			Div(Class("border-t border-white/10 my-6")),

			Div(
				Class("grid grid-cols-1 sm:grid-cols-2 gap-8"),
				collaborationForms.render(),
				moreLinks.render(),
			),
		),

		Div(
			Class("border-t border-white/10 bg-black/20"),
			Div(
				Class("container mx-auto px-6 sm:px-8 h-12 flex justify-center items-center text-sm"),
				P(Class("text-white/70 text-xs sm:text-sm"), g.Text("کلیه حقوق متعلق به استودیو لامآسو می باشد. © ۱۴۰۳")),
			),
		),
	)
}
