package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type MenuItem struct {
	Name     string
	Href     string
	External bool
	Dropdown []MenuItem
}

var menuItems = []MenuItem{
	{Name: "خانه", Href: "#top"},
	{Name: "نمونه کارها", Href: "#"},
	{Name: "عکاسی", Href: "#", Dropdown: []MenuItem{
		{Name: "پرتره", Href: "#"},
		{Name: "صنعتی", Href: "#"},
		{Name: "تبلیغاتی", Href: "#"},
	}},
	{Name: "تیزر", Href: "#", Dropdown: []MenuItem{
		{Name: "موشن گرافیک", Href: "#"},
		{Name: "رئال", Href: "#"},
	}},
	{Name: "گرافیک", Href: "#", Dropdown: []MenuItem{
		{Name: "طراحی لوگو", Href: "#"},
		{Name: "هویت بصری", Href: "#"},
	}},
	{Name: "سوشال مدیا", Href: "#", Dropdown: []MenuItem{
		{Name: "مدیریت صفحه", Href: "#"},
		{Name: "تولید محتوا", Href: "#"},
	}},
	{Name: "دوره های آموزشی", Href: "https://www.instagram.com/niloofar_rajabi_/", External: true},
}

func menuLink(item MenuItem, classes string) g.Node {
	if item.External {
		return ExternalLink(item.Href, Class(classes), g.Text(item.Name))
	}
	return A(Href(item.Href), Class(classes), g.Text(item.Name))
}

// desktopDropdown is toggled by menu.js, which also closes it on outside clicks.
func desktopDropdown(item MenuItem) g.Node {
	return Li(
		Class("relative"),
		g.Attr("data-dropdown", ""),
		Button(
			Type("button"),
			Class("flex items-center gap-1 px-4 py-2 text-white hover:text-amber-200 transition-colors duration-300"),
			g.Attr("aria-haspopup", "true"),
			g.Attr("aria-expanded", "false"),
			g.Attr("data-dropdown-toggle", ""),
			g.Text(item.Name),
			Icon("lucide:chevron-down", "", "w-4 h-4 transition-transform duration-300"),
		),
		Ul(
			Class("hidden absolute right-0 mt-2 w-48 bg-black/50 backdrop-blur-md rounded-lg shadow-lg py-2 z-50 animate-fade-in-down"),
			g.Attr("data-dropdown-menu", ""),
			g.Group(g.Map(item.Dropdown, func(sub MenuItem) g.Node {
				return Li(menuLink(sub, "block px-4 py-2 text-white hover:bg-white/10"))
			})),
		),
	)
}

func mobileItem(item MenuItem) g.Node {
	if len(item.Dropdown) == 0 {
		return Li(Class("w-full text-center"), menuLink(item, "block py-2 text-white hover:text-amber-200"))
	}
	return Li(
		Class("w-full text-center"),
		Details(
			Class("group"),
			Summary(
				Class("py-2 text-white cursor-pointer list-none flex items-center justify-center gap-2"),
				g.Text(item.Name),
				Icon("lucide:chevron-down", "", "w-4 h-4 group-open:rotate-180 transition-transform"),
			),
			Ul(
				Class("pt-2"),
				g.Group(g.Map(item.Dropdown, func(sub MenuItem) g.Node {
					return Li(Class("py-1"), menuLink(sub, "text-white/80 hover:text-white"))
				})),
			),
		),
	)
}

func SiteHeader() g.Node {
	return Header(
		ID("top"),
		Class("w-full shadow-lg"),
		Style("background-image: linear-gradient(to left, #46236A 0%, #C71A78 80%, #EB008B 100%);"),

		Div(
			Class("container mx-auto px-6 sm:px-8"),
			Nav(
				Class("flex items-center justify-between h-20"),

				Div(
					Class("flex items-center gap-4"),
					Ul(
						Class("hidden lg:flex items-center gap-2"),
						g.Group(g.Map(menuItems, func(item MenuItem) g.Node {
							if len(item.Dropdown) > 0 {
								return desktopDropdown(item)
							}
							return Li(menuLink(item, "px-4 py-2 text-white hover:text-amber-200 transition-colors duration-300"))
						})),
					),
					Div(
						Class("lg:hidden"),
						Button(
							Type("button"),
							Class("text-white"),
							g.Attr("aria-label", "باز کردن منو"),
							g.Attr("aria-expanded", "false"),
							g.Attr("aria-controls", "mobile-menu"),
							g.Attr("data-menu-toggle", ""),
							Icon("lucide:menu", "", "w-7 h-7"),
						),
					),
				),

				Div(
					Class("flex items-center"),
					A(
						Href("#order-form"),
						g.Attr("aria-label", "حساب کاربری"),
						Class("flex items-center gap-2 text-white hover:text-amber-200 transition-colors duration-300"),
						Span(Class("hidden sm:inline"), g.Text("حساب کاربری")),
						Icon("lucide:user", "", "w-7 h-7"),
					),
				),
			),

			Div(
				ID("mobile-menu"),
				Class("hidden lg:hidden pb-4"),
				Ul(
					Class("flex flex-col items-center gap-4"),
					g.Group(g.Map(menuItems, mobileItem)),
				),
			),

			Div(
				Class("py-16 md:py-24 text-center"),
				H1(
					Class("font-display text-3xl md:text-5xl text-white tracking-wider"),
					g.Text("ویدیوگرافی | تیزرتبلیغاتی | تولیدمحتوا | عکاسی"),
				),
			),
		),
	)
}
