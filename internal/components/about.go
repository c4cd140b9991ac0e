package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func About() g.Node {
	paragraphs := []string{
		"استودیو لاماسو، با مدیریت نیلوفر رجبی، با هدف خلق آثاری بی‌نظیر و ماندگار در زمینه عکاسی و فیلم‌سازی تاسیس شد.",
		"ما باور داریم که هر برند و هر فردی داستانی برای گفتن دارد و وظیفه ما به تصویر کشیدن این داستان‌ها با خلاقیت و هنر است. تیم ما با استفاده از جدیدترین تجهیزات و نگاهی هنرمندانه، به شما کمک می‌کند تا بهترین وجه خود را به نمایش بگذارید و در دنیای پررقابت امروز، متمایز باشید.",
	}

	return Section(
		ID("about"),
		Class("relative w-full py-20 md:py-28 overflow-hidden"),
		Style("background: "+brandPlum+";"),
		Div(
			Class("relative z-10 container mx-auto px-6 sm:px-8 text-center animate-fade-in-up"),
			H2(Class("font-display text-4xl md:text-5xl text-amber-50 mb-6"), g.Text("درباره ما")),
			Div(
				Class("max-w-2xl mx-auto space-y-4"),
				g.Group(g.Map(paragraphs, func(p string) g.Node {
					return P(Class("text-white/80 text-lg leading-relaxed"), g.Text(p))
				})),
			),
		),
	)
}
