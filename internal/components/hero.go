package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Service struct {
	Title       string
	Description string
}

var services = []Service{
	{"عکاسی", "ثبت لحظات خاص شما با بالاترین کیفیت"},
	{"فیلمبرداری", "ساخت ویدیوهای حرفه‌ای و جذاب"},
	{"تیزرهای تبلیغاتی", "معرفی برند شما به بهترین شکل"},
	{"تولید محتوا", "خلق محتوای خلاقانه برای شبکه‌های اجتماعی"},
}

func ServiceCard(s Service, delayMS int) g.Node {
	return Div(
		Class("bg-black/40 backdrop-blur-sm p-6 rounded-xl border border-amber-200/30 hover:border-amber-200 hover:bg-black/60 transition-all duration-300 ease-in-out transform hover:-translate-y-2 shadow-lg hover:shadow-amber-200/10 animate-fade-in-up"),
		Style(fmt.Sprintf("animation-delay: %dms;", delayMS)),
		H3(Class("font-display text-2xl text-amber-100 mb-3"), g.Text(s.Title)),
		P(Class("text-amber-50/70 text-base"), g.Text(s.Description)),
	)
}

func Hero() g.Node {
	cards := make([]g.Node, 0, len(services))
	for i, s := range services {
		cards = append(cards, ServiceCard(s, i*100))
	}

	return Main(
		Class("flex-grow flex flex-col items-center justify-center text-center w-full p-6 sm:p-8"),

		Header(
			Class("mb-12 animate-fade-in-down"),
			H1(
				Class("font-display text-6xl md:text-8xl text-amber-50 drop-shadow-lg"),
				g.Text("Lamassu Studio"),
			),
			P(
				Class("mt-4 text-lg md:text-xl text-amber-100/80"),
				g.Text("با لاماسو شروع‌کن، بزرگ فکرکن، دیده شو"),
			),
		),

		Section(
			ID("services"),
			Class("w-full max-w-6xl"),
			Div(
				Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-6 md:gap-8"),
				g.Group(cards),
			),
		),
	)
}
