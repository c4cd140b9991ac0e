package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lamassu-studio/website/internal/keygate"
)

// GatePage holds everything a gated page render needs.
type GatePage struct {
	View   keygate.View
	Notice string
	Order  OrderFormState
}

// Page renders the screen for the gate's view.
func Page(p GatePage) g.Node {
	switch p.View {
	case keygate.ViewReady:
		return Layout(PageConfig{}, MainContent(p.Order))
	case keygate.ViewNeedsKey:
		return Layout(PageConfig{}, KeyPrompt(p.Notice))
	default:
		return Layout(PageConfig{RefreshSeconds: 1}, LoadingScreen())
	}
}

func LoadingScreen() g.Node {
	return Div(
		ID("gate-loading"),
		Class("fixed inset-0 flex items-center justify-center"),
		patternBackground(false),
		Div(
			Class("text-white font-display text-3xl animate-pulse"),
			g.Attr("role", "status"),
			g.Text("در حال بارگذاری..."),
		),
	)
}

func KeyPrompt(notice string) g.Node {
	return Div(
		ID("gate-key-prompt"),
		Class("fixed inset-0 bg-black/70 backdrop-blur-sm z-50 flex items-center justify-center p-4"),
		Style("background-color: "+brandPurple+";"),
		Div(
			Class("w-full max-w-md border border-amber-200/30 rounded-2xl shadow-2xl p-8 text-center animate-fade-in-down space-y-4"),
			Style("background-color: "+brandPlum+"; background-image: url('/static/images/pattern.svg'); background-size: cover; background-position: center;"),

			H2(Class("font-display text-3xl text-amber-50"), g.Text("به استودیو لاماسو خوش آمدید")),
			P(Class("text-white/80"), g.Text("برای استفاده از قابلیت‌های هوش مصنوعی جمینای، لطفا کلید API خود را انتخاب کنید.")),

			g.If(notice != "", Notice("warning", notice)),

			Form(
				Method("POST"),
				Action("/key/select"),
				Class("space-y-4"),
				Input(
					Type("password"),
					Name("api_key"),
					Placeholder("کلید API جمینای"),
					AutoComplete("off"),
					g.Attr("dir", "ltr"),
					Class("w-full px-4 py-3 bg-white/10 border border-white/20 rounded-full text-white placeholder-white/50 focus:outline-none focus:ring-2 focus:ring-purple-500"),
				),
				Button(
					Type("submit"),
					g.Attr("aria-label", "Select Gemini API Key"),
					Class("w-full bg-purple-600 hover:bg-purple-700 text-white font-bold py-3 px-6 rounded-full transition-all duration-300 ease-in-out transform hover:scale-105 shadow-lg focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-purple-500"),
					g.Text("انتخاب کلید API جمینای"),
				),
			),

			P(
				Class("text-xs text-white/60"),
				g.Text("با ادامه، شما با شرایط استفاده موافقت می‌کنید. برای اطلاعات بیشتر در مورد هزینه‌ها، به "),
				ExternalLink("https://ai.google.dev/gemini-api/docs/billing", Class("underline hover:text-white"), g.Text("مستندات پرداخت")),
				g.Text(" مراجعه کنید."),
			),
		),
	)
}

func MainContent(order OrderFormState) g.Node {
	return Div(
		ID("gate-ready"),
		Class("relative min-h-screen w-full"),
		patternBackground(true),

		Div(Class("absolute inset-0 bg-black/50 z-10")),

		Div(
			Class("relative z-20 flex flex-col min-h-screen text-white"),
			SiteHeader(),
			Hero(),
			About(),
			OrderForm(order),
			PageFooter(),
		),
	)
}
