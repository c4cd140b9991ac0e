package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lamassu-studio/website/internal/order"
)

// OrderFormState carries what the form shows after a submission.
type OrderFormState struct {
	Values    order.Request
	Errors    map[string]string
	Notice    string
	Submitted bool
}

const (
	fieldClass = "w-full pl-4 pr-12 py-3 bg-gray-100 rounded-full focus:outline-none focus:ring-2 focus:ring-purple-500 transition-shadow text-gray-700"
	fieldIcon  = "absolute inset-y-0 right-0 flex items-center pr-4 text-gray-400 pointer-events-none"
)

func fieldError(errs map[string]string, field string) g.Node {
	msg, ok := errs[field]
	if !ok {
		return nil
	}
	return P(Class("mt-1 pr-4 text-sm text-rose-600"), ID("error-"+field), g.Text(msg))
}

func invalidAttr(errs map[string]string, field string) g.Node {
	if _, ok := errs[field]; !ok {
		return nil
	}
	return g.Group([]g.Node{
		g.Attr("aria-invalid", "true"),
		g.Attr("aria-describedby", "error-"+field),
	})
}

func OrderForm(state OrderFormState) g.Node {
	v := state.Values

	return Section(
		ID("order-form"),
		Class("relative w-full py-20 md:py-28 overflow-hidden"),
		Style("background-color: "+brandPurple+";"),

		Div(
			Class("relative z-10 container mx-auto px-6 sm:px-8"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12 lg:gap-16 items-center"),

				Div(
					Class("text-center lg:text-right animate-fade-in-down"),
					H2(Class("font-display text-4xl md:text-5xl text-white mb-4"), g.Text("همین حالا سفارش خود را ثبت کنید.")),
					P(Class("text-white/80 text-lg"), g.Text("ما در کمترین زمان ممکن با شما تماس خواهیم گرفت.")),
				),

				Div(
					Class("bg-white rounded-2xl p-8 shadow-2xl animate-fade-in-up space-y-6"),
					g.If(state.Submitted, Notice("success", "سفارش شما ثبت شد. به زودی با شما تماس می‌گیریم.")),
					g.If(state.Notice != "", Notice("warning", state.Notice)),

					Form(
						Method("POST"),
						Action("/order#order-form"),
						Class("space-y-6"),
						g.Attr("novalidate", ""),

						Div(
							Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
							Div(
								Div(
									Class("relative"),
									Input(Type("text"), Name("name"), Value(v.Name), Placeholder("نام و نام خانوادگی"),
										AutoComplete("name"), Required(), Class(fieldClass), invalidAttr(state.Errors, "name")),
									Span(Class(fieldIcon), Icon("lucide:user", "", "")),
								),
								fieldError(state.Errors, "name"),
							),
							Div(
								Div(
									Class("relative"),
									Input(Type("tel"), Name("phone"), Value(v.Phone), Placeholder("شماره همراه"),
										AutoComplete("tel"), Required(), Class(fieldClass), invalidAttr(state.Errors, "phone")),
									Span(Class(fieldIcon), Icon("lucide:phone", "", "")),
								),
								fieldError(state.Errors, "phone"),
							),
						),

						Div(
							Div(
								Class("relative"),
								Select(
									Name("package"),
									Class(fieldClass+" appearance-none cursor-pointer"),
									invalidAttr(state.Errors, "package"),
									Option(Value(""), g.Text("انتخاب پکیج")),
									g.Group(g.Map(order.Packages, func(p order.Package) g.Node {
										return Option(Value(p.Value), g.If(p.Value == v.Package, Selected()), g.Text(p.Label))
									})),
								),
								Span(Class(fieldIcon), Icon("lucide:list", "", "")),
								Span(Class("absolute inset-y-0 left-0 flex items-center pl-4 text-gray-400 pointer-events-none"), Icon("lucide:chevron-down", "", "")),
							),
							fieldError(state.Errors, "package"),
						),

						Div(
							Div(
								Class("relative"),
								Textarea(Name("description"), Placeholder("توضیحات سفارش"), g.Attr("rows", "4"),
									Class("w-full pl-4 pr-12 py-3 bg-gray-100 rounded-2xl focus:outline-none focus:ring-2 focus:ring-purple-500 transition-shadow resize-none text-gray-700"),
									invalidAttr(state.Errors, "description"),
									g.Text(v.Description),
								),
								Span(Class("absolute top-3 right-0 flex items-center pr-4 text-gray-400"), Icon("lucide:pencil", "", "")),
							),
							fieldError(state.Errors, "description"),
						),

						Div(
							Class("flex justify-end items-center pt-2"),
							Span(Class("text-gray-600 mr-4 font-semibold"), g.Text("ارسال پیام")),
							Button(
								Type("submit"),
								g.Attr("aria-label", "ارسال پیام"),
								Class("w-14 h-14 bg-purple-600 hover:bg-purple-700 rounded-full text-white flex items-center justify-center transition-transform transform hover:scale-110 shadow-lg focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-purple-500"),
								Icon("lucide:arrow-left", "", "w-6 h-6"),
							),
						),
					),
				),
			),
		),
	)
}
