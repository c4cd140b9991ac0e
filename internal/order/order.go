// Package order validates submissions from the site's order form.
package order

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Package is a service the studio takes orders for
type Package struct {
	Value string
	Label string
}

// Packages lists the options offered in the order form, in display order.
var Packages = []Package{
	{"photography", "عکاسی"},
	{"videography", "فیلمبرداری"},
	{"teaser", "تیزر تبلیغاتی"},
	{"content", "تولید محتوا"},
}

const (
	maxNameLen        = 100
	maxDescriptionLen = 2000
)

// Iranian mobile numbers after normalizePhone, with an optional +98/0098 prefix
var phonePattern = regexp.MustCompile(`^(?:\+98|0098|0)?9\d{9}$`)

// Request is a submitted order
type Request struct {
	Name        string
	Phone       string
	Package     string
	Description string
}

// FromForm reads an order from form values
func FromForm(v url.Values) Request {
	return Request{
		Name:        strings.TrimSpace(v.Get("name")),
		Phone:       normalizePhone(v.Get("phone")),
		Package:     strings.TrimSpace(v.Get("package")),
		Description: strings.TrimSpace(v.Get("description")),
	}
}

// Validate returns a message per invalid field, or nil when the order is valid
func (r Request) Validate() map[string]string {
	errs := map[string]string{}

	switch n := utf8.RuneCountInString(r.Name); {
	case n == 0:
		errs["name"] = "نام و نام خانوادگی را وارد کنید"
	case n > maxNameLen:
		errs["name"] = "نام بیش از حد طولانی است"
	}

	if !phonePattern.MatchString(r.Phone) {
		errs["phone"] = "شماره همراه معتبر نیست"
	}

	if _, ok := PackageLabel(r.Package); !ok {
		errs["package"] = "یک پکیج را انتخاب کنید"
	}

	if utf8.RuneCountInString(r.Description) > maxDescriptionLen {
		errs["description"] = "توضیحات بیش از حد طولانی است"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// PackageLabel returns the display label for a package value
func PackageLabel(value string) (string, bool) {
	for _, p := range Packages {
		if p.Value == value {
			return p.Label, true
		}
	}
	return "", false
}

var persianDigits = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

func normalizePhone(s string) string {
	s = persianDigits.Replace(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
