package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/lamassu-studio/website/internal/keygate"
	"github.com/lamassu-studio/website/internal/order"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestPage_ViewDispatch(t *testing.T) {
	tests := []struct {
		view    keygate.View
		want    string
		notWant []string
	}{
		{keygate.ViewLoading, `id="gate-loading"`, []string{`id="gate-key-prompt"`, `id="gate-ready"`}},
		{keygate.ViewNeedsKey, `id="gate-key-prompt"`, []string{`id="gate-loading"`, `id="gate-ready"`}},
		{keygate.ViewReady, `id="gate-ready"`, []string{`id="gate-loading"`, `id="gate-key-prompt"`}},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			html := render(t, Page(GatePage{View: tt.view}))
			assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
			assert.Contains(t, html, `dir="rtl"`)
			assert.Contains(t, html, tt.want)
			for _, s := range tt.notWant {
				assert.NotContains(t, html, s)
			}
		})
	}
}

func TestPage_LoadingRefreshes(t *testing.T) {
	assert.Contains(t, render(t, Page(GatePage{View: keygate.ViewLoading})), `http-equiv="refresh"`)
	assert.NotContains(t, render(t, Page(GatePage{View: keygate.ViewReady})), `http-equiv="refresh"`)
}

func TestKeyPrompt(t *testing.T) {
	html := render(t, KeyPrompt(""))
	assert.Contains(t, html, `action="/key/select"`)
	assert.Contains(t, html, `name="api_key"`)
	assert.Equal(t, 1, strings.Count(html, `type="submit"`), "prompt has a single call to action")
	assert.NotContains(t, html, `role="status"`)

	withNotice := render(t, KeyPrompt("not available"))
	assert.Contains(t, withNotice, "not available")
	assert.Contains(t, withNotice, `role="status"`)
}

func TestMainContent_Sections(t *testing.T) {
	html := render(t, MainContent(OrderFormState{}))

	for _, id := range []string{`id="top"`, `id="services"`, `id="about"`, `id="order-form"`} {
		assert.Contains(t, html, id)
	}
	for _, s := range services {
		assert.Contains(t, html, s.Title)
	}
	assert.Contains(t, html, "contact@lamassu.studio")
	assert.Contains(t, html, `rel="noopener noreferrer"`)
}

func TestOrderForm_State(t *testing.T) {
	t.Run("errors and sticky values", func(t *testing.T) {
		html := render(t, OrderForm(OrderFormState{
			Values: order.Request{Name: "Sara", Package: "teaser"},
			Errors: map[string]string{"phone": "شماره همراه معتبر نیست"},
		}))

		assert.Contains(t, html, `value="Sara"`)
		assert.Contains(t, html, `<option value="teaser" selected>`)
		assert.Contains(t, html, `id="error-phone"`)
		assert.Contains(t, html, `aria-invalid="true"`)
		assert.NotContains(t, html, `id="error-name"`)
	})

	t.Run("submitted", func(t *testing.T) {
		html := render(t, OrderForm(OrderFormState{Submitted: true}))
		assert.Contains(t, html, "سفارش شما ثبت شد")
	})

	t.Run("escapes user input", func(t *testing.T) {
		html := render(t, OrderForm(OrderFormState{Values: order.Request{Description: "<script>alert(1)</script>"}}))
		assert.NotContains(t, html, "<script>alert(1)</script>")
	})
}

func TestSiteHeader_Dropdowns(t *testing.T) {
	html := render(t, SiteHeader())
	assert.Equal(t, 4, strings.Count(html, "data-dropdown-toggle"))
	assert.Contains(t, html, "data-menu-toggle")
	assert.Contains(t, html, `id="mobile-menu"`)
}
