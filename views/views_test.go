package views_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardkit/handler"
	"github.com/dmitrymomot/cardkit/views"
)

func TestErrorPage(t *testing.T) {
	t.Parallel()

	html, err := views.Render(context.Background(), views.ErrorPage(handler.ErrorPageParams{
		Error:      "<script>x</script>",
		StatusCode: 404,
		RequestID:  "req-1",
		RetryURL:   "/pricing",
	}))
	require.NoError(t, err)
	assert.Contains(t, html, "<title>404 Not Found</title>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `href="/pricing"`)
	assert.Contains(t, html, "req-1")
}

func TestToasts(t *testing.T) {
	t.Parallel()

	html, err := views.Render(context.Background(), views.ErrorToast(handler.ErrorToastParams{
		Message: "too_many_requests", Type: "warning", RequestID: "r",
	}))
	require.NoError(t, err)
	assert.Equal(t, `<div class="toast toast-warning" role="status" data-request-id="r">too_many_requests</div>`, html)

	html, err = views.Render(context.Background(), views.Toast("success", "Thanks & bye"))
	require.NoError(t, err)
	assert.Equal(t, `<div class="toast toast-success" role="status">Thanks &amp; bye</div>`, html)
}

func TestContactEmail(t *testing.T) {
	t.Parallel()

	html, err := views.Render(context.Background(), views.ContactEmail(views.ContactEmailParams{
		Topic:   "sales",
		Name:    "Ann <Admin>",
		Email:   "ann@example.com",
		Message: "line one\nline two",
	}))
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>New sales request</h2>")
	assert.Contains(t, html, "Ann &lt;Admin&gt;")
	assert.Contains(t, html, "<p>line one</p><p>line two</p>")
	assert.NotContains(t, html, "Company")
}
