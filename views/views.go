package views

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/cardkit/handler"
)

// ToastContainerID is the element toasts are prepended into.
const ToastContainerID = "toast-container"

func esc(s string) string { return templ.EscapeString(s) }

type writer struct {
	w   io.Writer
	err error
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// ErrorPage is a standalone page for failed full-page requests.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.printf(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		w.printf(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.printf(`<title>%d %s</title></head><body class="error-page">`, p.StatusCode, esc(http.StatusText(p.StatusCode)))
		w.printf(`<main><h1>%d</h1><p>%s</p>`, p.StatusCode, esc(p.Error))
		if p.RetryURL != "" {
			w.printf(`<a href="%s">Try again</a>`, esc(p.RetryURL))
		}
		if p.RequestID != "" {
			w.printf(`<small>Request ID: %s</small>`, esc(p.RequestID))
		}
		w.printf(`</main></body></html>`)
		return w.err
	})
}

// ErrorToast renders an error toast.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return toast(p.Type, p.Message, p.RequestID)
}

// Toast renders a toast of kind "success", "info", "warning" or "error".
func Toast(kind, message string) templ.Component {
	return toast(kind, message, "")
}

func toast(kind, message, requestID string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.printf(`<div class="toast toast-%s" role="status"`, esc(kind))
		if requestID != "" {
			w.printf(` data-request-id="%s"`, esc(requestID))
		}
		w.printf(`>%s</div>`, esc(message))
		return w.err
	})
}

// Render renders c into a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
