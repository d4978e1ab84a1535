package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ContactEmailParams is a submitted contact or sales request.
type ContactEmailParams struct {
	Topic     string
	Name      string
	Email     string
	Company   string
	Message   string
	RequestID string
}

// ContactEmail is the notification sent to the support inbox.
func ContactEmail(p ContactEmailParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.printf(`<h2>New %s request</h2><table>`, esc(p.Topic))
		row := func(label, value string) {
			if value != "" {
				w.printf(`<tr><th align="left">%s</th><td>%s</td></tr>`, label, esc(value))
			}
		}
		row("Name", p.Name)
		row("Email", p.Email)
		row("Company", p.Company)
		row("Request ID", p.RequestID)
		w.printf(`</table>`)
		for _, para := range strings.Split(p.Message, "\n") {
			w.printf(`<p>%s</p>`, esc(para))
		}
		return w.err
	})
}
