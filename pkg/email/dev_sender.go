package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes messages to a directory instead of sending them.
type DevSender struct {
	dir string
	log *slog.Logger
	now func() time.Time
}

var _ Sender = (*DevSender)(nil)

// NewDevSender writes into dir, creating it on first send.
func NewDevSender(dir string, opts ...Option) *DevSender {
	return &DevSender{dir: dir, log: newOptions(opts).logger, now: time.Now}
}

type devRecord struct {
	Timestamp string `json:"timestamp"`
	Message
	HasText bool `json:"has_text"`
}

// Send writes <timestamp>_<tag or subject>.html and a .json sidecar.
func (d *DevSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	name := msg.Tag
	if name == "" {
		name = msg.Subject
	}
	base := filepath.Join(d.dir, now.Format("2006_01_02_150405.000")+"_"+safeName(name))

	body := msg.HTMLBody
	if body == "" {
		body = "<pre>" + msg.TextBody + "</pre>"
	}
	if err := os.WriteFile(base+".html", []byte(body), 0o644); err != nil {
		return fmt.Errorf("%w: write html: %v", ErrFailedToSendEmail, err)
	}

	meta, err := json.MarshalIndent(devRecord{
		Timestamp: now.Format(time.RFC3339Nano),
		Message:   msg,
		HasText:   msg.TextBody != "",
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(base+".json", meta, 0o644); err != nil {
		return fmt.Errorf("%w: write metadata: %v", ErrFailedToSendEmail, err)
	}

	d.log.InfoContext(ctx, "email written", slog.String("path", base+".html"))
	return nil
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9\-_.]`)

func safeName(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, " ", "_"))
	s = unsafeChars.ReplaceAllString(s, "")
	if len(s) > 80 {
		s = s[:80]
	}
	if s == "" {
		return "email"
	}
	return s
}
