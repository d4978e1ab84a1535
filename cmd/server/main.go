// Command server serves the backend of the business card site: the contact
// and sales form, hosted checkout, payment webhooks, health probes and the
// compiled device detection runtime under /assets.
//
// Configuration comes from the environment (and a .env file when present):
//
//	APP_ENV=production APP_NAME=cardkit SUPPORT_INBOX=support@example.com \
//	POSTMARK_SERVER_TOKEN=... CAPTCHA_SECRET_KEY=... PADDLE_API_KEY=... \
//	REDIS_URL=redis://localhost:6379/0 ./server
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}
