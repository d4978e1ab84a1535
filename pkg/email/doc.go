// Package email delivers transactional messages.
//
// Sender is the delivery boundary. PostmarkSender sends through the Postmark
// API; DevSender writes each message to a directory as an HTML file with a
// JSON sidecar so development needs no mail account. NewFromConfig picks
// Postmark when a server token is configured and DevSender otherwise.
//
//	sender, err := email.NewFromConfig(cfg.Email, email.WithLogger(log))
//	err = sender.Send(ctx, email.Message{
//		To:       "support@example.com",
//		ReplyTo:  visitor,
//		Subject:  "New contact request",
//		HTMLBody: body,
//		Tag:      "contact",
//	})
package email
