// Package views holds the server-rendered HTML fragments: the error page,
// toasts patched into datastar pages, and the contact notification email.
package views
