// Package contact serves the public contact and sales form.
//
// A submission is validated, its captcha token verified, and the request is
// forwarded to the support inbox by email with the visitor as reply-to.
// Submissions are accepted as JSON, urlencoded or multipart forms, or a
// datastar action, and answered in kind: a JSON envelope, a redirect, or a
// toast patch plus a form reset. Each client IP is rate limited.
package contact
