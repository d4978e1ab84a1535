// Package billing starts hosted checkouts for the pricing page and receives
// the payment provider's webhooks.
//
// POST /checkout creates a checkout link and answers JSON clients with the
// link, datastar actions with a client-side redirect and plain form posts
// with 303 See Other. POST /webhook verifies and logs provider events.
package billing
