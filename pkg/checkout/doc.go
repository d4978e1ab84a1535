// Package checkout creates hosted payment checkouts and verifies the payment
// provider's webhooks.
//
// Provider is the payment boundary: the site never handles card data, it
// only asks the provider for a hosted checkout URL and redirects the buyer
// there. PaddleProvider implements it on the Paddle Billing API.
//
//	link, err := provider.CreateCheckoutLink(ctx, checkout.Request{
//		PriceID: "pri_01h...",
//		Email:   "buyer@example.com",
//		Plan:    "team",
//	})
//	// redirect to link.URL
package checkout
