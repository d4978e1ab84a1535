// Package validator checks request fields with composable rules.
//
//	err := validator.Apply(
//		validator.Required("email", req.Email),
//		validator.ValidEmail("email", req.Email),
//		validator.MaxLen("name", req.Name, 100),
//	)
//
// Apply runs every rule and returns ValidationErrors listing each failure in
// rule order, or nil. Use When to run rules only for optional fields that are
// present.
package validator
