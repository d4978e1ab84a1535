// Package sanitizer normalizes free-form user input before it is validated or
// forwarded. Transforms are plain func(string) string values that can be
// chained with Apply or stored with Compose:
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
//	name := clean(req.Name)
package sanitizer
