// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value decoded by the
// configured binders and returns a Response. Wrap turns it into an
// http.HandlerFunc:
//
//	submit := func(ctx handler.Context, req Request) handler.Response {
//		if err := req.Validate(); err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(result)
//	}
//
//	r.Post("/contact", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, Request](binder.DataStar(), binder.JSON(), binder.Form()),
//		handler.WithErrorHandler[handler.Context, Request](errorHandler),
//	))
//
// Responses are datastar aware: Templ and Redirect answer a datastar action
// with server-sent events and a plain request with HTML or an HTTP redirect.
// NewErrorHandler picks between a JSON envelope, an error page and a toast
// patch depending on the request.
package handler
