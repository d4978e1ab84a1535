// Package binder decodes HTTP requests into Go structs.
//
// Each binder handles one request encoding and returns ErrNotApplicable when
// the request is not in that encoding, so several binders can be chained and
// the first applicable one wins:
//
//	handler.Wrap(submit, handler.WithBinders[handler.Context, Request](
//		binder.DataStar(),
//		binder.JSON(),
//		binder.Form(),
//	))
//
// JSON decodes strictly (unknown fields and trailing data are errors) with a
// size limit. Form reads `form:"name"` tags from urlencoded and multipart
// bodies. DataStar reads the signals a datastar frontend sends with every
// action. String fields are trimmed and stripped of NUL bytes after binding.
package binder
