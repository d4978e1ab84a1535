package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStarRequestHeader is set by the datastar client on every action.
const DataStarRequestHeader = "Datastar-Request"

// DataStar binds the signals of a datastar action into v using its JSON
// tags. GET requests carry signals in the "datastar" query parameter, other
// methods in the body. Requests without the datastar header get
// ErrNotApplicable.
func DataStar() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get(DataStarRequestHeader) != "true" {
			return ErrNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToReadSignals, err)
		}
		sanitize(v)
		return nil
	}
}
