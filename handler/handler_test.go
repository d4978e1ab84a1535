package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardkit/handler"
	"github.com/dmitrymomot/cardkit/pkg/binder"
	"github.com/dmitrymomot/cardkit/pkg/validator"
)

type greetRequest struct {
	Name string `json:"name" form:"name"`
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func greet(_ handler.Context, req greetRequest) handler.Response {
	if req.Name == "" {
		v := handler.NewValidationError()
		v.Add("name", "is required")
		return handler.JSONError(v)
	}
	return handler.JSON(map[string]string{"greeting": "hello " + req.Name})
}

func decode(t *testing.T, body io.Reader) handler.JSONResponse {
	t.Helper()
	var resp handler.JSONResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestWrapBinders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(greet, handler.WithBinders[handler.Context, greetRequest](binder.JSON(), binder.Form()))

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ann"}`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w.Body)
		assert.Equal(t, map[string]any{"greeting": "hello Ann"}, resp.Data)
	})

	t.Run("form skips json binder", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=Bob"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		h(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "hello Bob")
	})

	t.Run("no applicable binder", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", nil)
		w := httptest.NewRecorder()
		h(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decode(t, w.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "validation_error", resp.Error.Code)
		assert.Equal(t, []string{"is required"}, resp.Error.Details["name"])
	})

	t.Run("binder failure is a bad request", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWrapNilResponseAndDecorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, greetRequest] {
		return func(next handler.HandlerFunc[handler.Context, greetRequest]) handler.HandlerFunc[handler.Context, greetRequest] {
			return func(ctx handler.Context, req greetRequest) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	var got error
	h := handler.Wrap(
		func(handler.Context, greetRequest) handler.Response { return nil },
		handler.WithDecorators(mark("outer"), mark("inner")),
		handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.ErrorIs(t, got, handler.ErrNilResponse)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"http error", handler.ErrTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
		{"wrapped http error", errors.Join(errors.New("boom"), handler.ErrBadGateway), http.StatusBadGateway, "bad_gateway"},
		{"plain error hides message", errors.New("db password leaked"), http.StatusInternalServerError, "internal_server_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

			assert.Equal(t, tt.status, w.Code)
			resp := decode(t, w.Body)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotContains(t, w.Body.String(), "password")
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	v := handler.NewValidationError()
	assert.NoError(t, v.OrNil())

	v.Add("email", "is invalid")
	v.Add("name", "is required")
	v.Add("name", "is too short")

	assert.True(t, v.Has("name"))
	assert.Equal(t, "is required", v.Get("name"))
	assert.Equal(t, "validation error: email: is invalid, name: is required", v.Error())
	assert.Error(t, v.OrNil())
}

func TestFromValidator(t *testing.T) {
	t.Parallel()

	assert.NoError(t, handler.FromValidator(nil))

	plain := errors.New("boom")
	assert.Same(t, plain, handler.FromValidator(plain))

	err := handler.FromValidator(validator.Apply(
		validator.Required("name", ""),
		validator.ValidEmail("email", "nope"),
	))
	var v handler.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "is required", v.Get("name"))
	assert.Equal(t, "must be a valid email address", v.Get("email"))
}

func TestTemplAndRedirect(t *testing.T) {
	t.Parallel()

	t.Run("html", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, handler.TemplStatus(http.StatusNotFound, text("<p>gone</p>")).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>gone</p>", w.Body.String())
	})

	t.Run("datastar", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set(binder.DataStarRequestHeader, "true")
		w := httptest.NewRecorder()

		resp := handler.TemplWithSignals(map[string]any{"sent": true},
			handler.Patch(text(`<div id="toast">ok</div>`), handler.WithTarget("#toasts"), handler.WithPatchMode(handler.PatchAppend)),
		)
		require.NoError(t, resp.Render(w, r))

		body := w.Body.String()
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#toasts")
		assert.Contains(t, body, `<div id="toast">ok</div>`)
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"sent":true`)
	})

	t.Run("redirect", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, handler.Redirect("https://pay.example.com/c/1").Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "https://pay.example.com/c/1", w.Header().Get("Location"))
	})

	t.Run("datastar redirect", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set(binder.DataStarRequestHeader, "true")
		w := httptest.NewRecorder()
		require.NoError(t, handler.Redirect("/thanks").Render(w, r))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/thanks")
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	eh := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return text("page:" + p.Error)
		},
		ErrorToast: func(p handler.ErrorToastParams) templ.Component {
			return text("toast:" + p.Type + ":" + p.Message)
		},
	})

	run := func(r *http.Request, err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, r), err)
		return w
	}

	t.Run("page", func(t *testing.T) {
		t.Parallel()

		w := run(httptest.NewRequest(http.MethodGet, "/missing", nil), handler.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "page:not_found", w.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept", "application/json")
		w := run(r, handler.ErrTooManyRequests)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "too_many_requests", decode(t, w.Body).Error.Code)
	})

	t.Run("toast", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.Header.Set(binder.DataStarRequestHeader, "true")
		w := run(r, errors.New("boom"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "toast:error:An error occurred processing your request")
		assert.Contains(t, w.Body.String(), "#toast-container")
	})

	t.Run("plain text without components", func(t *testing.T) {
		t.Parallel()

		plain := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{})
		w := httptest.NewRecorder()
		plain(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrForbidden)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "forbidden")
	})
}
