package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequest(t *testing.T) {
	t.Run("starts empty with GET", func(t *testing.T) {
		req := NewRequest("req.yaml")
		assert.Equal(t, "req.yaml", req.Path())
		assert.Equal(t, "GET", req.Method())
		assert.Empty(t, req.Address())
		assert.Empty(t, req.Headers())
		assert.Equal(t, 1, req.HeaderTable().Len())
		assert.Equal(t, 1, req.BodyTable().Len())
		assert.Equal(t, BodyForm, req.BodyFormat())
		assert.Equal(t, AuthNone, req.Auth().Format)
	})

	t.Run("populates from spec", func(t *testing.T) {
		req := NewRequestFromSpec("x.yaml", Spec{
			Method:     "post",
			URL:        "https://example.com",
			AuthFormat: AuthBearer,
			Token:      "abc",
			Headers:    []Pair{{"Accept", "application/json"}},
			BodyFormat: BodyRaw,
			RawBody:    "{\n}",
		})
		assert.Equal(t, "POST", req.Method())
		assert.Equal(t, "https://example.com", req.Address())
		assert.Equal(t, "abc", req.Auth().Token.Value())
		assert.Equal(t, []Pair{{"Accept", "application/json"}}, req.Headers())
		assert.Equal(t, BodyRaw, req.BodyFormat())
		assert.Equal(t, 2, req.RawBodyField().LineCount())
	})

	t.Run("spec round trips", func(t *testing.T) {
		spec := Spec{
			Method:     "PUT",
			URL:        "http://localhost:8080/items/1",
			AuthFormat: AuthBasic,
			Username:   "me",
			Password:   "secret",
			Headers:    []Pair{{"X-A", "1"}},
			BodyFormat: BodyJSON,
			BodyFields: []Pair{{"name", "thing"}},
		}
		assert.Equal(t, spec, NewRequestFromSpec("", spec).Spec())
	})
}

func TestRequest_Methods(t *testing.T) {
	req := NewRequest("")
	req.PrevMethod()
	assert.Equal(t, "OPTIONS", req.Method())
	req.NextMethod()
	assert.Equal(t, "GET", req.Method())
	req.NextMethod()
	assert.Equal(t, "HEAD", req.Method())
}

func TestRequest_SetResult(t *testing.T) {
	req := NewRequest("")
	req.SetResult("HTTP 200 OK\n\nbody")
	assert.Equal(t, 3, req.Result().LineCount())
	col, row := req.Result().Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}

func TestFormats(t *testing.T) {
	t.Run("auth formats cycle", func(t *testing.T) {
		assert.Equal(t, AuthBasic, AuthNone.Next())
		assert.Equal(t, AuthNone, AuthBearer.Next())
		assert.Equal(t, AuthBearer, AuthNone.Prev())
		assert.Equal(t, "Bearer", AuthBearer.String())
	})

	t.Run("body formats cycle", func(t *testing.T) {
		assert.Equal(t, BodyJSON, BodyForm.Next())
		assert.Equal(t, BodyForm, BodyRaw.Next())
		assert.Equal(t, BodyRaw, BodyForm.Prev())
	})

	t.Run("parse is forgiving", func(t *testing.T) {
		assert.Equal(t, AuthBasic, ParseAuthFormat(" Basic "))
		assert.Equal(t, AuthNone, ParseAuthFormat("digest"))
		assert.Equal(t, BodyJSON, ParseBodyFormat("JSON"))
		assert.Equal(t, BodyForm, ParseBodyFormat(""))
	})
}
