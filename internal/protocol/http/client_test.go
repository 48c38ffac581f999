package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpar/yarc/internal/core"
)

func newRequest(spec core.Spec) *core.Request {
	return core.NewRequestFromSpec("request.yaml", spec)
}

func TestNewClient(t *testing.T) {
	t.Run("creates client with defaults", func(t *testing.T) {
		client := NewClient()
		assert.NotNil(t, client)
		assert.Equal(t, "http", client.Protocol())
		assert.Equal(t, 30*time.Second, client.Config().Timeout)
		assert.True(t, client.Config().FollowRedirect)
	})

	t.Run("creates client with custom timeout", func(t *testing.T) {
		client := NewClient(WithTimeout(5 * time.Second))
		assert.Equal(t, 5*time.Second, client.Config().Timeout)
	})

	t.Run("creates client without redirects", func(t *testing.T) {
		client := NewClient(WithNoRedirects())
		assert.False(t, client.Config().FollowRedirect)
	})
}

func TestClient_Send_GET(t *testing.T) {
	t.Run("sends GET request and receives response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/users", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{"name": "John"})
		}))
		defer server.Close()

		client := NewClient()
		resp, err := client.Send(context.Background(), newRequest(core.Spec{URL: server.URL + "/users"}))

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, resp.Headers, core.Pair{Key: "Content-Type", Value: "application/json"})
		assert.JSONEq(t, `{"name":"John"}`, string(resp.Body))
	})

	t.Run("sends headers from the header table", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, "abc", r.Header.Get("X-Trace"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		req := newRequest(core.Spec{
			URL:     server.URL,
			Headers: []core.Pair{{Key: "Accept", Value: "application/json"}, {Key: "X-Trace", Value: "abc"}},
		})
		resp, err := NewClient().Send(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("adds a scheme when the address has none", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		addr := server.URL[len("http://"):]
		resp, err := NewClient().Send(context.Background(), newRequest(core.Spec{URL: addr}))

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}

func TestClient_Send_Auth(t *testing.T) {
	t.Run("basic auth", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "alice", user)
			assert.Equal(t, "secret", pass)
		}))
		defer server.Close()

		req := newRequest(core.Spec{
			URL:        server.URL,
			AuthFormat: core.AuthBasic,
			Username:   "alice",
			Password:   "secret",
		})
		_, err := NewClient().Send(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("bearer token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		}))
		defer server.Close()

		req := newRequest(core.Spec{URL: server.URL, AuthFormat: core.AuthBearer, Token: "token123"})
		_, err := NewClient().Send(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("no auth leaves the header unset", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
		}))
		defer server.Close()

		req := newRequest(core.Spec{URL: server.URL, Username: "ignored"})
		_, err := NewClient().Send(context.Background(), req)
		require.NoError(t, err)
	})
}

func TestClient_Send_Body(t *testing.T) {
	fields := []core.Pair{{Key: "name", Value: "John Doe"}, {Key: "role", Value: "admin"}}

	t.Run("form body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "John Doe", r.PostForm.Get("name"))
			assert.Equal(t, "admin", r.PostForm.Get("role"))
		}))
		defer server.Close()

		req := newRequest(core.Spec{Method: "POST", URL: server.URL, BodyFormat: core.BodyForm, BodyFields: fields})
		_, err := NewClient().Send(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("json body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name":"John Doe","role":"admin"}`, string(body))
		}))
		defer server.Close()

		req := newRequest(core.Spec{Method: "PUT", URL: server.URL, BodyFormat: core.BodyJSON, BodyFields: fields})
		_, err := NewClient().Send(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("raw body keeps an explicit content type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/xml", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "<a>\n</a>", string(body))
		}))
		defer server.Close()

		req := newRequest(core.Spec{
			Method:     "POST",
			URL:        server.URL,
			Headers:    []core.Pair{{Key: "content-type", Value: "application/xml"}},
			BodyFormat: core.BodyRaw,
			RawBody:    "<a>\n</a>",
		})
		_, err := NewClient().Send(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("empty form sends no body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.Empty(t, body)
		}))
		defer server.Close()

		_, err := NewClient().Send(context.Background(), newRequest(core.Spec{Method: "POST", URL: server.URL}))
		require.NoError(t, err)
	})
}

func TestClient_Send_Errors(t *testing.T) {
	t.Run("empty address", func(t *testing.T) {
		_, err := NewClient().Send(context.Background(), newRequest(core.Spec{}))
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewClient().Send(ctx, newRequest(core.Spec{URL: server.URL}))
		assert.Error(t, err)
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient(WithTimeout(20 * time.Millisecond))
		_, err := client.Send(context.Background(), newRequest(core.Spec{URL: server.URL}))
		assert.Error(t, err)
	})
}

func TestClient_Redirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	t.Run("follows by default", func(t *testing.T) {
		resp, err := NewClient().Send(context.Background(), newRequest(core.Spec{URL: server.URL + "/old"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("stops when disabled", func(t *testing.T) {
		resp, err := NewClient(WithNoRedirects()).Send(context.Background(), newRequest(core.Spec{URL: server.URL + "/old"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
	})
}

func TestClient_CookiesPersist(t *testing.T) {
	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			seen = c.Value
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s1", Path: "/"})
	}))
	defer server.Close()

	client := NewClient()
	_, err := client.Send(context.Background(), newRequest(core.Spec{URL: server.URL}))
	require.NoError(t, err)
	_, err = client.Send(context.Background(), newRequest(core.Spec{URL: server.URL}))
	require.NoError(t, err)

	assert.Equal(t, "s1", seen)
}
