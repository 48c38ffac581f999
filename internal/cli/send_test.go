package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRequestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand("test")
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSendCommand(t *testing.T) {
	t.Run("sends the request file", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("created"))
		}))
		defer server.Close()

		path := writeRequestFile(t, "method: POST\nurl: "+server.URL+"\nbody:\n  format: json\n  fields:\n    - key: name\n      value: test\n")

		output, err := runRoot(t, "send", "-f", path, "--history", "")

		require.NoError(t, err)
		assert.Contains(t, output, "201 Created")
		assert.Contains(t, output, "created")
	})

	t.Run("outputs JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "yes")
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		path := writeRequestFile(t, "url: "+server.URL+"\n")

		output, err := runRoot(t, "send", "-f", path, "--history", "", "--json")
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		assert.Equal(t, float64(200), result["status"])
		assert.Equal(t, "ok", result["body"])
		headers := result["headers"].(map[string]any)
		assert.Equal(t, []any{"yes"}, headers["X-Test"])
	})

	t.Run("records history", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()

		path := writeRequestFile(t, "url: "+server.URL+"\n")
		dbPath := filepath.Join(t.TempDir(), "history.db")

		_, err := runRoot(t, "send", "-f", path, "--history", dbPath)
		require.NoError(t, err)

		output, err := runRoot(t, "history", "--history", dbPath)
		require.NoError(t, err)
		assert.Contains(t, output, "GET")
		assert.Contains(t, output, server.URL)
	})

	t.Run("missing request file", func(t *testing.T) {
		_, err := runRoot(t, "send", "-f", filepath.Join(t.TempDir(), "none.yaml"), "--history", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no request file")
	})

	t.Run("connection failure", func(t *testing.T) {
		path := writeRequestFile(t, "url: http://127.0.0.1:1\n")
		_, err := runRoot(t, "send", "-f", path, "--history", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "request failed")
	})
}
