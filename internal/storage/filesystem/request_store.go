package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/artpar/yarc/internal/core"
)

// ErrNotFound is returned when a request file does not exist.
var ErrNotFound = errors.New("request file not found")

// RequestStore reads and writes request files as YAML.
type RequestStore struct{}

// NewRequestStore creates a request store.
func NewRequestStore() *RequestStore {
	return &RequestStore{}
}

// Load reads the request file at path.
func (s *RequestStore) Load(ctx context.Context, path string) (*core.Request, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var data requestData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request %s: %w", path, err)
	}

	return core.NewRequestFromSpec(path, fromStorageFormat(&data)), nil
}

// LoadOrNew reads the request file at path, or returns an empty request
// bound to path when the file does not exist yet.
func (s *RequestStore) LoadOrNew(ctx context.Context, path string) (*core.Request, error) {
	req, err := s.Load(ctx, path)
	if errors.Is(err, ErrNotFound) {
		return core.NewRequest(path), nil
	}
	return req, err
}

// Save writes req to the path it is bound to.
func (s *RequestStore) Save(ctx context.Context, req *core.Request) error {
	content, err := yaml.Marshal(toStorageFormat(req.Spec()))
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	path := req.Path()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create request directory: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return fmt.Errorf("failed to write request file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write request file: %w", err)
	}

	return nil
}

// Storage format types

type requestData struct {
	Method  string     `yaml:"method"`
	URL     string     `yaml:"url"`
	Auth    authData   `yaml:"auth,omitempty"`
	Headers []pairData `yaml:"headers,omitempty"`
	Body    bodyData   `yaml:"body,omitempty"`
}

type authData struct {
	Type     string `yaml:"type,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	Token    string `yaml:"token,omitempty"`
}

type pairData struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type bodyData struct {
	Format string     `yaml:"format,omitempty"`
	Fields []pairData `yaml:"fields,omitempty"`
	Raw    string     `yaml:"raw,omitempty"`
}

// Conversion functions

func toStorageFormat(spec core.Spec) *requestData {
	data := &requestData{
		Method:  spec.Method,
		URL:     spec.URL,
		Headers: toPairData(spec.Headers),
		Body: bodyData{
			Format: spec.BodyFormat.String(),
			Fields: toPairData(spec.BodyFields),
			Raw:    spec.RawBody,
		},
	}
	// Credentials are kept while auth is None so switching back restores them.
	data.Auth = authData{
		Username: spec.Username,
		Password: spec.Password,
		Token:    spec.Token,
	}
	if spec.AuthFormat != core.AuthNone {
		data.Auth.Type = spec.AuthFormat.String()
	}
	return data
}

func fromStorageFormat(data *requestData) core.Spec {
	return core.Spec{
		Method:     data.Method,
		URL:        data.URL,
		AuthFormat: core.ParseAuthFormat(data.Auth.Type),
		Username:   data.Auth.Username,
		Password:   data.Auth.Password,
		Token:      data.Auth.Token,
		Headers:    fromPairData(data.Headers),
		BodyFormat: core.ParseBodyFormat(data.Body.Format),
		BodyFields: fromPairData(data.Body.Fields),
		RawBody:    data.Body.Raw,
	}
}

func toPairData(pairs []core.Pair) []pairData {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]pairData, len(pairs))
	for i, p := range pairs {
		out[i] = pairData{Key: p.Key, Value: p.Value}
	}
	return out
}

func fromPairData(pairs []pairData) []core.Pair {
	if len(pairs) == 0 {
		return nil
	}
	out := make([]core.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = core.Pair{Key: p.Key, Value: p.Value}
	}
	return out
}
