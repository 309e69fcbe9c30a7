package themeoptions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "github.com/wirelineio/wns-docs/internal/foundation/errors"
	"github.com/wirelineio/wns-docs/internal/siteconfig"
)

// FileProvider reads base options from a YAML or JSON document.
type FileProvider struct {
	path string
}

// NewFileProvider returns a provider for path. The format follows the
// extension: .json is JSON, anything else is YAML.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (f *FileProvider) Name() string { return "file:" + f.path }

// Path returns the file backing the provider.
func (f *FileProvider) Path() string { return f.path }

func (f *FileProvider) Load(ctx context.Context) (siteconfig.OptionsMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// #nosec G304 -- path comes from the tool configuration
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ferrors.NotFoundError("theme options file not found").
				WithContext("path", f.path).WithCause(err).Build()
		}
		return nil, ferrors.FileSystemError("read theme options file").
			WithContext("path", f.path).WithCause(err).Build()
	}

	var raw any
	if strings.EqualFold(filepath.Ext(f.path), ".json") {
		err = json.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, ferrors.ConfigError("decode theme options file").
			WithContext("path", f.path).WithCause(err).Build()
	}
	if raw == nil {
		return siteconfig.OptionsMap{}, nil
	}

	norm, err := normalize(raw, "")
	if err != nil {
		return nil, ferrors.ConfigError("invalid theme options file").
			WithContext("path", f.path).WithCause(err).Build()
	}
	opts, ok := norm.(map[string]any)
	if !ok {
		return nil, ferrors.ConfigError("theme options file must contain a mapping").
			WithContext("path", f.path).Build()
	}
	return siteconfig.OptionsMap(opts), nil
}

// normalize converts decoded YAML or JSON into the shape encoding/json
// produces: nested objects are map[string]any, arrays are []any. Non-string
// YAML keys are stringified; keys that collide after that are rejected.
func normalize(v any, at string) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			n, err := normalize(val, join(at, k))
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key := fmt.Sprint(k)
			if _, dup := out[key]; dup {
				return nil, fmt.Errorf("key %q defined twice at %q", key, at)
			}
			n, err := normalize(val, join(at, key))
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			n, err := normalize(val, fmt.Sprintf("%s[%d]", at, i))
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}

func join(at, key string) string {
	if at == "" {
		return key
	}
	return at + "." + key
}
