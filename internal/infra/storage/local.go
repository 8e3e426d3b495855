package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local writes files under dir; they are served by the router at urlPrefix.
type Local struct {
	dir       string
	urlPrefix string
}

func NewLocal(dir, urlPrefix string) *Local {
	return &Local{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}
}

func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	clean := path.Clean("/" + key)[1:]
	if clean == "" || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("invalid key %q", key)
	}

	full := filepath.Join(l.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return l.urlPrefix + "/" + clean, nil
}
