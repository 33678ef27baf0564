package loader

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"path"

	"github.com/robbyt/go-pyprimer/internal/helpers"
)

// FromFS loads a script from an fs.FS, typically an embed.FS holding the lesson
// scripts. The content is read once at construction.
type FromFS struct {
	name      string
	content   []byte
	sourceURL *url.URL
}

// NewFromFS reads name from fsys. The source URL has the form
// lesson://<base name>/<short checksum>.
func NewFromFS(fsys fs.FS, name string) (*FromFS, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: filesystem is nil", ErrScriptNotAvailable)
	}

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptNotAvailable, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrScriptNotAvailable, name)
	}

	u := &url.URL{
		Scheme: "lesson",
		Host:   path.Base(name),
		Path:   "/" + helpers.ShortSHA256(content, 8),
	}

	return &FromFS{
		name:      name,
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromFS) String() string {
	return fmt.Sprintf("loader.FromFS{Name: %s, Bytes: %d}", l.name, len(l.content))
}

func (l *FromFS) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the script.
func (l *FromFS) GetSourceURL() *url.URL {
	return l.sourceURL
}
