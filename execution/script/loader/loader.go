package loader

import (
	"io"
	"net/url"
)

// Loader supplies lesson script source. Every call to GetReader returns a fresh
// reader over the same content; the caller closes it.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
