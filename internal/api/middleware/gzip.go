package middleware

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// Compress wraps h so that responses above a small threshold are gzipped
// when the client accepts it.
func Compress(h http.Handler) (http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(512))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip wrapper: %w", err)
	}
	return wrap(h), nil
}
