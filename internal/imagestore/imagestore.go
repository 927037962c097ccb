package imagestore

import (
	"context"
	"regexp"
)

// Store is the remote object storage holding product photos. Upload
// returns a stable public URL; Delete is expected to be idempotent on
// a missing key.
type Store interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

// publicIDPattern matches the storage key inside a delivered URL: the
// path segment between the version marker and the file extension, e.g.
// https://cdn.example.com/image/upload/v1712345/products/shoe-1.jpg
// yields "products/shoe-1".
var publicIDPattern = regexp.MustCompile(`/v\d+/(.+?)\.\w+$`)

// ExtractPublicID derives the storage key from a stored photo URL.
// Returns "" when the URL does not follow the delivery pattern.
func ExtractPublicID(url string) string {
	matches := publicIDPattern.FindStringSubmatch(url)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}
