package blob

import (
	"errors"
	"fmt"
	"strings"

	azb "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
)

// ErrInvalidReference is returned when a file path cannot be resolved to a
// container and blob name.
var ErrInvalidReference = errors.New("invalid blob reference")

const urlPrefix = "https://"

// Reference is the resolved identity of a stored object. It is built once
// per request and discarded with it.
type Reference struct {
	Container string
	Name      string
	Raw       string

	// Signed marks a pre-signed (SAS) URL. The fetcher builds its client
	// from the raw URL instead of the shared service client, since the URL
	// carries its own credentials.
	Signed bool
}

// Resolve parses a caller-supplied file path into a Reference.
//
// Accepted shapes, tried in order:
//  1. pre-signed URL (https:// prefix with a query string)
//  2. full URL: https://account.blob.core.windows.net/container/path/to/blob
//  3. container/name shorthand
//
// Path separators inside the blob name are preserved verbatim, so nested
// "folder" paths work in all three shapes. URL inputs additionally need a
// file-like final segment; the shorthand form does not.
func Resolve(raw string) (Reference, error) {
	if raw == "" {
		return Reference{}, fmt.Errorf("%w: empty file path", ErrInvalidReference)
	}

	if strings.HasPrefix(raw, urlPrefix) && strings.Contains(raw, "?") {
		parts, err := azb.ParseURL(raw)
		if err != nil || parts.ContainerName == "" || parts.BlobName == "" {
			return Reference{}, fmt.Errorf("%w: malformed signed URL", ErrInvalidReference)
		}
		if !dottedFinalSegment(parts.BlobName) {
			return Reference{}, fmt.Errorf("%w: URL path must end in a filename", ErrInvalidReference)
		}
		return Reference{
			Container: parts.ContainerName,
			Name:      parts.BlobName,
			Raw:       raw,
			Signed:    true,
		}, nil
	}

	if strings.HasPrefix(raw, urlPrefix) {
		// https://host/container/path/to/blob splits into
		// ["https:", "", host, container, path, to, blob]
		segments := strings.Split(raw, "/")
		if len(segments) < 5 || segments[3] == "" || segments[4] == "" {
			return Reference{}, fmt.Errorf("%w: URL must contain a container and blob name", ErrInvalidReference)
		}
		name := strings.Join(segments[4:], "/")
		if !dottedFinalSegment(name) {
			return Reference{}, fmt.Errorf("%w: URL path must end in a filename", ErrInvalidReference)
		}
		return Reference{
			Container: segments[3],
			Name:      name,
			Raw:       raw,
		}, nil
	}

	container, name, ok := strings.Cut(raw, "/")
	if !ok || container == "" || name == "" {
		return Reference{}, fmt.Errorf("%w: expected container/name", ErrInvalidReference)
	}
	return Reference{Container: container, Name: name, Raw: raw}, nil
}

// dottedFinalSegment reports whether the last path segment of a blob name
// looks like a filename. Catches container-only and folder-only URLs before
// any storage round-trip.
func dottedFinalSegment(name string) bool {
	last := name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		last = name[i+1:]
	}
	return strings.Contains(last, ".")
}
