package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	azb "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/lyzr/docgateway/common/logger"
)

// ErrNotFound is returned when the referenced container or blob does not
// exist. The endpoint layer maps it to 404; all other storage failures
// surface as generic transport errors.
var ErrNotFound = errors.New("blob not found")

// Metadata describes a fetched blob. It is echoed back in task responses
// and feeds format sniffing.
type Metadata struct {
	ContentType  *string   `json:"content_type"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	Name         string    `json:"name"`
}

// Fetcher downloads blob content and properties from Azure Blob Storage.
// Content and metadata come from a single download round-trip.
type Fetcher struct {
	client *azblob.Client
	log    *logger.Logger
}

// NewFetcher creates a fetcher from a storage connection string.
func NewFetcher(connectionString string, log *logger.Logger) (*Fetcher, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob storage client: %w", err)
	}

	log.Info("blob storage client initialized")
	return &Fetcher{client: client, log: log}, nil
}

// Fetch retrieves the referenced blob's raw bytes and metadata.
func (f *Fetcher) Fetch(ctx context.Context, ref Reference) ([]byte, Metadata, error) {
	if ref.Signed {
		return f.fetchSigned(ctx, ref)
	}

	resp, err := f.client.DownloadStream(ctx, ref.Container, ref.Name, nil)
	if err != nil {
		return nil, Metadata{}, f.mapError(err, ref)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("failed to read blob %s/%s: %w", ref.Container, ref.Name, err)
	}

	meta := buildMetadata(ref.Name, content, resp.ContentType, resp.ContentLength, resp.LastModified)
	f.log.Info("blob downloaded", "container", ref.Container, "name", ref.Name, "size", meta.Size)
	return content, meta, nil
}

// fetchSigned downloads through a client built from the pre-signed URL
// itself; the embedded SAS token is the credential.
func (f *Fetcher) fetchSigned(ctx context.Context, ref Reference) ([]byte, Metadata, error) {
	client, err := azb.NewClientWithNoCredential(ref.Raw, nil)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("failed to build client for signed URL: %w", err)
	}

	resp, err := client.DownloadStream(ctx, nil)
	if err != nil {
		return nil, Metadata{}, f.mapError(err, ref)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("failed to read blob %s/%s: %w", ref.Container, ref.Name, err)
	}

	meta := buildMetadata(ref.Name, content, resp.ContentType, resp.ContentLength, resp.LastModified)
	f.log.Info("blob downloaded via signed URL", "container", ref.Container, "name", ref.Name, "size", meta.Size)
	return content, meta, nil
}

func (f *Fetcher) mapError(err error, ref Reference) error {
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
		f.log.Warn("blob not found", "container", ref.Container, "name", ref.Name)
		return fmt.Errorf("%w: %s/%s", ErrNotFound, ref.Container, ref.Name)
	}
	return fmt.Errorf("blob download failed for %s/%s: %w", ref.Container, ref.Name, err)
}

func buildMetadata(name string, content []byte, contentType *string, contentLength *int64, lastModified *time.Time) Metadata {
	meta := Metadata{
		ContentType: contentType,
		Size:        int64(len(content)),
		Name:        name,
	}
	if contentLength != nil {
		meta.Size = *contentLength
	}
	if lastModified != nil {
		meta.LastModified = *lastModified
	}
	return meta
}
