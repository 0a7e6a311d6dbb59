package gcs

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"google.golang.org/api/option"
)

type Client struct {
	client *storage.Client
	bucket types.GCSBucket
	prefix types.GCSObjectPrefix
}

var _ interfaces.ObjectStorage = (*Client)(nil)

// New creates a client writing objects under prefix in bucket.
func New(ctx context.Context, bucket types.GCSBucket, prefix types.GCSObjectPrefix, options ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket is empty")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.V("bucket", bucket))
	}

	return &Client{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// ObjectName returns the full object path of name.
func (x *Client) ObjectName(name string) string {
	return x.prefix.String() + name
}

// PutObject implements interfaces.ObjectStorage. An existing object with the
// same name is replaced.
func (x *Client) PutObject(ctx context.Context, name string, data []byte) error {
	objName := x.ObjectName(name)
	w := x.client.Bucket(x.bucket.String()).Object(objName).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("bucket", x.bucket), goerr.V("object", objName))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close object writer", goerr.V("bucket", x.bucket), goerr.V("object", objName))
	}

	return nil
}

// Close releases the underlying client.
func (x *Client) Close() error {
	if err := x.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Cloud Storage client")
	}
	return nil
}
