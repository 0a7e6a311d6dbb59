package config

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

// AuditArchive configures the Cloud Storage bucket audit events are copied
// to. Archiving is off unless a bucket is set.
type AuditArchive struct {
	bucket string
	prefix string
}

func (x *AuditArchive) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "audit-bucket",
			Usage:       "Cloud Storage bucket to archive audit events to as JSON objects",
			Category:    "Audit Archive",
			Destination: &x.bucket,
			Sources:     cli.EnvVars("OCTOGATE_AUDIT_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "audit-prefix",
			Usage:       "Object name prefix of archived audit events",
			Category:    "Audit Archive",
			Value:       "audit/",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("OCTOGATE_AUDIT_PREFIX"),
		},
	}
}

func (x *AuditArchive) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Bucket", x.bucket),
		slog.String("Prefix", x.prefix),
	)
}

// NewClient returns nil without error when archiving is not configured.
func (x *AuditArchive) NewClient(ctx context.Context) (*gcs.Client, error) {
	if x.bucket == "" {
		return nil, nil
	}
	if strings.HasPrefix(x.prefix, "/") {
		return nil, goerr.Wrap(types.ErrInvalidOption, "audit prefix must not start with '/'", goerr.V("prefix", x.prefix))
	}

	return gcs.New(ctx, types.GCSBucket(x.bucket), types.GCSObjectPrefix(x.prefix))
}
