package usecase

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
	"github.com/m-mizutani/octogate/pkg/domain/model"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/utils/logging"
)

func newAuditEvent(op model.AuditOperation, caller types.CallerID, owner, repo string, err error) *model.AuditEvent {
	ev := &model.AuditEvent{
		Operation:  op,
		CallerID:   string(caller),
		Owner:      owner,
		Repo:       repo,
		StatusCode: 200,
	}
	if err != nil {
		status, resp := model.NewErrorResponse(err)
		ev.StatusCode = status
		ev.ErrorCode = resp.Error
	}
	return ev
}

// audit records ev in BigQuery and the audit archive, whichever are
// configured. The write runs in the background under its own deadline so it
// neither delays the response nor dies with the request. Failures are logged
// and dropped.
func (x *UseCase) audit(ctx context.Context, ev *model.AuditEvent) {
	bq := x.clients.BigQuery()
	archive := x.clients.AuditArchive()
	if bq == nil && archive == nil {
		return
	}

	reqID, ctx := logging.CtxRequestID(ctx)
	ev.ID = types.NewAuditID()
	ev.Timestamp = logging.CtxTime(ctx).UTC()
	ev.RequestID = reqID.String()

	x.auditWG.Add(1)
	go func() {
		defer x.auditWG.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
		defer cancel()

		if bq != nil {
			if err := x.insertAuditEvent(ctx, bq, ev); err != nil {
				logging.From(ctx).Warn("failed to record audit event", "error", err, "operation", ev.Operation)
			}
		}
		if archive != nil {
			if err := archiveAuditEvent(ctx, archive, ev); err != nil {
				logging.From(ctx).Warn("failed to archive audit event", "error", err, "operation", ev.Operation)
			}
		}
	}()
}

func (x *UseCase) insertAuditEvent(ctx context.Context, bq interfaces.BigQuery, ev *model.AuditEvent) error {
	schema, err := x.auditTableSchema(ctx, bq)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, ev); err != nil {
		return goerr.Wrap(err, "failed to insert audit event", goerr.V("id", ev.ID))
	}
	return nil
}

// auditTableSchema prepares the audit table on first use and caches the
// resulting schema. A failed attempt is retried by the next event.
func (x *UseCase) auditTableSchema(ctx context.Context, bq interfaces.BigQuery) (bigquery.Schema, error) {
	x.auditMu.Lock()
	defer x.auditMu.Unlock()

	if x.auditSchema != nil {
		return x.auditSchema, nil
	}

	schema, err := createOrUpdateAuditTable(ctx, bq)
	if err != nil {
		return nil, err
	}
	x.auditSchema = schema
	return schema, nil
}

// auditObjectName lays archived events out by day, e.g.
// 2024/06/01/<id>.json.
func auditObjectName(ev *model.AuditEvent) string {
	return ev.Timestamp.Format("2006/01/02/") + string(ev.ID) + ".json"
}

func archiveAuditEvent(ctx context.Context, storage interfaces.ObjectStorage, ev *model.AuditEvent) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal audit event", goerr.V("id", ev.ID))
	}

	if err := storage.PutObject(ctx, auditObjectName(ev), raw); err != nil {
		return goerr.Wrap(err, "failed to archive audit event", goerr.V("id", ev.ID))
	}
	return nil
}

func createOrUpdateAuditTable(ctx context.Context, bq interfaces.BigQuery) (bigquery.Schema, error) {
	schema, err := bqs.Infer(model.AuditEvent{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer audit schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get audit table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create audit table")
		}
		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	merged, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge audit schema",
			goerr.V("old", metaData.Schema),
			goerr.V("new", schema),
		)
	}

	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: merged,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update audit table schema")
	}

	return merged, nil
}
