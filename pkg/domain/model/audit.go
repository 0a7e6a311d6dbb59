package model

import (
	"time"

	"github.com/m-mizutani/octogate/pkg/domain/types"
)

type AuditOperation string

const (
	AuditListRepositories   AuditOperation = "list_repositories"
	AuditListBranches       AuditOperation = "list_branches"
	AuditValidateRepository AuditOperation = "validate_repository"
	AuditInvalidateToken    AuditOperation = "invalidate_token"
)

// AuditEvent is one gateway operation as recorded in the audit table.
type AuditEvent struct {
	ID         types.AuditID  `json:"id" bigquery:"id"`
	Timestamp  time.Time      `json:"timestamp" bigquery:"timestamp"`
	RequestID  string         `json:"request_id" bigquery:"request_id"`
	Operation  AuditOperation `json:"operation" bigquery:"operation"`
	CallerID   string         `json:"caller_id" bigquery:"caller_id"`
	Owner      string         `json:"owner" bigquery:"owner"`
	Repo       string         `json:"repo" bigquery:"repo"`
	StatusCode int            `json:"status_code" bigquery:"status_code"`
	ErrorCode  string         `json:"error_code" bigquery:"error_code"`
}
