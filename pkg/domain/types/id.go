package types

import "github.com/google/uuid"

type (
	RequestID string
	AuditID   string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string {
	return string(x)
}

func NewAuditID() AuditID {
	return AuditID(uuid.NewString())
}

type (
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string

	GCSBucket       string
	GCSObjectPrefix string
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
func (x GCSBucket) String() string       { return string(x) }
func (x GCSObjectPrefix) String() string { return string(x) }
