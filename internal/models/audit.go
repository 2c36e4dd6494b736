package models

import "time"

// AuditLog is an append-only action trail entry.
type AuditLog struct {
	Action      string    `bson:"action" json:"action"`
	PerformedBy string    `bson:"performed_by" json:"performed_by"`
	RecordID    string    `bson:"record_id,omitempty" json:"record_id,omitempty"`
	Details     string    `bson:"details,omitempty" json:"details,omitempty"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
