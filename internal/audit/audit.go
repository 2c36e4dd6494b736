// Package audit appends action trail entries to the audit_logs collection.
// Writes are best-effort: a failed audit write is logged and swallowed, it
// must never fail or roll back the operation that triggered it.
package audit

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"inventory-api/database"
	"inventory-api/internal/models"
)

const (
	ActionCreate  = "CREATE"
	ActionUpdate  = "UPDATE"
	ActionDelete  = "DELETE"
	ActionRestore = "RESTORE"

	ActionCreateStaff  = "CREATE_STAFF"
	ActionUpdateStaff  = "UPDATE_STAFF"
	ActionDeleteStaff  = "DELETE_STAFF"
	ActionRestoreStaff = "RESTORE_STAFF"

	ActionCreateAssociate  = "CREATE_ASSOCIATE"
	ActionUpdateAssociate  = "UPDATE_ASSOCIATE"
	ActionDeleteAssociate  = "DELETE_ASSOCIATE"
	ActionRestoreAssociate = "RESTORE_ASSOCIATE"

	ActionCreateWork  = "CREATE_WORK"
	ActionUpdateWork  = "UPDATE_WORK"
	ActionDeleteWork  = "DELETE_WORK"
	ActionRestoreWork = "RESTORE_WORK"
)

// Log appends an audit entry. Fire-and-forget: errors never propagate.
func Log(action, performedBy, recordID, details string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry := models.AuditLog{
		Action:      action,
		PerformedBy: performedBy,
		RecordID:    recordID,
		Details:     details,
		Timestamp:   time.Now().UTC(),
	}

	if _, err := database.DB.Collection(database.ColAuditLogs).InsertOne(ctx, entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"action":       action,
			"performed_by": performedBy,
			"record_id":    recordID,
		}).Warn("audit write failed: ", err)
	}
}
