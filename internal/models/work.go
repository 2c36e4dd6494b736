package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-api/internal/workstatus"
)

// WorkItem is a task assigned to a project associate. Unlike records and
// accounts it is soft deleted in place with IsDeleted, never moved to a
// parallel collection, and is retained indefinitely.
type WorkItem struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	WorkID        string        `bson:"work_id" json:"work_id"`
	StaffID       string        `bson:"staff_id" json:"staff_id"` // the owning associate
	AssociateName string        `bson:"associate_name" json:"associate_name"`
	ProjectName   string        `bson:"project_name" json:"project_name"`
	Objective     string        `bson:"objective" json:"objective"`
	Task          string        `bson:"task" json:"task"`
	Description   string        `bson:"description,omitempty" json:"description,omitempty"`

	AllocatedTime time.Time `bson:"allocated_time" json:"allocated_time"`
	DeadlineTime  time.Time `bson:"deadline_time" json:"deadline_time"`

	ProgressDescription string `bson:"progress_description,omitempty" json:"progress_description,omitempty"`
	ReasonForDelay      string `bson:"reason_for_delay,omitempty" json:"reason_for_delay,omitempty"`

	IsDeleted bool       `bson:"is_deleted,omitempty" json:"is_deleted,omitempty"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"deleted_by,omitempty"`

	CreatedBy   string    `bson:"created_by" json:"created_by"`
	CreatedRole string    `bson:"created_role" json:"created_role"`
	CreatedAt   time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`

	// Status is derived on every read and never persisted.
	Status workstatus.Status `bson:"-" json:"status"`
}

// DeriveStatus fills Status from the allocated/deadline window at now.
func (w *WorkItem) DeriveStatus(now time.Time) {
	w.Status = workstatus.Compute(w.AllocatedTime, w.DeadlineTime, now)
}
