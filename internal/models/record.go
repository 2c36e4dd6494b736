package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Record is a PR/PO row. Total and Remaining are derived: recomputed from
// ApprovalRs/UtilizationRs on every create and update, never trusted from
// the client.
type Record struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PrPoNo        string        `bson:"pr_po_no" json:"pr_po_no"`
	StaffID       string        `bson:"staff_id" json:"staff_id"`
	IndenterName  string        `bson:"indenter_name" json:"indenter_name"`
	ItemMaterial  string        `bson:"item_material" json:"item_material"`
	ProjectHead   string        `bson:"project_head" json:"project_head"`
	Description   string        `bson:"description" json:"description"`
	ApprovalRs    float64       `bson:"approval_rs" json:"approval_rs"`
	UtilizationRs float64       `bson:"utilization_rs" json:"utilization_rs"`
	Total         float64       `bson:"total" json:"total"`
	Remaining     float64       `bson:"remaining" json:"remaining"`
	Purpose       string        `bson:"purpose,omitempty" json:"purpose,omitempty"`
	Document1Link string        `bson:"document1_link,omitempty" json:"document1_link,omitempty"`
	Document2Link string        `bson:"document2_link,omitempty" json:"document2_link,omitempty"`
	CreatedAt     time.Time     `bson:"created_at,omitempty" json:"created_at,omitempty"`

	// Deletion metadata, present only in records_deleted. OriginalID keeps
	// the identity of the active-store row so restore can reinsert it
	// unchanged.
	OriginalID string     `bson:"original_id,omitempty" json:"original_id,omitempty"`
	DeletedAt  *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	DeletedBy  string     `bson:"deleted_by,omitempty" json:"deleted_by,omitempty"`
}

// Recompute refreshes the derived fields from their inputs.
func (r *Record) Recompute() {
	r.Total = r.ApprovalRs
	r.Remaining = r.ApprovalRs - r.UtilizationRs
}
