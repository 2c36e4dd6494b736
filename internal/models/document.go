package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DocumentActive  = "active"
	DocumentDeleted = "deleted"
)

// DocumentLink ties an uploaded file to a record (by hex id) or a work item
// (by work_id). Soft delete is a status flip; deleted links are kept forever
// and their names may be reused.
type DocumentLink struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DocumentID   string        `bson:"document_id" json:"document_id"`
	OwnerID      string        `bson:"owner_id" json:"owner_id"`
	DocumentName string        `bson:"document_name" json:"document_name"`
	FilePath     string        `bson:"file_path" json:"file_path"`
	PublicURL    string        `bson:"public_url" json:"public_url"`
	Status       string        `bson:"status" json:"status"`
	UploadedBy   string        `bson:"uploaded_by" json:"uploaded_by"`
	UploadedAt   time.Time     `bson:"uploaded_at" json:"uploaded_at"`
	DeletedBy    string        `bson:"deleted_by,omitempty" json:"deleted_by,omitempty"`
	DeletedAt    *time.Time    `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
}
