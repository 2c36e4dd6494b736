package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an account row in `users` (active) or `users_deleted` (soft
// deleted, TTL-purged 5 days after deletion). Staff, project associates and
// the single admin all live here, distinguished by Role.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	StaffID      string        `bson:"staff_id" json:"staff_id"`
	Name         string        `bson:"name" json:"name"`
	PasswordHash string        `bson:"password_hash,omitempty" json:"-"`
	Role         string        `bson:"role" json:"role"`
	IsActive     bool          `bson:"is_active" json:"is_active"`

	// AssignedStaff lists the supervising staff ids. Only meaningful when
	// Role is project_associate.
	AssignedStaff []string `bson:"assigned_staff,omitempty" json:"assigned_staff,omitempty"`

	CreatedAt time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	DeletedBy string     `bson:"deleted_by,omitempty" json:"deleted_by,omitempty"`
}
