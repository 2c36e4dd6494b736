package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-api/dto"
	"inventory-api/internal/apperr"
	"inventory-api/internal/audit"
	"inventory-api/internal/credentials"
	"inventory-api/internal/lifecycle"
	"inventory-api/internal/models"
	"inventory-api/internal/policy"
	"inventory-api/internal/repository"
)

// Staff account management is admin-only throughout; staff may not manage
// other staff.

func CreateStaff(ctx context.Context, claims policy.Claims, req *dto.StaffCreateRequest) (*models.User, error) {
	if !policy.Allow(claims, policy.StaffManage, policy.Resource{}) {
		return nil, apperr.Forbidden("only admin can manage staff")
	}

	hash, err := credentials.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	staff := &models.User{
		StaffID:      req.StaffID,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         string(policy.RoleStaff),
		IsActive:     true,
		CreatedAt:    timeNow().UTC(),
	}
	if err := repository.InsertUser(ctx, staff); err != nil {
		return nil, err
	}

	audit.Log(audit.ActionCreateStaff, claims.StaffID, req.StaffID, fmt.Sprintf("Created staff %s", req.StaffID))
	return staff, nil
}

func ListStaff(ctx context.Context, claims policy.Claims) ([]models.User, error) {
	if !policy.Allow(claims, policy.StaffManage, policy.Resource{}) {
		return nil, apperr.Forbidden("only admin can manage staff")
	}
	return repository.ListStaff(ctx)
}

func UpdateStaff(ctx context.Context, claims policy.Claims, staffID string, req *dto.StaffUpdateRequest) error {
	if !policy.Allow(claims, policy.StaffManage, policy.Resource{}) {
		return apperr.Forbidden("only admin can manage staff")
	}

	patch := bson.M{}
	if req.Name != "" {
		patch["name"] = req.Name
	}
	if req.Password != "" {
		hash, err := credentials.Hash(req.Password)
		if err != nil {
			return err
		}
		patch["password_hash"] = hash
	}
	if len(patch) == 0 {
		return apperr.Validation("nothing to update")
	}
	if err := repository.UpdateUserByStaffID(ctx, staffID, patch); err != nil {
		return err
	}

	audit.Log(audit.ActionUpdateStaff, claims.StaffID, staffID, fmt.Sprintf("Updated staff %s", staffID))
	return nil
}

// DeleteStaff moves the account into users_deleted; it stays restorable for
// the 5-day TTL window.
func DeleteStaff(ctx context.Context, claims policy.Claims, staffID string) error {
	return deleteAccount(ctx, claims, staffID, string(policy.RoleStaff), audit.ActionDeleteStaff)
}

func ListDeletedStaff(ctx context.Context, claims policy.Claims) ([]models.User, error) {
	if !policy.Allow(claims, policy.StaffManage, policy.Resource{}) {
		return nil, apperr.Forbidden("only admin can manage staff")
	}
	return repository.ListDeletedUsers(ctx, string(policy.RoleStaff))
}

// RestoreStaff re-activates a deleted staff account and strips the deletion
// metadata. Audited like every other restore.
func RestoreStaff(ctx context.Context, claims policy.Claims, staffID string) (*models.User, error) {
	return restoreAccount(ctx, claims, staffID, string(policy.RoleStaff), audit.ActionRestoreStaff)
}

// deleteAccount is the shared cross-collection delete for staff and
// associate accounts: same users/users_deleted stores, different audit
// action.
func deleteAccount(ctx context.Context, claims policy.Claims, staffID, role, action string) error {
	gate := policy.StaffManage
	if role == string(policy.RoleAssociate) {
		gate = policy.AssociateDelete
	}
	if !policy.Allow(claims, gate, policy.Resource{}) {
		return apperr.Forbidden("not authorized")
	}

	doc, err := repository.FindAccountRaw(ctx, staffID, role)
	if err != nil {
		return err
	}
	doc["is_active"] = false

	active, deleted := repository.UsersCollections()

	if err := lifecycle.MoveDelete(ctx, active, deleted, doc, claims.StaffID, timeNow(), false); err != nil {
		return err
	}

	audit.Log(action, claims.StaffID, staffID, fmt.Sprintf("Deleted account %s", staffID))
	return nil
}

func restoreAccount(ctx context.Context, claims policy.Claims, staffID, role, action string) (*models.User, error) {
	gate := policy.StaffManage
	if role == string(policy.RoleAssociate) {
		gate = policy.AssociateRestore
	}
	if !policy.Allow(claims, gate, policy.Resource{}) {
		return nil, apperr.Forbidden("not authorized")
	}

	active, deleted := repository.UsersCollections()
	restored, err := lifecycle.MoveRestore(ctx, deleted, active,
		bson.M{"staff_id": staffID, "role": role},
		bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}

	audit.Log(action, claims.StaffID, staffID, fmt.Sprintf("Restored account %s", staffID))

	var u models.User
	raw, err := bson.Marshal(restored)
	if err != nil {
		return nil, err
	}
	if err := bson.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
