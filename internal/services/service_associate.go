package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-api/dto"
	"inventory-api/internal/apperr"
	"inventory-api/internal/audit"
	"inventory-api/internal/credentials"
	"inventory-api/internal/models"
	"inventory-api/internal/policy"
	"inventory-api/internal/repository"
)

// CreateAssociate provisions a project associate account. Each entry in
// assigned_staff must be an existing active staff account.
func CreateAssociate(ctx context.Context, claims policy.Claims, req *dto.AssociateCreateRequest) (*models.User, error) {
	if !policy.Allow(claims, policy.AssociateCreate, policy.Resource{}) {
		return nil, apperr.Forbidden("only admin can create project associates")
	}

	for _, sid := range req.AssignedStaff {
		supervisor, err := repository.FindUserByStaffID(ctx, sid)
		if err != nil {
			return nil, apperr.Validationf("assigned staff %s does not exist", sid)
		}
		if supervisor.Role != string(policy.RoleStaff) || !supervisor.IsActive {
			return nil, apperr.Validationf("assigned staff %s is not an active staff account", sid)
		}
	}

	hash, err := credentials.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	assoc := &models.User{
		StaffID:       req.StaffID,
		Name:          req.Name,
		PasswordHash:  hash,
		Role:          string(policy.RoleAssociate),
		IsActive:      true,
		AssignedStaff: req.AssignedStaff,
		CreatedAt:     timeNow().UTC(),
	}
	if err := repository.InsertUser(ctx, assoc); err != nil {
		return nil, err
	}

	audit.Log(audit.ActionCreateAssociate, claims.StaffID, req.StaffID,
		fmt.Sprintf("Created project associate %s", req.StaffID))
	return assoc, nil
}

// ListAssociates returns the associates the caller may see: admin all,
// staff only those assigned to them.
func ListAssociates(ctx context.Context, claims policy.Claims) ([]models.User, error) {
	switch claims.Role {
	case policy.RoleAdmin:
		return repository.ListAssociates(ctx, nil)
	case policy.RoleStaff:
		return repository.ListAssociates(ctx, bson.M{"assigned_staff": claims.StaffID})
	}
	return nil, apperr.Forbidden("not authorized to view project associates")
}

func GetAssociate(ctx context.Context, claims policy.Claims, staffID string) (*models.User, error) {
	assoc, err := repository.FindAssociateByStaffID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	res := policy.Resource{OwnerID: assoc.StaffID, Supervisors: assoc.AssignedStaff}
	if !policy.Allow(claims, policy.AssociateView, res) {
		return nil, apperr.Forbidden("not authorized to view this project associate")
	}
	return assoc, nil
}

// UpdateAssociate patches name/password (admin or supervising staff).
// Reassigning assigned_staff changes who supervises, so that field is
// admin-only.
func UpdateAssociate(ctx context.Context, claims policy.Claims, staffID string, req *dto.AssociateUpdateRequest) error {
	assoc, err := repository.FindAssociateByStaffID(ctx, staffID)
	if err != nil {
		return err
	}
	res := policy.Resource{OwnerID: assoc.StaffID, Supervisors: assoc.AssignedStaff}
	if !policy.Allow(claims, policy.AssociateUpdate, res) {
		return apperr.Forbidden("not authorized to update this project associate")
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
	if req.AssignedStaff != nil {
		if claims.Role != policy.RoleAdmin {
			return apperr.Forbidden("only admin can reassign supervising staff")
		}
		for _, sid := range req.AssignedStaff {
			supervisor, err := repository.FindUserByStaffID(ctx, sid)
			if err != nil {
				return apperr.Validationf("assigned staff %s does not exist", sid)
			}
			if supervisor.Role != string(policy.RoleStaff) || !supervisor.IsActive {
				return apperr.Validationf("assigned staff %s is not an active staff account", sid)
			}
		}
		patch["assigned_staff"] = req.AssignedStaff
	}
	if len(patch) == 0 {
		return apperr.Validation("nothing to update")
	}
	if err := repository.UpdateUserByStaffID(ctx, staffID, patch); err != nil {
		return err
	}

	audit.Log(audit.ActionUpdateAssociate, claims.StaffID, staffID,
		fmt.Sprintf("Updated project associate %s", staffID))
	return nil
}

func DeleteAssociate(ctx context.Context, claims policy.Claims, staffID string) error {
	return deleteAccount(ctx, claims, staffID, string(policy.RoleAssociate), audit.ActionDeleteAssociate)
}

func ListDeletedAssociates(ctx context.Context, claims policy.Claims) ([]models.User, error) {
	if !policy.Allow(claims, policy.AssociateRestore, policy.Resource{}) {
		return nil, apperr.Forbidden("only admin can view deleted project associates")
	}
	return repository.ListDeletedUsers(ctx, string(policy.RoleAssociate))
}

func RestoreAssociate(ctx context.Context, claims policy.Claims, staffID string) (*models.User, error) {
	return restoreAccount(ctx, claims, staffID, string(policy.RoleAssociate), audit.ActionRestoreAssociate)
}
