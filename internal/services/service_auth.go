package services

import (
	"context"

	"inventory-api/dto"
	"inventory-api/internal/apperr"
	"inventory-api/internal/credentials"
	"inventory-api/internal/policy"
	"inventory-api/internal/repository"
	"inventory-api/internal/token"
)

// AdminLogin authenticates against the single admin account.
func AdminLogin(ctx context.Context, tm *token.Manager, password string) (*dto.LoginResponse, error) {
	admin, err := repository.FindAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if !credentials.Verify(password, admin.PasswordHash) {
		return nil, apperr.Unauthorized("wrong password")
	}

	t, err := tm.Issue(string(policy.RoleAdmin), admin.StaffID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: t, StaffID: admin.StaffID, Role: string(policy.RoleAdmin)}, nil
}

// StaffLogin authenticates staff and project associates: both are users
// rows, and the stored role is minted into the token.
func StaffLogin(ctx context.Context, tm *token.Manager, staffID, password string) (*dto.LoginResponse, error) {
	user, err := repository.FindUserByStaffID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Unauthorized("account is inactive")
	}
	if !credentials.Verify(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("wrong password")
	}

	t, err := tm.Issue(user.Role, user.StaffID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   t,
		StaffID: user.StaffID,
		Name:    user.Name,
		Role:    user.Role,
	}, nil
}
