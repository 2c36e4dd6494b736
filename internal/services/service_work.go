package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-api/dto"
	"inventory-api/internal/apperr"
	"inventory-api/internal/audit"
	"inventory-api/internal/lifecycle"
	"inventory-api/internal/models"
	"inventory-api/internal/policy"
	"inventory-api/internal/repository"
)

func parseWorkTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperr.Validationf("invalid %s, expected RFC3339", field)
	}
	return t, nil
}

func newWorkID() string {
	return "WK-" + uuid.NewString()
}

// CreateWork opens a work item for an associate. Staff must supervise the
// associate; the associate must exist and be active.
func CreateWork(ctx context.Context, claims policy.Claims, req *dto.WorkCreateRequest) (*models.WorkItem, error) {
	assoc, err := repository.FindAssociateByStaffID(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}
	res := policy.Resource{OwnerID: assoc.StaffID, Supervisors: assoc.AssignedStaff}
	if !policy.Allow(claims, policy.WorkCreate, res) {
		return nil, apperr.Forbidden("not authorized to create work for this associate")
	}

	allocated, err := parseWorkTime("allocated_time", req.AllocatedTime)
	if err != nil {
		return nil, err
	}
	deadline, err := parseWorkTime("deadline_time", req.DeadlineTime)
	if err != nil {
		return nil, err
	}
	if !deadline.After(allocated) {
		return nil, apperr.Validation("deadline_time must be after allocated_time")
	}

	now := timeNow()
	w := &models.WorkItem{
		WorkID:        newWorkID(),
		StaffID:       assoc.StaffID,
		AssociateName: assoc.Name,
		ProjectName:   req.ProjectName,
		Objective:     req.Objective,
		Task:          req.Task,
		Description:   req.Description,
		AllocatedTime: allocated.UTC(),
		DeadlineTime:  deadline.UTC(),
		CreatedBy:     claims.StaffID,
		CreatedRole:   string(claims.Role),
		CreatedAt:     now.UTC(),
	}
	if err := repository.InsertWork(ctx, w); err != nil {
		return nil, err
	}

	audit.Log(audit.ActionCreateWork, claims.StaffID, w.WorkID,
		fmt.Sprintf("Created work %s for %s", w.WorkID, assoc.StaffID))

	w.DeriveStatus(now)
	return w, nil
}

// ListWork returns non-deleted work items within the caller's visibility,
// with status derived per item at read time.
func ListWork(ctx context.Context, claims policy.Claims) ([]models.WorkItem, error) {
	visibility, err := repository.WorkVisibilityFilter(ctx, claims)
	if err != nil {
		return nil, err
	}
	items, err := repository.ListWork(ctx, visibility)
	if err != nil {
		return nil, err
	}
	now := timeNow()
	for i := range items {
		items[i].DeriveStatus(now)
	}
	return items, nil
}

// getAccessibleWork loads a work item and enforces the given action on it.
func getAccessibleWork(ctx context.Context, claims policy.Claims, workID string, action policy.Action) (*models.WorkItem, error) {
	w, err := repository.FindWorkByWorkID(ctx, workID)
	if err != nil {
		return nil, err
	}
	ok, err := policy.CanAccessWork(ctx, claims, action, w.StaffID, repository.AssignedStaffOf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Forbidden("not authorized for this work item")
	}
	return w, nil
}

func GetWork(ctx context.Context, claims policy.Claims, workID string) (*models.WorkItem, error) {
	w, err := getAccessibleWork(ctx, claims, workID, policy.WorkView)
	if err != nil {
		return nil, err
	}
	if w.IsDeleted {
		return nil, apperr.NotFoundf("no work item %s", workID)
	}
	w.DeriveStatus(timeNow())
	return w, nil
}

// UpdateWork patches the task definition fields (admin or supervising
// staff).
func UpdateWork(ctx context.Context, claims policy.Claims, workID string, req *dto.WorkUpdateRequest) error {
	w, err := getAccessibleWork(ctx, claims, workID, policy.WorkUpdate)
	if err != nil {
		return err
	}
	if w.IsDeleted {
		return apperr.NotFoundf("no work item %s", workID)
	}

	patch := bson.M{}
	if req.ProjectName != "" {
		patch["project_name"] = req.ProjectName
	}
	if req.Objective != "" {
		patch["objective"] = req.Objective
	}
	if req.Task != "" {
		patch["task"] = req.Task
	}
	if req.Description != "" {
		patch["description"] = req.Description
	}

	allocated, deadline := w.AllocatedTime, w.DeadlineTime
	if req.AllocatedTime != "" {
		if allocated, err = parseWorkTime("allocated_time", req.AllocatedTime); err != nil {
			return err
		}
		patch["allocated_time"] = allocated.UTC()
	}
	if req.DeadlineTime != "" {
		if deadline, err = parseWorkTime("deadline_time", req.DeadlineTime); err != nil {
			return err
		}
		patch["deadline_time"] = deadline.UTC()
	}
	if !deadline.After(allocated) {
		return apperr.Validation("deadline_time must be after allocated_time")
	}
	if len(patch) == 0 {
		return apperr.Validation("nothing to update")
	}

	if err := repository.UpdateWorkByWorkID(ctx, workID, patch); err != nil {
		return err
	}
	audit.Log(audit.ActionUpdateWork, claims.StaffID, workID, fmt.Sprintf("Updated work %s", workID))
	return nil
}

// UpdateWorkProgress sets the progress description (owning associate,
// supervising staff or admin).
func UpdateWorkProgress(ctx context.Context, claims policy.Claims, workID string, req *dto.WorkProgressRequest) error {
	w, err := getAccessibleWork(ctx, claims, workID, policy.WorkProgress)
	if err != nil {
		return err
	}
	if w.IsDeleted {
		return apperr.NotFoundf("no work item %s", workID)
	}
	return repository.UpdateWorkByWorkID(ctx, workID, bson.M{"progress_description": req.ProgressDescription})
}

// SetWorkDelayReason records why a work item slipped. Only meaningful once
// the deadline has actually passed; before that the request is premature.
func SetWorkDelayReason(ctx context.Context, claims policy.Claims, workID string, req *dto.WorkDelayRequest) error {
	w, err := getAccessibleWork(ctx, claims, workID, policy.WorkDelay)
	if err != nil {
		return err
	}
	if w.IsDeleted {
		return apperr.NotFoundf("no work item %s", workID)
	}
	if err := checkDelayWindow(w.DeadlineTime, timeNow()); err != nil {
		return err
	}
	return repository.UpdateWorkByWorkID(ctx, workID, bson.M{"reason_for_delay": req.ReasonForDelay})
}

func checkDelayWindow(deadline, now time.Time) error {
	if now.Before(deadline) {
		return apperr.Validation("reason for delay can only be set after the deadline has passed")
	}
	return nil
}

// DeleteWork soft-deletes in place: the flag strategy, no parallel
// collection and no TTL purge.
func DeleteWork(ctx context.Context, claims policy.Claims, workID string) error {
	w, err := getAccessibleWork(ctx, claims, workID, policy.WorkDelete)
	if err != nil {
		return err
	}
	if w.IsDeleted {
		return apperr.NotFoundf("no work item %s", workID)
	}

	filter := bson.M{"work_id": workID, "is_deleted": bson.M{"$ne": true}}
	if err := lifecycle.FlagDelete(ctx, repository.WorkCollection(), filter, claims.StaffID, timeNow()); err != nil {
		return err
	}
	audit.Log(audit.ActionDeleteWork, claims.StaffID, workID, fmt.Sprintf("Deleted work %s", workID))
	return nil
}

// ListDeletedWork is restricted to admin and supervising staff; associates
// only ever see their active work.
func ListDeletedWork(ctx context.Context, claims policy.Claims) ([]models.WorkItem, error) {
	if claims.Role != policy.RoleAdmin && claims.Role != policy.RoleStaff {
		return nil, apperr.Forbidden("not authorized to view deleted work items")
	}
	visibility, err := repository.WorkVisibilityFilter(ctx, claims)
	if err != nil {
		return nil, err
	}
	return repository.ListDeletedWork(ctx, visibility)
}

// RestoreWork clears the deletion flag and stamps.
func RestoreWork(ctx context.Context, claims policy.Claims, workID string) (*models.WorkItem, error) {
	w, err := getAccessibleWork(ctx, claims, workID, policy.WorkRestore)
	if err != nil {
		return nil, err
	}
	if !w.IsDeleted {
		return nil, apperr.NotFound("nothing to restore")
	}

	filter := bson.M{"work_id": workID, "is_deleted": true}
	if err := lifecycle.FlagRestore(ctx, repository.WorkCollection(), filter); err != nil {
		return nil, err
	}

	audit.Log(audit.ActionRestoreWork, claims.StaffID, workID, fmt.Sprintf("Restored work %s", workID))

	restored, err := repository.FindWorkByWorkID(ctx, workID)
	if err != nil {
		return nil, err
	}
	restored.DeriveStatus(timeNow())
	return restored, nil
}
