package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"inventory-api/dto"
	"inventory-api/internal/apperr"
	"inventory-api/internal/audit"
	"inventory-api/internal/lifecycle"
	"inventory-api/internal/models"
	"inventory-api/internal/policy"
	"inventory-api/internal/repository"
)

func recordFromRequest(req *dto.RecordRequest) *models.Record {
	r := &models.Record{
		PrPoNo:        req.PrPoNo,
		StaffID:       req.StaffID,
		IndenterName:  req.IndenterName,
		ItemMaterial:  req.ItemMaterial,
		ProjectHead:   req.ProjectHead,
		Description:   req.Description,
		ApprovalRs:    req.ApprovalRs,
		UtilizationRs: req.UtilizationRs,
		Purpose:       req.Purpose,
		Document1Link: req.Document1Link,
		Document2Link: req.Document2Link,
	}
	r.Recompute()
	return r
}

// CreateRecord inserts a record owned by req.StaffID. Staff may only create
// records they own; derived totals are recomputed regardless of what the
// client sent.
func CreateRecord(ctx context.Context, claims policy.Claims, req *dto.RecordRequest) (*models.Record, error) {
	if !policy.Allow(claims, policy.RecordCreate, policy.Resource{OwnerID: req.StaffID}) {
		return nil, apperr.Forbidden("not authorized to create this record")
	}

	rec := recordFromRequest(req)
	rec.CreatedAt = timeNow().UTC()

	id, err := repository.InsertRecord(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id

	audit.Log(audit.ActionCreate, claims.StaffID, id.Hex(), fmt.Sprintf("Created PR/PO %s", rec.PrPoNo))
	return rec, nil
}

// ListRecords returns records within the caller's visibility: admin sees
// all, staff their own. Associates have no record access at all.
func ListRecords(ctx context.Context, claims policy.Claims) ([]models.Record, error) {
	if !policy.Allow(claims, policy.RecordView, policy.Resource{OwnerID: claims.StaffID}) {
		return nil, apperr.Forbidden("not authorized to view records")
	}
	return repository.ListRecords(ctx, repository.RecordVisibilityFilter(claims))
}

func GetRecord(ctx context.Context, claims policy.Claims, idHex string) (*models.Record, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.Validation("invalid record id")
	}
	rec, err := repository.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.Allow(claims, policy.RecordView, policy.Resource{OwnerID: rec.StaffID}) {
		return nil, apperr.Forbidden("not authorized to view this record")
	}
	return rec, nil
}

// UpdateRecord patches a record and recomputes the derived totals.
func UpdateRecord(ctx context.Context, claims policy.Claims, idHex string, req *dto.RecordRequest) (*models.Record, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, apperr.Validation("invalid record id")
	}
	existing, err := repository.FindRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.Allow(claims, policy.RecordUpdate, policy.Resource{OwnerID: existing.StaffID}) {
		return nil, apperr.Forbidden("not authorized to update this record")
	}

	updated := recordFromRequest(req)
	patch := bson.M{
		"pr_po_no":       updated.PrPoNo,
		"staff_id":       updated.StaffID,
		"indenter_name":  updated.IndenterName,
		"item_material":  updated.ItemMaterial,
		"project_head":   updated.ProjectHead,
		"description":    updated.Description,
		"approval_rs":    updated.ApprovalRs,
		"utilization_rs": updated.UtilizationRs,
		"total":          updated.Total,
		"remaining":      updated.Remaining,
		"purpose":        updated.Purpose,
		"document1_link": updated.Document1Link,
		"document2_link": updated.Document2Link,
	}
	if err := repository.UpdateRecord(ctx, id, patch); err != nil {
		return nil, err
	}

	audit.Log(audit.ActionUpdate, claims.StaffID, idHex, fmt.Sprintf("Updated PR/PO %s", updated.PrPoNo))
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	return updated, nil
}

// DeleteRecord moves the record into records_deleted, where the 5-day TTL
// applies.
func DeleteRecord(ctx context.Context, claims policy.Claims, idHex string) error {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return apperr.Validation("invalid record id")
	}
	doc, err := repository.FindRecordRaw(ctx, id)
	if err != nil {
		return err
	}
	owner, _ := doc["staff_id"].(string)
	if !policy.Allow(claims, policy.RecordDelete, policy.Resource{OwnerID: owner}) {
		return apperr.Forbidden("not authorized to delete this record")
	}

	active, deleted := repository.RecordsCollections()
	if err := lifecycle.MoveDelete(ctx, active, deleted, doc, claims.StaffID, timeNow(), true); err != nil {
		return err
	}

	prPoNo, _ := doc["pr_po_no"].(string)
	audit.Log(audit.ActionDelete, claims.StaffID, idHex, fmt.Sprintf("Deleted PR/PO %s", prPoNo))
	return nil
}

func ListDeletedRecords(ctx context.Context, claims policy.Claims) ([]models.Record, error) {
	if !policy.Allow(claims, policy.RecordView, policy.Resource{OwnerID: claims.StaffID}) {
		return nil, apperr.Forbidden("not authorized to view records")
	}
	return repository.ListDeletedRecords(ctx, repository.RecordVisibilityFilter(claims))
}

// RestoreRecord reinserts a soft-deleted record into the active store with
// its original identity. A miss means it was never deleted or the TTL purge
// already removed it.
func RestoreRecord(ctx context.Context, claims policy.Claims, originalID string) (*models.Record, error) {
	deletedRec, err := repository.FindDeletedRecordByOriginalID(ctx, originalID)
	if err != nil {
		return nil, err
	}
	if !policy.Allow(claims, policy.RecordRestore, policy.Resource{OwnerID: deletedRec.StaffID}) {
		return nil, apperr.Forbidden("not authorized to restore this record")
	}

	active, deleted := repository.RecordsCollections()
	if _, err := lifecycle.MoveRestore(ctx, deleted, active, bson.M{"original_id": originalID}, nil); err != nil {
		return nil, err
	}

	audit.Log(audit.ActionRestore, claims.StaffID, originalID, fmt.Sprintf("Restored PR/PO %s", deletedRec.PrPoNo))

	id, err := bson.ObjectIDFromHex(originalID)
	if err != nil {
		return nil, apperr.Validation("invalid record id")
	}
	return repository.FindRecordByID(ctx, id)
}
