package services

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"inventory-api/internal/apperr"
	"inventory-api/internal/models"
	"inventory-api/internal/policy"
	"inventory-api/internal/repository"
	"inventory-api/internal/storage"
)

// allowedExtensions maps the permitted upload extensions to the content
// type stored alongside them.
var allowedExtensions = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// checkedExtension validates the filename against the allow-list and
// returns the extension and content type.
func checkedExtension(filename string) (ext, contentType string, err error) {
	ext = strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", "", apperr.Validation("file type not allowed, use pdf, jpg, jpeg or png")
	}
	return ext, contentType, nil
}

// UploadRecordDocument attaches a file to a record. The stored path is
// built from sanitized names only so client input cannot steer it.
func UploadRecordDocument(ctx context.Context, claims policy.Claims, store *storage.Client,
	recordIDHex, documentName, filename string, data []byte) (*models.DocumentLink, error) {

	rec, err := GetRecord(ctx, claims, recordIDHex)
	if err != nil {
		return nil, err
	}
	if !policy.Allow(claims, policy.RecordUpdate, policy.Resource{OwnerID: rec.StaffID}) {
		return nil, apperr.Forbidden("not authorized to upload documents for this record")
	}
	if documentName == "" {
		return nil, apperr.Validation("document name is required")
	}
	ext, contentType, err := checkedExtension(filename)
	if err != nil {
		return nil, err
	}

	col := repository.RecordDocsCollection()
	exists, err := repository.ActiveDocumentNameExists(ctx, col, recordIDHex, documentName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflictf("an active document named %q already exists for this record", documentName)
	}

	path := storage.SafeName(rec.PrPoNo) + "/" + storage.SafeName(documentName) + ext
	if err := store.Upload(ctx, path, data, contentType); err != nil {
		return nil, err
	}

	doc := &models.DocumentLink{
		DocumentID:   uuid.NewString(),
		OwnerID:      recordIDHex,
		DocumentName: documentName,
		FilePath:     path,
		PublicURL:    store.PublicURL(path),
		Status:       models.DocumentActive,
		UploadedBy:   claims.StaffID,
		UploadedAt:   timeNow().UTC(),
	}
	if err := repository.InsertDocument(ctx, col, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func ListRecordDocuments(ctx context.Context, claims policy.Claims, recordIDHex string) ([]models.DocumentLink, error) {
	if _, err := GetRecord(ctx, claims, recordIDHex); err != nil {
		return nil, err
	}
	return repository.ListActiveDocuments(ctx, repository.RecordDocsCollection(), recordIDHex)
}

func DeleteRecordDocument(ctx context.Context, claims policy.Claims, documentID string) error {
	col := repository.RecordDocsCollection()
	doc, err := repository.FindDocumentByID(ctx, col, documentID)
	if err != nil {
		return err
	}
	rec, err := GetRecord(ctx, claims, doc.OwnerID)
	if err != nil {
		return err
	}
	if !policy.Allow(claims, policy.RecordUpdate, policy.Resource{OwnerID: rec.StaffID}) {
		return apperr.Forbidden("not authorized to delete documents for this record")
	}
	return repository.SoftDeleteDocument(ctx, col, documentID, claims.StaffID, timeNow())
}

// workDocumentName derives the stored filename for a work upload; the
// uniqueness guard for work documents applies to this derived name.
func workDocumentName(documentName, ext string) string {
	return storage.SafeName(documentName) + ext
}

// UploadWorkDocument attaches a file to a work item. Anyone with mutate
// access to the work (owning associate, supervising staff, admin) may
// upload.
func UploadWorkDocument(ctx context.Context, claims policy.Claims, store *storage.Client,
	workID, documentName, filename string, data []byte) (*models.DocumentLink, error) {

	w, err := getAccessibleWork(ctx, claims, workID, policy.WorkProgress)
	if err != nil {
		return nil, err
	}
	if w.IsDeleted {
		return nil, apperr.NotFoundf("no work item %s", workID)
	}
	if documentName == "" {
		return nil, apperr.Validation("document name is required")
	}
	ext, contentType, err := checkedExtension(filename)
	if err != nil {
		return nil, err
	}

	name := workDocumentName(documentName, ext)
	col := repository.WorkDocsCollection()
	exists, err := repository.ActiveDocumentNameExists(ctx, col, workID, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflictf("an active document named %q already exists for this work item", name)
	}

	path := storage.SafeName(workID) + "/" + name
	if err := store.Upload(ctx, path, data, contentType); err != nil {
		return nil, err
	}

	doc := &models.DocumentLink{
		DocumentID:   uuid.NewString(),
		OwnerID:      workID,
		DocumentName: name,
		FilePath:     path,
		PublicURL:    store.PublicURL(path),
		Status:       models.DocumentActive,
		UploadedBy:   claims.StaffID,
		UploadedAt:   timeNow().UTC(),
	}
	if err := repository.InsertDocument(ctx, col, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func ListWorkDocuments(ctx context.Context, claims policy.Claims, workID string) ([]models.DocumentLink, error) {
	if _, err := GetWork(ctx, claims, workID); err != nil {
		return nil, err
	}
	return repository.ListActiveDocuments(ctx, repository.WorkDocsCollection(), workID)
}

func DeleteWorkDocument(ctx context.Context, claims policy.Claims, documentID string) error {
	col := repository.WorkDocsCollection()
	doc, err := repository.FindDocumentByID(ctx, col, documentID)
	if err != nil {
		return err
	}
	if _, err := getAccessibleWork(ctx, claims, doc.OwnerID, policy.WorkProgress); err != nil {
		return err
	}
	return repository.SoftDeleteDocument(ctx, col, documentID, claims.StaffID, timeNow())
}
