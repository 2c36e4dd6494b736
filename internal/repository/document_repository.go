package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"inventory-api/database"
	"inventory-api/internal/apperr"
	"inventory-api/internal/models"
)

// Record documents live in document_links, work documents in
// work_documents; the operations are identical, only the collection and the
// uniqueness key differ.
func recordDocs() *mongo.Collection { return database.DB.Collection(database.ColDocumentLinks) }
func workDocs() *mongo.Collection   { return database.DB.Collection(database.ColWorkDocuments) }

func RecordDocsCollection() *mongo.Collection { return recordDocs() }
func WorkDocsCollection() *mongo.Collection   { return workDocs() }

// ActiveDocumentNameExists reports whether an active document with this name
// already exists for the owner. The guard is scoped to active documents: a
// soft-deleted document's name may be reused.
func ActiveDocumentNameExists(ctx context.Context, col *mongo.Collection, ownerID, name string) (bool, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	err := col.FindOne(ctx, bson.M{
		"owner_id":      ownerID,
		"document_name": name,
		"status":        models.DocumentActive,
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func InsertDocument(ctx context.Context, col *mongo.Collection, d *models.DocumentLink) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err := col.InsertOne(ctx, d)
	return err
}

// ListActiveDocuments returns the owner's documents, active only.
func ListActiveDocuments(ctx context.Context, col *mongo.Collection, ownerID string) ([]models.DocumentLink, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := col.Find(ctx, bson.M{"owner_id": ownerID, "status": models.DocumentActive})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.DocumentLink
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func FindDocumentByID(ctx context.Context, col *mongo.Collection, documentID string) (*models.DocumentLink, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var d models.DocumentLink
	if err := col.FindOne(ctx, bson.M{"document_id": documentID}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("no document %s", documentID)
		}
		return nil, err
	}
	return &d, nil
}

// SoftDeleteDocument flips an active document to deleted. No TTL purge for
// documents, unlike records and accounts.
func SoftDeleteDocument(ctx context.Context, col *mongo.Collection, documentID, actor string, now time.Time) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := col.UpdateOne(ctx,
		bson.M{"document_id": documentID, "status": models.DocumentActive},
		bson.M{"$set": bson.M{
			"status":     models.DocumentDeleted,
			"deleted_by": actor,
			"deleted_at": now.UTC(),
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("no active document %s", documentID)
	}
	return nil
}
