package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"inventory-api/database"
	"inventory-api/internal/apperr"
	"inventory-api/internal/models"
	"inventory-api/internal/policy"
)

func records() *mongo.Collection        { return database.DB.Collection(database.ColRecords) }
func recordsDeleted() *mongo.Collection { return database.DB.Collection(database.ColRecordsDeleted) }

// RecordVisibilityFilter narrows a query to what the claims may see: admin
// is unfiltered, everyone else is scoped to records they own.
func RecordVisibilityFilter(c policy.Claims) bson.M {
	if c.Role == policy.RoleAdmin {
		return bson.M{}
	}
	return bson.M{"staff_id": c.StaffID}
}

func InsertRecord(ctx context.Context, r *models.Record) (bson.ObjectID, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := records().InsertOne(ctx, r)
	if err != nil {
		return bson.NilObjectID, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

func FindRecordByID(ctx context.Context, id bson.ObjectID) (*models.Record, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var r models.Record
	if err := records().FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("record not found")
		}
		return nil, err
	}
	return &r, nil
}

// FindRecordRaw returns the record as a raw document for the lifecycle move.
func FindRecordRaw(ctx context.Context, id bson.ObjectID) (bson.M, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var doc bson.M
	if err := records().FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("record not found")
		}
		return nil, err
	}
	return doc, nil
}

func ListRecords(ctx context.Context, filter bson.M) ([]models.Record, error) {
	return listRecords(ctx, records(), filter)
}

func ListDeletedRecords(ctx context.Context, filter bson.M) ([]models.Record, error) {
	return listRecords(ctx, recordsDeleted(), filter)
}

func listRecords(ctx context.Context, col *mongo.Collection, filter bson.M) ([]models.Record, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.Record
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindDeletedRecordByOriginalID looks a soft-deleted record up by the
// identity it had in the active store.
func FindDeletedRecordByOriginalID(ctx context.Context, originalID string) (*models.Record, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var r models.Record
	if err := recordsDeleted().FindOne(ctx, bson.M{"original_id": originalID}).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("no deleted record with that id")
		}
		return nil, err
	}
	return &r, nil
}

func UpdateRecord(ctx context.Context, id bson.ObjectID, patch bson.M) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := records().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("record not found")
	}
	return nil
}

func RecordsCollections() (active, deleted *mongo.Collection) {
	return records(), recordsDeleted()
}
