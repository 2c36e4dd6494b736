// Package lifecycle implements the two soft-delete strategies: moving a
// document between an active and a deleted collection (records, accounts —
// the deleted store carries a 5-day TTL index), and flipping an in-place
// is_deleted flag (work items — retained indefinitely). The two are kept
// deliberately separate; their retention semantics differ.
package lifecycle

import (
	"context"
	"maps"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"inventory-api/internal/apperr"
)

// DeleteStamp returns a copy of doc carrying deletion metadata. The input is
// not modified.
func DeleteStamp(doc bson.M, actor string, now time.Time) bson.M {
	out := maps.Clone(doc)
	out["deleted_at"] = now.UTC()
	out["deleted_by"] = actor
	return out
}

// RestoreStrip returns a copy of doc with deletion metadata removed. If the
// document recorded an original identity, _id is rewound to it so the
// restored row is the pre-delete row.
func RestoreStrip(doc bson.M) bson.M {
	out := maps.Clone(doc)
	delete(out, "deleted_at")
	delete(out, "deleted_by")
	if hex, ok := out["original_id"].(string); ok {
		if oid, err := bson.ObjectIDFromHex(hex); err == nil {
			out["_id"] = oid
		}
		delete(out, "original_id")
	}
	return out
}

// MoveDelete stamps doc and moves it from the active to the deleted
// collection. When keepOriginal is set the deleted copy gets a fresh _id and
// remembers the active one as original_id (the record strategy); otherwise
// the _id travels with the document (the account strategy).
func MoveDelete(ctx context.Context, active, deleted *mongo.Collection, doc bson.M, actor string, now time.Time, keepOriginal bool) error {
	id, ok := doc["_id"].(bson.ObjectID)
	if !ok {
		return apperr.Validation("document has no identity")
	}

	stamped := DeleteStamp(doc, actor, now)
	if keepOriginal {
		stamped["original_id"] = id.Hex()
		stamped["_id"] = bson.NewObjectID()
	}

	if _, err := deleted.InsertOne(ctx, stamped); err != nil {
		return err
	}
	_, err := active.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// MoveRestore looks the document up in the deleted collection, strips the
// deletion metadata, applies patch (may be nil) and reinserts it into the
// active collection with its original identity. A miss is NotFound: the
// entity was never deleted, or the TTL purge already removed it.
func MoveRestore(ctx context.Context, deleted, active *mongo.Collection, filter bson.M, patch bson.M) (bson.M, error) {
	var doc bson.M
	if err := deleted.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("nothing to restore")
		}
		return nil, err
	}
	deletedID := doc["_id"]

	restored := RestoreStrip(doc)
	for k, v := range patch {
		restored[k] = v
	}

	if _, err := active.InsertOne(ctx, restored); err != nil {
		return nil, err
	}
	if _, err := deleted.DeleteOne(ctx, bson.M{"_id": deletedID}); err != nil {
		return nil, err
	}
	return restored, nil
}

// FlagDelete soft-deletes in place by setting is_deleted plus the deletion
// stamps. Matching nothing is NotFound.
func FlagDelete(ctx context.Context, col *mongo.Collection, filter bson.M, actor string, now time.Time) error {
	res, err := col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"is_deleted": true,
		"deleted_at": now.UTC(),
		"deleted_by": actor,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("nothing to delete")
	}
	return nil
}

// FlagRestore clears the in-place deletion flag and stamps.
func FlagRestore(ctx context.Context, col *mongo.Collection, filter bson.M) error {
	res, err := col.UpdateOne(ctx, filter, bson.M{
		"$set":   bson.M{"is_deleted": false},
		"$unset": bson.M{"deleted_at": "", "deleted_by": ""},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("nothing to restore")
	}
	return nil
}
