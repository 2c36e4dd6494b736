package bootstrap

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"inventory-api/database"
)

// deletedRetention is how long a soft-deleted account or record stays
// restorable before the store purges it.
const deletedRetention = 5 * 24 * time.Hour

// EnsureIndexes creates the TTL indexes on the deleted stores and the unique
// staff_id index. Purging expired deleted rows is the store's job, not ours.
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()
	ttl := int32(deletedRetention / time.Second)

	for _, col := range []string{database.ColUsersDeleted, database.ColRecordsDeleted} {
		_, err := db.Collection(col).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "deleted_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(ttl).SetName("ttl_deleted_at"),
		})
		if err != nil {
			return err
		}
	}

	_, err := db.Collection(database.ColUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "staff_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_staff_id"),
	})
	return err
}
