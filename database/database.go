package database

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection names. The *_deleted stores are the soft-delete side of the
// cross-collection strategy and carry a 5-day TTL index on deleted_at.
const (
	ColUsers          = "users"
	ColUsersDeleted   = "users_deleted"
	ColRecords        = "records"
	ColRecordsDeleted = "records_deleted"
	ColDocumentLinks  = "document_links"
	ColWork           = "work"
	ColWorkDocuments  = "work_documents"
	ColAuditLogs      = "audit_logs"
)

var DB *mongo.Database

func ConnectMongo(uri string, dbName string) *mongo.Client {
	opts := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(opts)
	if err != nil {
		logrus.Fatal("MongoDB connection error: ", err)
	}

	if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
		logrus.Fatal("failed to ping MongoDB: ", err)
	}

	DB = client.Database(dbName)

	logrus.Info("connected to MongoDB: ", dbName)
	return client
}
