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

func work() *mongo.Collection { return database.DB.Collection(database.ColWork) }

// notDeleted is how "active" is expressed for the in-place flag strategy:
// there is no parallel collection, only this filter.
var notDeleted = bson.M{"$ne": true}

// WorkVisibilityFilter narrows a work query to what the claims may see.
// Staff do not own works directly, so a plain staff_id equality would be
// wrong for them: their ownership set (the associates they supervise) is
// resolved first, then works are filtered by membership in that set.
func WorkVisibilityFilter(ctx context.Context, c policy.Claims) (bson.M, error) {
	switch c.Role {
	case policy.RoleAdmin:
		return bson.M{}, nil
	case policy.RoleAssociate:
		return bson.M{"staff_id": c.StaffID}, nil
	case policy.RoleStaff:
		ids, err := AssociateIDsAssignedTo(ctx, c.StaffID)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			ids = []string{}
		}
		return bson.M{"staff_id": bson.M{"$in": ids}}, nil
	}
	return nil, apperr.Forbidden("not authorized")
}

func InsertWork(ctx context.Context, w *models.WorkItem) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err := work().InsertOne(ctx, w)
	return err
}

// FindWorkByWorkID returns the work item, deleted or not; callers decide
// whether a deleted item is acceptable.
func FindWorkByWorkID(ctx context.Context, workID string) (*models.WorkItem, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var w models.WorkItem
	if err := work().FindOne(ctx, bson.M{"work_id": workID}).Decode(&w); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("no work item %s", workID)
		}
		return nil, err
	}
	return &w, nil
}

// ListWork returns non-deleted work items within the visibility filter.
func ListWork(ctx context.Context, visibility bson.M) ([]models.WorkItem, error) {
	filter := bson.M{"is_deleted": notDeleted}
	for k, v := range visibility {
		filter[k] = v
	}
	return listWork(ctx, filter)
}

// ListDeletedWork returns soft-deleted work items within the visibility
// filter.
func ListDeletedWork(ctx context.Context, visibility bson.M) ([]models.WorkItem, error) {
	filter := bson.M{"is_deleted": true}
	for k, v := range visibility {
		filter[k] = v
	}
	return listWork(ctx, filter)
}

func listWork(ctx context.Context, filter bson.M) ([]models.WorkItem, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := work().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.WorkItem
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func UpdateWorkByWorkID(ctx context.Context, workID string, patch bson.M) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := work().UpdateOne(ctx, bson.M{"work_id": workID}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("no work item %s", workID)
	}
	return nil
}

func WorkCollection() *mongo.Collection { return work() }
