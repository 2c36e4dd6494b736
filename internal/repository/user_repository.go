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

func users() *mongo.Collection        { return database.DB.Collection(database.ColUsers) }
func usersDeleted() *mongo.Collection { return database.DB.Collection(database.ColUsersDeleted) }

// FindAdmin returns the single admin account. Exactly one is expected to
// exist; this is enforced by query, not by schema.
func FindAdmin(ctx context.Context) (*models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var u models.User
	if err := users().FindOne(ctx, bson.M{"role": string(policy.RoleAdmin)}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("admin not found")
		}
		return nil, err
	}
	return &u, nil
}

func FindUserByStaffID(ctx context.Context, staffID string) (*models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var u models.User
	if err := users().FindOne(ctx, bson.M{"staff_id": staffID}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("no account with staff id %s", staffID)
		}
		return nil, err
	}
	return &u, nil
}

// FindAssociateByStaffID returns the account only if it is an active
// project associate.
func FindAssociateByStaffID(ctx context.Context, staffID string) (*models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var u models.User
	err := users().FindOne(ctx, bson.M{
		"staff_id":  staffID,
		"role":      string(policy.RoleAssociate),
		"is_active": true,
	}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("no active project associate with staff id %s", staffID)
		}
		return nil, err
	}
	return &u, nil
}

// AssignedStaffOf resolves the supervising staff set of an associate. This
// is the one policy input that needs a lookup (policy.AssignedStaffLookup).
func AssignedStaffOf(ctx context.Context, associateID string) ([]string, error) {
	u, err := FindAssociateByStaffID(ctx, associateID)
	if err != nil {
		return nil, err
	}
	return u.AssignedStaff, nil
}

// AssociateIDsAssignedTo resolves the ownership set of a staff member: the
// staff ids of every active associate whose assigned_staff contains them.
func AssociateIDsAssignedTo(ctx context.Context, staffID string) ([]string, error) {
	list, err := ListAssociates(ctx, bson.M{"assigned_staff": staffID})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.StaffID)
	}
	return ids, nil
}

// ListAssociates returns active project associates matching extra (may be
// nil for all).
func ListAssociates(ctx context.Context, extra bson.M) ([]models.User, error) {
	filter := bson.M{"role": string(policy.RoleAssociate), "is_active": true}
	for k, v := range extra {
		filter[k] = v
	}
	return listUsers(ctx, users(), filter)
}

// ListStaff returns active staff accounts.
func ListStaff(ctx context.Context) ([]models.User, error) {
	return listUsers(ctx, users(), bson.M{"role": string(policy.RoleStaff), "is_active": true})
}

// ListDeletedUsers returns soft-deleted accounts of a role still inside the
// restore window.
func ListDeletedUsers(ctx context.Context, role string) ([]models.User, error) {
	return listUsers(ctx, usersDeleted(), bson.M{"role": role})
}

func listUsers(ctx context.Context, col *mongo.Collection, filter bson.M) ([]models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.User
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindAccountRaw returns an account as a raw document for the lifecycle
// move.
func FindAccountRaw(ctx context.Context, staffID, role string) (bson.M, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var doc bson.M
	if err := users().FindOne(ctx, bson.M{"staff_id": staffID, "role": role}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFoundf("no account with staff id %s", staffID)
		}
		return nil, err
	}
	return doc, nil
}

func InsertUser(ctx context.Context, u *models.User) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err := users().InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflictf("staff id %s already exists", u.StaffID)
	}
	return err
}

func UpdateUserByStaffID(ctx context.Context, staffID string, patch bson.M) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := users().UpdateOne(ctx, bson.M{"staff_id": staffID}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFoundf("no account with staff id %s", staffID)
	}
	return nil
}

func UsersCollections() (active, deleted *mongo.Collection) {
	return users(), usersDeleted()
}
