package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin     = Claims{Role: RoleAdmin, StaffID: "ADM-1"}
	staffA    = Claims{Role: RoleStaff, StaffID: "ST-A"}
	staffB    = Claims{Role: RoleStaff, StaffID: "ST-B"}
	associate = Claims{Role: RoleAssociate, StaffID: "PA-1"}
)

func TestAllowMatrix(t *testing.T) {
	ownedByA := Resource{OwnerID: "ST-A"}
	ownedByPA := Resource{OwnerID: "PA-1"}
	supervisedByA := Resource{OwnerID: "PA-1", Supervisors: []string{"ST-A", "ST-C"}}

	tests := []struct {
		name   string
		claims Claims
		action Action
		res    Resource
		want   bool
	}{
		// admin short-circuits everything, including unknown actions
		{"admin any record", admin, RecordDelete, Resource{OwnerID: "ST-B"}, true},
		{"admin staff manage", admin, StaffManage, Resource{}, true},
		{"admin unknown action", admin, Action("nonsense"), Resource{}, true},

		// staff on records: strict ownership
		{"staff own record view", staffA, RecordView, ownedByA, true},
		{"staff own record update", staffA, RecordUpdate, ownedByA, true},
		{"staff own record delete", staffA, RecordDelete, ownedByA, true},
		{"staff own record restore", staffA, RecordRestore, ownedByA, true},
		{"staff foreign record view", staffB, RecordView, ownedByA, false},
		{"staff foreign record delete", staffB, RecordDelete, ownedByA, false},
		{"staff create for self", staffA, RecordCreate, ownedByA, true},
		{"staff create for other", staffB, RecordCreate, ownedByA, false},

		// staff may not manage staff accounts
		{"staff manage denied", staffA, StaffManage, Resource{}, false},

		// associates: admin-only unless the rule lists them
		{"associate create denied for staff", staffA, AssociateCreate, supervisedByA, false},
		{"associate delete denied for staff", staffA, AssociateDelete, supervisedByA, false},
		{"associate view by supervisor", staffA, AssociateView, supervisedByA, true},
		{"associate view by non-supervisor", staffB, AssociateView, supervisedByA, false},
		{"associate update by supervisor", staffA, AssociateUpdate, supervisedByA, true},

		// work items
		{"work view by supervisor", staffA, WorkView, supervisedByA, true},
		{"work view by unrelated staff", staffB, WorkView, supervisedByA, false},
		{"work view by owning associate", associate, WorkView, ownedByPA, true},
		{"work view by other associate", Claims{Role: RoleAssociate, StaffID: "PA-2"}, WorkView, ownedByPA, false},
		{"work progress by owning associate", associate, WorkProgress, ownedByPA, true},
		{"work delay by owning associate", associate, WorkDelay, ownedByPA, true},
		{"work delete denied for associate", associate, WorkDelete, ownedByPA, false},
		{"work restore denied for associate", associate, WorkRestore, ownedByPA, false},
		{"work create by supervisor", staffA, WorkCreate, supervisedByA, true},
		{"work update by unrelated staff", staffB, WorkUpdate, supervisedByA, false},

		// associates never touch record or account management
		{"associate record view denied", associate, RecordView, ownedByPA, false},
		{"associate staff manage denied", associate, StaffManage, Resource{}, false},

		// unknown role, unknown action
		{"unknown role denied", Claims{Role: "intern", StaffID: "X"}, RecordView, ownedByA, false},
		{"unknown action denied", staffA, Action("nonsense"), ownedByA, false},

		// empty owner never matches ownership, even with empty claims id
		{"empty owner no match", Claims{Role: RoleStaff, StaffID: ""}, RecordView, Resource{OwnerID: ""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.claims, tt.action, tt.res))
		})
	}
}

func TestCanAccessWork(t *testing.T) {
	lookup := func(ctx context.Context, associateID string) ([]string, error) {
		if associateID == "PA-1" {
			return []string{"ST-A"}, nil
		}
		return nil, nil
	}

	ctx := context.Background()

	ok, err := CanAccessWork(ctx, admin, WorkView, "PA-1", nil) // admin needs no lookup
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CanAccessWork(ctx, staffA, WorkView, "PA-1", lookup)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CanAccessWork(ctx, staffB, WorkView, "PA-1", lookup)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = CanAccessWork(ctx, associate, WorkView, "PA-1", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CanAccessWork(ctx, associate, WorkView, "PA-2", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanAccessWorkLookupFailure(t *testing.T) {
	boom := errors.New("store down")
	lookup := func(ctx context.Context, associateID string) ([]string, error) {
		return nil, boom
	}

	ok, err := CanAccessWork(context.Background(), staffA, WorkView, "PA-1", lookup)
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}
