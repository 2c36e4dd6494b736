package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestDeleteStampRestoreStripRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	orig := bson.M{
		"_id":            bson.NewObjectID(),
		"staff_id":       "ST-A",
		"pr_po_no":       "PO-7",
		"approval_rs":    1000.0,
		"utilization_rs": 300.0,
		"remaining":      700.0,
	}

	stamped := DeleteStamp(orig, "ADM-1", now)
	assert.Equal(t, now, stamped["deleted_at"])
	assert.Equal(t, "ADM-1", stamped["deleted_by"])

	// input untouched
	assert.NotContains(t, orig, "deleted_at")
	assert.NotContains(t, orig, "deleted_by")

	restored := RestoreStrip(stamped)
	assert.Equal(t, orig, restored)
}

func TestRestoreStripRewindsOriginalID(t *testing.T) {
	activeID := bson.NewObjectID()
	deletedCopy := bson.M{
		"_id":         bson.NewObjectID(), // fresh id in the deleted store
		"original_id": activeID.Hex(),
		"pr_po_no":    "PO-7",
		"deleted_at":  time.Now(),
		"deleted_by":  "ST-A",
	}

	restored := RestoreStrip(deletedCopy)
	assert.Equal(t, activeID, restored["_id"])
	assert.NotContains(t, restored, "original_id")
	assert.NotContains(t, restored, "deleted_at")
	assert.NotContains(t, restored, "deleted_by")
}

func TestDeleteStampUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 6, 1, 15, 30, 0, 0, ist)

	stamped := DeleteStamp(bson.M{"_id": bson.NewObjectID()}, "ST-A", now)
	got, ok := stamped["deleted_at"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(now))
}
