package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-api/dto"
	"inventory-api/internal/apperr"
)

func TestRecordDerivedFieldsRecomputed(t *testing.T) {
	req := &dto.RecordRequest{
		PrPoNo:        "PO-2025-001",
		StaffID:       "ST-A",
		IndenterName:  "R. Iyer",
		ItemMaterial:  "Steel rods",
		ProjectHead:   "Dr. Rao",
		Description:   "Procurement for lab setup",
		ApprovalRs:    1000,
		UtilizationRs: 300,
	}

	rec := recordFromRequest(req)
	assert.Equal(t, 1000.0, rec.Total)
	assert.Equal(t, 700.0, rec.Remaining)

	// updating utilization shifts remaining, total stays pinned to approval
	req.UtilizationRs = 950
	rec = recordFromRequest(req)
	assert.Equal(t, 1000.0, rec.Total)
	assert.Equal(t, 50.0, rec.Remaining)

	// over-utilization goes negative rather than clamping
	req.UtilizationRs = 1200
	rec = recordFromRequest(req)
	assert.Equal(t, -200.0, rec.Remaining)
}

func TestCheckDelayWindow(t *testing.T) {
	deadline := time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC)

	err := checkDelayWindow(deadline, deadline.Add(-time.Minute))
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	assert.NoError(t, checkDelayWindow(deadline, deadline))
	assert.NoError(t, checkDelayWindow(deadline, deadline.Add(time.Hour)))
}

func TestCheckedExtension(t *testing.T) {
	tests := []struct {
		filename string
		wantExt  string
		wantType string
		wantErr  bool
	}{
		{"invoice.pdf", ".pdf", "application/pdf", false},
		{"photo.JPG", ".jpg", "image/jpeg", false},
		{"scan.jpeg", ".jpeg", "image/jpeg", false},
		{"diagram.png", ".png", "image/png", false},
		{"macro.xlsm", "", "", true},
		{"script.sh", "", "", true},
		{"noextension", "", "", true},
		{"double.pdf.exe", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			ext, contentType, err := checkedExtension(tt.filename)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, ext)
			assert.Equal(t, tt.wantType, contentType)
		})
	}
}

func TestWorkDocumentName(t *testing.T) {
	assert.Equal(t, "site_visit_notes.pdf", workDocumentName("site visit notes", ".pdf"))
	assert.Equal(t, "report.png", workDocumentName("report", ".png"))
	assert.Equal(t, "___etc_passwd.pdf", workDocumentName("../etc/passwd", ".pdf"))
}

func TestParseWorkTime(t *testing.T) {
	got, err := parseWorkTime("allocated_time", "2025-03-01T09:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), got)

	_, err = parseWorkTime("deadline_time", "01-03-2025")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "deadline_time")
}

func TestNewWorkIDPrefix(t *testing.T) {
	a, b := newWorkID(), newWorkID()
	assert.Contains(t, a, "WK-")
	assert.NotEqual(t, a, b)
}
