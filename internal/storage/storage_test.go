package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"invoice", "invoice"},
		{"Quarterly Report 2025", "Quarterly_Report_2025"},
		{"../../etc/passwd", "______etc_passwd"},
		{"a/b\\c", "a_b_c"},
		{"ok_name-1", "ok_name-1"},
		{"", ""},
		{"%$#@!", "_____"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeName(tt.in), tt.in)
	}
}

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "svc-key", "documents")
	err := c.Upload(context.Background(), "Proj_X/invoice.pdf", []byte("pdfbytes"), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/documents/Proj_X/invoice.pdf", gotPath)
	assert.Equal(t, "Bearer svc-key", gotAuth)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, []byte("pdfbytes"), gotBody)
}

func TestUploadFailureSurfacesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "svc-key", "documents")
	err := c.Upload(context.Background(), "x/y.png", []byte("png"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestPublicURL(t *testing.T) {
	c := NewClient("https://proj.supabase.co", "k", "documents")
	assert.Equal(t,
		"https://proj.supabase.co/storage/v1/object/public/documents/Proj_X/invoice.pdf",
		c.PublicURL("Proj_X/invoice.pdf"))
}
