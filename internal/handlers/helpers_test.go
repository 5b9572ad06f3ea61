package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/semla/internal/app"
	"github.com/shrimpsizemoose/semla/internal/store/jsonfile"
	"github.com/shrimpsizemoose/semla/internal/store/sqlite"
)

func newTestService(t *testing.T) *app.Service {
	students, err := sqlite.NewSQLiteStore(":memory:")
	require.NoError(t, err, "Failed to create sqlite store")
	require.NoError(t, students.ApplyMigrations("../../migrations"), "Failed to apply migrations")
	t.Cleanup(func() {
		require.NoError(t, students.Close())
	})

	return &app.Service{
		Config:      &app.Config{},
		Students:    students,
		Subscribers: jsonfile.New(filepath.Join(t.TempDir(), "Subscriber.json")),
	}
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}
