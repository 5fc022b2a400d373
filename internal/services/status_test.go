package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesocalumpit/portal-web/internal/backend"
	"github.com/pesocalumpit/portal-web/internal/models"
)

func TestRelationSets(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /jobs/applied/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.Page[models.Job]{Items: []models.Job{{ID: 3}, {ID: 9}}})
	})
	mux.HandleFunc("GET /saved-jobs/7", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Page[models.SavedJob]{Items: []models.SavedJob{{JobID: 9}, {JobID: 12}}})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	svc := NewStatusService(backend.New(ts.URL), 50)
	applied, saved, err := svc.RelationSets(context.Background(), "tok", 7)
	require.NoError(t, err)

	assert.True(t, applied[3])
	assert.True(t, applied[9])
	assert.False(t, applied[12])
	assert.True(t, saved[9])
	assert.True(t, saved[12])
	assert.False(t, saved[3])
}

func TestRelationSetsPropagatesFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /jobs/applied/7", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Page[models.Job]{})
	})
	mux.HandleFunc("GET /saved-jobs/7", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	svc := NewStatusService(backend.New(ts.URL), 50)
	_, _, err := svc.RelationSets(context.Background(), "tok", 7)
	require.Error(t, err)
}
