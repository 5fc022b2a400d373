package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesocalumpit/portal-web/internal/backend"
	"github.com/pesocalumpit/portal-web/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestApplicationsCSVDateRange(t *testing.T) {
	apps := []models.Application{
		{ID: 1, JobID: 10, UserID: 100, Email: "early@x.ph", MobileNumber: "0917", ExpectedSalary: 20000, AppliedAt: day(t, "2024-01-01")},
		{ID: 2, JobID: 10, UserID: 100, Email: "start@x.ph", MobileNumber: "0918", ExpectedSalary: 25000, AppliedAt: day(t, "2024-01-10")},
		{ID: 3, JobID: 11, UserID: 101, Email: "late-day@x.ph", MobileNumber: "0919", ExpectedSalary: 30000, AppliedAt: day(t, "2024-01-20").Add(23 * time.Hour)},
		{ID: 4, JobID: 11, UserID: 101, Email: "after@x.ph", MobileNumber: "0920", ExpectedSalary: 35000, AppliedAt: day(t, "2024-01-31")},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /application", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("size"), "export fetches its own, wider window")
		json.NewEncoder(w).Encode(models.Page[models.Application]{Items: apps, Total: len(apps)})
	})
	mux.HandleFunc("GET /user/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.UserProfile{FirstName: "Juan", LastName: "Cruz"})
	})
	mux.HandleFunc("GET /job/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Job{Title: "Clerk " + r.PathValue("id")})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	svc := NewExportService(backend.New(ts.URL), 100)
	out, err := svc.ApplicationsCSV(context.Background(), "tok", day(t, "2024-01-10"), day(t, "2024-01-20"))
	require.NoError(t, err)

	csv := string(out)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	require.Len(t, lines, 3, "header plus the two in-range records")
	assert.Equal(t, "Applicant Name,Email,Mobile Number,Job Title,Applied At", lines[0])
	assert.Contains(t, csv, "start@x.ph")
	assert.Contains(t, csv, "late-day@x.ph", "end date is inclusive through end of day")
	assert.NotContains(t, csv, "early@x.ph")
	assert.NotContains(t, csv, "after@x.ph")
	assert.Contains(t, csv, "Juan Cruz")
}

func TestApplicationsCSVMemoizesLookups(t *testing.T) {
	apps := make([]models.Application, 6)
	for i := range apps {
		apps[i] = models.Application{
			ID: i, JobID: 10, UserID: 100,
			Email: fmt.Sprintf("a%d@x.ph", i), AppliedAt: day(t, "2024-01-15"),
		}
	}

	var userLookups, jobLookups atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /application", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Page[models.Application]{Items: apps, Total: len(apps)})
	})
	mux.HandleFunc("GET /user/{id}", func(w http.ResponseWriter, r *http.Request) {
		userLookups.Add(1)
		json.NewEncoder(w).Encode(models.UserProfile{FirstName: "Juan"})
	})
	mux.HandleFunc("GET /job/{id}", func(w http.ResponseWriter, r *http.Request) {
		jobLookups.Add(1)
		json.NewEncoder(w).Encode(models.Job{Title: "Clerk"})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	svc := NewExportService(backend.New(ts.URL), 100)
	_, err := svc.ApplicationsCSV(context.Background(), "tok", day(t, "2024-01-01"), day(t, "2024-01-31"))
	require.NoError(t, err)

	assert.Equal(t, int32(1), userLookups.Load(), "same user resolved once")
	assert.Equal(t, int32(1), jobLookups.Load(), "same job resolved once")
}

func TestApplicationsCSVUnavailableLookups(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /application", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Page[models.Application]{Items: []models.Application{
			{ID: 1, JobID: 10, UserID: 100, Email: "a@x.ph", AppliedAt: day(t, "2024-01-15")},
		}})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	svc := NewExportService(backend.New(ts.URL), 100)
	out, err := svc.ApplicationsCSV(context.Background(), "tok", day(t, "2024-01-01"), day(t, "2024-01-31"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "Unavailable")
}
