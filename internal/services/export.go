package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"github.com/pesocalumpit/portal-web/internal/backend"
)

// ExportService assembles the applications CSV for owner pages. The
// whole result set is built in memory; the applications window is small
// enough that streaming is not worth the ceremony.
type ExportService struct {
	api    *backend.Client
	window int
}

func NewExportService(api *backend.Client, window int) *ExportService {
	return &ExportService{api: api, window: window}
}

var csvHeader = []string{"Applicant Name", "Email", "Mobile Number", "Job Title", "Applied At"}

// ApplicationsCSV fetches the applications window, keeps records whose
// applied_at falls within [start, end 23:59:59] inclusive, resolves
// applicant names and job titles with per-id memoization, and returns
// the CSV bytes.
func (s *ExportService) ApplicationsCSV(ctx context.Context, token string, start, end time.Time) ([]byte, error) {
	page, err := s.api.ListApplications(ctx, token, 1, s.window)
	if err != nil {
		return nil, err
	}

	// End date is inclusive through the last second of the day.
	cutoff := end.Add(24*time.Hour - time.Second)

	userNames := make(map[int]string)
	jobTitles := make(map[int]string)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, app := range page.Items {
		if app.AppliedAt.Before(start) || app.AppliedAt.After(cutoff) {
			continue
		}

		name, ok := userNames[app.UserID]
		if !ok {
			if user, err := s.api.GetUser(ctx, token, app.UserID); err == nil {
				name = user.FullName()
			} else {
				name = "Unavailable"
			}
			userNames[app.UserID] = name
		}

		title, ok := jobTitles[app.JobID]
		if !ok {
			if job, err := s.api.GetJob(ctx, token, app.JobID); err == nil {
				title = job.Title
			} else {
				title = "Unavailable"
			}
			jobTitles[app.JobID] = title
		}

		row := []string{
			name,
			app.Email,
			app.MobileNumber,
			title,
			app.AppliedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
