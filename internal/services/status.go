package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pesocalumpit/portal-web/internal/backend"
)

// StatusService answers "what is the current user's relationship to
// each listed job". Instead of one existence check per visible job, it
// pulls the user's applied and saved windows once and lets callers do
// set lookups.
type StatusService struct {
	api    *backend.Client
	window int
}

func NewStatusService(api *backend.Client, window int) *StatusService {
	return &StatusService{api: api, window: window}
}

// RelationSets fetches both id-sets concurrently. Either fetch failing
// fails the whole call; pages treat that the same as any list failure.
func (s *StatusService) RelationSets(ctx context.Context, token string, userID int) (applied, saved map[int]bool, err error) {
	applied = make(map[int]bool)
	saved = make(map[int]bool)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := s.api.AppliedJobs(gctx, token, userID, 1, s.window)
		if err != nil {
			return err
		}
		for _, job := range page.Items {
			applied[job.ID] = true
		}
		return nil
	})
	g.Go(func() error {
		page, err := s.api.SavedJobs(gctx, token, userID, 1, s.window)
		if err != nil {
			return err
		}
		for _, sj := range page.Items {
			saved[sj.JobID] = true
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return applied, saved, nil
}
