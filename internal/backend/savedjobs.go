package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pesocalumpit/portal-web/internal/models"
)

type SaveJobRequest struct {
	UserID         int    `json:"user_id"`
	JobID          int    `json:"job_id"`
	JobTitle       string `json:"job_title"`
	JobLocation    string `json:"job_location"`
	JobDescription string `json:"job_description"`
	JobSalary      string `json:"job_salary"`
}

func (c *Client) SaveJob(ctx context.Context, token string, req SaveJobRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/save-job", token, req, nil)
}

// HasSaved mirrors HasApplied: 200 means the bookmark exists, 404 means
// it does not.
func (c *Client) HasSaved(ctx context.Context, token string, userID, jobID int) (bool, error) {
	err := c.getJSON(ctx, fmt.Sprintf("/save-job/user-job?user_id=%d&job_id=%d", userID, jobID), token, nil)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *Client) SavedJobs(ctx context.Context, token string, userID, page, size int) (models.Page[models.SavedJob], error) {
	var out models.Page[models.SavedJob]
	err := c.getJSON(ctx, fmt.Sprintf("/saved-jobs/%d?page=%d&size=%d", userID, page, size), token, &out)
	return out, err
}
