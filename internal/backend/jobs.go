package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pesocalumpit/portal-web/internal/models"
)

func (c *Client) ListJobs(ctx context.Context, token string, page, size int) (models.Page[models.Job], error) {
	var out models.Page[models.Job]
	err := c.getJSON(ctx, fmt.Sprintf("/job?page=%d&size=%d", page, size), token, &out)
	return out, err
}

func (c *Client) GetJob(ctx context.Context, token string, jobID int) (models.Job, error) {
	var out models.Job
	err := c.getJSON(ctx, fmt.Sprintf("/job/%d", jobID), token, &out)
	return out, err
}

type JobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	UserID      int    `json:"user_id"`
	Logo        string `json:"logo,omitempty"`
}

func (c *Client) CreateJob(ctx context.Context, token string, req JobRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/job", token, req, nil)
}

// UpdateJob is a full replace, not a patch.
func (c *Client) UpdateJob(ctx context.Context, token string, jobID int, req JobRequest) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/job/%d", jobID), token, req, nil)
}

func (c *Client) DeleteJob(ctx context.Context, token string, jobID int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/job/%d", jobID), token, nil, "")
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

type UploadLogoResult struct {
	Filename string `json:"filename"`
}

// UploadLogo sends the company logo ahead of job creation; the job
// record then references the returned filename.
func (c *Client) UploadLogo(ctx context.Context, token, filename string, logo io.Reader) (UploadLogoResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return UploadLogoResult{}, err
	}
	if _, err := io.Copy(part, logo); err != nil {
		return UploadLogoResult{}, err
	}
	if err := mw.Close(); err != nil {
		return UploadLogoResult{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/upload-logo/", token, &buf, mw.FormDataContentType())
	if err != nil {
		return UploadLogoResult{}, err
	}
	var out UploadLogoResult
	err = c.doJSON(req, &out)
	return out, err
}

// AppliedJobs lists jobs the user has applied to.
func (c *Client) AppliedJobs(ctx context.Context, token string, userID, page, size int) (models.Page[models.Job], error) {
	var out models.Page[models.Job]
	err := c.getJSON(ctx, fmt.Sprintf("/jobs/applied/%d?page=%d&size=%d", userID, page, size), token, &out)
	return out, err
}

// UserJobs lists jobs posted by the user.
func (c *Client) UserJobs(ctx context.Context, token string, userID, page, size int) (models.Page[models.Job], error) {
	var out models.Page[models.Job]
	err := c.getJSON(ctx, fmt.Sprintf("/jobs/user/%d?page=%d&size=%d", userID, page, size), token, &out)
	return out, err
}
