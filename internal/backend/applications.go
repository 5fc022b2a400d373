package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/pesocalumpit/portal-web/internal/models"
)

type ApplyRequest struct {
	Email          string `json:"email"`
	MobileNumber   string `json:"mobile_number"`
	ExpectedSalary int    `json:"expected_salary"`
	UserID         int    `json:"user_id"`
}

// Apply submits an application as multipart form data: the resume under
// "file" and the applicant fields as a JSON blob under "obj_in".
func (c *Client) Apply(ctx context.Context, token string, jobID int, req ApplyRequest, resumeName string, resume io.Reader) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", resumeName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, resume); err != nil {
		return err
	}
	if err := mw.WriteField("obj_in", string(payload)); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/application/%d", jobID), token, &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}
	return c.doJSON(httpReq, nil)
}

func (c *Client) ListJobApplications(ctx context.Context, token string, jobID, page, size int) (models.Page[models.Application], error) {
	var out models.Page[models.Application]
	err := c.getJSON(ctx, fmt.Sprintf("/application/job/%d?page=%d&size=%d", jobID, page, size), token, &out)
	return out, err
}

func (c *Client) ListApplications(ctx context.Context, token string, page, size int) (models.Page[models.Application], error) {
	var out models.Page[models.Application]
	err := c.getJSON(ctx, fmt.Sprintf("/application?page=%d&size=%d", page, size), token, &out)
	return out, err
}

// DownloadResume streams the stored resume. The caller owns the
// returned body and must close it.
func (c *Client) DownloadResume(ctx context.Context, token, filename string) (io.ReadCloser, string, error) {
	path := "/application/download/" + url.PathEscape(filename)
	req, err := c.newRequest(ctx, http.MethodGet, path, token, nil, "")
	if err != nil {
		return nil, "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, "", &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// HasApplied checks one (user, job) pair. The portal answers 200 when
// an application exists and 404 when it does not.
func (c *Client) HasApplied(ctx context.Context, token string, userID, jobID int) (bool, error) {
	err := c.getJSON(ctx, fmt.Sprintf("/applications/user-job?user_id=%d&job_id=%d", userID, jobID), token, nil)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
