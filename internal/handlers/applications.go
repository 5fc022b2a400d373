package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pesocalumpit/portal-web/internal/models"
	"github.com/pesocalumpit/portal-web/internal/ui"
)

// applicationCard carries the bare resume filename for the download
// link; the stored reference may include a server-side path prefix.
type applicationCard struct {
	models.Application
	ResumeFilename string
}

// ApplicationList shows who applied to one posting.
func (h *Handlers) ApplicationList(c *gin.Context) {
	sess := h.sessions.Current(c.Request)
	jobID, err := strconv.Atoi(c.Param("jobId"))
	if err != nil {
		h.NotFound(c)
		return
	}

	page, err := h.api.ListJobApplications(c.Request.Context(), sess.Token, jobID, 1, h.cfg.FetchWindow)
	if err != nil {
		log.Printf("applications for job %d: %v", jobID, err)
		h.render(c, http.StatusBadGateway, "applications.tmpl", gin.H{
			"JobID": jobID,
			"Error": "Failed to fetch applications",
			"View":  ui.PageView[applicationCard]{Current: 1},
		})
		return
	}

	cards := make([]applicationCard, 0, len(page.Items))
	for _, app := range page.Items {
		card := applicationCard{Application: app}
		if app.Resume != "" {
			card.ResumeFilename = path.Base(app.Resume)
		}
		cards = append(cards, card)
	}

	pager := ui.NewPager(cards, h.cfg.PageSize)
	h.render(c, http.StatusOK, "applications.tmpl", gin.H{
		"JobID": jobID,
		"View":  pager.View(pageParam(c)),
	})
}

// DownloadResume proxies the stored resume blob to the browser as an
// attachment. Only the bare filename is forwarded upstream, whatever
// path the record carries.
func (h *Handlers) DownloadResume(c *gin.Context) {
	sess := h.sessions.Current(c.Request)
	jobID := c.Param("jobId")
	filename := path.Base(c.Param("filename"))
	if filename == "." || filename == "/" {
		h.toast(c, "Resume not available", false)
		c.Redirect(http.StatusSeeOther, "/jobs/applications/"+jobID)
		return
	}

	body, contentType, err := h.api.DownloadResume(c.Request.Context(), sess.Token, filename)
	if err != nil {
		log.Printf("download resume %q: %v", filename, err)
		h.toast(c, "Failed to download resume", false)
		c.Redirect(http.StatusSeeOther, "/jobs/applications/"+jobID)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		log.Printf("download resume %q: stream: %v", filename, err)
	}
}
