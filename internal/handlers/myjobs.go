package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pesocalumpit/portal-web/internal/backend"
	"github.com/pesocalumpit/portal-web/internal/models"
	"github.com/pesocalumpit/portal-web/internal/ui"
)

type jobForm struct {
	Title       string `form:"title" binding:"required"`
	Company     string `form:"company" binding:"required"`
	Location    string `form:"location" binding:"required"`
	Description string `form:"description" binding:"required"`
	Salary      string `form:"salary" binding:"required"`
}

func (h *Handlers) PostJobForm(c *gin.Context) {
	h.render(c, http.StatusOK, "post_job.tmpl", nil)
}

// PostJob creates a posting. When a logo is attached it is uploaded
// first and the returned filename goes onto the job record.
func (h *Handlers) PostJob(c *gin.Context) {
	sess := h.sessions.Current(c.Request)

	var form jobForm
	if err := c.ShouldBind(&form); err != nil {
		h.toast(c, "Please fill in all job fields.", false)
		h.render(c, http.StatusBadRequest, "post_job.tmpl", gin.H{"Form": form})
		return
	}

	logoName := ""
	if fileHeader, err := c.FormFile("logo"); err == nil {
		if fileHeader.Size > h.cfg.UploadLimit {
			h.toast(c, "Logo file is too large.", false)
			h.render(c, http.StatusBadRequest, "post_job.tmpl", gin.H{"Form": form})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			h.toast(c, "Failed to read the logo file.", false)
			h.render(c, http.StatusBadRequest, "post_job.tmpl", gin.H{"Form": form})
			return
		}
		uploaded, err := h.api.UploadLogo(c.Request.Context(), sess.Token, fileHeader.Filename, file)
		file.Close()
		if err != nil {
			log.Printf("post job: upload logo: %v", err)
			h.toast(c, "Failed to upload the logo.", false)
			h.render(c, http.StatusBadGateway, "post_job.tmpl", gin.H{"Form": form})
			return
		}
		logoName = uploaded.Filename
	}

	req := backend.JobRequest{
		Title:       form.Title,
		Company:     form.Company,
		Location:    form.Location,
		Description: form.Description,
		Salary:      form.Salary,
		UserID:      sess.UserID,
		Logo:        logoName,
	}
	if err := h.api.CreateJob(c.Request.Context(), sess.Token, req); err != nil {
		log.Printf("post job: %v", err)
		h.toast(c, "Failed to post the job. Please try again.", false)
		h.render(c, http.StatusBadGateway, "post_job.tmpl", gin.H{"Form": form})
		return
	}

	_ = h.sessions.SetFlash(c.Writer, c.Request, "Job created successfully!")
	c.Redirect(http.StatusSeeOther, "/jobs-created")
}

// MyJobs lists the owner's postings with edit/delete controls and the
// CSV export form.
func (h *Handlers) MyJobs(c *gin.Context) {
	sess := h.sessions.Current(c.Request)

	page, err := h.api.UserJobs(c.Request.Context(), sess.Token, sess.UserID, 1, h.cfg.FetchWindow)
	if err != nil {
		log.Printf("my jobs: %v", err)
		h.toast(c, "Failed to fetch jobs.", false)
		h.render(c, http.StatusBadGateway, "my_jobs.tmpl", gin.H{"View": ui.PageView[models.Job]{Current: 1}})
		return
	}

	pager := ui.NewPager(page.Items, h.cfg.PageSize)
	h.render(c, http.StatusOK, "my_jobs.tmpl", gin.H{"View": pager.View(pageParam(c))})
}

// UpdateJob is a full replace of the posting.
func (h *Handlers) UpdateJob(c *gin.Context) {
	sess := h.sessions.Current(c.Request)
	jobID, err := strconv.Atoi(c.Param("jobId"))
	if err != nil {
		h.NotFound(c)
		return
	}

	var form jobForm
	if err := c.ShouldBind(&form); err != nil {
		h.toast(c, "Please fill in all job fields.", false)
		c.Redirect(http.StatusSeeOther, "/jobs-created")
		return
	}

	req := backend.JobRequest{
		Title:       form.Title,
		Company:     form.Company,
		Location:    form.Location,
		Description: form.Description,
		Salary:      form.Salary,
		UserID:      sess.UserID,
	}
	if err := h.api.UpdateJob(c.Request.Context(), sess.Token, jobID, req); err != nil {
		log.Printf("update job %d: %v", jobID, err)
		h.toast(c, "Failed to update job.", false)
		c.Redirect(http.StatusSeeOther, "/jobs-created")
		return
	}

	h.toast(c, "Job updated successfully!", true)
	c.Redirect(http.StatusSeeOther, "/jobs-created")
}

// DeleteJob removes the posting after the confirm form. The list is
// re-fetched on redirect, so the page resets to page 1 rather than
// holding a page index that may now be past the end.
func (h *Handlers) DeleteJob(c *gin.Context) {
	sess := h.sessions.Current(c.Request)
	jobID, err := strconv.Atoi(c.Param("jobId"))
	if err != nil {
		h.NotFound(c)
		return
	}

	if err := h.api.DeleteJob(c.Request.Context(), sess.Token, jobID); err != nil {
		log.Printf("delete job %d: %v", jobID, err)
		h.toast(c, "Failed to delete job.", false)
		c.Redirect(http.StatusSeeOther, "/jobs-created")
		return
	}

	h.toast(c, "Job deleted successfully!", true)
	c.Redirect(http.StatusSeeOther, "/jobs-created")
}

// ExportApplications streams the date-ranged applications CSV.
func (h *Handlers) ExportApplications(c *gin.Context) {
	sess := h.sessions.Current(c.Request)

	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		h.toast(c, "Please select both start and end dates.", false)
		c.Redirect(http.StatusSeeOther, "/jobs-created")
		return
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		h.toast(c, "Invalid start date.", false)
		c.Redirect(http.StatusSeeOther, "/jobs-created")
		return
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		h.toast(c, "Invalid end date.", false)
		c.Redirect(http.StatusSeeOther, "/jobs-created")
		return
	}

	data, err := h.export.ApplicationsCSV(c.Request.Context(), sess.Token, start, end)
	if err != nil {
		log.Printf("export applications: %v", err)
		h.toast(c, "Failed to download applications.", false)
		c.Redirect(http.StatusSeeOther, "/jobs-created")
		return
	}

	filename := fmt.Sprintf("applications_%s_to_%s.csv", startStr, endStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
