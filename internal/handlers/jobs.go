package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pesocalumpit/portal-web/internal/backend"
	"github.com/pesocalumpit/portal-web/internal/models"
	"github.com/pesocalumpit/portal-web/internal/services"
	"github.com/pesocalumpit/portal-web/internal/ui"
)

const descriptionLimit = 15

// jobCard is one feed entry annotated with the viewer's relationship to
// it. CanApply is false for the viewer's own postings.
type jobCard struct {
	models.Job
	ShortDescription string
	Applied          bool
	Saved            bool
	Owned            bool
}

func (j jobCard) CanApply() bool { return !j.Owned && !j.Applied }

func (h *Handlers) buildCards(c *gin.Context, jobs []models.Job) ([]jobCard, error) {
	sess := h.sessions.Current(c.Request)
	applied, saved, err := h.status.RelationSets(c.Request.Context(), sess.Token, sess.UserID)
	if err != nil {
		return nil, err
	}

	cards := make([]jobCard, 0, len(jobs))
	for _, job := range jobs {
		cards = append(cards, jobCard{
			Job:              job,
			ShortDescription: services.TruncateDescription(job.Description, descriptionLimit),
			Applied:          applied[job.ID],
			Saved:            saved[job.ID],
			Owned:            job.UserID == sess.UserID,
		})
	}
	return cards, nil
}

func pageParam(c *gin.Context) int {
	p, err := strconv.Atoi(c.Query("p"))
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// JobFeed renders the browse page: one fetched window, optionally
// narrowed to a salary bracket, re-paginated in memory.
func (h *Handlers) JobFeed(c *gin.Context) {
	sess := h.sessions.Current(c.Request)

	page, err := h.api.ListJobs(c.Request.Context(), sess.Token, 1, h.cfg.FetchWindow)
	if err != nil {
		log.Printf("job feed: list jobs: %v", err)
		h.toast(c, "Failed to load jobs.", false)
		h.render(c, http.StatusBadGateway, "jobs.tmpl", gin.H{"View": ui.PageView[jobCard]{Current: 1}, "Bracket": ""})
		return
	}

	bracket := c.Query("bracket")
	jobs := services.FilterBySalary(page.Items, bracket)

	cards, err := h.buildCards(c, jobs)
	if err != nil {
		log.Printf("job feed: relation sets: %v", err)
		h.toast(c, "Failed to load jobs.", false)
		h.render(c, http.StatusBadGateway, "jobs.tmpl", gin.H{"View": ui.PageView[jobCard]{Current: 1}, "Bracket": ""})
		return
	}

	pager := ui.NewPager(cards, h.cfg.PageSize)
	h.render(c, http.StatusOK, "jobs.tmpl", gin.H{
		"View":    pager.View(pageParam(c)),
		"Bracket": bracket,
	})
}

func (h *Handlers) JobDetail(c *gin.Context) {
	sess := h.sessions.Current(c.Request)
	jobID, err := strconv.Atoi(c.Param("jobId"))
	if err != nil {
		h.NotFound(c)
		return
	}

	job, err := h.api.GetJob(c.Request.Context(), sess.Token, jobID)
	if err != nil {
		log.Printf("job detail %d: %v", jobID, err)
		h.toast(c, "Failed to fetch job details.", false)
		c.Redirect(http.StatusSeeOther, "/jobs")
		return
	}

	// A single job warrants the per-pair existence checks rather than
	// pulling whole windows.
	applied, err := h.api.HasApplied(c.Request.Context(), sess.Token, sess.UserID, jobID)
	if err != nil {
		log.Printf("job detail %d: applied check: %v", jobID, err)
	}
	saved, err := h.api.HasSaved(c.Request.Context(), sess.Token, sess.UserID, jobID)
	if err != nil {
		log.Printf("job detail %d: saved check: %v", jobID, err)
	}

	h.render(c, http.StatusOK, "job_detail.tmpl", gin.H{
		"Card": jobCard{
			Job:              job,
			ShortDescription: job.Description,
			Applied:          applied,
			Saved:            saved,
			Owned:            job.UserID == sess.UserID,
		},
	})
}

type applyForm struct {
	Email          string `form:"email" binding:"required,email"`
	MobileNumber   string `form:"mobile_number" binding:"required"`
	ExpectedSalary int    `form:"expected_salary" binding:"required"`
}

// Apply submits an application for one job. Without a resume file the
// submission never leaves the client and the job is not marked applied.
func (h *Handlers) Apply(c *gin.Context) {
	sess := h.sessions.Current(c.Request)
	jobID, err := strconv.Atoi(c.Param("jobId"))
	if err != nil {
		h.NotFound(c)
		return
	}

	var form applyForm
	if err := c.ShouldBind(&form); err != nil {
		h.toast(c, "Please fill in all application fields.", false)
		c.Redirect(http.StatusSeeOther, "/jobs")
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		h.toast(c, "No resume selected", false)
		c.Redirect(http.StatusSeeOther, "/jobs")
		return
	}
	if fileHeader.Size > h.cfg.UploadLimit {
		h.toast(c, "Resume file is too large.", false)
		c.Redirect(http.StatusSeeOther, "/jobs")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.toast(c, "Failed to read the resume file.", false)
		c.Redirect(http.StatusSeeOther, "/jobs")
		return
	}
	defer file.Close()

	req := backend.ApplyRequest{
		Email:          form.Email,
		MobileNumber:   form.MobileNumber,
		ExpectedSalary: form.ExpectedSalary,
		UserID:         sess.UserID,
	}
	if err := h.api.Apply(c.Request.Context(), sess.Token, jobID, req, fileHeader.Filename, file); err != nil {
		log.Printf("apply to job %d: %v", jobID, err)
		h.toast(c, "Failed to submit application", false)
		c.Redirect(http.StatusSeeOther, "/jobs")
		return
	}

	h.toast(c, "Application submitted successfully!", true)
	c.Redirect(http.StatusSeeOther, "/jobs")
}

// SaveJob bookmarks a job. The portal keeps a denormalized copy of the
// listing fields on the bookmark record.
func (h *Handlers) SaveJob(c *gin.Context) {
	sess := h.sessions.Current(c.Request)
	jobID, err := strconv.Atoi(c.Param("jobId"))
	if err != nil {
		h.NotFound(c)
		return
	}

	job, err := h.api.GetJob(c.Request.Context(), sess.Token, jobID)
	if err != nil {
		log.Printf("save job %d: fetch: %v", jobID, err)
		h.toast(c, "Failed to save job.", false)
		c.Redirect(http.StatusSeeOther, "/jobs")
		return
	}

	req := backend.SaveJobRequest{
		UserID:         sess.UserID,
		JobID:          job.ID,
		JobTitle:       job.Title,
		JobLocation:    job.Location,
		JobDescription: job.Description,
		JobSalary:      job.Salary,
	}
	if err := h.api.SaveJob(c.Request.Context(), sess.Token, req); err != nil {
		log.Printf("save job %d: %v", jobID, err)
		h.toast(c, "Failed to save job.", false)
		c.Redirect(http.StatusSeeOther, "/jobs")
		return
	}

	h.toast(c, "Job saved!", true)
	c.Redirect(http.StatusSeeOther, "/jobs")
}

// JobsApplied lists the jobs the user has applied to.
func (h *Handlers) JobsApplied(c *gin.Context) {
	sess := h.sessions.Current(c.Request)

	page, err := h.api.AppliedJobs(c.Request.Context(), sess.Token, sess.UserID, 1, h.cfg.FetchWindow)
	if err != nil {
		log.Printf("jobs applied: %v", err)
		h.toast(c, "Failed to load applied jobs. Please try again.", false)
		h.render(c, http.StatusBadGateway, "jobs_applied.tmpl", gin.H{"View": ui.PageView[models.Job]{Current: 1}})
		return
	}

	pager := ui.NewPager(page.Items, h.cfg.PageSize)
	h.render(c, http.StatusOK, "jobs_applied.tmpl", gin.H{"View": pager.View(pageParam(c))})
}

// SavedJobs lists bookmarks, each annotated with whether the user has
// since applied so the Apply action can be disabled.
func (h *Handlers) SavedJobs(c *gin.Context) {
	sess := h.sessions.Current(c.Request)

	page, err := h.api.SavedJobs(c.Request.Context(), sess.Token, sess.UserID, 1, h.cfg.FetchWindow)
	if err != nil {
		log.Printf("saved jobs: %v", err)
		h.toast(c, "Failed to load saved jobs.", false)
		h.render(c, http.StatusBadGateway, "saved_jobs.tmpl", gin.H{"View": ui.PageView[savedJobCard]{Current: 1}})
		return
	}

	applied, _, err := h.status.RelationSets(c.Request.Context(), sess.Token, sess.UserID)
	if err != nil {
		log.Printf("saved jobs: relation sets: %v", err)
		applied = map[int]bool{}
	}

	cards := make([]savedJobCard, 0, len(page.Items))
	for _, sj := range page.Items {
		cards = append(cards, savedJobCard{SavedJob: sj, Applied: applied[sj.JobID]})
	}

	pager := ui.NewPager(cards, h.cfg.PageSize)
	h.render(c, http.StatusOK, "saved_jobs.tmpl", gin.H{"View": pager.View(pageParam(c))})
}

type savedJobCard struct {
	models.SavedJob
	Applied bool
}
