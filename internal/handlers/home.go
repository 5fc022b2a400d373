package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pesocalumpit/portal-web/internal/models"
)

const homeTeaserCount = 6

// Home renders the hero banner plus a teaser of the latest postings.
// The login success flash lands here.
func (h *Handlers) Home(c *gin.Context) {
	sess := h.sessions.Current(c.Request)

	var latest []models.Job
	page, err := h.api.ListJobs(c.Request.Context(), sess.Token, 1, homeTeaserCount)
	if err != nil {
		// The hero still renders; the teaser is best-effort.
		log.Printf("home: list jobs: %v", err)
	} else {
		latest = page.Items
	}

	h.render(c, http.StatusOK, "home.tmpl", gin.H{"Latest": latest})
}
