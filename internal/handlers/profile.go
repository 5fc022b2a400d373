package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pesocalumpit/portal-web/internal/backend"
)

func (h *Handlers) Profile(c *gin.Context) {
	sess := h.sessions.Current(c.Request)

	user, err := h.api.GetUser(c.Request.Context(), sess.Token, sess.UserID)
	if err != nil {
		log.Printf("profile: fetch user %d: %v", sess.UserID, err)
		h.toast(c, "Failed to load profile.", false)
		h.render(c, http.StatusBadGateway, "profile.tmpl", nil)
		return
	}

	h.render(c, http.StatusOK, "profile.tmpl", gin.H{"User": user})
}

type profileForm struct {
	FirstName  string `form:"first_name" binding:"required"`
	MiddleName string `form:"middle_name"`
	LastName   string `form:"last_name" binding:"required"`
	Username   string `form:"username" binding:"required"`
}

// UpdateProfile saves name and username edits. Email stays whatever it
// was at registration.
func (h *Handlers) UpdateProfile(c *gin.Context) {
	sess := h.sessions.Current(c.Request)

	var form profileForm
	if err := c.ShouldBind(&form); err != nil {
		h.toast(c, "Please fill in all required fields.", false)
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	req := backend.UpdateUserRequest{
		FirstName:  form.FirstName,
		MiddleName: form.MiddleName,
		LastName:   form.LastName,
		Username:   form.Username,
	}
	if err := h.api.UpdateUser(c.Request.Context(), sess.Token, sess.UserID, req); err != nil {
		log.Printf("profile: update user %d: %v", sess.UserID, err)
		h.toast(c, "Failed to update profile.", false)
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	h.toast(c, "Profile updated successfully!", true)
	c.Redirect(http.StatusSeeOther, "/profile")
}
