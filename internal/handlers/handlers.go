// Package handlers maps portal pages onto Gin routes. Each handler
// reads identity from the session store, talks to the portal API
// through the backend client, and drives the shared toast and pager
// primitives; nothing here persists state of its own.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pesocalumpit/portal-web/internal/backend"
	"github.com/pesocalumpit/portal-web/internal/config"
	"github.com/pesocalumpit/portal-web/internal/services"
	"github.com/pesocalumpit/portal-web/internal/session"
	"github.com/pesocalumpit/portal-web/internal/ui"
)

type Handlers struct {
	cfg      *config.Config
	api      *backend.Client
	sessions *session.Store
	toasts   *ui.ToastCenter
	status   *services.StatusService
	export   *services.ExportService
}

func New(cfg *config.Config, api *backend.Client, sessions *session.Store, toasts *ui.ToastCenter) *Handlers {
	return &Handlers{
		cfg:      cfg,
		api:      api,
		sessions: sessions,
		toasts:   toasts,
		status:   services.NewStatusService(api, cfg.FetchWindow),
		export:   services.NewExportService(api, cfg.ExportWindow),
	}
}

// Routes wires every client-visible path. Admin routes are gated in the
// UI layer only as a convenience; the portal API is the authoritative
// check for every mutation behind them.
func (h *Handlers) Routes(r *gin.Engine) {
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.RegisterSubmit)
	r.GET("/reset-password/send", h.SendOTPForm)
	r.POST("/reset-password/send", h.SendOTP)
	r.GET("/reset-password", h.ResetPasswordForm)
	r.POST("/reset-password", h.ResetPassword)
	r.GET("/not-authorize", h.NotAuthorized)
	r.POST("/toast/dismiss", h.DismissToast)

	auth := r.Group("/", h.RequireAuth)
	auth.GET("/", h.Home)
	auth.GET("/logout", h.Logout)
	auth.GET("/jobs", h.JobFeed)
	auth.GET("/jobs/:jobId", h.JobDetail)
	auth.POST("/jobs/:jobId/apply", h.Apply)
	auth.POST("/jobs/:jobId/save", h.SaveJob)
	auth.GET("/jobs-applied", h.JobsApplied)
	auth.GET("/save-jobs", h.SavedJobs)
	auth.GET("/profile", h.Profile)
	auth.POST("/profile", h.UpdateProfile)

	admin := auth.Group("/", h.RequireAdmin)
	admin.GET("/post-job", h.PostJobForm)
	admin.POST("/post-job", h.PostJob)
	admin.GET("/jobs-created", h.MyJobs)
	admin.POST("/jobs-created/:jobId/update", h.UpdateJob)
	admin.POST("/jobs-created/:jobId/delete", h.DeleteJob)
	admin.GET("/jobs-created/export", h.ExportApplications)
	admin.GET("/jobs/applications/:jobId", h.ApplicationList)
	admin.GET("/jobs/applications/:jobId/resume/:filename", h.DownloadResume)

	r.NoRoute(h.NotFound)
}

// RequireAuth redirects visitors without a session token to the login
// page. /login itself is unguarded, so there is no redirect loop.
func (h *Handlers) RequireAuth(c *gin.Context) {
	if !h.sessions.Current(c.Request).IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// RequireAdmin hides owner pages from regular accounts. UX only: a
// non-admin hitting the portal API directly is rejected server-side.
func (h *Handlers) RequireAdmin(c *gin.Context) {
	if !h.sessions.Current(c.Request).IsAdmin() {
		c.Redirect(http.StatusSeeOther, "/not-authorize")
		c.Abort()
		return
	}
	c.Next()
}

// sid resolves the per-session toast key exactly once per request. A
// freshly minted id only exists in the response cookie, so it is cached
// on the gin context to keep toast writes and the render consistent
// within the same request.
func (h *Handlers) sid(c *gin.Context) string {
	if v, ok := c.Get("toastSID"); ok {
		return v.(string)
	}
	sid, err := h.sessions.EnsureSID(c.Writer, c.Request)
	if err != nil {
		log.Printf("ensure sid: %v", err)
	}
	c.Set("toastSID", sid)
	return sid
}

// toast shows a transient banner for the current session.
func (h *Handlers) toast(c *gin.Context, message string, success bool) {
	h.toasts.Show(h.sid(c), message, success)
}

// render merges the page payload with the shared shell state: session
// identity, the visible toast and any consumed-once flash. A pending
// flash is promoted into a success toast only when no toast is already
// showing, so it never replaces an error the handler just raised.
func (h *Handlers) render(c *gin.Context, status int, name string, data gin.H) {
	sess := h.sessions.Current(c.Request)

	// A toast armed by the handler for this request takes precedence;
	// the flash stays pending until a render with nothing to show.
	if _, busy := h.toasts.Current(h.sid(c)); !busy {
		if msg, ok := h.sessions.PopFlash(c.Writer, c.Request); ok {
			h.toasts.Show(h.sid(c), msg, true)
		}
	}

	if data == nil {
		data = gin.H{}
	}
	data["Session"] = sess
	data["IsAdmin"] = sess.IsAdmin()
	data["Path"] = c.Request.URL.RequestURI()
	if toast, ok := h.toasts.Current(h.sid(c)); ok {
		data["Toast"] = toast
	}
	c.HTML(status, name, data)
}

func (h *Handlers) DismissToast(c *gin.Context) {
	h.toasts.Dismiss(h.sid(c))
	redirect := c.PostForm("redirect")
	if redirect == "" || redirect[0] != '/' {
		redirect = "/"
	}
	c.Redirect(http.StatusSeeOther, redirect)
}

func (h *Handlers) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "notfound.tmpl", nil)
}

func (h *Handlers) NotAuthorized(c *gin.Context) {
	h.render(c, http.StatusForbidden, "notauthorized.tmpl", nil)
}
