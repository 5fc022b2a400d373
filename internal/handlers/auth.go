package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pesocalumpit/portal-web/internal/backend"
)

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handlers) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.tmpl", nil)
}

// Login exchanges the credentials for a token and stores token, user id
// and username in the session. Failure leaves the session untouched.
func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.toast(c, "Invalid username or password.", false)
		h.render(c, http.StatusBadRequest, "login.tmpl", nil)
		return
	}

	result, err := h.api.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		log.Printf("login failed for %q: %v", form.Username, err)
		h.toast(c, "Invalid username or password.", false)
		h.render(c, http.StatusUnauthorized, "login.tmpl", nil)
		return
	}

	if err := h.sessions.SignIn(c.Writer, c.Request, result.AccessToken, result.UserID, form.Username); err != nil {
		log.Printf("login: save session: %v", err)
		h.toast(c, "Something went wrong. Please try again.", false)
		h.render(c, http.StatusInternalServerError, "login.tmpl", nil)
		return
	}

	// Shown once on the home page, then cleared.
	_ = h.sessions.SetFlash(c.Writer, c.Request, "Login Successful!")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handlers) Logout(c *gin.Context) {
	if err := h.sessions.SignOut(c.Writer, c.Request); err != nil {
		log.Printf("logout: clear session: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

type registerForm struct {
	FirstName       string `form:"first_name" binding:"required"`
	MiddleName      string `form:"middle_name"`
	LastName        string `form:"last_name" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Username        string `form:"username" binding:"required"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

func (h *Handlers) RegisterForm(c *gin.Context) {
	h.render(c, http.StatusOK, "register.tmpl", nil)
}

func (h *Handlers) RegisterSubmit(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.toast(c, "Please fill in all required fields.", false)
		h.render(c, http.StatusBadRequest, "register.tmpl", gin.H{"Form": form})
		return
	}
	if form.Password != form.ConfirmPassword {
		h.toast(c, "Passwords do not match.", false)
		h.render(c, http.StatusBadRequest, "register.tmpl", gin.H{"Form": form})
		return
	}

	err := h.api.Register(c.Request.Context(), backend.RegisterRequest{
		FirstName:  form.FirstName,
		MiddleName: form.MiddleName,
		LastName:   form.LastName,
		Email:      form.Email,
		Username:   form.Username,
		Password:   form.Password,
	})
	if err != nil {
		// The portal does not distinguish duplicate accounts from
		// transport failures in a structured way, so neither do we.
		log.Printf("register failed for %q: %v", form.Username, err)
		h.toast(c, "Username/email already in use, or there was a connectivity issue.", false)
		h.render(c, http.StatusBadRequest, "register.tmpl", gin.H{"Form": form})
		return
	}

	_ = h.sessions.SetFlash(c.Writer, c.Request, "Account created! Please log in.")
	c.Redirect(http.StatusSeeOther, "/login")
}

type sendOTPForm struct {
	Email string `form:"email" binding:"required,email"`
}

func (h *Handlers) SendOTPForm(c *gin.Context) {
	h.render(c, http.StatusOK, "sendotp.tmpl", nil)
}

func (h *Handlers) SendOTP(c *gin.Context) {
	var form sendOTPForm
	if err := c.ShouldBind(&form); err != nil {
		h.toast(c, "Please enter a valid email address.", false)
		h.render(c, http.StatusBadRequest, "sendotp.tmpl", nil)
		return
	}

	if err := h.api.SendOTP(c.Request.Context(), form.Email); err != nil {
		log.Printf("send otp failed: %v", err)
		h.toast(c, "Failed to send the code. Please try again.", false)
		h.render(c, http.StatusBadGateway, "sendotp.tmpl", gin.H{"Email": form.Email})
		return
	}

	h.toast(c, "A one-time code has been sent to your email.", true)
	h.render(c, http.StatusOK, "resetpassword.tmpl", gin.H{"Email": form.Email})
}

type resetPasswordForm struct {
	Email       string `form:"email" binding:"required,email"`
	OTP         string `form:"otp" binding:"required"`
	NewPassword string `form:"new_password" binding:"required"`
}

func (h *Handlers) ResetPasswordForm(c *gin.Context) {
	h.render(c, http.StatusOK, "resetpassword.tmpl", nil)
}

func (h *Handlers) ResetPassword(c *gin.Context) {
	var form resetPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		h.toast(c, "Please fill in all fields.", false)
		h.render(c, http.StatusBadRequest, "resetpassword.tmpl", gin.H{"Email": form.Email})
		return
	}

	result, err := h.api.ResetPasswordOTP(c.Request.Context(), form.Email, form.OTP, form.NewPassword)
	if err != nil {
		log.Printf("reset password failed: %v", err)
		h.toast(c, "Something went wrong.", false)
		h.render(c, http.StatusBadRequest, "resetpassword.tmpl", gin.H{"Email": form.Email})
		return
	}

	msg := result.Message
	if msg == "" {
		msg = "Password updated successfully!"
	}
	_ = h.sessions.SetFlash(c.Writer, c.Request, msg)
	c.Redirect(http.StatusSeeOther, "/login")
}
