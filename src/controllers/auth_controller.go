package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/findit-app/findit-backend/src/lib"
	"github.com/findit-app/findit-backend/src/logger"
	"github.com/findit-app/findit-backend/src/mail"
	"github.com/findit-app/findit-backend/src/middleware"
	"github.com/findit-app/findit-backend/src/models"
	"github.com/findit-app/findit-backend/src/store"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	resetTokenBytes = 32
	resetTokenTTL   = time.Hour
	minPasswordLen  = 6
)

const forgotPasswordReply = "If a user with that email exists, a password reset link has been sent."

type AuthController struct {
	Users       UserRepository
	Mailer      mail.Sender
	JWTSecret   string
	FrontendURL string
	Now         func() time.Time
}

func (a *AuthController) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Register validates the input, hashes the password, stores the user and returns a token
func (a *AuthController) Register(c *fiber.Ctx) error {
	var userData struct {
		Name     string `json:"name" form:"name"`
		Email    string `json:"email" form:"email"`
		Mobile   string `json:"mobile" form:"mobile"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&userData); err != nil {
		return lib.BadRequest("Invalid request body")
	}

	userData.Email = strings.ToLower(strings.TrimSpace(userData.Email))
	if userData.Name == "" || userData.Email == "" || userData.Mobile == "" || userData.Password == "" {
		return lib.BadRequest("All fields are required")
	}
	if len(userData.Password) < minPasswordLen {
		return lib.BadRequest("Password must be at least 6 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
	if err != nil {
		return lib.Internal(err)
	}

	newUser := models.User{
		Name:     userData.Name,
		Email:    userData.Email,
		Mobile:   userData.Mobile,
		Password: string(hashedPassword),
	}
	if err := a.Users.Insert(c.Context(), &newUser); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return lib.Conflict("User already exists")
		}
		return err
	}

	token, err := lib.GenerateJWT(newUser.Id.Hex(), a.JWTSecret, a.now())
	if err != nil {
		return lib.Internal(err)
	}

	logger.Info().Str("user_id", newUser.Id.Hex()).Msg("User registered")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   token,
		"user":    newUser.Dto(),
	})
}

// Login checks the email and password and returns a token
func (a *AuthController) Login(c *fiber.Ctx) error {
	var loginData struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&loginData); err != nil {
		return lib.BadRequest("Invalid request body")
	}

	loginData.Email = strings.ToLower(strings.TrimSpace(loginData.Email))
	if loginData.Email == "" || loginData.Password == "" {
		return lib.BadRequest("Email and password are required")
	}

	user, err := a.Users.FindByEmail(c.Context(), loginData.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return lib.BadRequest("Invalid credentials")
		}
		return lib.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginData.Password)); err != nil {
		return lib.BadRequest("Invalid credentials")
	}

	token, err := lib.GenerateJWT(user.Id.Hex(), a.JWTSecret, a.now())
	if err != nil {
		return lib.Internal(err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user.Dto(),
	})
}

// GetCurrentUser returns the authenticated user
func (a *AuthController) GetCurrentUser(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return lib.Unauthorized("User not authenticated")
	}
	return c.JSON(user.Dto())
}

// ForgotPassword stores a one hour reset token and mails the reset links.
// The reply does not reveal whether the email is registered.
func (a *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email" form:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return lib.BadRequest("Invalid request body")
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" {
		return lib.BadRequest("Email is required")
	}

	user, err := a.Users.FindByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(lib.MessageResponse(forgotPasswordReply))
		}
		return lib.Internal(err)
	}

	token, err := lib.RandomToken(resetTokenBytes)
	if err != nil {
		return lib.Internal(err)
	}
	if err := a.Users.SetResetToken(c.Context(), user.Id, token, a.now().Add(resetTokenTTL)); err != nil {
		return lib.Internal(err)
	}

	html, err := mail.RenderReset(mail.NewResetLinks(a.FrontendURL, token))
	if err != nil {
		return lib.Internal(err)
	}
	if err := a.Mailer.Send(user.Email, mail.ResetSubject, html); err != nil {
		return lib.NewAppError(fiber.StatusInternalServerError, "Server error processing password reset", err)
	}

	logger.Info().Str("user_id", user.Id.Hex()).Msg("Password reset email sent")
	return c.JSON(lib.MessageResponse(forgotPasswordReply))
}

// VerifyResetToken tells the client whether a reset link can still be used
func (a *AuthController) VerifyResetToken(c *fiber.Ctx) error {
	user, err := a.Users.FindByResetToken(c.Context(), c.Params("token"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return lib.BadRequest("Password reset token is invalid or has expired")
		}
		return lib.Internal(err)
	}
	return c.JSON(fiber.Map{
		"message": "Token is valid",
		"userId":  user.Id.Hex(),
	})
}

// ResetPassword replaces the password of the user holding a valid token
func (a *AuthController) ResetPassword(c *fiber.Ctx) error {
	var body struct {
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return lib.BadRequest("Invalid request body")
	}
	if body.Password == "" {
		return lib.BadRequest("Password is required")
	}
	if len(body.Password) < minPasswordLen {
		return lib.BadRequest("Password must be at least 6 characters")
	}

	user, err := a.Users.FindByResetToken(c.Context(), c.Params("token"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return lib.BadRequest("Password reset token is invalid or has expired")
		}
		return lib.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return lib.Internal(err)
	}
	if err := a.Users.UpdatePassword(c.Context(), user.Id, string(hash)); err != nil {
		return lib.Internal(err)
	}

	return c.JSON(lib.MessageResponse("Password has been reset successfully"))
}
