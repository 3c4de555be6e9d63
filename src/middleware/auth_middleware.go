package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/findit-app/findit-backend/src/lib"
	"github.com/findit-app/findit-backend/src/models"
	"github.com/findit-app/findit-backend/src/store"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserKey   = "user"
	UserIDKey = "userId"
)

type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// ProtectRoute checks the bearer token, loads its user and stores it in the request locals
func ProtectRoute(users UserFinder, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return lib.Unauthorized("Not authorized - no token provided")
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			return lib.Unauthorized("Not authorized - invalid token format")
		}

		claims, err := lib.VerifyJWT(token, secret)
		if err != nil {
			return lib.Unauthorized("Not authorized - invalid token")
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return lib.Unauthorized("Invalid user id")
		}

		user, err := users.FindByID(c.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return lib.Unauthorized("User not found")
			}
			return lib.Internal(err)
		}

		user.Password = ""
		c.Locals(UserKey, *user)
		c.Locals(UserIDKey, user.Id.Hex())

		return c.Next()
	}
}

// CurrentUser returns the user stored by ProtectRoute.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(UserKey).(models.User)
	return user, ok
}
