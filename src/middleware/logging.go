package middleware

import (
	"time"

	"github.com/findit-app/findit-backend/src/logger"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs every request with its latency, at a level picked from the status
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		userID, _ := c.Locals(UserIDKey).(string)
		requestID, _ := c.Locals("requestid").(string)

		event := logger.Log.Info()
		if status >= 400 {
			event = logger.Log.Warn()
		}
		if status >= 500 {
			event = logger.Log.Error()
		}

		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("query", string(c.Request().URI().QueryString())).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Str("request_id", requestID).
			Str("user_id", userID).
			Int("body_size", len(c.Response().Body())).
			Msg("request")

		return nil
	}
}
