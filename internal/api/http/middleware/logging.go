package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/326-T/nft-service/internal/api/http/handler"
	"github.com/326-T/nft-service/internal/logger"
)

// Logging logs every HTTP request with its outcome and duration.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

func (l *Logging) Handle(c *fiber.Ctx) error {
	start := time.Now()

	err := c.Next()

	duration := time.Since(start)
	// The error handler has not rendered yet; derive the status from
	// the error with the same mapping it will use.
	status := c.Response().StatusCode()
	if err != nil {
		status = handler.StatusOf(err)
	}

	l.logger.Info("HTTP request completed",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration_ms", duration.Milliseconds())

	if err != nil {
		l.logger.Error("HTTP request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error())
	}

	return err
}
