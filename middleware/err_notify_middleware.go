package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	apimodels "leave-tools-backend/models/api"
)

type errNotification struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Error  string `json:"error"`
}

var notifyClient = &http.Client{Timeout: 10 * time.Second}

// ErrNotify posts a short report of every 5xx response to addr.
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var envelope apimodels.Response
		msg := string(c.Response().Body())
		if unmErr := json.Unmarshal(c.Response().Body(), &envelope); unmErr == nil && envelope.Message != "" {
			msg = envelope.Message
		}
		payload := errNotification{
			Code:   statusCode,
			Method: c.Method(),
			Path:   c.OriginalURL(),
			Error:  msg,
		}
		if r := c.Route(); r != nil {
			payload.Path = r.Path
		}

		go func() {
			body, marshalErr := json.Marshal(payload)
			if marshalErr != nil {
				return
			}
			resp, reqErr := notifyClient.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(body))
			if reqErr != nil {
				log.WithError(reqErr).Warn("error sending error notification")
				return
			}
			resp.Body.Close()
		}()
		return err
	}
}
