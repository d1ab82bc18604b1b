// internals/features/streaming/controller/stream_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/constants"
	"almanara_backend/internals/features/streaming/service"
	helper "almanara_backend/internals/helpers"
)

// StreamController me-relay byte range video dari origin tanpa membuka
// lokasi maupun access-control origin ke client.
type StreamController struct {
	Backend *service.BackendClient
	HTTP    *http.Client
}

func NewStreamController(backend *service.BackendClient) *StreamController {
	return &StreamController{
		Backend: backend,
		HTTP:    &http.Client{},
	}
}

// =========================================================
// STREAM - GET /stream/lesson/:lessonId
// Auth: cookie stream_token (di-set oleh session sync)
// =========================================================
func (h *StreamController) StreamLesson(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Cookies(constants.StreamTokenCookie))
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication required")
	}

	lessonID := strings.TrimSpace(c.Params("lessonId"))
	if lessonID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid lesson id")
	}

	mediaURL, err := h.Backend.ResolveLessonMediaURL(c.UserContext(), token, lessonID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Failed to fetch lesson")
	}
	if mediaURL == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson media not found")
	}

	req, err := http.NewRequestWithContext(c.UserContext(), http.MethodGet, mediaURL, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to fetch media")
	}
	if rng := c.Get(fiber.HeaderRange); rng != "" {
		req.Header.Set("Range", rng)
	}

	resp, err := h.HTTP.Do(req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to fetch media")
	}

	// Pass-through header range dari origin; CORS origin sengaja tidak disalin.
	ct := resp.Header.Get(fiber.HeaderContentType)
	if ct == "" {
		ct = "video/mp4"
	}
	c.Set(fiber.HeaderContentType, ct)
	for _, key := range []string{
		fiber.HeaderContentLength,
		fiber.HeaderContentRange,
		fiber.HeaderAcceptRanges,
	} {
		if v := resp.Header.Get(key); v != "" {
			c.Set(key, v)
		}
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set(fiber.HeaderContentDisposition, "inline")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderReferrerPolicy, "no-referrer")

	c.Status(resp.StatusCode)
	if resp.ContentLength >= 0 {
		return c.SendStream(resp.Body, int(resp.ContentLength))
	}
	return c.SendStream(resp.Body)
}
