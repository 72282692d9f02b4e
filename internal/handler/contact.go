package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Owen-Kz/bn-portfolio/internal/queue"
	queue_publisher "github.com/Owen-Kz/bn-portfolio/internal/service"
)

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Track   string `json:"track"`
}

// Contact accepts a visitor message and relays it to the message queue.
// Delivery is fire-and-forget: a broker outage is logged by the publisher
// but the visitor still gets a success response, matching how the sites
// treat contact submission as best-effort.
func Contact(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/message required"})
	}
	track := req.Track
	if track != "dev" {
		track = "design"
	}

	_ = queue_publisher.PublishContactMessage(c.Request().Context(), queue.ContactMessageEvent{
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		Track:      track,
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
