package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/omniboxhq/omnibox/pkg/models"
)

// listMessagesHandler handles GET /api/conversations/:id/messages with
// cursor pagination, newest first.
func (s *Server) listMessagesHandler(c *echo.Context) error {
	id := currentIdentity(c)
	conversationID, err := requireConversationID(c)
	if err != nil {
		return err
	}

	limit := parsePositiveInt(c.QueryParam("limit"), 50)
	if limit > 100 {
		limit = 100
	}

	page, err := s.messages.ListMessages(c.Request().Context(), id.OrganizationID, models.ListMessagesRequest{
		ConversationID: conversationID,
		Limit:          limit,
		Cursor:         c.QueryParam("cursor"),
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// sendMessageHandler handles POST /api/conversations/:id/messages.
func (s *Server) sendMessageHandler(c *echo.Context) error {
	id := currentIdentity(c)
	conversationID, err := requireConversationID(c)
	if err != nil {
		return err
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	msg, err := s.messages.Send(c.Request().Context(), id.OrganizationID, conversationID, id.UserID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}
