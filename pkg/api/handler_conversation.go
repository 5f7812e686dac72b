package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/omniboxhq/omnibox/pkg/models"
)

// listConversationsHandler handles GET /api/conversations.
func (s *Server) listConversationsHandler(c *echo.Context) error {
	id := currentIdentity(c)

	req := models.ListConversationsRequest{
		OrganizationID:  id.OrganizationID,
		Status:          c.QueryParam("status"),
		AssignedAgentID: c.QueryParam("agentId"),
		ChannelID:       c.QueryParam("channelId"),
		Search:          c.QueryParam("search"),
		Page:            parsePositiveInt(c.QueryParam("page"), 1),
		Limit:           parsePositiveInt(c.QueryParam("limit"), 25),
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	page, err := s.conversations.List(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// getConversationHandler handles GET /api/conversations/:id.
func (s *Server) getConversationHandler(c *echo.Context) error {
	id := currentIdentity(c)
	conversationID, err := requireConversationID(c)
	if err != nil {
		return err
	}

	conv, err := s.conversations.Get(c.Request().Context(), id.OrganizationID, conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, conv)
}

// acceptConversationHandler handles POST /api/conversations/:id/accept.
func (s *Server) acceptConversationHandler(c *echo.Context) error {
	id := currentIdentity(c)
	conversationID, err := requireConversationID(c)
	if err != nil {
		return err
	}

	conv, err := s.conversations.Accept(c.Request().Context(), id.OrganizationID, conversationID, id.UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, conv)
}

// releaseConversationHandler handles POST /api/conversations/:id/release.
func (s *Server) releaseConversationHandler(c *echo.Context) error {
	id := currentIdentity(c)
	conversationID, err := requireConversationID(c)
	if err != nil {
		return err
	}

	conv, err := s.conversations.Release(c.Request().Context(), id.OrganizationID, conversationID, id.UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, conv)
}

// completeConversationHandler handles POST /api/conversations/:id/complete.
func (s *Server) completeConversationHandler(c *echo.Context) error {
	id := currentIdentity(c)
	conversationID, err := requireConversationID(c)
	if err != nil {
		return err
	}

	conv, err := s.conversations.Complete(c.Request().Context(), id.OrganizationID, conversationID, id.UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, conv)
}

// listConversationEventsHandler handles GET /api/conversations/:id/events.
func (s *Server) listConversationEventsHandler(c *echo.Context) error {
	id := currentIdentity(c)
	conversationID, err := requireConversationID(c)
	if err != nil {
		return err
	}

	page := parsePositiveInt(c.QueryParam("page"), 1)
	// Cap must stay within the range the service accepts; anything
	// larger would be silently reset to the default there.
	limit := parsePositiveInt(c.QueryParam("limit"), 50)
	if limit > 100 {
		limit = 100
	}

	events, total, err := s.conversations.ListEvents(c.Request().Context(), id.OrganizationID, conversationID, page, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"events": events,
		"page":   page,
		"limit":  limit,
		"total":  total,
	})
}

func requireConversationID(c *echo.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "conversation id is required")
	}
	return id, nil
}

func parsePositiveInt(raw string, defaultVal int) int {
	if raw == "" {
		return defaultVal
	}
	if v, err := strconv.Atoi(raw); err == nil && v > 0 {
		return v
	}
	return defaultVal
}
