package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/omniboxhq/omnibox/pkg/gateway"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to the Hub.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.hub == nil {
		return echo.NewHTTPError(503, "WebSocket not available")
	}
	id := currentIdentity(c)

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: originPatterns(s.config.FrontendURL),
	})
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.hub.HandleConnection(c.Request().Context(), conn, gateway.Identity{
		AgentID:        id.UserID,
		OrganizationID: id.OrganizationID,
	})
	return nil
}

// originPatterns derives the allowed WebSocket origins from the
// dashboard URL. The scheme prefix is stripped; the matcher wants
// host patterns.
func originPatterns(frontendURL string) []string {
	for _, prefix := range []string{"https://", "http://"} {
		if len(frontendURL) > len(prefix) && frontendURL[:len(prefix)] == prefix {
			return []string{frontendURL[len(prefix):]}
		}
	}
	return []string{frontendURL}
}
