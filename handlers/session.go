package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware tags every request with an anonymous session ID so a
// browser or TUI session only ever sees its own clip jobs. This is not
// authentication: there are no accounts, just cookie affinity.
func SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := store.Get(c.Request(), "session")
		if err != nil {
			// bad or tampered cookie: start over with a fresh session
			log.Warnf("dropping unreadable session: %v", err)
			session.Values = map[interface{}]interface{}{}
		}

		sid, ok := session.Values["session_id"].(string)
		if !ok || sid == "" {
			sid = uuid.Must(uuid.NewV7()).String()
			session.Values["session_id"] = sid
			if err := session.Save(c.Request(), c.Response().Writer); err != nil {
				return c.String(http.StatusInternalServerError, "Error: Unable to save session")
			}
		}

		c.Set("session_id", sid)
		return next(c)
	}
}

func GetSessionID(c echo.Context) string {
	sid, _ := c.Get("session_id").(string)
	return sid
}
