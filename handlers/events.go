package handlers

import (
	"encoding/json"
	"fmt"

	"mememaker-site/clips"

	"github.com/labstack/echo/v4"
)

// JobEvents streams the session's job status changes as server-sent
// events until the client disconnects.
func JobEvents(c echo.Context) error {
	sid := GetSessionID(c)

	req := c.Request()
	res := c.Response()

	// Set headers for SSE
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(200)
	res.Flush()

	done := req.Context().Done()

	q := clips.Subscribe(sid)
	defer clips.Unsubscribe(sid, q)

	for {
		select {
		case <-done:
			return nil
		case event := <-q.Ch:
			jsonData, err := json.Marshal(event)
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("data: %s\n\n", jsonData)
			if _, err := res.Write([]byte(msg)); err != nil {
				return err
			}
			res.Flush()
		}
	}
}
