package handlers

import (
	"net/http"

	"mememaker-site/clips"

	"github.com/labstack/echo/v4"
)

// DownloadGet serves a produced clip via its expiring token.
func DownloadGet(c echo.Context) error {
	token := c.Param("token")

	tempURL, err := clips.LookupTempURL(token)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Invalid or expired token"})
	}

	return c.Attachment(tempURL.FilePath, "clip.mp4")
}
