package handlers

import (
	"net/http"
	"net/url"

	"mememaker-site/ytdlp"

	"github.com/labstack/echo/v4"
)

type metadataRequest struct {
	URL string `json:"url"`
}

type metadataResponse struct {
	Title        string  `json:"title"`
	DurationSecs float64 `json:"duration_secs"`
	Ext          string  `json:"ext"`
}

// MetadataPost probes a video URL and returns its title and duration, so
// the trim UI can size its timeline before any job is created.
func MetadataPost(c echo.Context) error {
	var req metadataRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed request"})
	}

	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid video URL"})
	}

	meta, err := ytdlp.GetMeta(req.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "couldn't probe video"})
	}

	return c.JSON(http.StatusOK, metadataResponse{
		Title:        meta.Title,
		DurationSecs: meta.Duration,
		Ext:          meta.Ext,
	})
}
