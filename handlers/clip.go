package handlers

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"mememaker-site/clips"
	"mememaker-site/config"
	"mememaker-site/database"
	"mememaker-site/trim"

	"github.com/labstack/echo/v4"
)

type clipRequest struct {
	URL          string  `json:"url"`
	Title        string  `json:"title"`
	DurationSecs float64 `json:"duration_secs"` // from the metadata probe
	Start        string  `json:"start"`         // hh:mm:ss
	End          string  `json:"end"`           // hh:mm:ss
}

type jobResponse struct {
	ID           uint    `json:"id"`
	URL          string  `json:"url"`
	Title        string  `json:"title,omitempty"`
	DurationSecs float64 `json:"duration_secs,omitempty"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	ClipSecs     float64 `json:"clip_secs"`
	Status       string  `json:"status"`
	Error        string  `json:"error,omitempty"`
	Size         int64   `json:"size,omitempty"`
	DownloadURL  string  `json:"download_url,omitempty"`
}

func renderJob(job clips.Job) jobResponse {
	start := float64(job.StartMS) / 1000
	stop := float64(job.StopMS) / 1000
	resp := jobResponse{
		ID:           job.ID,
		URL:          job.URL,
		Title:        job.Title,
		DurationSecs: job.Duration,
		Start:        trim.FormatHHMMSS(start),
		End:          trim.FormatHHMMSS(stop),
		ClipSecs:     stop - start,
		Status:       string(job.Status),
		Error:        job.Error,
		Size:         job.Size,
	}

	if job.Status == clips.StatusCompleted && job.Filename != "" {
		tempURL, err := clips.CreateTempURL(filepath.Join(config.GetDataDir(), job.Filename))
		if err != nil {
			log.Errorln(err)
		} else {
			resp.DownloadURL = config.GetBaseURL() + "/download/" + tempURL.Token
		}
	}
	return resp
}

// ClipPost accepts a clip job: a source URL plus the trim range the
// client's submit gate produced. The range is re-validated here with the
// same rules the UI enforces; a client that bypasses the gate gets a 422.
func ClipPost(c echo.Context) error {
	var req clipRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "malformed request"})
	}

	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid video URL"})
	}
	if req.DurationSecs <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing video duration"})
	}

	startSecs, ok := trim.ParseHHMMSS(req.Start)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "start must be hh:mm:ss"})
	}
	stopSecs, ok := trim.ParseHHMMSS(req.End)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "end must be hh:mm:ss"})
	}

	sel := trim.Selection{
		VideoDuration: req.DurationSecs,
		ClipStart:     startSecs,
		ClipEnd:       stopSecs,
	}
	if v := sel.Validate(); !v.OK() || !v.MinDuration {
		log.Debugf("rejecting clip range %s-%s over %fs: %+v",
			req.Start, req.End, req.DurationSecs, v)
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid clip range"})
	}

	job := clips.Job{
		SessionID: GetSessionID(c),
		URL:       req.URL,
		Title:     req.Title,
		Duration:  req.DurationSecs,
		StartMS:   uint(startSecs*1000 + 0.5),
		StopMS:    uint(stopSecs*1000 + 0.5),
		Status:    clips.StatusPending,
	}
	if err := database.Get().Create(&job).Error; err != nil {
		return err
	}

	log.Infof("clip job %d: %s [%s - %s]", job.ID, job.URL, req.Start, req.End)
	return c.JSON(http.StatusAccepted, renderJob(job))
}

// JobsGet lists the session's clip jobs, newest first.
func JobsGet(c echo.Context) error {
	var jobs []clips.Job
	err := database.Get().
		Where("session_id = ?", GetSessionID(c)).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return err
	}

	resp := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		resp = append(resp, renderJob(job))
	}
	return c.JSON(http.StatusOK, resp)
}

func sessionJob(c echo.Context) (clips.Job, error) {
	id, _ := strconv.Atoi(c.Param("id"))
	var job clips.Job
	err := database.Get().
		Where("id = ? AND session_id = ?", id, GetSessionID(c)).
		First(&job).Error
	return job, err
}

func JobGet(c echo.Context) error {
	job, err := sessionJob(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no such job"})
	}
	return c.JSON(http.StatusOK, renderJob(job))
}

// JobRestart re-queues a failed job.
func JobRestart(c echo.Context) error {
	job, err := sessionJob(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no such job"})
	}

	database.Get().Model(&clips.Job{}).Where("id = ?", job.ID).
		Updates(map[string]interface{}{"status": clips.StatusPending, "error": ""})
	return c.JSON(http.StatusOK, map[string]string{"status": string(clips.StatusPending)})
}

func JobDelete(c echo.Context) error {
	job, err := sessionJob(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no such job"})
	}

	if job.Filename != "" {
		path := filepath.Join(config.GetDataDir(), job.Filename)
		if err := os.Remove(path); err != nil {
			log.Errorln("error removing", path, err)
		}
	}
	database.Get().Delete(&job)
	return c.NoContent(http.StatusNoContent)
}
