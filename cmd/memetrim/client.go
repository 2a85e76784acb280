package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// apiClient wraps the server's JSON API. The cookie jar carries the
// anonymous session so the client only sees its own jobs.
type apiClient struct {
	base string
	http *http.Client
}

func newAPIClient(base string) *apiClient {
	jar, _ := cookiejar.New(nil)
	return &apiClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{
			Timeout: 5 * time.Minute, // metadata probes can be slow
			Jar:     jar,
		},
	}
}

type videoMeta struct {
	Title        string  `json:"title"`
	DurationSecs float64 `json:"duration_secs"`
	Ext          string  `json:"ext"`
}

type clipRequest struct {
	URL          string  `json:"url"`
	Title        string  `json:"title"`
	DurationSecs float64 `json:"duration_secs"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
}

type clipJob struct {
	ID           uint    `json:"id"`
	URL          string  `json:"url"`
	Title        string  `json:"title"`
	DurationSecs float64 `json:"duration_secs"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	ClipSecs     float64 `json:"clip_secs"`
	Status       string  `json:"status"`
	Error        string  `json:"error"`
	Size         int64   `json:"size"`
	DownloadURL  string  `json:"download_url"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *apiClient) post(path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.base+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func (c *apiClient) get(path string, out interface{}) error {
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func decode(resp *http.Response, out interface{}) error {
	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *apiClient) FetchMetadata(url string) (videoMeta, error) {
	var meta videoMeta
	err := c.post("/api/metadata", map[string]string{"url": url}, &meta)
	return meta, err
}

func (c *apiClient) SubmitClip(req clipRequest) (clipJob, error) {
	var job clipJob
	err := c.post("/api/clips", req, &job)
	return job, err
}

func (c *apiClient) GetJob(id uint) (clipJob, error) {
	var job clipJob
	err := c.get(fmt.Sprintf("/api/clips/%d", id), &job)
	return job, err
}
