package ytdlp

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// runs yt-dlp with the provided args and returns (stdout, stderr, error)
func Run(args ...string) ([]byte, []byte, error) {
	ytdlp := "yt-dlp"
	log.Infoln(ytdlp, strings.Join(args, " "))
	cmd := exec.Command(ytdlp, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	if err != nil {
		log.Errorf("yt-dlp error: %v", err)
	}
	log.Infoln("stdout:", stdout.String())
	log.Infoln("stderr:", stderr.String())
	return stdout.Bytes(), stderr.Bytes(), err
}

type Meta struct {
	Title    string
	Duration float64 // seconds
	Ext      string
}

// GetMeta probes a URL without downloading anything.
func GetMeta(url string) (Meta, error) {
	stdout, _, err := Run("--simulate", "--print", "%(title)s\n%(duration)s\n%(ext)s", url)
	if err != nil {
		return Meta{}, err
	}

	lines := strings.Split(strings.TrimSpace(string(stdout)), "\n")
	if len(lines) < 3 {
		return Meta{}, fmt.Errorf("couldn't parse yt-dlp output: %q", string(stdout))
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(lines[1]), 64)
	if err != nil {
		return Meta{}, fmt.Errorf("couldn't parse duration %q: %v", lines[1], err)
	}

	return Meta{
		Title:    strings.TrimSpace(lines[0]),
		Duration: duration,
		Ext:      strings.TrimSpace(lines[2]),
	}, nil
}

// Download fetches the best available streams for url into dst.
func Download(url, dst string) error {
	_, _, err := Run(
		"-f", "bestvideo+bestaudio/best",
		"-o", dst,
		url)
	return err
}
