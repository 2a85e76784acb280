package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sys/unix"

	"mememaker-site/config"
	"mememaker-site/ffmpeg"
	"mememaker-site/ytdlp"
)

// getFreeSpace returns the free space in bytes for the filesystem containing the given directory
func getFreeSpace(dir string) (uint64, error) {
	var stat unix.Statfs_t
	err := unix.Statfs(dir, &stat)
	if err != nil {
		return 0, fmt.Errorf("error getting filesystem stats: %v", err)
	}

	freeSpace := stat.Bavail * uint64(stat.Bsize)
	return freeSpace, nil
}

// getDirectorySize calculates the total size of a directory in bytes
func getDirectorySize(dir string) (int64, error) {
	var size int64
	err := filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("error walking directory: %v", err)
	}
	return size, nil
}

// StatusGet reports tool versions, disk usage, and build info.
func StatusGet(c echo.Context) error {

	ytdlpStdout, _, err := ytdlp.Run("--version")
	if err != nil {
		log.Errorln(err)
	}
	ffmpegStdout, _, err := ffmpeg.Ffmpeg("-version")
	if err != nil {
		log.Errorln(err)
	}

	free, err := getFreeSpace(config.GetDataDir())
	if err != nil {
		log.Errorln(err)
	}
	used, err := getDirectorySize(config.GetDataDir())
	if err != nil {
		log.Errorln(err)
	}

	ffmpegVersion := ""
	if lines := strings.SplitN(string(ffmpegStdout), "\n", 2); len(lines) > 0 {
		ffmpegVersion = strings.TrimSpace(lines[0])
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ytdlp":      strings.TrimSpace(string(ytdlpStdout)),
		"ffmpeg":     ffmpegVersion,
		"free_mib":   fmt.Sprintf("%.2f", float64(free)/1024/1024),
		"used_mib":   fmt.Sprintf("%.2f", float64(used)/1024/1024),
		"git_sha":    config.GetGitSHA(),
		"build_date": config.GetBuildDate(),
	})
}
