package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mememaker-site/clips"
	"mememaker-site/config"
	"mememaker-site/ffmpeg"
	"mememaker-site/ytdlp"
)

func getSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return -1, err
	}
	return fi.Size(), nil
}

// processClip drives one job through metadata -> download -> clip.
func processClip(job clips.Job) {

	startSecs := float64(job.StartMS) / 1000
	stopSecs := float64(job.StopMS) / 1000

	// metadata phase: re-probe so we never trust a client-supplied
	// duration for the actual cut
	clips.SetStatus(job.ID, clips.StatusMetadata)
	meta, err := ytdlp.GetMeta(job.URL)
	if err != nil {
		clips.SetFailed(job.ID, fmt.Errorf("couldn't probe %s: %v", job.URL, err))
		return
	}
	db.Model(&clips.Job{}).Where("id = ?", job.ID).
		Updates(map[string]interface{}{"title": meta.Title, "duration": meta.Duration})
	if stopSecs > meta.Duration+1 {
		clips.SetFailed(job.ID, fmt.Errorf("clip end %.1fs is past the video end %.1fs",
			stopSecs, meta.Duration))
		return
	}

	// download the source
	clips.SetStatus(job.ID, clips.StatusDownloading)
	srcFilename := fmt.Sprintf("%d-src.%s", job.ID, meta.Ext)
	srcFilepath := filepath.Join(config.GetDataDir(), srcFilename)
	defer os.Remove(srcFilepath)
	if err := ytdlp.Download(job.URL, srcFilepath); err != nil {
		clips.SetFailed(job.ID, fmt.Errorf("download failed: %v", err))
		return
	}

	// the container's real length can differ from the site metadata
	// (live trims, re-muxed sources), so check the downloaded file too
	length, err := ffmpeg.Length(srcFilepath)
	if err != nil {
		clips.SetFailed(job.ID, fmt.Errorf("couldn't read length of %s: %v", srcFilename, err))
		return
	}
	if stopSecs > length+1 {
		clips.SetFailed(job.ID, fmt.Errorf("clip end %.1fs is past the source end %.1fs",
			stopSecs, length))
		return
	}

	// cut the clip
	clips.SetStatus(job.ID, clips.StatusClipping)
	dstFilename := uuid.Must(uuid.NewV7()).String() + ".mp4"
	dstFilepath := filepath.Join(config.GetDataDir(), dstFilename)
	log.Debugf("clip from %s [%f-%f]", srcFilepath, startSecs, stopSecs)
	if err := ffmpeg.Clip(srcFilepath, dstFilepath, startSecs, stopSecs); err != nil {
		clips.SetFailed(job.ID, fmt.Errorf("clip failed: %v", err))
		return
	}

	updates := map[string]interface{}{"filename": dstFilename}
	if fileSize, err := getSize(dstFilepath); err == nil {
		updates["size"] = fileSize
	}
	db.Model(&clips.Job{}).Where("id = ?", job.ID).Updates(updates)

	clips.SetStatus(job.ID, clips.StatusCompleted)
}

func clipPending() {
	log.Debugln("clipPending...")

	// loop until no more pending jobs
	for {
		var job clips.Job
		err := db.Where("status = ?", clips.StatusPending).
			Order("created_at").First(&job).Error
		if err == gorm.ErrRecordNotFound {
			log.Debugln("no pending clip jobs")
			break
		}
		if err != nil {
			log.Errorln(err)
			break
		}

		processClip(job)
	}
}

func clipWorker() {
	// any in-flight jobs here died with a previous process, so reset them
	db.Model(&clips.Job{}).
		Where("status IN ?", []clips.Status{
			clips.StatusMetadata, clips.StatusDownloading, clips.StatusClipping,
		}).
		Update("status", clips.StatusPending)

	clipPending()
	ticker := time.NewTicker(10 * time.Second)
	for range ticker.C {
		clipPending()
	}
}
