package ffmpeg

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Clip cuts [from, to) seconds out of src into dst. The output is
// re-encoded to H.264 + AAC: sources often arrive as AV1/VP9 + Opus,
// and stream-copy cuts can only land on keyframes anyway.
func Clip(src, dst string, from, to float64) error {
	duration := to - from
	if duration <= 0 {
		return fmt.Errorf("invalid time range: from=%f, to=%f", from, to)
	}
	_, _, err := Ffmpeg("-y",
		"-ss", fmt.Sprintf("%.3f", from),
		"-i", src,
		"-t", fmt.Sprintf("%.3f", duration),
		"-c:v", "libx264",
		"-crf", "23",
		"-preset", "veryfast",
		"-c:a", "aac",
		dst)
	return err
}

// runs ffmpeg with the provided args and returns (stdout, stderr, error)
func Ffmpeg(args ...string) ([]byte, []byte, error) {
	ffmpeg := "ffmpeg"
	log.Infoln(ffmpeg, strings.Join(args, " "))
	cmd := exec.Command(ffmpeg, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	if err != nil {
		log.Errorf("ffmpeg error: %v", err)
	}
	log.Infoln("stdout:", stdout.String())
	log.Infoln("stderr:", stderr.String())
	return stdout.Bytes(), stderr.Bytes(), err
}
