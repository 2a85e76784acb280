package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var gitSHA string
var buildDate string

func GetDataDir() string {
	value, exists := os.LookupEnv("MEMEMAKER_DATA_DIR")
	if exists {
		return value
	}
	return "data"
}

// defaults to GetDataDir() / config
func GetConfigDir() string {
	value, exists := os.LookupEnv("MEMEMAKER_CONFIG_DIR")
	if exists {
		return value
	}
	return filepath.Join(GetDataDir(), "config")
}

func GetListenAddr() string {
	value, exists := os.LookupEnv("MEMEMAKER_LISTEN_ADDR")
	if exists {
		return value
	}
	return ":8080"
}

// base URL clients use to reach this server, for building download links
func GetBaseURL() string {
	value, exists := os.LookupEnv("MEMEMAKER_BASE_URL")
	if exists {
		return strings.TrimRight(value, "/")
	}
	return "http://localhost:8080"
}

func GetSessionAuthKey() ([]byte, error) {
	key := "MEMEMAKER_SESSION_AUTH_KEY"
	value, exists := os.LookupEnv(key)
	if exists {
		return []byte(value), nil
	}
	return []byte{}, fmt.Errorf("please set %s", key)
}

func GetSecure() bool {
	key := "MEMEMAKER_SECURE"
	if value, exists := os.LookupEnv(key); exists {
		lower := strings.ToLower(value)
		if lower == "on" || lower == "1" || lower == "true" || lower == "yes" {
			return true
		}
	}
	return false
}

func GetGitSHA() string {
	if gitSHA == "" {
		return "<not provided>"
	} else {
		return gitSHA
	}
}

func GetBuildDate() string {
	if buildDate == "" {
		return "<not provided>"
	} else {
		return buildDate
	}
}
