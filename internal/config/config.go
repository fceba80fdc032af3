package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	APIBaseURL string // backend REST root, e.g. http://localhost:5000/api

	StateDBPath string // sqlite file holding the persisted session token
	PageSize    int    // catalog sweep page size
	HTTPTimeout time.Duration

	AssumeYes bool // skip interactive confirmation of destructive actions
}

func FromEnv() Config {
	return Config{
		APIBaseURL:  strings.TrimSuffix(envOr("ADMIN_API_URL", "http://localhost:5000/api"), "/"),
		StateDBPath: envOr("ADMIN_STATE_DB", defaultStatePath()),
		PageSize:    envInt("ADMIN_PAGE_SIZE", 100),
		HTTPTimeout: time.Duration(envInt("ADMIN_HTTP_TIMEOUT", 30)) * time.Second,
		AssumeYes:   envBool("ADMIN_ASSUME_YES", false),
	}
}

func defaultStatePath() string {
	if dir, err := os.UserHomeDir(); err == nil && dir != "" {
		return dir + "/.adminctl.db"
	}
	return "adminctl.db"
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
