package configs

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// defaultBaseURL is the fixed production origin of the recipe cloud.
	defaultBaseURL = "https://client-api.xbloom.com/"

	// defaultRequestTimeout bounds every POST; a call either completes,
	// times out, or fails outright.
	defaultRequestTimeout = 15 * time.Second
)

type UserSettings struct {
	UserConfigsPath string
	CredentialsPath string
}

var UserXbrewSettings *UserSettings

func init() {
	// Optional .env overrides for development servers; a missing file is fine.
	_ = godotenv.Load()

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	xbrewDir := filepath.Join(configDir, "xbrew")
	UserXbrewSettings = &UserSettings{
		UserConfigsPath: xbrewDir,
		CredentialsPath: filepath.Join(xbrewDir, "credentials.json"),
	}
}

// BaseURL returns the API origin, honoring the XBREW_BASE_URL override.
func BaseURL() string {
	if v := os.Getenv("XBREW_BASE_URL"); v != "" {
		return v
	}
	return defaultBaseURL
}

// RequestTimeout returns the per-request ceiling, honoring the
// XBREW_TIMEOUT_SECONDS override.
func RequestTimeout() time.Duration {
	if v := os.Getenv("XBREW_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultRequestTimeout
}
