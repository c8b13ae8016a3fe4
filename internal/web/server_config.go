package web

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvListenAddr = "OGIMAGE_LISTEN"
	EnvDevMode    = "OGIMAGE_DEV"
	EnvPublicURL  = "OGIMAGE_PUBLIC_URL"
	EnvOrigins    = "OGIMAGE_ALLOWED_ORIGINS"
)

// ServerConfig contains settings for running the preview server.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
	PublicURL  string

	// AllowedOrigins get CORS headers outside dev mode. Comma separated in the environment.
	AllowedOrigins []string
}

func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv(EnvOrigins), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return ServerConfig{
		ListenAddr:     listenAddr,
		DevMode:        devMode,
		PublicURL:      os.Getenv(EnvPublicURL),
		AllowedOrigins: origins,
	}, nil
}
