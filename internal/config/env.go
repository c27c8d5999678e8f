package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env is the process configuration, read once at startup.
type Env struct {
	AppAddr            string
	GinMode            string
	CORSAllowedOrigins []string
	ModelPath          string
	ScoringTimeout     time.Duration
}

// LoadEnv reads configuration from the environment, with an optional
// .env file for local development. Every value has a default; nothing is
// required.
func LoadEnv() Env {
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		var parsed []string
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				parsed = append(parsed, o)
			}
		}
		// A value of only commas/whitespace keeps the defaults; an
		// empty origin list is not a valid CORS config.
		if len(parsed) > 0 {
			origins = parsed
		}
	}

	timeout := 2000 * time.Millisecond
	if env := strings.TrimSpace(os.Getenv("SCORING_TIMEOUT_MS")); env != "" {
		if ms, err := strconv.Atoi(env); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		CORSAllowedOrigins: origins,
		ModelPath:          strings.TrimSpace(os.Getenv("MODEL_PATH")),
		ScoringTimeout:     timeout,
	}
}
