/**
* Name: 			config.go
* Description: 		Startup secrets and runtime settings
* Workflow: 		.env load (optional), environment read, validation
 */

package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingSecret is returned by Load when a required secret is absent.
var ErrMissingSecret = errors.New("missing required secret")

const (
	STTProviderOpenAI = "openai"
	STTProviderGoogle = "google"
)

// bcrypt only reads the first 72 bytes of its input.
const maxPasscodeBytes = 72

type Config struct {
	// Required secrets.
	OpenAIAPIKey   string
	StoreURL       string // SUPABASE_URL
	StoreKey       string // SUPABASE_KEY
	ClinicPasscode string // CLINIC_PASSWORD

	Port          int
	SessionSecret []byte
	SessionTTL    time.Duration
	SecureCookies bool

	LogLevel  string
	LogFormat string

	OpenAIBaseURL         string
	OpenAIChatModel       string
	OpenAITranscribeModel string

	STTProvider        string
	GoogleCredentials  string
	SpeechLanguage     string
	TTSEnabled         bool
	NATSURL            string
	RateLimitPerMinute int
}

// Load reads an optional .env file and then the environment. Every missing
// secret is reported in one error wrapping ErrMissingSecret.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("load %s: %w", f, err)
			}
		}
	}

	c := &Config{
		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		StoreURL:              os.Getenv("SUPABASE_URL"),
		StoreKey:              os.Getenv("SUPABASE_KEY"),
		ClinicPasscode:        os.Getenv("CLINIC_PASSWORD"),
		LogLevel:              envOrDefault("LOG_LEVEL", "info"),
		LogFormat:             envOrDefault("LOG_FORMAT", "text"),
		OpenAIBaseURL:         os.Getenv("OPENAI_BASE_URL"),
		OpenAIChatModel:       envOrDefault("OPENAI_CHAT_MODEL", "gpt-4o"),
		OpenAITranscribeModel: envOrDefault("OPENAI_TRANSCRIBE_MODEL", "whisper-1"),
		STTProvider:           strings.ToLower(envOrDefault("STT_PROVIDER", STTProviderOpenAI)),
		GoogleCredentials:     os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		SpeechLanguage:        envOrDefault("SPEECH_LANGUAGE", "en-US"),
		NATSURL:               os.Getenv("NATS_URL"),
	}

	var missing []string
	for _, s := range []struct{ name, value string }{
		{"OPENAI_API_KEY", c.OpenAIAPIKey},
		{"SUPABASE_URL", c.StoreURL},
		{"SUPABASE_KEY", c.StoreKey},
		{"CLINIC_PASSWORD", c.ClinicPasscode},
	} {
		if s.value == "" {
			missing = append(missing, s.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSecret, strings.Join(missing, ", "))
	}
	if len(c.ClinicPasscode) > maxPasscodeBytes {
		return nil, fmt.Errorf("CLINIC_PASSWORD must be at most %d bytes", maxPasscodeBytes)
	}

	var err error
	if c.Port, err = envInt("PORT", 8080); err != nil {
		return nil, err
	}
	if c.RateLimitPerMinute, err = envInt("RATE_LIMIT_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if c.RateLimitPerMinute < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.SessionTTL, err = time.ParseDuration(envOrDefault("SESSION_TTL", "12h")); err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if c.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.TTSEnabled, err = envBool("TTS_ENABLED", false); err != nil {
		return nil, err
	}
	if c.SecureCookies, err = envBool("SECURE_COOKIES", false); err != nil {
		return nil, err
	}

	switch c.STTProvider {
	case STTProviderOpenAI:
	case STTProviderGoogle:
		if c.GoogleCredentials == "" {
			return nil, fmt.Errorf("%w: GOOGLE_APPLICATION_CREDENTIALS (required by STT_PROVIDER=google)", ErrMissingSecret)
		}
	default:
		return nil, fmt.Errorf("STT_PROVIDER: unsupported provider %q", c.STTProvider)
	}
	if c.TTSEnabled && c.GoogleCredentials == "" {
		return nil, fmt.Errorf("%w: GOOGLE_APPLICATION_CREDENTIALS (required by TTS_ENABLED)", ErrMissingSecret)
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		c.SessionSecret = []byte(secret)
	} else {
		// Sessions do not survive a restart without a configured secret.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
		c.SessionSecret = []byte(hex.EncodeToString(buf))
	}

	return c, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
