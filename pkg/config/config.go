package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Provider holds credentials of one OpenAI-compatible or Gemini endpoint.
type Provider struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Enabled: a provider without key is skipped.
func (p Provider) Enabled() bool { return strings.TrimSpace(p.APIKey) != "" }

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	JWTSecret    string
	JWTIssuer    string
	JWTTTL       time.Duration
	IntakeAPIKey string

	PublicBaseURL string
	APIBaseURL    string
	UploadDir     string
	FilesBaseURL  string
	MaxUploadMB   int

	OpenAI     Provider
	Groq       Provider
	Gemini     Provider
	LLMTimeout time.Duration
	LLMRPM     int

	AssessmentTTL time.Duration
	PollInterval  time.Duration

	LogJSON  bool
	LogDebug bool
}

var defaults = map[string]any{
	"PORT":                  "8080",
	"JWT_ISSUER":            "recruit-service",
	"JWT_TTL_MINUTES":       60,
	"PUBLIC_BASE_URL":       "https://recrutamentoia.com.br",
	"UPLOAD_DIR":            "uploads",
	"FILES_BASE_URL":        "http://localhost:8080/files",
	"MAX_UPLOAD_MB":         5,
	"OPENAI_BASE_URL":       "https://api.openai.com/v1",
	"OPENAI_MODEL":          "gpt-4o-mini",
	"GROQ_BASE_URL":         "https://api.groq.com/openai/v1",
	"GROQ_MODEL":            "llama3-8b-8192",
	"GEMINI_MODEL":          "gemini-2.5-flash",
	"LLM_TIMEOUT_SECONDS":   60,
	"LLM_RPM":               0,
	"ASSESSMENT_TTL_DAYS":   30,
	"POLL_INTERVAL_SECONDS": 5,
	"LOG_JSON":              false,
	"LOG_DEBUG":             false,
}

// Load reads environment variables, optionally from a .env file if present.
// v may carry flag bindings; nil means a fresh viper instance.
func Load(v *viper.Viper) Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	if v == nil {
		v = viper.New()
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	port := v.GetString("PORT")
	apiBase := v.GetString("API_BASE_URL")
	if apiBase == "" {
		apiBase = "http://localhost:" + port
	}

	return Config{
		Port:          port,
		DatabaseURL:   v.GetString("DATABASE_URL"),
		RedisURL:      v.GetString("REDIS_URL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		JWTIssuer:     v.GetString("JWT_ISSUER"),
		JWTTTL:        time.Duration(v.GetInt("JWT_TTL_MINUTES")) * time.Minute,
		IntakeAPIKey:  v.GetString("INTAKE_API_KEY"),
		PublicBaseURL: v.GetString("PUBLIC_BASE_URL"),
		APIBaseURL:    apiBase,
		UploadDir:     v.GetString("UPLOAD_DIR"),
		FilesBaseURL:  v.GetString("FILES_BASE_URL"),
		MaxUploadMB:   v.GetInt("MAX_UPLOAD_MB"),
		OpenAI: Provider{
			APIKey:  v.GetString("OPENAI_API_KEY"),
			BaseURL: v.GetString("OPENAI_BASE_URL"),
			Model:   v.GetString("OPENAI_MODEL"),
		},
		Groq: Provider{
			APIKey:  v.GetString("GROQ_API_KEY"),
			BaseURL: v.GetString("GROQ_BASE_URL"),
			Model:   v.GetString("GROQ_MODEL"),
		},
		Gemini: Provider{
			APIKey: v.GetString("GEMINI_API_KEY"),
			Model:  v.GetString("GEMINI_MODEL"),
		},
		LLMTimeout:    time.Duration(v.GetInt("LLM_TIMEOUT_SECONDS")) * time.Second,
		LLMRPM:        v.GetInt("LLM_RPM"),
		AssessmentTTL: time.Duration(v.GetInt("ASSESSMENT_TTL_DAYS")) * 24 * time.Hour,
		PollInterval:  time.Duration(v.GetInt("POLL_INTERVAL_SECONDS")) * time.Second,
		LogJSON:       v.GetBool("LOG_JSON"),
		LogDebug:      v.GetBool("LOG_DEBUG"),
	}
}

// MaxUploadBytes is the per-file résumé limit.
func (c Config) MaxUploadBytes() int { return c.MaxUploadMB << 20 }

// ValidateServe checks what the HTTP server cannot start without.
func (c Config) ValidateServe() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.MaxUploadMB <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_MB must be positive"))
	}
	return errors.Join(errs...)
}
