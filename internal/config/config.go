package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Languages  LanguagesConfig  `yaml:"languages"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Media      MediaConfig      `yaml:"media"`
	Review     ReviewConfig     `yaml:"review"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LanguagesConfig holds the capture language pair. Source is the
// language being read, target the language translations are wanted in.
// These are injected into the components that need them; nothing reads
// a shared settings store at call time.
type LanguagesConfig struct {
	Source string `yaml:"source" env:"LANG_SOURCE" env-default:"en"`
	Target string `yaml:"target" env:"LANG_TARGET" env-default:"ja"`
}

// EnrichmentConfig holds the LLM enrichment endpoint settings. The API
// is OpenAI-compatible; BaseURL defaults to Groq's.
type EnrichmentConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"ENRICH_BASE_URL"       env-default:"https://api.groq.com/openai/v1"`
	APIKey        string        `yaml:"api_key"        env:"ENRICH_API_KEY"`
	VisionModel   string        `yaml:"vision_model"   env:"ENRICH_VISION_MODEL"   env-default:"llama-3.2-90b-vision-preview"`
	TextModel     string        `yaml:"text_model"     env:"ENRICH_TEXT_MODEL"     env-default:"llama-3.3-70b-versatile"`
	VisionTimeout time.Duration `yaml:"vision_timeout" env:"ENRICH_VISION_TIMEOUT" env-default:"15s"`
	TextTimeout   time.Duration `yaml:"text_timeout"   env:"ENRICH_TEXT_TIMEOUT"   env-default:"10s"`
}

// Enabled reports whether enrichment is configured at all.
func (c EnrichmentConfig) Enabled() bool { return c.APIKey != "" }

// MediaConfig holds screenshot/crop file storage settings.
type MediaConfig struct {
	Root string `yaml:"root" env:"MEDIA_ROOT" env-default:"./media"`
}

// ReviewConfig holds spaced-repetition settings.
type ReviewConfig struct {
	// Timezone is the IANA location used for calendar-day arithmetic
	// when scheduling the next review.
	Timezone string `yaml:"timezone" env:"REVIEW_TIMEZONE" env-default:"Local"`
	// QueueLimit caps how many due terms one study session fetches.
	QueueLimit int `yaml:"queue_limit" env:"REVIEW_QUEUE_LIMIT" env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
