package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Teacher TeacherConfig
	JWT     JWTConfig
	CORS    CORSConfig
	Log     LogConfig
	AI      AIConfig
	Exports ExportsConfig
	Streak  StreakConfig
	Seed    SeedConfig
}

// TeacherConfig holds the single configured teacher account.
type TeacherConfig struct {
	Email        string
	PasswordHash string
	DisplayName  string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AIConfig configures the external comment-generation endpoint.
type AIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// ExportsConfig controls where rendered CSV/PDF files are written.
type ExportsConfig struct {
	StorageDir string
	ResultTTL  time.Duration
}

// StreakConfig locates the visit-streak state file.
type StreakConfig struct {
	StateFile string
}

// SeedConfig toggles loading of the bundled demo roster on startup.
type SeedConfig struct {
	DemoData bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// a missing .env is fine, every key has a default or env override
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Teacher = TeacherConfig{
		Email:        v.GetString("TEACHER_EMAIL"),
		PasswordHash: v.GetString("TEACHER_PASSWORD_HASH"),
		DisplayName:  v.GetString("TEACHER_DISPLAY_NAME"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.AI = AIConfig{
		BaseURL: v.GetString("AI_BASE_URL"),
		APIKey:  v.GetString("AI_API_KEY"),
		Model:   v.GetString("AI_MODEL"),
		Timeout: parseDuration(v.GetString("AI_TIMEOUT"), 30*time.Second),
	}

	cfg.Exports = ExportsConfig{
		StorageDir: v.GetString("EXPORTS_STORAGE_DIR"),
		ResultTTL:  parseDuration(v.GetString("EXPORTS_RESULT_TTL"), 24*time.Hour),
	}

	cfg.Streak = StreakConfig{
		StateFile: v.GetString("STREAK_STATE_FILE"),
	}

	cfg.Seed = SeedConfig{
		DemoData: v.GetBool("SEED_DEMO_DATA"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("TEACHER_EMAIL", "teacher@edutrack.local")
	v.SetDefault("TEACHER_PASSWORD_HASH", "")
	v.SetDefault("TEACHER_DISPLAY_NAME", "Teacher")

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "edutrack-api")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("AI_BASE_URL", "")
	v.SetDefault("AI_API_KEY", "")
	v.SetDefault("AI_MODEL", "gemini-flash")
	v.SetDefault("AI_TIMEOUT", "30s")

	v.SetDefault("EXPORTS_STORAGE_DIR", "./exports")
	v.SetDefault("EXPORTS_RESULT_TTL", "24h")

	v.SetDefault("STREAK_STATE_FILE", "./data/streak.json")

	v.SetDefault("SEED_DEMO_DATA", false)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
