package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del servicio.
// Se carga una sola vez en main y se inyecta explícitamente a los
// constructores (nada de leer env vars dentro de los adapters).
type Config struct {
	Port      string
	Env       string // local | prod
	LogLevel  string
	LogFormat string

	// DSN de Postgres. Vacío => repos in-memory (modo dev).
	DBDSN string

	Images ImagesConfig
	Gemini GeminiConfig
}

// ImagesConfig configura el object store de imágenes (S3/MinIO).
type ImagesConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// GeminiConfig configura los clientes de generación.
// APIKey vacío => stubs locales (modo dev, sin llamadas externas).
type GeminiConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &Config{
		Port:      port,
		Env:       env,
		LogLevel:  firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
		LogFormat: firstNonEmpty(os.Getenv("LOG_FORMAT"), defaultLogFormat(env)),
		DBDSN:     strings.TrimSpace(os.Getenv("DB_DSN")),
		Images: ImagesConfig{
			Endpoint:  strings.TrimSpace(os.Getenv("IMAGES_S3_ENDPOINT")),
			Region:    firstNonEmpty(os.Getenv("IMAGES_S3_REGION"), "us-east-1"),
			AccessKey: firstNonEmpty(os.Getenv("IMAGES_S3_ACCESS_KEY"), os.Getenv("MINIO_ROOT_USER")),
			SecretKey: firstNonEmpty(os.Getenv("IMAGES_S3_SECRET_KEY"), os.Getenv("MINIO_ROOT_PASSWORD")),
			Bucket:    firstNonEmpty(os.Getenv("IMAGES_S3_BUCKET"), "pet-care-images"),
			UseSSL:    parseBool(os.Getenv("IMAGES_S3_USE_SSL"), env != "local"),
		},
		Gemini: GeminiConfig{
			APIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			TextModel:  firstNonEmpty(os.Getenv("GEMINI_TEXT_MODEL"), "gemini-2.5-flash"),
			ImageModel: firstNonEmpty(os.Getenv("GEMINI_IMAGE_MODEL"), "imagen-3.0-generate-002"),
		},
	}, nil
}

func defaultLogFormat(env string) string {
	if strings.EqualFold(env, "local") {
		return "console"
	}
	return "json"
}

func parseBool(raw string, def bool) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
