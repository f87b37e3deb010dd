package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DatabaseURL          string
	JWTSecret            string
	GoogleAudience       string
	AllowOrigins         []string
	LogstashTCPAddr      string
	MinIOEndpoint        string
	MinIOAccessKey       string
	MinIOSecretKey       string
	MinIOUseSSL          bool
	MinIOBucketListings  string
	MinIOPublicURL       string
	SessionTTL           time.Duration
	SMTPHost             string
	SMTPPort             string
	SMTPUsername         string
	SMTPPassword         string
	SMTPFrom             string
	OTPTTL               time.Duration
	OTPLength            int
	ResetTokenTTL        time.Duration
	ListingImageMaxBytes int64
	FFMPEGPath           string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	otpLen := 6
	if v, err := strconv.Atoi(getenv("OTP_LENGTH", "6")); err == nil && v > 0 {
		otpLen = v
	}

	imageMax := int64(5 * 1024 * 1024)
	if v, err := strconv.ParseInt(getenv("LISTING_IMAGE_MAX_BYTES", "5242880"), 10, 64); err == nil && v > 0 {
		imageMax = v
	}

	return Config{
		Port:                 getenv("PORT", "8080"),
		DatabaseURL:          must("DATABASE_URL"),
		JWTSecret:            must("JWT_SECRET"),
		GoogleAudience:       getenv("GOOGLE_AUDIENCE", ""),
		AllowOrigins:         splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:      getenv("LOGSTASH_TCP_ADDR", ""),
		MinIOEndpoint:        must("MINIO_ENDPOINT"),
		MinIOAccessKey:       must("MINIO_ACCESS_KEY"),
		MinIOSecretKey:       must("MINIO_SECRET_KEY"),
		MinIOUseSSL:          getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketListings:  getenv("MINIO_BUCKET_LISTINGS", "luxestate-listings"),
		MinIOPublicURL:       getenv("MINIO_PUBLIC_URL", ""),
		SessionTTL:           duration("SESSION_TTL", 24*time.Hour),
		SMTPHost:             getenv("SMTP_HOST", ""),
		SMTPPort:             getenv("SMTP_PORT", ""),
		SMTPUsername:         getenv("SMTP_USERNAME", ""),
		SMTPPassword:         getenv("SMTP_PASSWORD", ""),
		SMTPFrom:             getenv("SMTP_FROM", ""),
		OTPTTL:               duration("OTP_TTL", 10*time.Minute),
		OTPLength:            otpLen,
		ResetTokenTTL:        duration("RESET_TOKEN_TTL", 5*time.Minute),
		ListingImageMaxBytes: imageMax,
		FFMPEGPath:           getenv("FFMPEG_PATH", "ffmpeg"),
	}
}

func duration(k string, d time.Duration) time.Duration {
	raw := getenv(k, "")
	if raw == "" {
		return d
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", k, raw, d)
		return d
	}
	return parsed
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
