package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing

	StorageBackend string // "local" or "s3"
	UploadDir      string // directory for locally stored images
	PublicBaseURL  string // origin prefixed to locally stored image URLs

	S3Region   string // S3 region (s3 backend only)
	S3Bucket   string // S3 bucket holding portfolio images
	S3Endpoint string // custom S3 endpoint (MinIO etc.), optional
	S3Access   string // S3 access key
	S3Secret   string // S3 secret key
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message. Storage settings are
// optional and default to the local backend.
func Load() Config {
	cfg := Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		DBUser:       must("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"),
		DBHost:       must("DB_HOST"),
		DBPort:       must("DB_PORT"),
		DBName:       must("DB_NAME"),
		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:   mustInt("BCRYPT_COST"),

		StorageBackend: envStr("STORAGE_BACKEND", "local"),
		UploadDir:      envStr("UPLOAD_DIR", "uploads"),
		PublicBaseURL:  envStr("PUBLIC_BASE_URL", ""),
	}
	if cfg.StorageBackend == "s3" {
		cfg.S3Region = must("S3_REGION")
		cfg.S3Bucket = must("S3_BUCKET")
		cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")
		cfg.S3Access = must("S3_ACCESS_KEY")
		cfg.S3Secret = must("S3_SECRET_KEY")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
