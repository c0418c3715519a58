package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"
)

type Config struct {
	Server     ServerConfig
	Photos     PhotosConfig
	Optimizer  OptimizerConfig
	Cloudinary CloudinaryConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Admin      AdminConfig
	S3         S3Config
	Log        LogConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port              int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout       time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"5s"`
	WriteTimeout      time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout       time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment       string        `envconfig:"ENVIRONMENT" default:"development"`
	ServeStatic       bool          `envconfig:"SERVE_STATIC" default:"true"`
}

type PhotosConfig struct {
	PublicDir          string        `envconfig:"PHOTOS_PUBLIC_DIR" default:"public"`
	OriginalDir        string        `envconfig:"PHOTOS_ORIGINAL_DIR"`
	OptimizedDir       string        `envconfig:"PHOTOS_OPTIMIZED_DIR"`
	ManifestPath       string        `envconfig:"PHOTOS_MANIFEST_PATH"`
	OriginalPrefix     string        `envconfig:"PHOTOS_ORIGINAL_PREFIX" default:"/photos"`
	OptimizedPrefix    string        `envconfig:"PHOTOS_OPTIMIZED_PREFIX" default:"/photos-optimized"`
	ExtractTimeout     time.Duration `envconfig:"PHOTOS_EXTRACT_TIMEOUT" default:"10s"`
	ExtractConcurrency int           `envconfig:"PHOTOS_EXTRACT_CONCURRENCY" default:"8"`
	Store              string        `envconfig:"PHOTOS_STORE" default:"file"`
	UseExiftool        bool          `envconfig:"PHOTOS_USE_EXIFTOOL" default:"true"`
}

func (c PhotosConfig) OriginalPath() string {
	if c.OriginalDir != "" {
		return c.OriginalDir
	}
	return filepath.Join(c.PublicDir, "photos")
}

func (c PhotosConfig) OptimizedPath() string {
	if c.OptimizedDir != "" {
		return c.OptimizedDir
	}
	return filepath.Join(c.PublicDir, "photos-optimized")
}

func (c PhotosConfig) ManifestFile() string {
	if c.ManifestPath != "" {
		return c.ManifestPath
	}
	return filepath.Join(c.PublicDir, "photos-manifest.json")
}

type OptimizerConfig struct {
	MaxWidth  int `envconfig:"MAX_WIDTH" default:"1920"`
	MaxHeight int `envconfig:"MAX_HEIGHT" default:"1080"`
	Quality   int `envconfig:"QUALITY" default:"78"`
}

type CloudinaryConfig struct {
	URL          string `envconfig:"CLOUDINARY_URL"`
	CloudName    string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	APIKey       string `envconfig:"CLOUDINARY_API_KEY"`
	APISecret    string `envconfig:"CLOUDINARY_API_SECRET"`
	Folder       string `envconfig:"CLOUDINARY_FOLDER"`
	MaxResults   int    `envconfig:"CLOUDINARY_MAX_RESULTS" default:"500"`
	DisplayWidth int    `envconfig:"CLOUDINARY_DISPLAY_WIDTH" default:"1600"`
}

// Configured reports whether either the combined URL or all three individual credentials are set.
func (c CloudinaryConfig) Configured() bool {
	return c.URL != "" || (c.CloudName != "" && c.APIKey != "" && c.APISecret != "")
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
	// StatementTimeout bounds every query, including the transaction that
	// replaces the whole record set on regeneration.
	StatementTimeout time.Duration `envconfig:"DB_STATEMENT_TIMEOUT" default:"30s"`
	MigrationsPath   string        `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	// Timeout bounds dialing and every command.
	Timeout time.Duration `envconfig:"REDIS_TIMEOUT" default:"500ms"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type CacheConfig struct {
	TTL time.Duration `envconfig:"CACHE_TTL" default:"30s"`
}

type AdminConfig struct {
	JWTSecret string        `envconfig:"ADMIN_JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"ADMIN_TOKEN_TTL" default:"24h"`
}

func (c AdminConfig) Enabled() bool {
	return c.JWTSecret != ""
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	PublicURL       string `envconfig:"S3_PUBLIC_URL"`
	KeyPrefix       string `envconfig:"S3_KEY_PREFIX"`
}

func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"100"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Photos.Store != StoreFile && cfg.Photos.Store != StorePostgres {
		return nil, fmt.Errorf("loading config: unknown PHOTOS_STORE %q", cfg.Photos.Store)
	}
	return &cfg, nil
}
