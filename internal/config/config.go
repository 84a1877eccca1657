package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string            `yaml:"env" env:"ENV" env-default:"local"`
	DSN         string            `yaml:"dsn" env:"DSN" env-required:"true"`
	HTTP        HTTPConfig        `yaml:"http"`
	Auth        AuthConfig        `yaml:"auth"`
	FileStorage FileStorageConfig `yaml:"file_storage"`
	ImageHost   ImageHostConfig   `yaml:"image_host"`
	Redis       RedisConf         `yaml:"redis"`
	Cache       CacheConfig       `yaml:"cache"`
}

type HTTPConfig struct {
	Host         string        `yaml:"host" env:"HTTP_HOST"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	AllowOrigins []string      `yaml:"allow_origins" env:"HTTP_ALLOW_ORIGINS" env-default:"*"`
	BodyLimit    string        `yaml:"body_limit" env-default:"12M"`
	Timeout      time.Duration `yaml:"timeout" env-default:"15s"`
}

type AuthConfig struct {
	Secret        string        `yaml:"secret" env:"AUTH_SECRET" env-required:"true"`
	TokenTTL      time.Duration `yaml:"token_ttl" env:"AUTH_TOKEN_TTL" env-default:"24h"`
	AdminEmail    string        `yaml:"admin_email" env:"ADMIN_EMAIL"`
	AdminPassword string        `yaml:"admin_password" env:"ADMIN_PASSWORD"`
	AdminName     string        `yaml:"admin_name" env:"ADMIN_NAME" env-default:"Studio Admin"`
}

type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env-default:"./uploads"`
	BaseURL string `yaml:"base_url" env-default:"/uploads"`
	MaxSize int64  `yaml:"max_size" env-default:"10485760"`
}

// ImageHostConfig points at the third-party image host. When BaseURL is
// empty uploads go to the local file storage instead.
type ImageHostConfig struct {
	BaseURL      string        `yaml:"base_url" env:"IMAGE_HOST_URL"`
	UploadPreset string        `yaml:"upload_preset" env:"IMAGE_HOST_PRESET"`
	APIKey       string        `yaml:"api_key" env:"IMAGE_HOST_API_KEY"`
	Folder       string        `yaml:"folder" env-default:"studio"`
	Timeout      time.Duration `yaml:"timeout" env-default:"30s"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redispassword" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
}

type CacheConfig struct {
	TTL             time.Duration `yaml:"ttl" env-default:"1m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env-default:"5m"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	cfg, err := LoadPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func LoadPath(configPath string) (*Config, error) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &os.PathError{Op: "config", Path: configPath, Err: os.ErrNotExist}
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
