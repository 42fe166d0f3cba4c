package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"env"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ShutdownSecond int    `mapstructure:"shutdown_seconds"`
}

type MongoConf struct {
	URI             string `mapstructure:"uri"`
	Database        string `mapstructure:"database"`
	UsersCollection string `mapstructure:"users_collection"`
	MediaCollection string `mapstructure:"media_collection"`
}

type AWSConf struct {
	Region   string `mapstructure:"region"`
	Bucket   string `mapstructure:"bucket"`
	Endpoint string `mapstructure:"endpoint"`
}

type S3Conf struct {
	PresignTTLHours int `mapstructure:"presign_ttl_hours"`
}

type JWTConf struct {
	Secret        string `mapstructure:"secret"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

type UploadConf struct {
	MaxFileSizeMB     int    `mapstructure:"max_file_size_mb"`
	AllowedImageTypes string `mapstructure:"allowed_image_types"`
	AllowedVideoTypes string `mapstructure:"allowed_video_types"`
}

type CORSConf struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

type Config struct {
	App    AppConf    `mapstructure:"app"`
	Mongo  MongoConf  `mapstructure:"mongodb"`
	AWS    AWSConf    `mapstructure:"aws"`
	S3     S3Conf     `mapstructure:"s3"`
	JWT    JWTConf    `mapstructure:"jwt"`
	Upload UploadConf `mapstructure:"upload"`
	CORS   CORSConf   `mapstructure:"cors"`
	Log    struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	// derived
	ShutdownTimeout  time.Duration
	TokenTTL         time.Duration
	PresignTTL       time.Duration
	MaxFileSizeBytes int64
	ImageTypes       []string
	VideoTypes       []string
	Origins          []string
}

// Load reads the optional config file at path and overrides every key from the
// environment (APP_PORT, MONGODB_URI, JWT_SECRET, ...).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second
	cfg.TokenTTL = time.Duration(cfg.JWT.ExpireMinutes) * time.Minute
	cfg.PresignTTL = time.Duration(cfg.S3.PresignTTLHours) * time.Hour
	cfg.MaxFileSizeBytes = int64(cfg.Upload.MaxFileSizeMB) * 1024 * 1024
	cfg.ImageTypes = splitCSV(cfg.Upload.AllowedImageTypes)
	cfg.VideoTypes = splitCSV(cfg.Upload.AllowedVideoTypes)
	cfg.Origins = splitCSV(cfg.CORS.AllowedOrigins)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8000)
	v.SetDefault("app.shutdown_seconds", 15)
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "CloudMediaDB")
	v.SetDefault("mongodb.users_collection", "users")
	v.SetDefault("mongodb.media_collection", "media")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.bucket", "media-files")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("s3.presign_ttl_hours", 24*365)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire_minutes", 1440)
	v.SetDefault("upload.max_file_size_mb", 100)
	v.SetDefault("upload.allowed_image_types", "image/jpeg,image/png,image/gif,image/webp")
	v.SetDefault("upload.allowed_video_types", "video/mp4,video/mpeg,video/quicktime,video/webm")
	v.SetDefault("cors.allowed_origins", "http://localhost:4200")
	v.SetDefault("log.level", "info")
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
