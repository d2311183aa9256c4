package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort string `env:"PORT" envDefault:"3000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:4200,http://127.0.0.1:4200"`

	DBType     string `env:"DB_TYPE" envDefault:"postgres"`
	DSNURL     string `env:"DATABASE_URL" envDefault:""`
	DBUser     string `env:"DB_USER" envDefault:"come_pouco_user"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"come_pouco_pass"`
	DBAddr     string `env:"DB_HOST" envDefault:"localhost"`
	DBName     string `env:"DB_NAME" envDefault:"come_pouco_db"`
	DBPath     string `env:"DB_PATH" envDefault:"datas/come_pouco.db"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	JWTSecret    string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTIssuer    string        `env:"JWT_ISSUER" envDefault:"come-pouco"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"8h"`
	BcryptCost   int           `env:"BCRYPT_COST" envDefault:"10"`

	// 初始管理员，两项都设置时启动时创建
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminFullName string `env:"ADMIN_FULL_NAME" envDefault:"Administrator"`

	UploadMaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`

	StorageType          string `env:"STORAGE_TYPE" envDefault:"local"`
	StorageLocalDir      string `env:"STORAGE_LOCAL_DIR" envDefault:"datas/uploads"`
	StoragePublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL" envDefault:"http://localhost:3000/files"`

	// S3 兼容存储配置
	StorageS3Region          string `env:"STORAGE_S3_REGION"`
	StorageS3Bucket          string `env:"STORAGE_S3_BUCKET"`
	StorageS3Prefix          string `env:"STORAGE_S3_PREFIX"`
	StorageS3Endpoint        string `env:"STORAGE_S3_ENDPOINT"`
	StorageS3AccessKeyID     string `env:"STORAGE_S3_ACCESS_KEY_ID"`
	StorageS3SecretAccessKey string `env:"STORAGE_S3_SECRET_ACCESS_KEY"`
	StorageS3SessionToken    string `env:"STORAGE_S3_SESSION_TOKEN"`
	StorageS3ForcePathStyle  bool   `env:"STORAGE_S3_FORCE_PATH_STYLE" envDefault:"false"`

	// 阿里云 OSS 存储配置
	StorageOSSEndpoint        string `env:"STORAGE_OSS_ENDPOINT"`
	StorageOSSBucket          string `env:"STORAGE_OSS_BUCKET"`
	StorageOSSPrefix          string `env:"STORAGE_OSS_PREFIX"`
	StorageOSSAccessKeyID     string `env:"STORAGE_OSS_ACCESS_KEY_ID"`
	StorageOSSAccessKeySecret string `env:"STORAGE_OSS_ACCESS_KEY_SECRET"`

	// 腾讯云 COS 存储配置
	StorageCOSBucketURL string `env:"STORAGE_COS_BUCKET_URL"`
	StorageCOSPrefix    string `env:"STORAGE_COS_PREFIX"`
	StorageCOSSecretID  string `env:"STORAGE_COS_SECRET_ID"`
	StorageCOSSecretKey string `env:"STORAGE_COS_SECRET_KEY"`

	// Cloudflare R2 存储配置
	StorageR2AccountID       string `env:"STORAGE_R2_ACCOUNT_ID"`
	StorageR2Endpoint        string `env:"STORAGE_R2_ENDPOINT"`
	StorageR2Region          string `env:"STORAGE_R2_REGION" envDefault:"auto"`
	StorageR2Bucket          string `env:"STORAGE_R2_BUCKET"`
	StorageR2Prefix          string `env:"STORAGE_R2_PREFIX"`
	StorageR2AccessKeyID     string `env:"STORAGE_R2_ACCESS_KEY_ID"`
	StorageR2SecretAccessKey string `env:"STORAGE_R2_SECRET_ACCESS_KEY"`
}

// ParseConfig loads an optional .env file and then reads the environment.
func ParseConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("failed to load .env file")
	}

	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.WithFields(logrus.Fields{
		"port":    Conf.HTTPPort,
		"db_type": Conf.DBType,
		"storage": Conf.StorageType,
	}).Debug("config loaded")
	return Conf, nil
}
