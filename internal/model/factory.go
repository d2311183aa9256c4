package model

import (
	"comepouco/internal/config"
	"comepouco/internal/entity/db"
	"comepouco/internal/model/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const (
	DBTypeMySQL    = "mysql"
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// RepositoryFactory 根据数据库类型创建对应的仓库实现
type RepositoryFactory struct {
	// 为 false 时跳过 AutoMigrate
	AutoMigrate bool
}

// NewRepositoryFactory 创建新的仓库工厂
func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{AutoMigrate: true}
}

// InitRepository 初始化仓库的辅助函数
func InitRepository(cfg *config.Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if strings.TrimSpace(cfg.DBType) == "" {
		return nil, errors.New("DB_TYPE is not configured")
	}
	return NewRepositoryFactory().CreateRepository(cfg)
}

// CreateRepository 根据配置创建对应的仓库实现
func (f *RepositoryFactory) CreateRepository(cfg *config.Config) (Repository, error) {
	dialector, err := f.dialector(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := f.openGormDB(dialector)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBType, err)
	}

	if f.AutoMigrate {
		if err := Migrate(gdb); err != nil {
			if sqlDB, dbErr := gdb.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return sql.NewGormRepository(gdb), nil
}

func (f *RepositoryFactory) dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.DBType)) {
	case DBTypeMySQL:
		dsn := cfg.DSNURL
		if dsn == "" {
			// 从各个配置项构建 DSN
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.DBUser, cfg.DBPassword, cfg.DBAddr, cfg.DBPort, cfg.DBName)
		}
		return mysql.Open(dsn), nil
	case DBTypeSQLite:
		filePath := cfg.DBPath
		if filePath == "" {
			filePath = "datas/come_pouco.db"
		}
		// SQLite 会在连接时自动创建 .db 文件，但前提是目录已存在
		if dir := filepath.Dir(filePath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
			}
		}
		return sqlite.Open(filePath), nil
	case DBTypePostgres:
		dsn := cfg.DSNURL
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
				cfg.DBAddr, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}
}

func (f *RepositoryFactory) openGormDB(dialector gorm.Dialector) (*gorm.DB, error) {
	// 配置 GORM 日志
	gormLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second * 5,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   gormLogger,
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		return nil, err
	}

	// 配置连接池
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return gdb, nil
}

// Migrate 迁移数据库表结构
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&db.User{},
		&db.AffiliateLink{},
		&db.PurchasePlatform{},
	)
}
