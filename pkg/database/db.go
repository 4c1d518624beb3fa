package database

import (
	"Storefront/config"
	"Storefront/models"
	"Storefront/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接，连不上直接返回错误
func NewDB(conf *config.Config) (*gorm.DB, error) {
	dialector, err := newDialector(conf.Database)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.Default.LogMode(logger.Silent)
	if conf.Debug() {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(conf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(conf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(conf.Database.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db, nil
}

func newDialector(conf *config.Database) (gorm.Dialector, error) {
	switch conf.Driver {
	case config.DriverPostgres:
		pgxConf, err := pgx.ParseConfig(conf.DSN)
		if err != nil {
			return nil, fmt.Errorf("parse postgres dsn: %w", err)
		}
		return postgres.New(postgres.Config{Conn: stdlib.OpenDB(*pgxConf)}), nil
	case config.DriverMySQL:
		return mysql.Open(conf.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}

// Migrate 建表/补字段
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.L.Info("database migrated")
	return nil
}

// ProvideDB 供 wire 使用，附带关闭函数
func ProvideDB(conf *config.Config) (*gorm.DB, func(), error) {
	db, err := NewDB(conf)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { Close(db) }, nil
}

// Close 关闭底层连接池
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.L.Warn("close database", zap.Error(err))
	}
}
