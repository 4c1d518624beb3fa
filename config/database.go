package config

import "time"

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Database 数据库配置
type Database struct {
	Driver          string        `json:"driver" yaml:"driver"`
	DSN             string        `json:"dsn" yaml:"dsn"`
	MaxOpenConns    int           `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns" yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime" yaml:"conn_max_lifetime"`
}

func (d *Database) fillDefaults() {
	if d.Driver == "" {
		d.Driver = DriverPostgres
	}
	if d.MaxOpenConns == 0 {
		d.MaxOpenConns = 20
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = 5
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = 30 * time.Minute
	}
}
