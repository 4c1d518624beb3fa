package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	Database *Database       `json:"database" yaml:"database"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	Admin    *Admin          `json:"admin" yaml:"admin"`
	LLM      *LLM            `json:"llm" yaml:"llm"`
	Chat     *Chat           `json:"chat" yaml:"chat"`
	Notify   *Notify         `json:"notify" yaml:"notify"`
	Order    *Order          `json:"order" yaml:"order"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New 读取配置文件，文件不存在时只使用环境变量
func New(filename string) (*Config, error) {
	// .env 只是本地开发的便利，缺失不算错误
	_ = godotenv.Load()

	var conf Config
	content, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &conf); err != nil {
			return nil, fmt.Errorf("解析 %s 失败: %w", filename, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	conf.fillDefaults()
	conf.applyEnv()
	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

func (c *Config) fillDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.HashSalt == "" {
		c.App.HashSalt = "storefront"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	c.Database.fillDefaults()
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Admin == nil {
		c.Admin = &Admin{}
	}
	c.Admin.fillDefaults()
	if c.LLM == nil {
		c.LLM = &LLM{}
	}
	c.LLM.fillDefaults()
	if c.Chat == nil {
		c.Chat = &Chat{}
	}
	c.Chat.fillDefaults()
	if c.Notify == nil {
		c.Notify = &Notify{}
	}
	if c.Notify.Driver == "" {
		c.Notify.Driver = NotifyDriverLog
	}
	if c.Notify.Topic == "" {
		c.Notify.Topic = "storefront_order_notice"
	}
	if c.Order == nil {
		c.Order = &Order{}
	}
	if c.RocketMQ == nil {
		c.RocketMQ = &RocketMQConfig{}
	}
	if c.RocketMQ.Producer.Group == "" {
		c.RocketMQ.Producer.Group = "storefront_producer"
	}
	if c.RocketMQ.Producer.Retry == 0 {
		c.RocketMQ.Producer.Retry = 2
	}
}

// applyEnv 环境变量优先级高于配置文件，变量名沿用线上部署的命名
func (c *Config) applyEnv() {
	setString(&c.Database.DSN, "DATABASE_URL")
	setString(&c.Database.Driver, "DATABASE_DRIVER")
	setString(&c.Admin.Password, "ADMIN_PASSWORD")
	setString(&c.Admin.TokenSecret, "ADMIN_TOKEN_SECRET")
	setString(&c.Notify.Email, "ADMIN_NOTIFICATION_EMAIL")
	setString(&c.Notify.Sender, "SENDER_EMAIL")
	setString(&c.LLM.APIKey, "API_KEY")
	setString(&c.LLM.BaseURL, "LLM_BASE_URL")
	setString(&c.LLM.Model, "LLM_MODEL")
	setString(&c.Redis.Address, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Server.Http = port
		}
	}
}

// Validate 启动前检查必填配置，缺失直接失败而不是等到第一个请求
func (c *Config) Validate() error {
	errs := []error{c.ValidateDatabase()}
	if c.Admin.Password == "" {
		errs = append(errs, errors.New("admin password is required (ADMIN_PASSWORD)"))
	}
	if c.Notify.Email == "" {
		errs = append(errs, errors.New("operator notification address is required (ADMIN_NOTIFICATION_EMAIL)"))
	}
	if c.LLM.APIKey == "" {
		errs = append(errs, errors.New("generative ai api key is required (API_KEY)"))
	}
	switch c.Notify.Driver {
	case NotifyDriverLog:
	case NotifyDriverRocketMQ:
		if len(c.RocketMQ.NameServer) == 0 {
			errs = append(errs, errors.New("rocketmq nameserver is required when notify.driver is rocketmq"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported notify driver %q", c.Notify.Driver))
	}
	switch c.Chat.Store {
	case ChatStoreMemory:
	case ChatStoreRedis:
		if c.Redis.Address == "" {
			errs = append(errs, errors.New("redis address is required when chat.store is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported chat store %q", c.Chat.Store))
	}
	return errors.Join(errs...)
}

// ValidateDatabase migrate/seed 只需要数据库配置
func (c *Config) ValidateDatabase() error {
	var errs []error
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database dsn is required (DATABASE_URL)"))
	}
	if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverMySQL {
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.Database.Driver))
	}
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
