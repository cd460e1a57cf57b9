package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	JwtSecret string `yaml:"jwt_secret" json:"jwt_secret"`
	// JwtExpireHours is the lifetime of issued session tokens.
	JwtExpireHours int `yaml:"jwt_expire_hours" json:"jwt_expire_hours"`
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type SmtpConfig struct {
	Enable   bool   `yaml:"enable" json:"enable"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Logger   LoggerConfig `yaml:"logger" json:"logger"`
	Smtp     SmtpConfig   `yaml:"smtp" json:"smtp"`
}

// BlobstorePath returns the bbolt database file used for binary objects.
func (c *AppConfig) BlobstorePath() string {
	return filepath.Join(c.System.Workdir, "data", "blobstore.db")
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "FoodOn",
		Location: "Asia/Ho_Chi_Minh",
		Workdir:  "/var/foodon",
		Debug:    true,
	},
	Web: WebConfig{
		Host:           "0.0.0.0",
		Port:           8090,
		JwtSecret:      "9b6de5cc-foodon-1339-secret",
		JwtExpireHours: 24,
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "foodon",
		User:     "postgres",
		Passwd:   "root",
		MaxConn:  100,
		IdleConn: 10,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/foodon/foodon.log",
	},
	Smtp: SmtpConfig{
		Host: "localhost",
		Port: 25,
		From: "noreply@foodon.local",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v == "true" || v == "1" || v == "on")
	}
}

func setEnvIntValue(name string, f func(v int)) {
	if v, ok := os.LookupEnv(name); ok {
		f(cast.ToInt(v))
	}
}

// LoadConfig reads the YAML configuration file and applies FOODON_* env
// overrides on top. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			fcfg := new(AppConfig)
			if err := yaml.Unmarshal(data, fcfg); err == nil {
				cfg = fcfg
			}
		}
	}

	setEnvValue("FOODON_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBoolValue("FOODON_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("FOODON_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("FOODON_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvValue("FOODON_WEB_JWT_SECRET", func(v string) { cfg.Web.JwtSecret = v })

	setEnvValue("FOODON_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvIntValue("FOODON_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("FOODON_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("FOODON_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("FOODON_DB_PWD", func(v string) { cfg.Database.Passwd = v })

	setEnvValue("FOODON_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvBoolValue("FOODON_LOGGER_FILE_ENABLE", func(v bool) { cfg.Logger.FileEnable = v })

	setEnvBoolValue("FOODON_SMTP_ENABLE", func(v bool) { cfg.Smtp.Enable = v })
	setEnvValue("FOODON_SMTP_HOST", func(v string) { cfg.Smtp.Host = v })
	setEnvIntValue("FOODON_SMTP_PORT", func(v int) { cfg.Smtp.Port = v })
	setEnvValue("FOODON_SMTP_USERNAME", func(v string) { cfg.Smtp.Username = v })
	setEnvValue("FOODON_SMTP_PASSWORD", func(v string) { cfg.Smtp.Password = v })
	setEnvValue("FOODON_SMTP_FROM", func(v string) { cfg.Smtp.From = v })

	return cfg
}
