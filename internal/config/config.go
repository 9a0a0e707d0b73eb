package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	LLM    LLMConfig
	Redis  RedisConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Path string
}

// LLMConfig holds the connection settings for the completion endpoint.
type LLMConfig struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "20s")
	viper.SetDefault("server.write_timeout", "20s")
	viper.SetDefault("db.path", "quizbot.db")
	viper.SetDefault("llm.endpoint", "https://openrouter.ai/api/v1/chat/completions")
	viper.SetDefault("llm.model", "tngtech/deepseek-r1t2-chimera:free")
	viper.SetDefault("llm.timeout", "30s")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}

// LoadConfig reads configuration from configs/config.yaml, falling back to
// defaults and environment variables when the file is absent.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
		},
		DB: DBConfig{
			Path: viper.GetString("db.path"),
		},
		LLM: LLMConfig{
			Endpoint: viper.GetString("llm.endpoint"),
			APIKey:   viper.GetString("llm.api_key"),
			Model:    viper.GetString("llm.model"),
			Timeout:  viper.GetDuration("llm.timeout"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Environment variables take precedence over file values.
	applyEnvOverrides()

	if v := viper.GetString("DB_PATH"); v != "" {
		cfg.DB.Path = v
	}
	if v := viper.GetString("LLM_ENDPOINT"); v != "" {
		cfg.LLM.Endpoint = v
	}
	if v := viper.GetString("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := viper.GetString("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := viper.GetString("REDIS_ADDRESS"); v != "" {
		cfg.Redis.Address = v
	}
	if v := viper.GetString("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}

	return cfg, nil
}

func applyEnvOverrides() {
	for _, key := range []string{
		"DB_PATH",
		"LLM_ENDPOINT",
		"LLM_API_KEY",
		"LLM_MODEL",
		"REDIS_ADDRESS",
		"REDIS_PASSWORD",
	} {
		_ = viper.BindEnv(key)
	}
}
