package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	OpenAI   ModelConfig    `mapstructure:"openai"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type ModelConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// 未配置密钥时的兜底值，生产环境必须覆盖
const insecureDefaultSecret = "argyle-insecure-change-me-in-production"

// LoadConfig 读取配置文件
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config") // 配置文件名 (不带扩展名)
	viper.SetConfigType("yaml")   // 文件类型
	viper.AddConfigPath(".")      // 查找路径：根目录

	// 支持环境变量覆盖 (例如在 Docker 中)
	// 比如设置环境变量 ARGYLE_OPENAI_API_KEY 可以覆盖 yaml 里的值
	viper.SetEnvPrefix("ARGYLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("jwt.expire_hours", 168) // 7 天
	// Unmarshal 只认识有默认值或出现在配置文件里的 key，
	// 这里补空默认值让纯环境变量的部署方式也能生效
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("openai.api_key", "")
	viper.SetDefault("openai.base_url", "")
	viper.SetDefault("openai.model", "")

	if err := viper.ReadInConfig(); err != nil {
		// 配置文件缺失不算致命错误，纯环境变量也能把服务拉起来
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &cfg, nil
}

// TokenSecret 解析签名密钥，按优先级取第一个非空的来源：
// 环境变量 AUTH_TOKEN_SECRET > 环境变量 SECRET_KEY > 配置文件 jwt.secret > 兜底默认值
func (c *Config) TokenSecret() []byte {
	for _, s := range []string{
		os.Getenv("AUTH_TOKEN_SECRET"),
		os.Getenv("SECRET_KEY"),
		c.JWT.Secret,
	} {
		if s != "" {
			return []byte(s)
		}
	}
	return []byte(insecureDefaultSecret)
}

// TokenTTL Token 有效期
func (c *Config) TokenTTL() time.Duration {
	hours := c.JWT.ExpireHours
	if hours <= 0 {
		hours = 168
	}
	return time.Duration(hours) * time.Hour
}
