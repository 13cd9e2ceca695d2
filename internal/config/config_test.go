package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenSecret_Priority(t *testing.T) {
	cfg := &Config{JWT: JWTConfig{Secret: "from-config"}}

	// 环境变量 AUTH_TOKEN_SECRET 优先级最高
	t.Setenv("AUTH_TOKEN_SECRET", "from-auth-env")
	t.Setenv("SECRET_KEY", "from-secret-key")
	assert.Equal(t, []byte("from-auth-env"), cfg.TokenSecret())

	// 其次 SECRET_KEY
	t.Setenv("AUTH_TOKEN_SECRET", "")
	assert.Equal(t, []byte("from-secret-key"), cfg.TokenSecret())

	// 再次配置文件
	t.Setenv("SECRET_KEY", "")
	assert.Equal(t, []byte("from-config"), cfg.TokenSecret())

	// 全空时兜底，保证服务能起但密钥可预测（部署时必须覆盖）
	cfg.JWT.Secret = ""
	assert.Equal(t, []byte(insecureDefaultSecret), cfg.TokenSecret())
}

func TestTokenTTL(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL(), "缺省 7 天")

	cfg.JWT.ExpireHours = 24
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())

	cfg.JWT.ExpireHours = -5
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL(), "非法值回落到缺省")
}
