package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leon37/argyle/internal/model"
)

// ErrInvalidToken 所有校验失败（过期/伪造/格式错误）统一返回这个错误，
// 不向调用方区分具体原因
var ErrInvalidToken = errors.New("invalid token")

// Claims 在标准声明之外携带用户身份信息
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// TokenManager 负责签发和校验身份 Token
// 密钥和有效期在启动时从配置注入，业务代码里不再摸全局状态
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl}
}

// Issue 为用户签发 Token，有效期从当前时刻起算
func (m *TokenManager) Issue(user *model.User) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate 校验 Token 并返回其中的用户 ID
// 签名、有效期、结构任何一项有问题都折叠成 ErrInvalidToken
func (m *TokenManager) Validate(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

// TTL 暴露有效期，给 Cookie 的 max-age 用
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}
