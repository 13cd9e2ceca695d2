package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/leon37/argyle/internal/auth"
	"github.com/leon37/argyle/internal/service"
)

// CookieName 身份 Cookie 的名字，前端按这个名字读写
const CookieName = "auth-token"

const identityKey = "identity"

// AccessGate 从 auth-token Cookie 里解析请求方身份并注入 Context
// 没有 Cookie、Token 失效、用户已被删除，全部静默降级为匿名，
// 这里永远不中断请求，要不要拒绝匿名由各个 Handler 自己决定
// （比如列表接口对匿名返回空集合，而不是 401）
func AccessGate(tm *auth.TokenManager, authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := auth.Anonymous

		if token, err := c.Cookie(CookieName); err == nil && token != "" {
			if userID, err := tm.Validate(token); err == nil {
				if user, err := authSvc.GetUser(c.Request.Context(), userID); err == nil {
					identity = auth.IdentityOf(user)
				}
			}
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity 取出网关注入的身份，没经过网关时视为匿名
func CurrentIdentity(c *gin.Context) auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(auth.Identity); ok {
			return identity
		}
	}
	return auth.Anonymous
}
