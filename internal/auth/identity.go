package auth

import "github.com/leon37/argyle/internal/model"

// Identity 表示请求方身份：匿名或某个具体用户
// 凭证缺失、Token 失效、用户已不存在都统一降级为匿名，永远不抛错，
// 把"查不出身份就当没登录"这条策略固化在类型上
type Identity struct {
	user *model.User
}

// Anonymous 匿名身份
var Anonymous = Identity{}

// IdentityOf 把已解析出的用户包装成身份
func IdentityOf(user *model.User) Identity {
	return Identity{user: user}
}

// IsAnonymous 是否匿名
func (i Identity) IsAnonymous() bool {
	return i.user == nil
}

// User 返回身份背后的用户，匿名时为 nil
func (i Identity) User() *model.User {
	return i.user
}

// UserID 返回用户 ID，匿名时为空串
func (i Identity) UserID() string {
	if i.user == nil {
		return ""
	}
	return i.user.ID
}
