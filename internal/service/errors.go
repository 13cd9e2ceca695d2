package service

import "errors"

// 业务错误口径，Controller 层用 errors.Is 映射到 HTTP 状态码
var (
	// ErrInvalidCredentials 登录失败的统一提示，不区分"账号不存在"和"密码错误"
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateEmail 邮箱已被注册（且已设置过密码）
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrUnauthorized 需要登录的操作收到了匿名请求
	ErrUnauthorized = errors.New("authentication required")

	// ErrSongNotFound "不存在"和"存在但无权访问"共用这一个错误，
	// 避免向非作者泄露私有作品是否存在
	ErrSongNotFound = errors.New("song not found")
)
