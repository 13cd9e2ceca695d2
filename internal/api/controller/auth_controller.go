package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/argyle/internal/api/middleware"
	"github.com/leon37/argyle/internal/api/response"
	"github.com/leon37/argyle/internal/auth"
	"github.com/leon37/argyle/internal/model"
	"github.com/leon37/argyle/internal/service"
)

// AuthController 处理用户认证
type AuthController struct {
	authService *service.AuthService
	tokens      *auth.TokenManager
}

// NewAuthController 构造函数
func NewAuthController(authService *service.AuthService, tokens *auth.TokenManager) *AuthController {
	return &AuthController{
		authService: authService,
		tokens:      tokens,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserView 对外暴露的用户字段，密码哈希永远不出去
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func userView(u *model.User) UserView {
	return UserView{ID: u.ID, Email: u.Email, Name: u.Name}
}

// setAuthCookie 签发身份 Cookie：HttpOnly + SameSite=Strict，7 天
func (ctrl *AuthController) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, token, int(ctrl.tokens.TTL().Seconds()), "/", "", false, true)
}

// clearAuthCookie 注销时让浏览器立刻丢弃 Cookie
func (ctrl *AuthController) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
}

// ==========================================
// Handlers
// ==========================================

// Signup 用户注册
// @Summary 用户注册
// @Description 创建新用户并签发身份 Cookie；受邀账号（尚未设置密码）可以用同一邮箱完成注册
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "注册参数"
// @Success 201 {object} response.Response{data=controller.UserView}
// @Failure 400 {object} response.Response "参数错误或邮箱已被注册"
// @Router /auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Signup params invalid", "err", err)
		response.Error(c, http.StatusBadRequest, "参数校验失败: "+err.Error())
		return
	}

	user, err := ctrl.authService.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("Signup failed", "email", req.Email, "err", err)
		response.Error(c, http.StatusInternalServerError, "注册失败")
		return
	}

	token, err := ctrl.tokens.Issue(user)
	if err != nil {
		slog.Error("Token issue failed", "userID", user.ID, "err", err)
		response.Error(c, http.StatusInternalServerError, "注册失败")
		return
	}

	slog.Info("User registered", "email", user.Email)
	ctrl.setAuthCookie(c, token)
	response.Created(c, userView(user))
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验邮箱和密码，通过后签发身份 Cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录参数"
// @Success 200 {object} response.Response{data=controller.UserView}
// @Failure 401 {object} response.Response "账号或密码错误"
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	user, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// 为了防止暴力破解，提示信息模糊化，不区分失败原因
		slog.Warn("Login failed", "email", req.Email)
		response.Error(c, http.StatusUnauthorized, "账号或密码错误")
		return
	}

	token, err := ctrl.tokens.Issue(user)
	if err != nil {
		slog.Error("Token issue failed", "userID", user.ID, "err", err)
		response.Error(c, http.StatusInternalServerError, "登录失败")
		return
	}

	slog.Info("User logged in", "userID", user.ID)
	ctrl.setAuthCookie(c, token)
	response.Success(c, userView(user))
}

// Logout 退出登录
// @Summary 退出登录
// @Description 清除身份 Cookie；服务端没有会话状态，Token 本身到期前仍然有效
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.clearAuthCookie(c)
	response.Success(c, nil)
}

// Me 查询当前登录用户
// @Summary 当前用户
// @Description 从身份 Cookie 解析当前用户，匿名返回 401
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response{data=controller.UserView}
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity.IsAnonymous() {
		response.Error(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	response.Success(c, userView(identity.User()))
}
