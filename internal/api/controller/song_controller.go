package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leon37/argyle/internal/api/middleware"
	"github.com/leon37/argyle/internal/api/response"
	"github.com/leon37/argyle/internal/service"
)

type SongController struct {
	service *service.SongService // 依赖 Service
}

// NewSongController 构造函数
func NewSongController(s *service.SongService) *SongController {
	return &SongController{service: s}
}

// CreateSongRequest 定义前端传来的 JSON 参数结构
// 不收 user_id：归属永远取当前登录身份
type CreateSongRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Sequence string `json:"sequence"`
	KeyInfo  string `json:"key_info" binding:"max=100"`
	BPM      int    `json:"bpm"`
	Notes    string `json:"notes"`
	IsPublic bool   `json:"is_public"`
}

// UpdateSongRequest 指针字段，缺省表示不修改
type UpdateSongRequest struct {
	Title    *string `json:"title"`
	Sequence *string `json:"sequence"`
	KeyInfo  *string `json:"key_info"`
	BPM      *int    `json:"bpm"`
	Notes    *string `json:"notes"`
	IsPublic *bool   `json:"is_public"`
}

// songError 统一把业务错误映射到 HTTP 状态码
func songError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, service.ErrSongNotFound):
		response.Error(c, http.StatusNotFound, "Not found")
	default:
		slog.Error("Song operation failed", "err", err)
		response.Error(c, http.StatusInternalServerError, "内部错误")
	}
}

// songID 解析路径参数，非法 id 和不存在一个待遇
func songID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Not found")
		return 0, false
	}
	return uint(id), true
}

// List 作品列表
// @Summary 我的作品列表
// @Description 返回当前用户的作品，新的在前；匿名请求返回空列表
// @Tags Song
// @Produce json
// @Success 200 {object} response.Response{data=[]service.SongView}
// @Router /songs [get]
func (ctrl *SongController) List(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	views, err := ctrl.service.List(c.Request.Context(), identity)
	if err != nil {
		songError(c, err)
		return
	}
	response.Success(c, views)
}

// Create 新建作品
// @Summary 新建作品
// @Description 保存一首作品，归属当前用户
// @Tags Song
// @Accept json
// @Produce json
// @Param request body CreateSongRequest true "作品内容"
// @Success 201 {object} response.Response{data=service.SongView}
// @Failure 400 {object} response.Response "参数错误"
// @Failure 401 {object} response.Response "未登录"
// @Router /songs [post]
func (ctrl *SongController) Create(c *gin.Context) {
	var req CreateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数错误: "+err.Error())
		return
	}

	identity := middleware.CurrentIdentity(c)
	view, err := ctrl.service.Create(c.Request.Context(), identity, service.SongInput{
		Title:    req.Title,
		Sequence: req.Sequence,
		KeyInfo:  req.KeyInfo,
		BPM:      req.BPM,
		Notes:    req.Notes,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		songError(c, err)
		return
	}

	slog.Info("Song created", "songID", view.ID, "userID", identity.UserID())
	response.Created(c, view)
}

// Get 作品详情
// @Summary 作品详情
// @Description 作者本人或公开作品可读；私有作品对非作者表现为不存在
// @Tags Song
// @Produce json
// @Param id path int true "作品 ID"
// @Success 200 {object} response.Response{data=service.SongView}
// @Failure 404 {object} response.Response
// @Router /songs/{id} [get]
func (ctrl *SongController) Get(c *gin.Context) {
	id, ok := songID(c)
	if !ok {
		return
	}

	identity := middleware.CurrentIdentity(c)
	view, err := ctrl.service.Get(c.Request.Context(), identity, id)
	if err != nil {
		songError(c, err)
		return
	}
	response.Success(c, view)
}

// Update 更新作品
// @Summary 更新作品
// @Description 仅作者可改；缺省字段不动
// @Tags Song
// @Accept json
// @Produce json
// @Param id path int true "作品 ID"
// @Param request body UpdateSongRequest true "要修改的字段"
// @Success 200 {object} response.Response{data=service.SongView}
// @Failure 404 {object} response.Response
// @Router /songs/{id} [put]
func (ctrl *SongController) Update(c *gin.Context) {
	id, ok := songID(c)
	if !ok {
		return
	}

	var req UpdateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数错误: "+err.Error())
		return
	}

	identity := middleware.CurrentIdentity(c)
	view, err := ctrl.service.Update(c.Request.Context(), identity, id, service.SongUpdate{
		Title:    req.Title,
		Sequence: req.Sequence,
		KeyInfo:  req.KeyInfo,
		BPM:      req.BPM,
		Notes:    req.Notes,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		songError(c, err)
		return
	}

	slog.Info("Song updated", "songID", id, "userID", identity.UserID())
	response.Success(c, view)
}

// Delete 删除作品
// @Summary 删除作品
// @Description 仅作者可删
// @Tags Song
// @Produce json
// @Param id path int true "作品 ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /songs/{id} [delete]
func (ctrl *SongController) Delete(c *gin.Context) {
	id, ok := songID(c)
	if !ok {
		return
	}

	identity := middleware.CurrentIdentity(c)
	if err := ctrl.service.Delete(c.Request.Context(), identity, id); err != nil {
		songError(c, err)
		return
	}

	slog.Info("Song deleted", "songID", id, "userID", identity.UserID())
	response.Success(c, nil)
}
