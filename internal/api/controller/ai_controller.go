package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/argyle/internal/api/response"
	"github.com/leon37/argyle/internal/infrastructure/llm"
)

// AIController 把聊天请求透传给上游 LLM，本身不做任何业务加工
type AIController struct {
	provider llm.Provider // 未配置 API Key 时为 nil
}

// NewAIController 构造函数
func NewAIController(provider llm.Provider) *AIController {
	return &AIController{provider: provider}
}

// ChatCompletionRequest 请求参数，缺省值对齐 OpenAI 的常用配置
type ChatCompletionRequest struct {
	Messages    []llm.Message `json:"messages" binding:"required,min=1"`
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature *float32      `json:"temperature"`
}

// Chat 聊天补全代理
// @Summary 聊天补全代理
// @Description 透传到上游 OpenAI 兼容接口，响应保持原始格式
// @Tags AI
// @Accept json
// @Produce json
// @Param request body ChatCompletionRequest true "对话内容"
// @Success 200 {object} llm.ChatResult
// @Failure 400 {object} response.Response "messages 格式非法"
// @Failure 500 {object} response.Response "上游未配置或调用失败"
// @Router /openai/chat [post]
func (ctrl *AIController) Chat(c *gin.Context) {
	var req ChatCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid messages format")
		return
	}

	if ctrl.provider == nil {
		response.Error(c, http.StatusInternalServerError, "OpenAI API key not configured")
		return
	}

	// 缺省参数
	if req.Model == "" {
		req.Model = "gpt-4o"
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = 4000
	}
	temperature := float32(0.7)
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	result, err := ctrl.provider.ChatCompletion(c.Request.Context(), llm.ChatRequest{
		Model:       req.Model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		slog.Error("Chat completion failed", "model", req.Model, "err", err)
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	// 透传接口不套统一信封，保持 OpenAI 原始响应格式
	c.JSON(http.StatusOK, result)
}
