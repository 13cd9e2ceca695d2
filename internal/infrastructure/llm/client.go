package llm

import "context"

// Message 对话消息，角色取值 system/user/assistant
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest 透传给上游的聊天请求参数
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float32   `json:"temperature"`
}

// ChatChoice 上游返回的单条候选
type ChatChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// ChatUsage Token 消耗统计
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResult 透传回前端的响应，字段保持和 OpenAI 原始格式一致
type ChatResult struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   ChatUsage    `json:"usage"`
}

// Provider 定义了 LLM 的通用行为
type Provider interface {
	// ChatCompletion 同步调用一次聊天补全，整体透传，不做二次加工
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatResult, error)
}
