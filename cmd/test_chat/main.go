package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/leon37/argyle/internal/config"
	"github.com/leon37/argyle/internal/infrastructure/llm"
)

// 聊天代理冒烟测试：直连上游验证 Key 和网络是否可用
func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	if conf.OpenAI.APIKey == "" {
		log.Fatal("请先配置 ARGYLE_OPENAI_API_KEY")
	}

	client := llm.NewOpenAIClient(conf.OpenAI.APIKey, conf.OpenAI.BaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := client.ChatCompletion(ctx, llm.ChatRequest{
		Model: "gpt-4o",
		Messages: []llm.Message{
			{Role: "user", Content: "用一句话介绍一下和弦进行 ii-V-I"},
		},
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		log.Fatalf("调用失败: %v", err)
	}

	for _, choice := range result.Choices {
		fmt.Printf("[%s] %s\n", choice.FinishReason, choice.Message.Content)
	}
	fmt.Printf("tokens: prompt=%d completion=%d\n",
		result.Usage.PromptTokens, result.Usage.CompletionTokens)
}
