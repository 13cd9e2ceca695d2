package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/leon37/argyle/internal/api"
	"github.com/leon37/argyle/internal/api/controller"
	"github.com/leon37/argyle/internal/api/middleware"
	"github.com/leon37/argyle/internal/auth"
	"github.com/leon37/argyle/internal/config"
	"github.com/leon37/argyle/internal/infrastructure/database"
	"github.com/leon37/argyle/internal/infrastructure/llm"
	"github.com/leon37/argyle/internal/repository"
	"github.com/leon37/argyle/internal/service"
)

// @title           Argyle API
// @version         1.0
// @description     歌曲序列创作平台后端：邮箱账号体系 + 作品管理 + AI 聊天代理

// @host            localhost:8080
// @BasePath        /api

func main() {
	// 1. 初始化 Logger
	// 使用 JSONHandler 可以让日志以 JSON 格式输出，方便解析
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// 设置为全局默认 logger
	slog.SetDefault(logger)

	slog.Info("Argyle 服务启动中...")

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	// 2. Infra Initialization
	db := database.NewMySQLConnection(conf.Database.DSN) // 这里会自动建表

	// API Key 没配就不初始化上游客户端，/api/openai/chat 会返回 500
	var provider llm.Provider
	openaiConfigured := conf.OpenAI.APIKey != ""
	if openaiConfigured {
		provider = llm.NewOpenAIClient(conf.OpenAI.APIKey, conf.OpenAI.BaseURL)
	} else {
		slog.Warn("OpenAI API Key 未配置，聊天代理不可用")
	}

	// 3. Layer Wiring (依赖注入)
	userRepo := repository.NewUserRepo(db)
	songRepo := repository.NewSongRepo(db)

	tokens := auth.NewTokenManager(conf.TokenSecret(), conf.TokenTTL())
	authSvc := service.NewAuthService(userRepo)
	songSvc := service.NewSongService(songRepo, userRepo)

	authCtrl := controller.NewAuthController(authSvc, tokens)
	songCtrl := controller.NewSongController(songSvc)
	aiCtrl := controller.NewAIController(provider)

	// 4. Server Start
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Cors())

	gate := middleware.AccessGate(tokens, authSvc)
	api.RegisterRoutes(r, gate, authCtrl, songCtrl, aiCtrl, openaiConfigured)

	slog.Info("Argyle Web Server 启动中", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
	}
}
