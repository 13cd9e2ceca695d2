package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leon37/argyle/internal/api/controller"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/leon37/argyle/docs"
)

const version = "1.0.0"

// RegisterRoutes 注册所有路由
// gate 是身份网关，解析 Cookie 并注入身份，不做拦截
func RegisterRoutes(r *gin.Engine, gate gin.HandlerFunc,
	authCtrl *controller.AuthController, songCtrl *controller.SongController,
	aiCtrl *controller.AIController, openaiConfigured bool) {

	// 健康检查
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":           "ok",
			"timestamp":        time.Now().Format(time.RFC3339),
			"openaiConfigured": openaiConfigured,
			"version":          version,
		})
	}
	r.GET("/health", health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(gate)
	{
		api.GET("/health", health)
		api.POST("/openai/chat", aiCtrl.Chat)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authCtrl.Signup)
			authGroup.POST("/login", authCtrl.Login)
			authGroup.POST("/logout", authCtrl.Logout)
			authGroup.GET("/me", authCtrl.Me)
		}

		songs := api.Group("/songs")
		{
			songs.GET("", songCtrl.List)
			songs.POST("", songCtrl.Create)
			songs.GET("/:id", songCtrl.Get)
			songs.PUT("/:id", songCtrl.Update)
			songs.DELETE("/:id", songCtrl.Delete)
		}
	}
}
