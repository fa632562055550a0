package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AllowedOrigins []string
	ChatHandler    *ChatHandler
	ChatSocket     *ChatSocketHandler
	SurveyHandler  *SurveyHandler
	MajorHandler   *MajorHandler
	UserHandler    *UserHandler
	StatusHandler  *StatusHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/health", cfg.StatusHandler.Health)

	api := router.Group("/api")
	{
		api.GET("/health", cfg.StatusHandler.Health)

		api.POST("/survey/submit", cfg.SurveyHandler.Submit)
		api.GET("/survey/:id", cfg.SurveyHandler.GetSurvey)
		api.GET("/survey/:id/result", cfg.SurveyHandler.GetSurveyResult)
		api.GET("/results", cfg.SurveyHandler.ListResults)
		api.GET("/results/:id", cfg.SurveyHandler.GetResult)

		api.POST("/ai/chat", cfg.ChatHandler.SendMessage)
		api.GET("/ai/chat/:sessionId", cfg.ChatHandler.GetHistory)
		api.DELETE("/ai/chat/:sessionId", cfg.ChatHandler.ClearSession)
		api.GET("/ai/ws", cfg.ChatSocket.Serve)
		api.GET("/ai/status", cfg.StatusHandler.ModelStatus)
		api.POST("/ai/reset-circuit", cfg.StatusHandler.ResetCircuit)

		api.GET("/majors", cfg.MajorHandler.List)
		api.GET("/majors/:code", cfg.MajorHandler.GetByCode)
		api.GET("/programs", cfg.MajorHandler.ListScrapedPrograms)

		api.POST("/auth/register", cfg.UserHandler.Register)
		api.GET("/auth/user/:id", cfg.UserHandler.GetUser)
	}

	return router
}

// NewHTTPServer wraps the router with sane timeouts for a public API.
func NewHTTPServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
