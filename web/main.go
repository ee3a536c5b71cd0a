package main

import (
	"log"

	"easattend.com/easattend/core"
	"easattend.com/easattend/infrastructure/communication"
	"easattend.com/easattend/infrastructure/devops"
	"easattend.com/easattend/web/handlers"
	"easattend.com/easattend/web/middlewares"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := devops.Load()
	if err != nil {
		log.Fatal(err)
	}

	dm, err := core.New(cfg.DSN, cfg.MaxConns)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	notifier := communication.NewSlack(cfg.SlackToken, communication.SlackOption{
		InfoChannelID:  cfg.SlackInfoCh,
		ErrorChannelID: cfg.SlackErrorCh,
	})

	r := gin.Default()
	r.Use(middlewares.CORS(cfg.AllowedOrigins))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/auth/login", handlers.LoginHandler(dm, cfg))

	protected := r.Group("/")
	protected.Use(middlewares.Authentication(cfg.SigningSecret))
	{
		protected.POST("/attendance/check-in", handlers.CheckInHandler(dm, notifier))
		protected.POST("/attendance/check-out", handlers.CheckOutHandler(dm, notifier))
		protected.GET("/attendance/logs/:user_id", handlers.UserLogsHandler(dm))
		protected.GET("/attendance/today-summary", handlers.TodaySummaryHandler(dm))
		protected.GET("/attendance/check-status", handlers.CheckStatusHandler(dm))

		admin := protected.Group("/admin")
		admin.Use(middlewares.RequireAdmin())
		{
			admin.POST("/users", handlers.CreateUserHandler(dm, cfg))
			admin.GET("/users", handlers.ListUsersHandler(dm))
			admin.DELETE("/users/:id", handlers.DeleteUserHandler(dm))
			admin.GET("/logs", handlers.AdminLogsHandler(dm))
			admin.GET("/logs/export", handlers.ExportLogsHandler(dm))
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
