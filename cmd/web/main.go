package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pesocalumpit/portal-web/internal/backend"
	"github.com/pesocalumpit/portal-web/internal/config"
	"github.com/pesocalumpit/portal-web/internal/handlers"
	"github.com/pesocalumpit/portal-web/internal/session"
	"github.com/pesocalumpit/portal-web/internal/ui"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := config.Load()
	log.Printf("Portal API base URL: %s", cfg.APIBaseURL)

	api := backend.New(cfg.APIBaseURL)
	sessions := session.NewStore(cfg.SessionSecret)
	toasts := ui.NewToastCenter(cfg.ToastDuration)
	h := handlers.New(cfg, api, sessions, toasts)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.LoadHTMLGlob(cfg.TemplateGlob)
	h.Routes(r)

	log.Printf("Web frontend starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
