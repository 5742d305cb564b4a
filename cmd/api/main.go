package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/petgroom/scheduler/internal/config"
	"github.com/petgroom/scheduler/internal/db"
	"github.com/petgroom/scheduler/internal/middleware"
	"github.com/petgroom/scheduler/internal/routes"
)

func main() {
	cfg := config.Load()

	database := db.NewDB(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg)

	log.Printf("API listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
