package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jdsalazarc/barberia-desk/internal/config"
	dbpkg "github.com/jdsalazarc/barberia-desk/internal/db"
	"github.com/jdsalazarc/barberia-desk/internal/infra/photostore"
	"github.com/jdsalazarc/barberia-desk/internal/logger"
	"github.com/jdsalazarc/barberia-desk/internal/middleware"
	"github.com/jdsalazarc/barberia-desk/internal/routes"
)

func main() {

	// .env is optional; the desktop launcher usually sets nothing.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	db := dbpkg.NewDB(cfg, log)

	photos, err := photostore.New(cfg.PhotoDir)
	if err != nil {
		log.Fatalf("failed to init photo store: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, photos, log)

	log.Infof("backend listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
