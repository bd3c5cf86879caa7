package webserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/courtcheck/courtcheck/src/factcheck-api/config"
	"github.com/courtcheck/courtcheck/src/verifier/data"
	"github.com/courtcheck/courtcheck/src/verifier/engine"
)

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client, eng *engine.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", NewHealth(db, rdb).Check)

	authH := NewAuth(cfg.APIKey, []byte(cfg.JWTSecret))
	verifyH := NewVerify(db, data.NewResultCache(rdb), eng, cfg)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/token", authH.Token)

		secured := v1.Use(JWTMiddleware([]byte(cfg.JWTSecret)))
		secured.POST("/verify", verifyH.Create)
		secured.GET("/runs/:id", verifyH.Get)
	}
}
