package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Health struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHealth(db *gorm.DB, rdb *redis.Client) Health {
	return Health{db: db, rdb: rdb}
}

func (h Health) Check(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "mysql unavailable"})
		return
	}
	if err := h.rdb.Ping(c).Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "redis unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
