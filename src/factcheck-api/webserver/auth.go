package webserver

import (
	"crypto/subtle"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Auth struct {
	apiKey    string
	jwtSecret []byte
}

func NewAuth(apiKey string, secret []byte) Auth {
	return Auth{apiKey: apiKey, jwtSecret: secret}
}

// Token exchanges a configured API key for a short-lived JWT.
func (a Auth) Token(c *gin.Context) {
	var req struct {
		APIKey string `json:"api_key" binding:"required"`
		Client string `json:"client" binding:"max=64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	if a.apiKey == "" || subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(a.apiKey)) != 1 {
		log.Printf("token request rejected from IP %s", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"err": "bad api key"})
		return
	}

	client := req.Client
	if client == "" {
		client = "default"
	}
	token, err := issueJWT(client, a.jwtSecret)
	if err != nil {
		log.Printf("failed to issue JWT for %s: %v", client, err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func issueJWT(client string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"client": client,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	return token.SignedString(secret)
}
