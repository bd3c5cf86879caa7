package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/courtcheck/courtcheck/src/verifier/data"
)

type Config struct {
	Port     string
	MySQLDSN string
	RedisURL string

	OpenAIKey string
	AIModel   string

	JWTSecret string
	APIKey    string

	CacheTTL       int // seconds
	SearchTopK     int
	AllowedOrigins []string

	SearchDomains   []string
	OfficialDomains []string
	MediaDomains    []string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

// setting resolves a value from the settings table first, then the
// environment. LoadSettings must have run before Load.
func setting(name, envKey, def string) string {
	if v := data.GetSetting(name); v != "" {
		return v
	}
	return getenv(envKey, def)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func Load() Config {
	ttl, _ := strconv.Atoi(setting("cache_ttl", "CACHE_TTL", "3600"))
	topK, _ := strconv.Atoi(setting("search_top_k", "SEARCH_TOP_K", "3"))
	return Config{
		Port:     getenv("PORT", "8080"),
		MySQLDSN: getenv("MYSQL_DSN", "dev:test@tcp(localhost:3306)/courtcheck"),
		RedisURL: setting("redis_url", "REDIS_URL", "redis://localhost:6379/0"),

		OpenAIKey: getenv("OPENAI_API_KEY", ""),
		AIModel:   setting("ai_model", "AI_MODEL", "gpt-5"),

		JWTSecret: setting("jwt_secret", "JWT_SECRET", ""),
		APIKey:    setting("api_key", "API_KEY", ""),

		CacheTTL:       ttl,
		SearchTopK:     topK,
		AllowedOrigins: splitList(setting("allowed_origins", "ALLOWED_ORIGINS", "http://localhost:3000")),

		SearchDomains:   splitList(setting("search_domains", "SEARCH_DOMAINS", "nba.com,espn.com,theathletic.com,bleacherreport.com,sports.yahoo.com")),
		OfficialDomains: splitList(setting("official_domains", "OFFICIAL_DOMAINS", "")),
		MediaDomains:    splitList(setting("media_domains", "MEDIA_DOMAINS", "")),
	}
}
