package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/courtcheck/courtcheck/src/factcheck-api/config"
	"github.com/courtcheck/courtcheck/src/factcheck-api/webserver"
	"github.com/courtcheck/courtcheck/src/shared/ai"
	"github.com/courtcheck/courtcheck/src/verifier/components/classify"
	"github.com/courtcheck/courtcheck/src/verifier/components/credibility"
	"github.com/courtcheck/courtcheck/src/verifier/components/entities"
	"github.com/courtcheck/courtcheck/src/verifier/components/query"
	"github.com/courtcheck/courtcheck/src/verifier/components/statsqa"
	"github.com/courtcheck/courtcheck/src/verifier/components/websearch"
	"github.com/courtcheck/courtcheck/src/verifier/data"
	"github.com/courtcheck/courtcheck/src/verifier/engine"
	"github.com/courtcheck/courtcheck/src/verifier/types"
)

func main() {
	// Connect to database first
	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "dev:test@tcp(localhost:3306)/courtcheck"
	}
	db := data.MustMySQL(mysqlDSN)

	if err := data.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Load settings from database
	if err := data.LoadSettings(db); err != nil {
		log.Printf("Failed to load settings: %v", err)
	}

	cfg := config.Load()
	rdb := data.MustRedis(cfg.RedisURL)

	client := ai.NewClient(ai.FactoryConfig{
		Provider:  "openai",
		OpenAIKey: cfg.OpenAIKey,
		Model:     cfg.AIModel,
	})

	// Seed the entity catalog from the player table on top of the
	// built-in roster.
	catalog := entities.New()
	var playerNames []string
	if err := db.Model(&types.Player{}).Pluck("name", &playerNames).Error; err != nil {
		log.Printf("Failed to load player names: %v", err)
	}
	catalog.AddPlayers(playerNames)

	eng := engine.New(
		query.NewProcessor(catalog, client),
		[]engine.EvidenceSource{
			websearch.NewSource(websearch.NewAIProvider(client), cfg.SearchDomains, cfg.SearchTopK),
			statsqa.NewSource(data.NewGormStore(db)),
		},
		credibility.NewScorer(credibility.Config{
			OfficialDomains: cfg.OfficialDomains,
			MediaDomains:    cfg.MediaDomains,
		}),
		classify.NewClassifier(client),
		query.Broaden,
		engine.Config{MaxRetries: 1},
	)

	router := webserver.New(cfg, db, rdb, eng)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	log.Printf("CourtCheck API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
