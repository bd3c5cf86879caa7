package webserver

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/courtcheck/courtcheck/src/factcheck-api/config"
	"github.com/courtcheck/courtcheck/src/verifier/engine"
	"github.com/courtcheck/courtcheck/src/verifier/types"
)

// Runner executes the verification pipeline for a single claim.
// *engine.Engine is the production implementation.
type Runner interface {
	Verify(ctx context.Context, claim string) (*engine.Outcome, error)
}

// ResultCache holds completed outcomes keyed by claim. *data.ResultCache
// is the production implementation.
type ResultCache interface {
	Cached(ctx context.Context, claim string) (*engine.Outcome, error)
	Store(ctx context.Context, out *engine.Outcome, ttl time.Duration) error
}

type Verify struct {
	db        *gorm.DB
	cache     ResultCache
	runner    Runner
	sanitizer *bluemonday.Policy
	cacheTTL  time.Duration
}

func NewVerify(db *gorm.DB, cache ResultCache, runner Runner, cfg config.Config) Verify {
	return Verify{
		db:        db,
		cache:     cache,
		runner:    runner,
		sanitizer: bluemonday.StrictPolicy(),
		cacheTTL:  time.Duration(cfg.CacheTTL) * time.Second,
	}
}

// Create runs a claim through the verification pipeline. Cached outcomes
// for an identical claim short-circuit the pipeline but still produce a
// fresh run record.
func (v Verify) Create(c *gin.Context) {
	var req struct {
		Claim string `json:"claim" binding:"required,min=3,max=1000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	claim := strings.TrimSpace(v.sanitizer.Sanitize(req.Claim))
	if claim == "" || !utf8.ValidString(claim) {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid characters in claim"})
		return
	}

	cached := false
	out, err := v.cache.Cached(c, claim)
	if err != nil {
		log.Printf("result cache read failed: %v", err)
	}
	if out != nil {
		cached = true
	} else {
		out, err = v.runner.Verify(c.Request.Context(), claim)
		if err != nil {
			log.Printf("verification run failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"err": "verification failed"})
			return
		}
		if !out.Declined {
			if err := v.cache.Store(c, out, v.cacheTTL); err != nil {
				log.Printf("result cache write failed: %v", err)
			}
		}
	}

	rec := recordFor(out)
	if err := v.db.Create(&rec).Error; err != nil {
		log.Printf("failed to persist run %s: %v", rec.ID, err)
	}

	status := http.StatusOK
	if out.Declined {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"id":     rec.ID,
		"cached": cached,
		"result": out,
	})
}

// Get returns a persisted run by its id.
func (v Verify) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "invalid run id"})
		return
	}

	var rec types.VerificationRecord
	if err := v.db.First(&rec, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"err": "run not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func recordFor(out *engine.Outcome) types.VerificationRecord {
	entities, _ := json.Marshal(out.Entities)
	sources, _ := json.Marshal(out.Sources)
	return types.VerificationRecord{
		ID:            uuid.NewString(),
		Claim:         out.Claim,
		Verdict:       string(out.Verdict),
		Confidence:    out.Confidence,
		Explanation:   out.Explanation,
		Declined:      out.Declined,
		DeclineReason: out.Reason,
		QueryUsed:     out.QueryUsed,
		EntitiesJSON:  string(entities),
		SourcesJSON:   string(sources),
		Degraded:      strings.Join(out.Degraded, ","),
		Retries:       uint8(out.Retries),
	}
}
