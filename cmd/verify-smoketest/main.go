package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/courtcheck/courtcheck/src/shared/ai"
	"github.com/courtcheck/courtcheck/src/verifier/components/classify"
	"github.com/courtcheck/courtcheck/src/verifier/components/credibility"
	"github.com/courtcheck/courtcheck/src/verifier/components/entities"
	"github.com/courtcheck/courtcheck/src/verifier/components/query"
	"github.com/courtcheck/courtcheck/src/verifier/components/statsqa"
	"github.com/courtcheck/courtcheck/src/verifier/components/websearch"
	"github.com/courtcheck/courtcheck/src/verifier/engine"
)

var (
	claimFlag   = flag.String("claim", defaultClaim, "Claim to verify")
	modelFlag   = flag.String("model", "", "Override model name")
	timeoutFlag = flag.Duration("timeout", 3*time.Minute, "Overall run timeout")
	webFlag     = flag.Bool("web", true, "Include the web search evidence source")
	domainsFlag = flag.String("domains", "nba.com,espn.com,theathletic.com,bleacherreport.com,sports.yahoo.com", "Comma-separated web search domain allow-list")
	topKFlag    = flag.Int("top-k", 3, "Web results converted to evidence")
)

const defaultClaim = "Jamal Murray scored 22 points in game 7"

func main() {
	log.SetFlags(0)
	flag.Parse()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}

	client := ai.NewClient(ai.FactoryConfig{
		Provider:  "openai",
		OpenAIKey: apiKey,
		Model:     *modelFlag,
	})

	sources := []engine.EvidenceSource{
		statsqa.NewSource(statsqa.DemoStore()),
	}
	if *webFlag {
		var domains []string
		for _, d := range strings.Split(*domainsFlag, ",") {
			if d = strings.TrimSpace(d); d != "" {
				domains = append(domains, d)
			}
		}
		sources = append(sources, websearch.NewSource(websearch.NewAIProvider(client), domains, *topKFlag))
	}

	eng := engine.New(
		query.NewProcessor(entities.New(), client),
		sources,
		credibility.NewScorer(credibility.Config{}),
		classify.NewClassifier(client),
		query.Broaden,
		engine.Config{MaxRetries: 1},
	)

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	start := time.Now()
	out, err := eng.Verify(ctx, *claimFlag)
	if err != nil {
		log.Fatalf("verify: %v", err)
	}

	fmt.Printf("=== %s ===\n", out.Claim)
	if out.Declined {
		fmt.Printf("declined ❌ %s\n", out.Reason)
		return
	}
	fmt.Printf("%s (confidence %.2f, %.1fs)\n", out.Verdict, out.Confidence, time.Since(start).Seconds())
	fmt.Println(out.Explanation)
	if len(out.Sources) > 0 {
		fmt.Println("sources:")
		for _, src := range out.Sources {
			fmt.Printf("  [%s] %s %s\n", src.Tier, src.Domain, src.URL)
		}
	}
	if out.Retries > 0 {
		fmt.Printf("retries: %d\n", out.Retries)
	}
	if len(out.Degraded) > 0 {
		fmt.Printf("degraded sources: %v\n", out.Degraded)
	}
}
