package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthpremium/internal/adapters/artifacts"
	"github.com/zatekoja/healthpremium/internal/application/services"
	"github.com/zatekoja/healthpremium/internal/evaluation"
	"github.com/zatekoja/healthpremium/internal/infrastructure/observability"
	"github.com/zatekoja/healthpremium/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	observability.InitLogger(cfg.OTEL.ServiceName+"-evaluate", cfg.Env, cfg.LogLevel)

	goldenPath := flag.String("golden", cfg.Premium.GoldenCasesPath, "path to golden cases JSON")
	maxMAE := flag.Float64("max-mae", 0, "fail when MAE exceeds this value (0 disables)")
	maxMAPE := flag.Float64("max-mape", 0, "fail when MAPE in percent exceeds this value (0 disables)")
	minAccuracy := flag.Float64("min-group-accuracy", 0, "fail when model routing accuracy is below this value (0 disables)")
	maxFailures := flag.Int("max-failures", 0, "number of cases allowed to be rejected by the estimator")
	flag.Parse()

	bundles, err := artifacts.LoadBundleSet(artifacts.PathsFromConfig(&cfg.Artifacts))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load model artifacts")
	}

	premiumService := services.NewPremiumService(
		bundles,
		services.NewFeatureEncoder(services.NewRiskScorer()),
		services.NewModelSelector(cfg.Premium.AgeThreshold),
		cfg.Premium.Currency,
	)

	cases, err := evaluation.LoadGoldenCases(*goldenPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load golden cases")
	}
	if err := evaluation.ValidateGoldenCases(cases); err != nil {
		log.Fatal().Err(err).Msg("Invalid golden cases")
	}

	summary, err := evaluation.NewRunner(premiumService).Run(context.Background(), cases)
	if err != nil {
		log.Fatal().Err(err).Msg("Evaluation failed")
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode summary")
	}
	fmt.Println(string(out))

	violations := evaluation.NewGuardrails(evaluation.GuardrailConfig{
		MaxMAE:           *maxMAE,
		MaxMAPE:          *maxMAPE,
		MinGroupAccuracy: *minAccuracy,
		MaxFailures:      *maxFailures,
	}).Check(summary)
	for _, v := range violations {
		log.Error().Str("guardrail", v).Msg("Evaluation guardrail violated")
	}
	if len(violations) > 0 {
		os.Exit(1)
	}
}
