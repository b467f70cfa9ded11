package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthpremium/internal/adapters/artifacts"
	"github.com/zatekoja/healthpremium/internal/application/services"
	"github.com/zatekoja/healthpremium/internal/domain/entities"
	"github.com/zatekoja/healthpremium/internal/infrastructure/observability"
	"github.com/zatekoja/healthpremium/pkg/config"
)

func main() {
	asJSON := flag.Bool("json", false, "print the full estimate as JSON")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-json] [record.json]\n\nReads one applicant record from the file or stdin.\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	observability.InitLogger(cfg.OTEL.ServiceName+"-predict", cfg.Env, cfg.LogLevel)

	if err := run(cfg, flag.Arg(0), *asJSON, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, path string, asJSON bool, stdin io.Reader, stdout io.Writer) error {
	bundles, err := artifacts.LoadBundleSet(artifacts.PathsFromConfig(&cfg.Artifacts))
	if err != nil {
		return err
	}

	premiumService := services.NewPremiumService(
		bundles,
		services.NewFeatureEncoder(services.NewRiskScorer()),
		services.NewModelSelector(cfg.Premium.AgeThreshold),
		cfg.Premium.Currency,
	)

	raw, err := readRecord(path, stdin)
	if err != nil {
		return err
	}

	estimate, err := premiumService.Estimate(context.Background(), raw)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(estimate)
	}
	_, err = fmt.Fprintf(stdout, "Predicted Health Insurance Cost: %s\n", estimate.Formatted)
	return err
}

func readRecord(path string, stdin io.Reader) (entities.RawRecord, error) {
	in := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open record: %w", err)
		}
		defer f.Close()
		in = f
	}

	decoder := json.NewDecoder(in)
	decoder.UseNumber()

	var raw entities.RawRecord
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("record must be a JSON object")
	}
	return raw, nil
}
