package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	apiT12 "cre_underwriting/pkg/api/t12"
	apiUnderwriting "cre_underwriting/pkg/api/underwriting"
	"cre_underwriting/pkg/core/cache"
	"cre_underwriting/pkg/core/config"
	"cre_underwriting/pkg/core/store"
	"cre_underwriting/pkg/core/t12"
)

func main() {
	godotenv.Load()
	log := config.Logger()

	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	// Persistence and caching are both optional: without them the server
	// still calculates, it just doesn't remember.
	if err := store.InitDB(ctx, cfg.Database.URL); err != nil {
		log.Warnf("persistence disabled: %v", err)
	} else {
		defer store.Close()
	}
	cache.Connect(ctx, cfg.Redis.Addr)
	defer cache.Close()

	if cfg.T12.CategoryOverrides != "" {
		if err := t12.LoadOverrides(cfg.T12.CategoryOverrides); err != nil {
			log.Warnf("failed to load T12 category overrides: %v", err)
		} else {
			log.Infof("loaded T12 category overrides from %s", cfg.T12.CategoryOverrides)
		}
	}

	apiUnderwriting.InitHandler(store.NewDealRepo(), time.Duration(cfg.Redis.TTLMinutes)*time.Minute)

	// Underwriting endpoints
	http.HandleFunc("/api/underwriting/calculate", apiUnderwriting.HandleCalculate)
	http.HandleFunc("/api/underwriting/custom-loan", apiUnderwriting.HandleCustomLoan)
	http.HandleFunc("/api/underwriting/defaults", apiUnderwriting.HandleDefaults)
	http.HandleFunc("/api/underwriting/export", apiUnderwriting.HandleExport)

	// T12 endpoints
	http.HandleFunc("/api/t12/summary", apiT12.HandleSummary)
	http.HandleFunc("/api/t12/validate", apiT12.HandleValidate)
	http.HandleFunc("/api/t12/categories", apiT12.HandleCategories)

	log.Infof("API server starting on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, nil); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
