package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"excel-mock-interviewer/internal/api"
	appconfig "excel-mock-interviewer/internal/config"
	"excel-mock-interviewer/internal/evaluator"
	"excel-mock-interviewer/internal/interviewer"
	"excel-mock-interviewer/internal/metrics"
	"excel-mock-interviewer/internal/report"
	"excel-mock-interviewer/internal/server"
)

func main() {
	fmt.Println("🚀 Starting Excel Mock Interviewer...")

	// Environment variables from .env, if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	openaiCfg := appconfig.LoadOpenAIConfig()
	if err := openaiCfg.ValidateConfig(); err != nil {
		log.Fatalf("OpenAI configuration error: %v", err)
	}

	cfg, err := appconfig.Load("config/interview.yaml")
	if err != nil {
		log.Fatalf("Error loading interview configuration: %v", err)
	}

	fmt.Println("🔧 Initializing services...")

	client := api.NewOpenAIClient(openaiCfg.APIKey, openaiCfg.Model)
	m := metrics.NewMetrics()

	generator := interviewer.New(client, cfg, m)
	fmt.Println("✅ Question generator initialized")

	scorer := evaluator.New(client, cfg, m)
	fmt.Println("✅ Answer evaluator initialized")

	reporter := report.New(client, cfg, m)
	fmt.Println("✅ Report generator initialized")

	handler := server.NewHandler(cfg, generator, scorer, reporter, m)

	fmt.Println("\n📋 Configuration:")
	fmt.Printf("• Questions per interview: %d\n", cfg.GetTotalQuestions())
	fmt.Printf("• Model: %s\n", openaiCfg.Model)
	fmt.Printf("• Token budgets: question %d, evaluation %d, report %d\n",
		cfg.GetQuestionMaxTokens(), cfg.GetEvaluationMaxTokens(), cfg.GetReportMaxTokens())

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler.Routes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	fmt.Printf("\n🤖 Interview server listening on %s\n", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
