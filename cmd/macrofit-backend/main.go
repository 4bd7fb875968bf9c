package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"macrofit-backend/internal/config"
	"macrofit-backend/internal/handlers"
	"macrofit-backend/internal/llm"
	"macrofit-backend/internal/logger"
	"macrofit-backend/internal/metrics"
	"macrofit-backend/internal/planner"
	"macrofit-backend/internal/server"
	"macrofit-backend/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := store.Open(cfg.DatabasePath, appLogger)
	if err != nil {
		appLogger.Fatal("failed to open database", "path", cfg.DatabasePath, "error", err)
	}

	metricsStore, err := metrics.NewStore(db)
	if err != nil {
		appLogger.Fatal("failed to initialize metrics store", "error", err)
	}

	ctx := context.Background()

	var textGen llm.TextGenerator
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		textGen, err = llm.NewGeminiClient(ctx, cfg)
		if err != nil {
			appLogger.Fatal("failed to create gemini client", "error", err)
		}
	default:
		textGen = llm.NewOpenAIClient(cfg)
	}
	if closer, ok := textGen.(llm.Closer); ok {
		defer closer.Close()
	}

	mealPlanner := planner.NewPlanner(textGen, metricsStore, appLogger)

	router := server.NewRouter(server.RouterConfig{
		MealPlanHandler: handlers.NewMealPlanHandler(mealPlanner, appLogger),
		WorkoutHandler:  handlers.NewWorkoutHandler(mealPlanner, appLogger),
		AllowedOrigins:  cfg.AllowedOrigins,
		Logger:          appLogger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		appLogger.Info("server listening", "port", cfg.HTTPPort, "provider", cfg.LLMProvider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		appLogger.Fatal("server forced to shutdown", "error", err)
	}

	appLogger.Info("server exiting")
}
