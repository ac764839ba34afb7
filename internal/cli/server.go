package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"ai-quiz-service/internal/app"
	"ai-quiz-service/internal/config"
	"ai-quiz-service/internal/genai"
	"ai-quiz-service/internal/infra/memory"
	rediscache "ai-quiz-service/internal/infra/redis"
	transport "ai-quiz-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	provider := buildProvider(cfg)
	if provider == nil {
		log.Printf("no %s credential configured; all quizzes will come from the backup generator", cfg.Provider.Name)
	}

	cacheTTL := config.TTLDuration(cfg.Cache.TTL, 10*time.Minute)
	var cache app.QuizCache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cache = rediscache.NewQuizCache(client, cacheTTL)
	} else {
		cache = memory.NewQuizCache(cacheTTL)
	}

	service := app.NewQuizService(provider, app.WithCache(cache))
	handler := transport.NewHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	handler.Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // generation waits on the model call
	}

	go func() {
		log.Printf("starting quiz service on :%s (provider %s)", finalPort, cfg.Provider.Name)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildProvider returns nil when the credential is absent; the service then
// answers every request from the backup generator.
func buildProvider(cfg config.Config) genai.Provider {
	if cfg.Provider.APIKey == "" {
		return nil
	}

	switch cfg.Provider.Name {
	case config.ProviderOpenAI:
		return genai.NewOpenAIClient(
			cfg.Provider.APIKey,
			cfg.Provider.Model,
			cfg.Provider.Temperature,
			cfg.Provider.MaxOutputTokens,
		)
	default:
		timeout := config.TTLDuration(cfg.Provider.Timeout, 30*time.Second)
		return genai.NewGeminiClient(
			cfg.Provider.APIKey,
			cfg.Provider.Model,
			cfg.Provider.Temperature,
			cfg.Provider.MaxOutputTokens,
			timeout,
		)
	}
}
