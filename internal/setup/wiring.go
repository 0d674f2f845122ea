package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/eval-service/internal/aggregator"
	"github.com/povarna/generative-ai-agents/eval-service/internal/api"
	"github.com/povarna/generative-ai-agents/eval-service/internal/config"
	"github.com/povarna/generative-ai-agents/eval-service/internal/jobs"
	"github.com/povarna/generative-ai-agents/eval-service/internal/llm"
	"github.com/povarna/generative-ai-agents/eval-service/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/eval-service/internal/llm/gpt"
	evalredis "github.com/povarna/generative-ai-agents/eval-service/internal/redis"
	"github.com/povarna/generative-ai-agents/eval-service/internal/runner"
	"github.com/povarna/generative-ai-agents/eval-service/internal/scorer"
	"github.com/povarna/generative-ai-agents/eval-service/internal/sink"
	"github.com/povarna/generative-ai-agents/eval-service/internal/target"
	"github.com/povarna/generative-ai-agents/eval-service/internal/worker"
	"github.com/rs/zerolog"
)

type Config struct {
	AWSRegion          string
	ClaudeModelID      string
	OpenAIKey          string
	OpenAIModelID      string
	DefaultProvider    string
	TargetTimeout      time.Duration
	TargetMaxRetries   int
	WorkerPollInterval time.Duration
	ReportsDir         string
	WarehouseDSN       string
	RedisAddr          string
	RedisPassword      string
	RedisStream        string
	APIPort            string
}

type Dependencies struct {
	Store      *jobs.Store
	Runner     *runner.Runner
	Worker     *worker.Worker
	ScorerInfo []api.ScorerInfo
	Logger     *zerolog.Logger

	closers []func()
}

// Close releases external connections (warehouse, redis).
func (d *Dependencies) Close() {
	for _, close := range d.closers {
		close()
	}
}

// LoadConfig is phase one of startup: read everything from the
// environment before constructing anything.
func LoadConfig() *Config {
	return &Config{
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:      getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:          getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:      getEnv("OPEN_AI_MODEL_ID", ""),
		DefaultProvider:    getEnv("DEFAULT_LLM_PROVIDER", "bedrock"),
		TargetTimeout:      getEnvDuration("TARGET_TIMEOUT", 60*time.Second),
		TargetMaxRetries:   getEnvInt("TARGET_MAX_RETRIES", 3),
		WorkerPollInterval: getEnvDuration("WORKER_POLL_INTERVAL", 2*time.Second),
		ReportsDir:         getEnv("REPORTS_DIR", "reports"),
		WarehouseDSN:       getEnv("WAREHOUSE_DSN", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisStream:        getEnv("REDIS_RESULTS_STREAM", "eval-results"),
		APIPort:            getEnv("EVAL_API_PORT", "18080"),
	}
}

// Wire is phase two: build the full dependency graph from the already
// loaded configuration.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	scorersConfig, err := config.LoadScorersConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load scorers config: %w", err)
	}

	pool := scorer.NewPool(llmClient, logger)
	scorers, err := pool.BuildFromConfig(scorersConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to build scorers from config: %w", err)
	}

	scorerRunner := scorer.NewRunner(scorers)
	targetClient := target.NewClient(cfg.TargetTimeout, cfg.TargetMaxRetries, logger)
	agg := aggregator.NewAggregator(logger)
	evalRunner := runner.NewRunner(targetClient, scorerRunner, agg, logger)

	store := jobs.NewStore(len(scorers), logger)

	deps := &Dependencies{
		Store:      store,
		Runner:     evalRunner,
		ScorerInfo: scorerInfos(scorersConfig),
		Logger:     logger,
	}

	resultSink, err := buildSink(ctx, cfg, logger, deps)
	if err != nil {
		return nil, err
	}

	deps.Worker = worker.New(store, evalRunner, agg, resultSink, len(scorers), cfg.WorkerPollInterval, logger)

	return deps, nil
}

func buildSink(ctx context.Context, cfg *Config, logger *zerolog.Logger, deps *Dependencies) (*sink.Sink, error) {
	reports := sink.NewReports(cfg.ReportsDir, logger)

	var warehouse *sink.Warehouse
	if cfg.WarehouseDSN != "" {
		var err error
		warehouse, err = sink.NewWarehouse(ctx, cfg.WarehouseDSN, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect warehouse: %w", err)
		}
		deps.closers = append(deps.closers, warehouse.Close)
	}

	var publisher *sink.Publisher
	if cfg.RedisAddr != "" {
		client, err := evalredis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, 5, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect redis: %w", err)
		}
		deps.closers = append(deps.closers, func() { _ = client.Close() })
		publisher = sink.NewPublisher(client, cfg.RedisStream, logger)
	}

	return sink.New(reports, warehouse, publisher, logger), nil
}

func scorerInfos(cfg *config.ScorersConfig) []api.ScorerInfo {
	var infos []api.ScorerInfo
	for _, sc := range cfg.Enabled() {
		infos = append(infos, api.ScorerInfo{
			Name:        sc.Name,
			Weight:      sc.Weight,
			Threshold:   sc.Threshold,
			Required:    sc.Required,
			Description: sc.Description,
		})
	}
	return infos
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "openai":
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	default:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
