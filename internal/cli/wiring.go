package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"quizmaster/internal/app"
	"quizmaster/internal/config"
	"quizmaster/internal/infra/file"
	"quizmaster/internal/infra/memory"
	pgstore "quizmaster/internal/infra/postgres"
	redisstore "quizmaster/internal/infra/redis"
)

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if dataDir != "" {
		cfg.Storage.Dir = dataDir
	}
	return cfg, nil
}

type backend struct {
	questions app.QuestionStore
	players   app.PlayerStore
	close     func()
}

func openBackend(ctx context.Context, cfg config.Config) (backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		return backend{
			questions: file.NewQuestionStore(cfg.QuestionsPath(), cfg.Quiz.MaxQuestions),
			players:   file.NewPlayerStore(cfg.PlayersPath(), cfg.Quiz.MaxPlayers),
			close:     func() {},
		}, nil

	case config.DriverRedis:
		if cfg.Redis.Addr == "" {
			return backend{}, fmt.Errorf("redis addr not configured")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return backend{}, fmt.Errorf("redis ping: %w", err)
		}
		return backend{
			questions: redisstore.NewQuestionStore(client, cfg.Redis.Prefix, cfg.Quiz.MaxQuestions),
			players:   redisstore.NewPlayerStore(client, cfg.Redis.Prefix, cfg.Quiz.MaxPlayers),
			close:     func() { _ = client.Close() },
		}, nil

	case config.DriverPostgres:
		if err := pgstore.Migrate(ctx, cfg.Postgres.URL); err != nil {
			return backend{}, fmt.Errorf("migrate: %w", err)
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return backend{}, err
		}
		return backend{
			questions: pgstore.NewQuestionStore(pool, cfg.Quiz.MaxQuestions),
			players:   pgstore.NewPlayerStore(pool, cfg.Quiz.MaxPlayers),
			close:     pool.Close,
		}, nil
	}
	return backend{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// newService opens the configured backend, loads both repositories and builds the quiz service.
// The returned func releases the backend.
func newService(ctx context.Context, cfg config.Config) (*app.QuizService, func(), error) {
	store, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	questions := app.NewQuestionRepository(store.questions, cfg.Quiz.MaxQuestions)
	if err := questions.Load(ctx); err != nil {
		store.close()
		return nil, nil, err
	}
	players := app.NewPlayerRepository(store.players, cfg.Quiz.MaxPlayers)
	players.Load(ctx)

	hash := cfg.Admin.PasswordHash
	if hash == "" {
		hash, err = app.HashPassword(cfg.Admin.Password)
		if err != nil {
			store.close()
			return nil, nil, err
		}
	}

	service := app.NewQuizService(
		questions,
		players,
		memory.NewSessionStore(),
		app.NewTimeSeededRandomizer(),
		app.Limits{
			QuestionTime:        cfg.QuestionTime(),
			QuestionsPerSession: cfg.Quiz.QuestionsPerSession,
			MinQuestions:        cfg.Quiz.MinQuestions,
		},
	).WithAdminPasswordHash(hash)

	log.Printf("loaded %d questions and %d players (%s storage)", questions.Count(), len(players.List()), cfg.Storage.Driver)
	return service, store.close, nil
}
