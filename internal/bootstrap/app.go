package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"justicia-backend/internal/appointments"
	"justicia-backend/internal/assistant"
	accounts "justicia-backend/internal/auth"
	"justicia-backend/internal/chatbot"
	"justicia-backend/internal/lawyers"
	"justicia-backend/internal/llm"
	"justicia-backend/internal/llm/gemini"
	openai "justicia-backend/internal/llm/openai"
	"justicia-backend/internal/notifications"
	"justicia-backend/internal/questions"
	"justicia-backend/internal/recommend"
	"justicia-backend/internal/services/health"
	"justicia-backend/internal/shared/auth"
	"justicia-backend/internal/shared/config"
	"justicia-backend/internal/shared/metrics"
	"justicia-backend/internal/shared/server"
	"justicia-backend/internal/shared/server/middleware"
	"justicia-backend/internal/shared/storage/db"
	"justicia-backend/internal/shared/telemetry"
	"justicia-backend/internal/users"
)

const defaultOpenAIModel = "gpt-4o-mini"

// App holds shared dependencies.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	DB       *sql.DB
	Sessions *auth.Sessions

	UsersRepo         users.Repo
	LawyersRepo       lawyers.Repo
	AppointmentsRepo  appointments.Repo
	NotificationsRepo notifications.Repo
	QuestionsRepo     questions.Repo

	Assistant     *assistant.Service
	Questions     *questions.Service
	Notifications *notifications.Service
	Appointments  *appointments.Service
	Reminders     *appointments.Reminders
	Chatbot       *chatbot.Service

	closers []io.Closer
}

// Options tune what Build connects to.
type Options struct {
	// DBOptions overrides the pool settings; zero means server defaults.
	DBOptions *db.Options
	// SkipRouter leaves Router nil for non-HTTP binaries.
	SkipRouter bool
}

// Build connects to the configured backends and wires every service.
func Build(ctx context.Context, cfg config.Config, opts Options) (*App, error) {
	app := &App{Config: cfg}

	sqlDB, err := buildDB(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB
	if sqlDB != nil {
		app.closers = append(app.closers, sqlDB)
		if err := metrics.RegisterDBStats(sqlDB, "justicia"); err != nil {
			telemetry.Warn("bootstrap.db_stats_unregistered", map[string]any{"error": err})
		}
	}

	sessions, store, err := buildSessions(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Sessions = sessions
	if c, ok := store.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}

	gen, err := buildGenerator(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}
	if c, ok := gen.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}

	app.buildRepos()
	provider, err := app.buildProvider()
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Assistant = assistant.NewService(gen, cfg.LLMTimeout)
	app.Questions = questions.NewService(app.QuestionsRepo)
	app.Notifications = notifications.NewService(app.NotificationsRepo)
	usersSvc := users.NewService(app.UsersRepo)

	matcher := &recommend.LawyerRecommender{Directory: app.LawyersRepo, Prefs: recommend.DefaultLawyerPreferences}
	app.Appointments = appointments.NewService(app.AppointmentsRepo, app.LawyersRepo, app.Notifications,
		app.Questions, matcher, cfg.RecommenderTimeout)
	app.Reminders = appointments.NewReminders(app.AppointmentsRepo, app.Notifications, nil)
	app.Chatbot = chatbot.NewService(app.Assistant, app.Questions, &recommend.Aggregator{
		Similarity: recommend.TFIDFSimilarity{},
		TopicBank:  recommend.TopicBank{Bank: app.QuestionsRepo},
		Timeout:    cfg.RecommenderTimeout,
	})

	if opts.SkipRouter {
		return app, nil
	}

	checks := health.NewService()
	if sqlDB != nil {
		checks.Add("database", sqlDB)
	}
	if rs, ok := store.(*auth.RedisStore); ok {
		checks.Add("redis", health.PingerFunc(rs.Ping))
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:   cfg,
		Sessions: sessions,
		Health:   checks.Handler(),
		Limiter:  middleware.NewRateLimiter(nil),
		Handlers: []server.RouteRegistrar{
			accounts.NewHandler(accounts.NewService(provider, usersSvc, app.Notifications, sessions)),
			users.NewHandler(usersSvc),
			lawyers.NewHandler(app.LawyersRepo),
			appointments.NewHandler(app.Appointments),
			notifications.NewHandler(app.Notifications),
			questions.NewHandler(app.Questions),
			chatbot.NewHandler(app.Chatbot),
		},
	})
	return app, nil
}

// Close releases connections opened by Build.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			telemetry.Warn("bootstrap.close_failed", map[string]any{"error": err})
		}
	}
	a.closers = nil
}

func buildDB(ctx context.Context, cfg config.Config, opts Options) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	poolOpts := db.OptionsFromEnv(db.DefaultServerOptions())
	if opts.DBOptions != nil {
		poolOpts = *opts.DBOptions
	}
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, poolOpts)
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildSessions(ctx context.Context, cfg config.Config) (*auth.Sessions, auth.Store, error) {
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		store := auth.NewMemoryStore()
		return auth.NewSessions(issuer, store), store, nil
	}
	store, err := auth.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	return auth.NewSessions(issuer, store), store, nil
}

func buildGenerator(ctx context.Context, cfg config.Config) (llm.Generator, error) {
	switch cfg.LLMProvider {
	case "gemini":
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			telemetry.Warn("bootstrap.llm_placeholder", map[string]any{"provider": "gemini", "reason": "GEMINI_API_KEY empty"})
			return llm.Placeholder{}, nil
		}
		return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
	case "openai":
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			telemetry.Warn("bootstrap.llm_placeholder", map[string]any{"provider": "openai", "reason": "OPENAI_API_KEY empty"})
			return llm.Placeholder{}, nil
		}
		model := cfg.LLMModel
		if strings.HasPrefix(strings.ToLower(model), "gemini") {
			model = defaultOpenAIModel
		}
		return openai.NewClient(cfg.OpenAIAPIKey, model)
	default:
		return llm.Placeholder{}, nil
	}
}

func (a *App) buildRepos() {
	if a.DB != nil {
		a.UsersRepo = &users.PGRepo{DB: a.DB}
		a.LawyersRepo = &lawyers.PGRepo{DB: a.DB}
		a.AppointmentsRepo = &appointments.PGRepo{DB: a.DB}
		a.NotificationsRepo = &notifications.PGRepo{DB: a.DB}
		a.QuestionsRepo = &questions.PGRepo{DB: a.DB}
		return
	}
	directory := lawyers.NewMemoryRepo(lawyers.ReferenceDirectory()...)
	a.UsersRepo = users.NewMemoryRepo()
	a.LawyersRepo = directory
	a.AppointmentsRepo = appointments.NewMemoryRepo(directory)
	a.NotificationsRepo = notifications.NewMemoryRepo()
	a.QuestionsRepo = questions.NewMemoryRepo(questions.ReferenceBank()...)
}

func (a *App) buildProvider() (accounts.Provider, error) {
	switch a.Config.AuthProvider {
	case "supabase":
		if strings.TrimSpace(a.Config.SupabaseURL) == "" || strings.TrimSpace(a.Config.SupabaseAnonKey) == "" {
			return nil, fmt.Errorf("AUTH_PROVIDER=supabase requires SUPABASE_URL and SUPABASE_ANON_KEY")
		}
		return accounts.NewSupabaseProvider(a.Config.SupabaseURL, a.Config.SupabaseAnonKey, a.Config.SupabaseServiceKey), nil
	case "", "local":
		var repo accounts.CredentialsRepo = accounts.NewMemoryCredentials()
		if a.DB != nil {
			repo = &accounts.PGCredentials{DB: a.DB}
		}
		return accounts.NewLocalProvider(repo), nil
	default:
		return nil, fmt.Errorf("unsupported AUTH_PROVIDER: %s", a.Config.AuthProvider)
	}
}
