package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/semhq/campaigner/handlers"
	"github.com/semhq/campaigner/internal/config"
	"github.com/semhq/campaigner/internal/generator"
	"github.com/semhq/campaigner/internal/web"
	"github.com/semhq/campaigner/middlewares"
	"github.com/semhq/campaigner/pkg/completion"
	"github.com/semhq/campaigner/pkg/health"
	"github.com/semhq/campaigner/pkg/logger"
	"github.com/semhq/campaigner/pkg/mailer"
	"github.com/semhq/campaigner/pkg/markdown"
	"github.com/semhq/campaigner/pkg/redis"
	"github.com/semhq/campaigner/pkg/session"
	"github.com/semhq/campaigner/views"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logger, os.Stdout, middlewares.RequestIDExtractor())

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("application error", slog.String("error", err.Error()))
		_ = logger.Flush(sentryFlushTimeout)(context.Background())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	llm, err := newCompleter(cfg.Completion, log)
	if err != nil {
		return err
	}

	gen, err := generator.New(llm, generator.WithLogger(log))
	if err != nil {
		return err
	}

	if cfg.Session.Secret == "" {
		log.Warn("SESSION_SECRET not set, session cookies are unsigned")
	}

	mail := mailer.NewDispatcher(cfg.Mailer, mailer.WithLogger(log))
	if !mail.DefaultSender().Configured() {
		log.Warn("no default sender configured, only custom senders can send")
	}

	checker := health.New(health.WithTimeout(cfg.HealthTimeout), health.WithLogger(log))
	var hooks []web.RunOption

	var store session.Store
	if cfg.Redis.Enabled() {
		client, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		checker.Register("redis", redis.Healthcheck(client))
		hooks = append(hooks, web.ShutdownHook(redis.Shutdown(client)))
		store = session.NewRedisStore(client)
		log.Info("sessions stored in redis")
	} else {
		mem := session.NewMemoryStore(session.WithMaxSessions(cfg.Session.MaxSessions))
		hooks = append(hooks, web.ShutdownHook(func(context.Context) error { return mem.Close() }))
		store = mem
		log.Info("sessions stored in memory")
	}

	mws := []web.Middleware{
		middlewares.RequestID(),
		middlewares.RequestLogger(),
		middlewares.Recover(),
	}
	if cfg.RequestTimeout > 0 {
		mws = append(mws, middlewares.Timeout(cfg.RequestTimeout))
	}

	app := web.New(
		web.WithLogger(log),
		web.WithMiddleware(mws...),
		web.WithSession(store,
			web.WithSessionCookieName(cfg.Session.CookieName),
			web.WithSessionTTL(cfg.Session.TTL),
			web.WithSecureCookie(cfg.Session.Secure),
			web.WithSessionSecret(cfg.Session.Secret),
		),
		web.WithHealth(checker),
		web.WithStaticFiles("/static/", views.Static(), "static"),
		web.WithErrorHandler(handlers.ErrorHandler),
		web.WithNotFoundHandler(handlers.NotFound),
		web.WithHandlers(
			handlers.NewEmailHandler(gen, mail, markdown.New()),
			handlers.NewHashtagHandler(gen),
		),
	)

	log.Info("campaigner configured",
		slog.String("completion_driver", cfg.Completion.Driver),
		slog.String("model", cfg.Completion.Model),
	)

	// Sentry goes last so failures in the other hooks are delivered.
	hooks = append(hooks,
		web.ShutdownHook(logger.Flush(sentryFlushTimeout)),
		web.ShutdownTimeout(cfg.ShutdownGrace),
		web.WithContext(ctx),
	)
	return app.Run(cfg.Addr, hooks...)
}

func newCompleter(cfg completion.Config, log *slog.Logger) (completion.Completer, error) {
	var hc *http.Client
	if cfg.Timeout > 0 {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	switch cfg.Driver {
	case completion.DriverOpenAI:
		return completion.NewOpenAI(cfg, hc)
	default:
		return completion.New(cfg, completion.WithHTTPClient(hc), completion.WithLogger(log)), nil
	}
}
