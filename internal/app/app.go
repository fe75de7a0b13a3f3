// Package app wires the companion agent: the long-running process that
// keeps a signed-in user's local notification state in sync with the
// backend and fires scheduled reminders on the device channel.
package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/api"
	"github.com/dev-kelz/Event-Management-System/internal/config"
	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/notify"
	"github.com/dev-kelz/Event-Management-System/internal/reminder"
	"github.com/dev-kelz/Event-Management-System/internal/service"
	"github.com/dev-kelz/Event-Management-System/internal/session"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg      *config.Config
	log      logger.Logger
	session  *session.Store
	client   *api.Client
	notifier *notify.Scheduler

	Events        *service.EventService
	Registrations *service.RegistrationService
	Feed          *service.Feed
	Tasks         *service.TaskBoard
	Reminders     *reminder.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"eventms-companion",
		cfg.Logger.Env,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err := app.initSession(); err != nil {
		return nil, fmt.Errorf("init session: %w", err)
	}

	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initSession() error {
	store, err := session.NewStore(a.cfg.Session.Path)
	if err != nil {
		return err
	}
	a.session = store

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "session loaded",
		logger.String("device_id", store.DeviceID()),
		logger.Any("logged_in", store.IsLoggedIn()),
	)
	return nil
}

func (a *App) initServices() error {
	a.client = api.New(a.cfg.Backend.BaseURL, a.cfg.Backend.HTTPTimeout)

	var chatID *int64
	if user := a.session.User(); user != nil {
		chatID = user.TelegramChatID
	}
	sink, err := notify.NewTelegramSink(a.cfg.Telegram.BotToken, chatID, a.log)
	if err != nil {
		return fmt.Errorf("init telegram sink: %w", err)
	}

	a.notifier = notify.NewScheduler(sink, a.cfg.Notify.DispatchInterval, a.log)
	a.Reminders = reminder.New(a.notifier, a.client, a.log)

	a.Events = service.NewEventService(a.client)
	a.Registrations = service.NewRegistrationService(a.client, a.Reminders, a.notifier, a.log)
	a.Feed = service.NewFeed(a.client, a.log)
	a.Tasks = service.NewTaskBoard(a.client, a.client, a.log)

	return nil
}

// Session exposes the persisted session for callers that need the current
// user or token.
func (a *App) Session() *session.Store {
	return a.session
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.notifier.Start(ctx)

	a.registerPushToken(ctx)

	go a.badgeSyncLoop(ctx)

	a.log.LogAttrs(ctx, logger.InfoLevel, "companion agent started",
		logger.String("backend", a.cfg.Backend.BaseURL),
		logger.Duration("badge_sync_interval", a.cfg.Notify.BadgeSyncInterval),
	)

	<-ctx.Done()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")

	return a.shutdown()
}

// registerPushToken records this device with the backend. Failure is not
// fatal; the agent still delivers locally scheduled notifications.
func (a *App) registerPushToken(ctx context.Context) {
	user := a.session.User()
	if user == nil {
		return
	}

	err := a.client.RegisterPushToken(ctx, domain.PushToken{
		UserID:     user.ID,
		Token:      a.session.DeviceID(),
		DeviceType: "companion",
	})
	if err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "register push token",
			logger.Int64("user_id", user.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	a.log.LogAttrs(ctx, logger.InfoLevel, "push token registered",
		logger.Int64("user_id", user.ID),
	)
}

// badgeSyncLoop periodically refreshes the notification feed and mirrors
// the unread count onto the local badge.
func (a *App) badgeSyncLoop(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.Notify.BadgeSyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.syncBadge(ctx)
		}
	}
}

func (a *App) syncBadge(ctx context.Context) {
	user := a.session.User()
	if user == nil {
		return
	}

	if err := a.Feed.Refresh(ctx, user.ID, false); err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "feed refresh",
			logger.Int64("user_id", user.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	unread := a.Feed.UnreadCount()
	a.notifier.SetBadge(unread)

	a.log.LogAttrs(ctx, logger.DebugLevel, "badge synced",
		logger.Int("unread", unread),
	)
}

func (a *App) shutdown() error {
	a.notifier.CancelAll()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "agent stopped")
	return nil
}
