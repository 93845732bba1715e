package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizdesk.app/bizdesk/config"
	"bizdesk.app/bizdesk/core"
	"bizdesk.app/bizdesk/core/dashboard"
	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/core/receipt"
	"bizdesk.app/bizdesk/core/registries"
	"bizdesk.app/bizdesk/infrastructure/communication"
	"bizdesk.app/bizdesk/infrastructure/devops"
	"bizdesk.app/bizdesk/infrastructure/filesystem"
	"bizdesk.app/bizdesk/infrastructure/logging"
	"bizdesk.app/bizdesk/security"
	"bizdesk.app/bizdesk/web"
	"github.com/gin-gonic/gin"
)

type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (a *App) Init(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})
	return nil
}

func (a *App) openDatabase(ctx context.Context) (*core.DatabaseManager, error) {
	dsn := a.cfg.DSN
	if a.cfg.DatabaseParameter != "" {
		resolver, err := devops.NewResolver(ctx, a.cfg.DatabaseParameter, a.cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		if dsn, err = resolver.DSN(ctx, a.cfg.DatabaseName); err != nil {
			return nil, err
		}
	}

	dm, err := core.New(a.cfg.DatabaseDriver, dsn, a.cfg.DBMaxConnections, core.ParseLogLevel(a.cfg.DBLogLevel))
	if err != nil {
		return nil, err
	}
	a.logger.Info("database connected",
		logging.FieldComponent, logging.ComponentDatabase,
		"driver", a.cfg.DatabaseDriver,
	)
	return dm, nil
}

func (a *App) Migrate(ctx context.Context) error {
	dm, err := a.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer dm.Close()

	if err := dm.Migrate(ctx, models.All()...); err != nil {
		return err
	}
	a.logger.Info("migration complete", logging.FieldComponent, logging.ComponentDatabase)
	return nil
}

// receiptStore returns the configured store and, for the local backend, the directory to serve.
func (a *App) receiptStore(ctx context.Context) (receipt.Store, string, error) {
	if a.cfg.StorageBackend == config.StorageS3 {
		store, err := filesystem.NewS3Store(ctx, filesystem.S3Option{
			Bucket:        a.cfg.ReceiptBucket,
			Region:        a.cfg.AWSRegion,
			PublicBaseURL: a.cfg.ReceiptURL(),
		})
		return store, "", err
	}

	store, err := filesystem.NewLocalStore(a.cfg.LocalStorageDir, a.cfg.ReceiptURL())
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}

func (a *App) notifier() communication.Notifier {
	if a.cfg.SlackToken == "" {
		return communication.Noop{}
	}
	return communication.NewSlack(a.cfg.SlackToken, communication.SlackOption{
		InfoChannelID:  a.cfg.SlackInfoChannel,
		ErrorChannelID: a.cfg.SlackErrorChannel,
	})
}

func (a *App) Serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	dm, err := a.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer dm.Close()
	if err := dm.Migrate(ctx, models.All()...); err != nil {
		return err
	}

	store, receiptDir, err := a.receiptStore(ctx)
	if err != nil {
		return err
	}
	secret, err := security.DecodeSecret(a.cfg.SigningSecret)
	if err != nil {
		return err
	}

	lang, _ := locale.Parse(a.cfg.Locale)
	catalog := locale.For(lang)
	notifier := a.notifier()

	set := registries.NewSet(dm)
	gin.SetMode(gin.ReleaseMode)
	router := web.NewRouter(web.Dependencies{
		Registries:    set,
		Dashboard:     dashboard.New(dashboard.NewGormSource(dm, set), catalog),
		Attacher:      receipt.NewAttacher(store),
		Catalog:       catalog,
		Logger:        a.logger,
		Notifier:      notifier,
		SigningSecret: secret,
		SessionCookie: a.cfg.SessionCookie,
		ReceiptDir:    receiptDir,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", logging.FieldComponent, logging.ComponentApp, "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", logging.FieldComponent, logging.ComponentApp)
	if err := notifier.Info(context.WithoutCancel(ctx), "bizdesk stopped"); err != nil {
		a.logger.Warn("notification failed", logging.FieldError, err.Error())
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (a *App) Token(w io.Writer, user, email, name string, ttl time.Duration) error {
	secret, err := security.DecodeSecret(a.cfg.SigningSecret)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = a.cfg.TokenTTL
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		ID:         user,
		UniqueName: name,
		Email:      email,
		Provider:   "cli",
	}, secret, ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, token)
	return err
}

func (a *App) ImportClients(ctx context.Context, w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dm, err := a.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer dm.Close()

	res, err := registries.ImportClients(ctx, registries.Clients(dm), f)
	if err != nil {
		return err
	}
	for _, skipped := range res.Skipped {
		fmt.Fprintf(w, "line %d: %v\n", skipped.Line, skipped.Err)
	}
	fmt.Fprintf(w, "%d clients imported, %d skipped\n", len(res.Created), len(res.Skipped))
	return nil
}
