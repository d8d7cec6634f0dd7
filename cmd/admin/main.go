package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/comercio-admin/internal/application/export"
	"github.com/jhoicas/comercio-admin/internal/application/store"
	infrapdf "github.com/jhoicas/comercio-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/comercio-admin/internal/infrastructure/rest"
	"github.com/jhoicas/comercio-admin/internal/infrastructure/secrets"
	"github.com/jhoicas/comercio-admin/internal/interfaces/cli"
	"github.com/jhoicas/comercio-admin/pkg/config"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola")

	// Ctrl-C cancela las peticiones en vuelo.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := rest.NewClient(rest.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, log)

	vault := secrets.NewFileVault(cfg.Session.TokenPath)
	notifier := cli.NewConsoleNotifier(os.Stdout, log)

	authStore := store.NewAuthStore(rest.NewAuthClient(client), vault, notifier, log)
	// El token del cliente REST proviene de la sesión activa; se enlaza
	// después de construir el store porque el login usa el mismo cliente.
	client.SetTokenSource(authStore)

	var reports export.ReportGenerator = infrapdf.NewMarotoReportGenerator()

	deps := cli.Deps{
		Auth:          authStore,
		Categories:    store.NewCategoryStore(rest.NewCategoryClient(client), notifier, log),
		Subcategories: store.NewSubcategoryStore(rest.NewSubcategoryClient(client), notifier, log),
		Products:      store.NewProductStore(rest.NewProductClient(client), notifier, log),
		Carousel:      store.NewCarouselStore(rest.NewCarouselClient(client), notifier, log),
		Orders:        store.NewOrderStore(rest.NewOrderClient(client), notifier, log),
		Reports:       reports,
		PageSize:      cfg.UI.PageSize,
		Log:           log,
		In:            os.Stdin,
		Out:           os.Stdout,
	}

	os.Exit(cli.Run(ctx, deps, os.Args[1:]))
}
