package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chasselife/xpnse/internal"
	"github.com/chasselife/xpnse/internal/category"
	"github.com/chasselife/xpnse/internal/dashboard"
	"github.com/chasselife/xpnse/internal/expense"
	"github.com/chasselife/xpnse/internal/item"
	"github.com/chasselife/xpnse/internal/storage"
	"github.com/chasselife/xpnse/internal/transport/rest"
	"github.com/chasselife/xpnse/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *storage.DB
	Router *chi.Mux
	Logger *slog.Logger

	ExpenseService  *expense.Service
	CategoryService *category.Service
	ItemService     *item.Service
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	expenseHandler := expense.NewHandler(deps.ExpenseService)
	categoryHandler := category.NewHandler(deps.CategoryService)
	itemHandler := item.NewHandler(deps.ItemService)
	dashboardHandler := dashboard.NewHandler(
		dashboard.NewService(deps.ExpenseService, deps.CategoryService, deps.ItemService, deps.Logger))

	rest.RegisterAllRoutes(deps.Router, deps.DB, expenseHandler, categoryHandler, itemHandler, dashboardHandler, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)
	lg := logger.L()

	db := storage.New(config.Database.Path)
	if _, err := db.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	expenseService := expense.NewService(storage.Expenses(db), lg)
	categoryService := category.NewService(storage.Categories(db), expenseService, lg)
	itemService := item.NewService(storage.Items(db), categoryService, lg)

	return &Dependencies{
		Config:          config,
		DB:              db,
		Router:          chi.NewRouter(),
		Logger:          lg,
		ExpenseService:  expenseService,
		CategoryService: categoryService,
		ItemService:     itemService,
	}, nil
}
