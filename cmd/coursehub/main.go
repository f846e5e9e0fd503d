package main

// main.go wires the application together: config, logging, database, the
// repositories and services, the session and the navigation history, then
// hands control to the interactive scene loop.

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"coursehub/database"
	"coursehub/internal/config"
	"coursehub/internal/navigation"
	"coursehub/internal/repository"
	"coursehub/internal/service"
	"coursehub/internal/session"
)

var dbPath string // flag override for DATABASE_URL

var rootCmd = &cobra.Command{
	Use:   "coursehub",
	Short: "coursehub - browse, search and review courses",
	Long: `coursehub is an interactive course-review application. Register an
account, search and browse courses, and leave one review per course with a
1-5 rating. Data lives in a local SQLite database.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite database (overrides DATABASE_URL)")
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if dbPath != "" {
		cfg.DatabaseURL = dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	a := &app{
		in:      os.Stdin,
		out:     os.Stdout,
		auth:    service.NewAuthService(userRepo, logger),
		courses: service.NewCourseService(courseRepo, logger),
		reviews: service.NewReviewService(reviewRepo, courseRepo, logger),
		sess:    session.New(),
		hist:    navigation.New(),
	}
	a.run()
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
