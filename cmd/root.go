package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/LavenderBridge/attend/internal/config"
	"github.com/LavenderBridge/attend/internal/db"
	"github.com/LavenderBridge/attend/internal/logger"
	"github.com/LavenderBridge/attend/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	dbPath   string
	backend  string
	logLevel string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "attend",
	Short: "Track class attendance against a required percentage",
	Long: `Attend keeps a weekly timetable for each of your courses, lets you
mark every class present, absent or cancelled, and tells you how many
classes you can still skip (or must attend) to stay above the required
attendance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			loaded.Storage.Path = dbPath
		}
		if backend != "" {
			loaded.Storage.Backend = backend
		}
		if logLevel != "" {
			loaded.Logging.Level = logLevel
		}
		cfg = loaded
		logger.Init(cfg.Logging)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default ~/.attend/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the sqlite database")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Storage backend: sqlite, redis or memory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// openTracker opens the configured store and loads the course collection.
// The returned func closes the store.
func openTracker(ctx context.Context) (*tracker.Service, func(), error) {
	kv, err := db.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	svc := tracker.NewService(kv,
		tracker.WithLogger(logger.Get()),
		tracker.WithDefaultRequired(cfg.Tracker.DefaultRequiredAttendance),
	)
	svc.Load(ctx)

	return svc, func() { kv.Close() }, nil
}

// withTracker runs fn against a loaded tracker, printing store errors the
// way every command reports them.
func withTracker(cmd *cobra.Command, fn func(ctx context.Context, svc *tracker.Service)) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, closeStore, err := openTracker(ctx)
	if err != nil {
		fmt.Println("❌ Database error:", err)
		return
	}
	defer closeStore()

	fn(ctx, svc)
}
