package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"addressbook/internal/adapters/memory"
	"addressbook/internal/adapters/sqlite"
	"addressbook/internal/application"
	"addressbook/internal/config"
	"addressbook/internal/ports"
)

var (
	dbPath   string
	inMemory bool
	plain    bool

	logger  *zap.Logger
	store   ports.AddressBookStore
	session *application.Model
)

var rootCmd = &cobra.Command{
	Use:   "addressbook",
	Short: "Keep contacts in a local address book",
	Long: `addressbook manages contacts stored in a local SQLite database.

Every change can be undone. Indices refer to the listing shown by the
last list or find, so "find alex" followed by "delete 1" deletes the
first Alex.

Configuration is read from the environment:
  ADDRESSBOOK_DB              database path
  ADDRESSBOOK_LOG_LEVEL       debug, info, warn or error
  ADDRESSBOOK_HISTORY_LIMIT   number of undoable changes kept`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return openSession(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	ctx := context.Background()
	err := finishSession(ctx, os.Stderr, rootCmd.ExecuteContext(ctx))
	if err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the database (overrides ADDRESSBOOK_DB)")
	rootCmd.PersistentFlags().BoolVar(&inMemory, "memory", false, "use a throwaway in-memory address book")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "print listings without styling")
}

func openSession(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	logger, err = config.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	if inMemory {
		store, err = memory.NewStore()
		if err != nil {
			return err
		}
	} else {
		s := sqlite.NewStore(logger)
		if err := s.Open(cfg.DBPath); err != nil {
			return err
		}
		logger.Debug("database opened", zap.String("path", s.Path()))
		store = s
	}

	session, err = application.LoadModel(ctx, store, application.ModelOptions{
		Logger:       logger,
		HistoryLimit: cfg.HistoryLimit,
	})
	if err != nil {
		store.Close()
		store = nil
		return err
	}
	return nil
}

// finishSession closes the session after a command returned err.
// A successful command has already committed its change, so failing to
// save the view or close the store afterwards is reported as a warning.
func finishSession(ctx context.Context, w io.Writer, err error) error {
	cerr := closeSession(ctx)
	if cerr == nil {
		return err
	}
	if logger != nil {
		logger.Warn("failed to close session", zap.Error(cerr))
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, color.New(color.FgYellow).Sprint("warning: ", cerr))
	return nil
}

// closeSession saves the displayed filter so the next invocation resolves
// indices against the same listing
func closeSession(ctx context.Context) error {
	var errs []error
	if session != nil {
		errs = append(errs, session.SaveView(ctx))
		session = nil
	}
	if store != nil {
		errs = append(errs, store.Close())
		store = nil
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return errors.Join(errs...)
}

// GetSession returns the loaded address book session
func GetSession() *application.Model {
	return session
}
