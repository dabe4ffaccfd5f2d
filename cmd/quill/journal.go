package main

import (
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/config"
	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/logger"
	"github.com/gorewood/quill/internal/output"
)

// journalEnv is the resolved configuration and journal for one command run.
type journalEnv struct {
	cfg     *config.Config
	journal *journal.Journal
}

// loadConfig reads the config file and applies the --dir and --db flags.
// --dir selects the file source even when a database is configured.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.Dir())
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}

	if dir := rootFlag(cmd, "dir"); dir != "" {
		cfg.JournalDir = config.ExpandHome(dir)
		cfg.Database = ""
	}
	if db := rootFlag(cmd, "db"); db != "" {
		cfg.Database = config.ExpandHome(db)
	}
	return cfg, nil
}

// rootFlag returns the string value of a persistent root flag.
func rootFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// openJournal loads the config and opens the configured source.
// A missing journal directory or database is a user error.
func openJournal(cmd *cobra.Command) (*journalEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := checkSource(cfg); err != nil {
		return nil, err
	}

	env := &journalEnv{cfg: cfg, journal: journal.New(newSource(cfg))}
	logger.Debug("journal opened", "location", env.journal.Location())
	return env, nil
}

// newSource picks the SQLite database when configured, else the directory.
func newSource(cfg *config.Config) journal.Source {
	if cfg.Database != "" {
		return journal.NewSQLiteSource(cfg.Database)
	}
	return journal.NewFileStorage(cfg.JournalDir)
}

func checkSource(cfg *config.Config) error {
	if cfg.Database != "" {
		if _, err := os.Stat(cfg.Database); err != nil {
			return output.NewUserError(fmt.Sprintf("journal database %s not found", cfg.Database))
		}
		return nil
	}
	if !journal.NewFileStorage(cfg.JournalDir).DirExists() {
		return output.NewUserError(fmt.Sprintf(
			"journal directory %s does not exist (set journal_dir in %s or use --dir)",
			cfg.JournalDir, config.FileName))
	}
	return nil
}

// resolveToday returns the --today value when given, else today in the
// configured timezone.
func resolveToday(cfg *config.Config, todayFlag string) (civil.Date, error) {
	if todayFlag != "" {
		today, err := civil.ParseDate(todayFlag)
		if err != nil {
			return civil.Date{}, output.NewUserError(fmt.Sprintf("invalid --today value %q: use YYYY-MM-DD", todayFlag))
		}
		return today, nil
	}
	today, err := config.Today(cfg.Timezone)
	if err != nil {
		return civil.Date{}, output.NewUserError(err.Error())
	}
	return today, nil
}

// journalError maps journal errors onto exit codes.
func journalError(err error) error {
	var exitErr *output.ExitError
	switch {
	case errors.As(err, &exitErr):
		return err
	case errors.Is(err, journal.ErrNoEntries):
		return output.NewUserError("no entries found in journal")
	case errors.Is(err, journal.ErrNotJournalEntry):
		return output.NewUserError(err.Error())
	default:
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
}
