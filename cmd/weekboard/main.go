package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/weekboard/weekboard/pkg/board"
	"github.com/weekboard/weekboard/pkg/config"
	"github.com/weekboard/weekboard/pkg/log"
	"github.com/weekboard/weekboard/pkg/store"
	"github.com/weekboard/weekboard/pkg/tui"
)

var (
	dataDirFlag string
	jsonOutput  bool
)

// app is the per-invocation wiring shared by every command.
type app struct {
	dir    string
	cfg    *config.Config
	store  *store.Store
	engine *board.Engine
}

var rootCmd = &cobra.Command{
	Use:   "weekboard",
	Short: "Weekly time-block board",
	Long: `weekboard places tasks into (day, hour) slots of a working week.

Run without a subcommand to open the interactive board.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		return runTUI(a)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "dir", "", "data directory (default $"+store.EnvDataDir+" or the OS data dir)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print machine-readable JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openApp loads config and task files and builds an engine that journals
// every mutation back to the store.
func openApp() (*app, error) {
	dir := store.ResolveDataDir(dataDirFlag)

	s, err := store.NewStore(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.Path(dir))
	if err != nil {
		return nil, err
	}
	log.SetLevel(log.ParseLevel(cfg.LogLevel))

	engine, err := board.NewEngine(cfg.WorkingHours, board.WithJournal(s))
	if err != nil {
		return nil, err
	}

	tasks, err := s.LoadTasks()
	if err != nil {
		return nil, err
	}
	if err := engine.Replace(tasks); err != nil {
		return nil, fmt.Errorf("loading tasks from %s: %w", s.TasksDir(), err)
	}
	log.Debug("board opened", "dir", dir, "tasks", len(tasks), "hours", cfg.WorkingHours.String())

	return &app{dir: dir, cfg: cfg, store: s, engine: engine}, nil
}

func runTUI(a *app) error {
	// The alt screen owns stderr while the board runs.
	if f, err := openLogFile(); err == nil {
		log.SetOutput(f)
		defer func() {
			log.SetOutput(os.Stderr)
			f.Close()
		}()
	}

	m := tui.NewModel(a.engine, a.store, tui.Options{WeekStart: a.cfg.WeekStart})
	p := tea.NewProgram(m, tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(p, a.store.TasksDir())
	if err != nil {
		log.Error("file watcher failed", err)
		fmt.Fprintf(os.Stderr, "Warning: file watcher failed: %v\n", err)
	} else {
		defer cleanup()
	}

	_, err = p.Run()
	return err
}

func openLogFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "weekboard")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "weekboard.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
