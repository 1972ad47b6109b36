package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jask/pyrite/internal/catalog"
	"github.com/jask/pyrite/internal/config"
	"github.com/jask/pyrite/internal/database"
	"github.com/jask/pyrite/internal/database/repository"
	"github.com/jask/pyrite/internal/ledger"
	"github.com/jask/pyrite/internal/logging"
	"github.com/jask/pyrite/internal/schedule"
	"github.com/jask/pyrite/internal/tui"
	"github.com/jask/pyrite/internal/week"
)

// cli holds what every subcommand shares once the config is loaded.
type cli struct {
	root       *cobra.Command
	configPath string
	cfg        config.Config
	logCloser  io.Closer
}

func newCLI() *cli {
	c := &cli{}
	c.root = c.newRootCmd()
	return c
}

// execute runs the command tree. The log file is closed whether or not the
// command fails; cobra skips post-run hooks after an error.
func (c *cli) execute() error {
	defer c.teardown()
	return c.root.Execute()
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pyrite",
		Short: "Track weekly spending by category",
		Long: `pyrite records purchases against the categories in your categories file
and shows per-category totals for one week at a time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(contextOf(cmd))
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $PYRITE_CONFIG or ~/.config/pyrite/config.toml)")
	root.AddCommand(c.newWeekCmd(), c.newAddCmd(), c.newConfigCmd())
	return root
}

func (c *cli) setup() error {
	if c.configPath == "" {
		c.configPath = config.Path()
	}
	cfg, err := config.LoadFrom(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	c.logCloser = closer
	return nil
}

func (c *cli) teardown() {
	if c.logCloser != nil {
		_ = c.logCloser.Close()
	}
}

// session is an opened catalog and ledger.
type session struct {
	policy  week.Policy
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	closers []io.Closer
}

func (s *session) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// open loads the catalog and ledger. Any load error is fatal: a partial
// catalog or ledger is never used.
func (c *cli) open(ctx context.Context) (*session, error) {
	policy, err := week.LoadPolicy(c.cfg.UI.Timezone)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.LoadFile(c.cfg.Data.CategoriesPath)
	if err != nil {
		return nil, err
	}

	s := &session{policy: policy, catalog: cat}
	var store ledger.Store = ledger.NewFileStore(c.cfg.Data.PurchasesPath)
	if path := c.cfg.Storage.MirrorPath; path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir mirror dir: %w", err)
		}
		db, err := database.OpenMigrated(path)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db)
		if err := database.SyncCategories(ctx, db, cat); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("sync categories: %w", err)
		}
		store = ledger.Mirror(store, repository.NewPurchaseRepo(db))
	}

	l, err := ledger.Open(ctx, ledger.Serialized(store), ledger.SystemClock(policy.Location))
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.ledger = l
	log.Info().Int("purchases", l.Len()).Int("categories", cat.Len()).Msg("loaded")
	return s, nil
}

func (c *cli) runTUI(ctx context.Context) error {
	s, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	app, err := tui.New(ctx, tui.Options{
		Config:  c.cfg,
		Catalog: s.catalog,
		Ledger:  s.ledger,
		Policy:  s.policy,
		Now:     func() time.Time { return time.Now().In(s.policy.Location) },
	})
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())

	sched := schedule.New(s.policy.Location)
	if _, err := sched.ScheduleRollover(c.cfg.Schedule.Rollover, func() { p.Send(tui.RolloverMsg{}) }); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	_, err = p.Run()
	return err
}
