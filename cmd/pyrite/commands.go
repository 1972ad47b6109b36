package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jask/pyrite/internal/config"
	"github.com/jask/pyrite/internal/ledger"
	"github.com/jask/pyrite/internal/money"
	"github.com/jask/pyrite/internal/overview"
)

func (c *cli) newWeekCmd() *cobra.Command {
	var (
		date  string
		width int
	)
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the overview for one week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(contextOf(cmd))
			if err != nil {
				return err
			}
			defer s.Close()

			at := time.Now().In(s.policy.Location)
			if date != "" {
				at, err = time.ParseInLocation("2006-01-02", date, s.policy.Location)
				if err != nil {
					return fmt.Errorf("--date: %w", err)
				}
			}
			return printWeek(cmd.OutOrStdout(), s, at, width, c.cfg.UI.SubtotalPrefix)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "any day in the week to show, YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&width, "width", 60, "table width in columns")
	return cmd
}

func printWeek(w io.Writer, s *session, at time.Time, width int, prefix string) error {
	start, end := s.policy.Window(at)
	view := s.ledger.Within(start, end)

	var b strings.Builder
	b.WriteString(s.policy.RangeLabel(at) + "\n\n")
	g := overview.Build(s.catalog, view.GroupByCategory(), "").Layout(width, 0)
	if !g.Empty() {
		b.WriteString(g.String() + "\n\n")
	}
	if label := strings.TrimSuffix(strings.TrimSpace(prefix), ":"); label != "" {
		fmt.Fprintf(&b, "%s: %s\n", label, view.TotalWithPrefix(prefix).Whole())
	}
	fmt.Fprintf(&b, "Total: %s\n", view.Total().Whole())
	_, err := io.WriteString(w, b.String())
	return err
}

func (c *cli) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Record one purchase now",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)
			s, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			name := args[0]
			if !s.catalog.Contains(name) {
				if guess, ok := s.catalog.Suggest(name); ok {
					return fmt.Errorf("unknown category %q (did you mean %q?)", name, guess)
				}
				return fmt.Errorf("unknown category %q", name)
			}
			cost, err := money.Parse(args[1])
			if err != nil {
				return err
			}
			p := s.ledger.Append(name, cost)
			if err := s.ledger.Persist(ctx); err != nil {
				return err
			}
			log.Info().Str("category", name).Str("cost", cost.Plain()).Msg("purchase added")
			fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s at %s\n", p.Cost, p.Category, p.CreatedAt.Format(ledger.TimestampLayout))
			return nil
		},
	}
}

func (c *cli) newConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(c.configPath); err == nil && !force {
				return fmt.Errorf("%s exists; use --force to overwrite", c.configPath)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(c.configPath, c.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", c.configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
