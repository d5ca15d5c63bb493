package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kylycht/hoststats/controller/dashboard"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		cfg        Config
	)

	root := &cobra.Command{
		Use:           "hoststats",
		Short:         "Storage network statistics dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = LoadConfig(configPath); err != nil {
				return err
			}
			setupLogger(cfg)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file, defaults to ./config.yaml")

	// run opens the application for a single command
	run := func(fn func(ctx context.Context, a *Application, out io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			a, err := New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := fn(cmd.Context(), a, cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Str("command", cmd.Name()).Msg("command failed")
				return err
			}
			return nil
		}
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard views",
		RunE: run(func(ctx context.Context, a *Application, _ io.Writer) error {
			ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return a.Serve(ctx)
		}),
	})

	root.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current network status",
		RunE: run(func(ctx context.Context, a *Application, out io.Writer) error {
			status, err := a.client.GetStatus(ctx)
			if err != nil {
				return err
			}
			return printJSON(out, status)
		}),
	})

	var date int64
	totalsCmd := &cobra.Command{
		Use:   "totals",
		Short: "Print aggregate totals",
		RunE: run(func(ctx context.Context, a *Application, out io.Writer) error {
			totals, err := a.client.GetTotals(ctx, unixFlag(date))
			if err != nil {
				return err
			}
			return printJSON(out, totals)
		}),
	}
	totalsCmd.Flags().Int64Var(&date, "date", 0, "unix timestamp, defaults to now")
	root.AddCommand(totalsCmd)

	var end int64
	snapshotsCmd := &cobra.Command{
		Use:   "snapshots",
		Short: "Print historical snapshots",
		RunE: run(func(ctx context.Context, a *Application, out io.Writer) error {
			snapshots, err := a.client.GetSnapshots(ctx, unixFlag(end))
			if err != nil {
				return err
			}
			return printJSON(out, snapshots)
		}),
	}
	snapshotsCmd.Flags().Int64Var(&end, "end", 0, "unix timestamp, defaults to now")
	root.AddCommand(snapshotsCmd)

	root.AddCommand(&cobra.Command{
		Use:   "settings",
		Short: "Print network average host settings in the display currency",
		RunE: run(func(ctx context.Context, a *Application, out io.Writer) error {
			if err := a.syncer.Sync(ctx); err != nil {
				log.Warn().Err(err).Msg("unable to fetch exchange rates, printing hastings only")
			}

			settings, err := a.dashboard.LoadSettings(ctx)
			if err != nil {
				return err
			}
			return printJSON(out, settings)
		}),
	})

	root.AddCommand(&cobra.Command{
		Use:   "price",
		Short: "Print coin exchange rates",
		RunE: run(func(ctx context.Context, a *Application, out io.Writer) error {
			if err := a.syncer.Sync(ctx); err != nil {
				return err
			}
			return printJSON(out, dashboard.RatesResponse{
				SC: a.store.ExchangeRateSC(),
				SF: a.store.ExchangeRateSF(),
			})
		}),
	})

	root.AddCommand(&cobra.Command{
		Use:   "currency [code]",
		Short: "Print or change the display currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, a *Application, out io.Writer) error {
				if len(args) == 1 {
					if err := dashboard.ValidateCurrency(args[0]); err != nil {
						return err
					}
					if err := a.store.SetCurrency(ctx, strings.ToLower(args[0])); err != nil {
						return err
					}
				}
				_, err := fmt.Fprintln(out, a.store.Currency())
				return err
			})(cmd, args)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return err
		},
	})

	return root
}

func unixFlag(v int64) time.Time {
	if v <= 0 {
		return time.Time{}
	}
	return time.Unix(v, 0)
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
