package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybook/daybook/internal/config"
	"github.com/daybook/daybook/internal/journal"
	"github.com/daybook/daybook/internal/platform/factory"
	"github.com/daybook/daybook/internal/platform/logger"
)

var (
	ownerFlag string
	rootCmd   = &cobra.Command{
		Use:   "daybook",
		Short: "Personal journaling log with inline #metric annotations",
	}
)

// withStore wires config, logging and the configured store backend, runs fn
// and releases the store afterwards.
func withStore(fn func(svc *journal.Service) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New("daybook").Level(logger.Level(cfg.LogLevel))

	ds, release, err := factory.NewDiaryStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = release() }()

	if ownerFlag == "" {
		ownerFlag = cfg.Owner
	}
	if ownerFlag == "" {
		return fmt.Errorf("--owner required (or set DAYBOOK_OWNER)")
	}
	return fn(journal.New(ds, log))
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&ownerFlag, "owner", "o", "", "Owner key the diary belongs to")

	writeCmd := &cobra.Command{
		Use:   "write [text]",
		Short: "Append an entry and persist it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(svc *journal.Service) error {
				return runWrite(svc, ownerFlag, args[0], os.Stdout)
			})
		},
	}
	rootCmd.AddCommand(writeCmd)

	readCmd := &cobra.Command{
		Use:   "read",
		Short: "Print every entry in the diary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(svc *journal.Service) error {
				return runRead(svc, ownerFlag, os.Stdout)
			})
		},
	}
	rootCmd.AddCommand(readCmd)

	metricsCmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print the extracted metric values per entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(svc *journal.Service) error {
				return runMetrics(svc, ownerFlag, os.Stdout)
			})
		},
	}
	rootCmd.AddCommand(metricsCmd)

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Filter entries by substring, date range and metric bounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := queryFromFlags(cmd)
			if err != nil {
				return err
			}
			return withStore(func(svc *journal.Service) error {
				return runSearch(svc, ownerFlag, q, os.Stdout)
			})
		},
	}
	searchCmd.Flags().StringP("term", "t", "", "Substring the entry text must contain")
	searchCmd.Flags().String("before", "", "Keep entries strictly before this timestamp")
	searchCmd.Flags().String("after", "", "Keep entries strictly after this timestamp")
	searchCmd.Flags().StringP("metric", "m", "", "Metric name the entry must carry")
	searchCmd.Flags().Float64("gt", 0, "Keep entries with metric value strictly greater")
	searchCmd.Flags().Float64("lt", 0, "Keep entries with metric value strictly less")
	searchCmd.Flags().Float64("eq", 0, "Keep entries with metric value equal")
	rootCmd.AddCommand(searchCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print sentiment and lexical statistics per entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(svc *journal.Service) error {
				return runStats(svc, ownerFlag, os.Stdout)
			})
		},
	}
	rootCmd.AddCommand(statsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
