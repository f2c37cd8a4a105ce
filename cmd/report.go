package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/harini-kv/yt-warehouse/internal/repository"
	"github.com/harini-kv/yt-warehouse/internal/service"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run canned warehouse reports",
	Long:  `Run read-only reports from the fixed catalog over stored channels and videos.`,
}

// reportListCmd lists the report catalog
var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, pool, err := openWarehouse(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		catalog := service.NewReportService(repository.NewReportRepository(pool)).Catalog()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDESCRIPTION")
		for _, def := range catalog {
			fmt.Fprintf(w, "%s\t%s\n", def.Name, def.Description)
		}
		return w.Flush()
	},
}

// reportRunCmd executes one report
var reportRunCmd = &cobra.Command{
	Use:   "run [NAME]",
	Short: "Run a named report",
	Long:  `Execute one report from the catalog and print its rows as a table.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, pool, err := openWarehouse(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		reports := service.NewReportService(repository.NewReportRepository(pool))

		result, err := reports.Run(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to run report: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, strings.ToUpper(strings.Join(result.Columns, "\t")))
		for _, row := range result.Rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d row(s)\n", len(result.Rows))
		return nil
	},
}

func init() {
	reportCmd.AddCommand(reportListCmd)
	reportCmd.AddCommand(reportRunCmd)
	rootCmd.AddCommand(reportCmd)
}
