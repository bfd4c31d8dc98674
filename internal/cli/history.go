package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ReportOptions struct {
	GlobalOptions

	ID     string
	Format string
	Out    string
}

func DefaultReportOptions() *ReportOptions {
	return &ReportOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Format:        "txt",
	}
}

func NewCmdReport() *cobra.Command {
	o := DefaultReportOptions()
	cmd := &cobra.Command{
		Use:   "report ID --db FILE",
		Short: "Render a stored estimate as a report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *ReportOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Format, "format", "f", o.Format, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalReportFormats, ", ")))
	fs.StringVarP(&o.Out, "out", "o", o.Out, "Write the report to this file instead of stdout")
}

func (o *ReportOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.ID = strings.TrimSpace(args[0])
	return nil
}

func (o *ReportOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.DBPath == memoryDB {
		return fmt.Errorf("--db is required to read stored estimates")
	}
	return validateReportFormat(o.Format, o.Out)
}

func (o *ReportOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	estimator, closeDB, err := o.Estimator(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	est, err := estimator.GetEstimate(ctx, o.ID)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), est, o.Format, o.Out)
}

type HistoryOptions struct {
	GlobalOptions

	Limit int
}

func DefaultHistoryOptions() *HistoryOptions {
	return &HistoryOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Limit:         20,
	}
}

func NewCmdHistory() *cobra.Command {
	o := DefaultHistoryOptions()
	cmd := &cobra.Command{
		Use:   "history --db FILE",
		Short: "List stored estimates, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *HistoryOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.IntVarP(&o.Limit, "limit", "n", o.Limit, "Maximum number of estimates to list")
}

func (o *HistoryOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.Limit < 1 {
		return fmt.Errorf("limit must be positive")
	}
	return nil
}

func (o *HistoryOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	estimator, closeDB, err := o.Estimator(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	ests, err := estimator.ListEstimates(ctx, o.Limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, '\t', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tFILE\tCREATED\tCONCRETE (m3)\tCEMENT (kg)\tBRICKS")
	for _, e := range ests {
		t := e.Breakdown.Total
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.0f\t%d\n",
			e.ID, e.Source, e.FileName, e.CreatedAt.Format(time.RFC3339), t.Concrete, t.Cement, t.Bricks)
	}
	return w.Flush()
}
