package cli

import (
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/services"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type EstimateOptions struct {
	GlobalOptions

	DimensionsFile string
	Format         string
	Out            string
}

func DefaultEstimateOptions() *EstimateOptions {
	return &EstimateOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Format:        "txt",
	}
}

func NewCmdEstimate() *cobra.Command {
	o := DefaultEstimateOptions()
	cmd := &cobra.Command{
		Use:   "estimate --dims FILE",
		Short: "Estimate materials for building dimensions read from a JSON file.",
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

func (o *EstimateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.DimensionsFile, "dims", o.DimensionsFile, "JSON file with building dimensions (\"-\" for stdin)")
	fs.StringVarP(&o.Format, "format", "f", o.Format, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalReportFormats, ", ")))
	fs.StringVarP(&o.Out, "out", "o", o.Out, "Write the report to this file instead of stdout")
}

func (o *EstimateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.DimensionsFile == "" {
		return fmt.Errorf("--dims is required")
	}
	return validateReportFormat(o.Format, o.Out)
}

func (o *EstimateOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	dims, err := readDimensions(o.DimensionsFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	estimator, closeDB, err := o.Estimator(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	name := ""
	if o.DimensionsFile != "-" {
		name = filepath.Base(o.DimensionsFile)
	}

	est, err := estimator.EstimateProject(ctx, services.EstimateRequest{
		Source:     domain.SourceCLI,
		FileName:   name,
		Dimensions: dims,
	})
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), est, o.Format, o.Out)
}

type UploadOptions struct {
	GlobalOptions

	File   string
	Format string
	Out    string
}

func DefaultUploadOptions() *UploadOptions {
	return &UploadOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Format:        "txt",
	}
}

func NewCmdUpload() *cobra.Command {
	o := DefaultUploadOptions()
	cmd := &cobra.Command{
		Use:   "upload --file MODEL",
		Short: "Estimate materials from a building model file (skp, dwg, dxf, rvt, ifc, 3ds).",
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

func (o *UploadOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.File, "file", o.File, "Building model file")
	fs.StringVarP(&o.Format, "format", "f", o.Format, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalReportFormats, ", ")))
	fs.StringVarP(&o.Out, "out", "o", o.Out, "Write the report to this file instead of stdout")
}

func (o *UploadOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.File == "" {
		return fmt.Errorf("--file is required")
	}
	f := domain.UploadedFile{Name: filepath.Base(o.File)}
	if !f.IsSupportedModel() {
		return fmt.Errorf("unsupported file type %q, expected one of %s", f.Extension(), strings.Join(domain.ModelExtensions, ", "))
	}
	return validateReportFormat(o.Format, o.Out)
}

func (o *UploadOptions) Run(ctx context.Context, cmd *cobra.Command) error {
	model, err := os.Open(o.File)
	if err != nil {
		return fmt.Errorf("reading model: %w", err)
	}
	defer model.Close()

	info, err := model.Stat()
	if err != nil {
		return fmt.Errorf("reading model: %w", err)
	}

	estimator, closeDB, err := o.Estimator(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	est, err := estimator.EstimateUpload(ctx, domain.UploadedFile{Name: filepath.Base(o.File), Size: info.Size(), Content: model})
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), est, o.Format, o.Out)
}
