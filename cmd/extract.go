package cmd

import (
	"fmt"
	"log/slog"

	"github.com/KaramelBytes/imaris-cli/internal/analysis"
	"github.com/KaramelBytes/imaris-cli/internal/extract"
	"github.com/KaramelBytes/imaris-cli/internal/runlog"
	"github.com/KaramelBytes/imaris-cli/internal/workbook"
	"github.com/spf13/cobra"
)

var (
	exInputDir string
	exOutput   string
	exLog      string
	exExts     []string
	exSummary  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract IMARIS exports from a directory into a statistics workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		run := *c
		f := cmd.Flags()
		if f.Changed("input-dir") {
			run.InputDir = exInputDir
		}
		if f.Changed("output") {
			run.OutputWorkbook = exOutput
		}
		if f.Changed("log") {
			run.LogPath = exLog
		}
		if f.Changed("ext") {
			run.Extensions = exExts
		}
		if f.Changed("summary") {
			run.Summary = exSummary
		}
		if err := run.Validate(); err != nil {
			return err
		}

		level := slog.LevelInfo
		if debug || run.LogLevel == "debug" {
			level = slog.LevelDebug
		} else if err := level.UnmarshalText([]byte(run.LogLevel)); err != nil {
			level = slog.LevelInfo
		}
		rl, err := runlog.Open(run.LogPath, level)
		if err != nil {
			return err
		}
		defer rl.Close()

		stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
		rl.Info("exploring IMARIS files", "input_dir", run.InputDir, "output_workbook", run.OutputWorkbook)

		res, err := extract.Run(extract.Options{
			InputDir:   run.InputDir,
			Extensions: run.Extensions,
			Variables:  run.RecognizedVariables,
			Logger:     rl.Logger,
			Console:    stderr,
		})
		if err != nil {
			rl.Error("extraction aborted", "err", err)
			return err
		}

		rep := &analysis.Report{
			InputDir: run.InputDir,
			Workbook: run.OutputWorkbook,
			Files:    res.Read + res.Skipped + res.Failed,
			Read:     res.Read,
			Skipped:  res.Skipped,
			Failed:   res.Failed,
		}
		frames, warns := analysis.BuildFrames(res.Acc)
		for _, w := range warns {
			rl.Warn("aggregation", "err", w)
			fmt.Fprintf(stderr, "⚠ Warning: %v\n", w)
			rep.Warnings = append(rep.Warnings, w.Error())
		}
		for _, fr := range frames {
			t := analysis.Annotate(fr, rl.Logger)
			for _, col := range t.Columns {
				if col.Err != nil {
					rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s / %s: %v", t.Name, col.Variable, col.Err))
				}
			}
			rep.Tables = append(rep.Tables, t)
		}
		if err := workbook.Write(run.OutputWorkbook, rep.Tables); err != nil {
			rl.Error("writing workbook failed", "path", run.OutputWorkbook, "err", err)
			return err
		}
		rl.Info("extraction finished", "read", res.Read, "skipped", res.Skipped, "failed", res.Failed)

		if run.Summary {
			fmt.Fprintln(stdout, rep.Markdown())
		}
		fmt.Fprintf(stdout, "✓ Extraction complete. See %s for the log and %s for the results\n", run.LogPath, run.OutputWorkbook)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&exInputDir, "input-dir", "i", "", "directory holding the IMARIS exports (overrides config)")
	extractCmd.Flags().StringVarP(&exOutput, "output", "o", "", "path of the result workbook (.xlsx)")
	extractCmd.Flags().StringVar(&exLog, "log", "", "path of the run log file")
	extractCmd.Flags().StringSliceVar(&exExts, "ext", nil, "file extensions to read, e.g. .xls,.xlsx")
	extractCmd.Flags().BoolVar(&exSummary, "summary", false, "print a Markdown summary of the group comparison")
}
