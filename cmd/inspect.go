package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/imaris-cli/internal/extract"
	"github.com/KaramelBytes/imaris-cli/internal/parser"
	"github.com/KaramelBytes/imaris-cli/internal/sample"
	"github.com/spf13/cobra"
	"gopkg.in/guregu/null.v3"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show the identity and readings one export would contribute",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		path := args[0]
		out := cmd.OutOrStdout()
		name := filepath.Base(path)

		fn, ok := sample.ParseFilename(name)
		if !ok {
			fmt.Fprintf(out, "File: %s\nStatus: name does not match the naming convention\n", name)
			return nil
		}
		fmt.Fprintf(out, "File: %s\n", name)
		fmt.Fprintf(out, "Sample: %s\nGroup: %s (%s)\nMicroglia: %s\n", fn.SampleNumber, fn.GroupToken, fn.Group(), fn.SubObjectID)
		fmt.Fprintf(out, "Key: %s\n", fn.Key())
		if !fn.Version.Recognized() {
			fmt.Fprintf(out, "Version: %q\nStatus: %v\n", fn.Version, sample.ErrUnrecognizedVersion)
			return nil
		}
		fmt.Fprintf(out, "Version: %s\n", fn.Version)

		res := extract.ProcessFile(filepath.Dir(path), name, parser.ReadFile, extract.NewVariableSet(c.RecognizedVariables))
		if res.Err != nil {
			if errors.Is(res.Err, extract.ErrMalformedTable) {
				fmt.Fprintf(out, "Status: malformed (%v)\n", extract.ErrMalformedTable)
				return nil
			}
			return res.Err
		}
		fmt.Fprintf(out, "Status: ok, %d recognized variables\n", len(res.Records))
		if len(res.Records) == 0 {
			return nil
		}
		fmt.Fprintln(out, "| Variable | Mean | Sum |")
		fmt.Fprintln(out, "| --- | --- | --- |")
		for _, r := range res.Records {
			fmt.Fprintf(out, "| %s | %s | %s |\n", r.Variable, fmtReading(r.Reading.Mean), fmtReading(r.Reading.Sum))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func fmtReading(v null.Float) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprintf("%g", v.Float64)
}
