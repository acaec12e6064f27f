// Command bcbcfmt is a small inspection and conversion tool for the BCBC
// codec: it decodes a binary encoding to a JSON dump, encodes a JSON dump
// back to bytes, or prints a hex listing of the first encoded value next to
// its JSON dump.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("bcbcfmt: command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "bcbcfmt",
		Short:         "Inspect and convert BCBC-encoded values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDecodeCmd(), newEncodeCmd(), newDumpCmd())
	return root
}

// readInput reads path, or stdin when path is "-" or empty.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return os.ReadFile("/dev/stdin")
	}
	return os.ReadFile(path)
}

// writeOutput writes b to path, or stdout when path is "-" or empty.
func writeOutput(path string, b []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func newDecodeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "decode [input]",
		Short: "Decode a BCBC binary encoding into a JSON dump",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := argOrStdin(args)
			raw, err := readInput(in)
			if err != nil {
				return fmt.Errorf("bcbcfmt: reading %s: %w", in, err)
			}
			log.WithField("bytes", len(raw)).Debug("decode: read input")
			v, err := bcbcDecode(raw)
			if err != nil {
				return fmt.Errorf("bcbcfmt: decode: %w", err)
			}
			doc, err := bcbcValueToJSON(v)
			if err != nil {
				return fmt.Errorf("bcbcfmt: rendering JSON: %w", err)
			}
			return writeOutput(out, append(doc, '\n'))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output path (- for stdout)")
	return cmd
}

func newEncodeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "encode [input]",
		Short: "Encode a JSON value dump into its canonical BCBC bytes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := argOrStdin(args)
			raw, err := readInput(in)
			if err != nil {
				return fmt.Errorf("bcbcfmt: reading %s: %w", in, err)
			}
			v, err := bcbcValueFromJSON(raw)
			if err != nil {
				return fmt.Errorf("bcbcfmt: parsing JSON: %w", err)
			}
			enc, err := bcbcEncode(v)
			if err != nil {
				return fmt.Errorf("bcbcfmt: encode: %w", err)
			}
			log.WithField("bytes", len(enc)).Debug("encode: wrote output")
			return writeOutput(out, enc)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output path (- for stdout)")
	return cmd
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [input]",
		Short: "Print a hex listing alongside the decoded JSON value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := argOrStdin(args)
			raw, err := readInput(in)
			if err != nil {
				return fmt.Errorf("bcbcfmt: reading %s: %w", in, err)
			}
			v, rest, err := bcbcDecodeFirstValue(raw)
			if err != nil {
				return fmt.Errorf("bcbcfmt: decode: %w", err)
			}
			doc, err := bcbcValueToJSON(v)
			if err != nil {
				return fmt.Errorf("bcbcfmt: rendering JSON: %w", err)
			}
			consumed := len(raw) - len(rest)
			fmt.Printf("% x\n\n%s\n", raw[:consumed], doc)
			if len(rest) > 0 {
				log.WithField("trailing_bytes", len(rest)).Warn("dump: input had trailing bytes after one value")
			}
			return nil
		},
	}
	return cmd
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}
