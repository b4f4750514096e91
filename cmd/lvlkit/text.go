package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlkit/datefmt"
	"github.com/katalvlaran/lvlkit/frequent"
	"github.com/katalvlaran/lvlkit/rle"
)

func (a *app) encodeCmd() *cobra.Command {
	opts := rle.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Run-length encode lowercase text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := strings.Join(args, " ")
			out, err := rle.EncodeWith(in, opts)
			if err != nil {
				return a.fail(cmd, err)
			}
			a.logger.Debug("encoded", zap.Int("in_bytes", len(in)), zap.Int("out_bytes", len(out)), zap.Int("min_run", opts.MinRun))
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().IntVar(&opts.MinRun, "min-run", opts.MinRun, "shortest run written as COUNTc")

	return cmd
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <code>",
		Short: "Expand a run-length encoded string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := rle.Decode(strings.Join(args, " "))
			if err != nil {
				return a.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
}

func (a *app) substrCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "substr <text>",
		Short: "Longest substring whose characters occur at least k times in the text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			w := frequent.LongestWindow(text, k)
			a.logger.Debug("substring search", zap.Int("k", k), zap.Int("start", w.Start), zap.Int("end", w.End))
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", text[w.Start:w.End])

			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "min-freq", "k", 1, "minimum global frequency")

	return cmd
}

func (a *app) dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <text>",
		Short: "Normalize a date to YYYY-MM-DD",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := strings.Join(args, " ")
			start := time.Now()
			p, err := datefmt.Detect(in)
			if err != nil {
				return a.fail(cmd, err)
			}
			d, err := datefmt.Parse(in)
			if err != nil {
				return a.fail(cmd, err)
			}
			a.logger.Debug("date parsed", zap.Stringer("pattern", p), zap.Duration("took", time.Since(start)))
			fmt.Fprintln(cmd.OutOrStdout(), d)

			return nil
		},
	}
}
