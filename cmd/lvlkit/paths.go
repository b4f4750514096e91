package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlkit/latticepath"
)

// Counting methods accepted by --method.
const (
	methodExhaustive = "exhaustive"
	methodDP         = "dp"
	methodBoth       = "both"
)

var (
	errDisagree    = errors.New("lvlkit: exhaustive and dp counts disagree")
	errRowsAndFile = errors.New("lvlkit: give rows as arguments or with --file, not both")
)

func (a *app) pathsCmd() *cobra.Command {
	var (
		file   string
		method string
		memory string
	)
	cmd := &cobra.Command{
		Use:   "paths [row...] | --file <path>",
		Short: "Count right/down paths across a field of '.' and 'X' cells",
		Long: `Counts monotone paths from the top-left to the bottom-right cell.
Rows are given as arguments or read with --file (text, or YAML with a "rows" list);
the two sources cannot be combined.
Large counts are printed exactly when --method=dp.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := latticepath.Field(args)
			if file != "" {
				if len(args) > 0 {
					return a.fail(cmd, fmt.Errorf("%w: %d row arguments with --file %s", errRowsAndFile, len(args), file))
				}
				var err error
				if f, err = loadField(file); err != nil {
					return a.fail(cmd, err)
				}
			}
			opts := latticepath.DefaultOptions()
			switch memory {
			case "full":
				opts.Memory = latticepath.FullTable
			case "rolling":
				opts.Memory = latticepath.RollingRow
			default:
				return a.fail(cmd, fmt.Errorf("%w: --memory=%q", latticepath.ErrBadOptions, memory))
			}

			out, err := a.countPaths(f, method, opts)
			if err != nil {
				return a.fail(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the field from a file")
	cmd.Flags().StringVarP(&method, "method", "m", methodDP, "exhaustive, dp or both")
	cmd.Flags().StringVar(&memory, "memory", "rolling", "dp table storage: full or rolling")

	return cmd
}

// countPaths runs the requested counter(s) and renders the result.
func (a *app) countPaths(f latticepath.Field, method string, opts latticepath.Options) (string, error) {
	log := a.logger.With(zap.String("method", method), zap.Int("rows", f.Rows()), zap.Int("cols", f.Cols()))
	start := time.Now()
	defer func() { log.Debug("paths counted", zap.Duration("took", time.Since(start))) }()

	switch method {
	case methodExhaustive:
		n, err := latticepath.CountExhaustive(f)
		if err != nil {
			return "", err
		}

		return fmt.Sprint(n), nil
	case methodDP:
		n, err := latticepath.CountDPWith(f, opts)
		if errors.Is(err, latticepath.ErrOverflow) {
			log.Debug("falling back to big integers")
			b, err := latticepath.CountDPBig(f)
			if err != nil {
				return "", err
			}

			return b.String(), nil
		}
		if err != nil {
			return "", err
		}

		return fmt.Sprint(n), nil
	case methodBoth:
		ex, err := latticepath.CountExhaustive(f)
		if err != nil {
			return "", err
		}
		dp, err := latticepath.CountDPWith(f, opts)
		if err != nil {
			return "", err
		}
		if ex != dp {
			return "", fmt.Errorf("%w: exhaustive=%d dp=%d", errDisagree, ex, dp)
		}

		return fmt.Sprint(dp), nil
	default:
		return "", fmt.Errorf("unknown method %q (want %s, %s or %s)", method, methodExhaustive, methodDP, methodBoth)
	}
}
