package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"disarium"
)

// Error wraps errors raised by the command itself.
var Error = errs.Class("disarium")

// defaultBound is 10^10.
const defaultBound = "10000000000"

var (
	digitCount  int
	profilePath string
	showTime    bool
	metricsFile string
	logLevel    string
)

var (
	rootCmd = &cobra.Command{
		Use:   "disarium [bound]",
		Short: "Print every Disarium number up to bound",
		Long: "Print every Disarium number in [0, bound], ascending, one per line.\n" +
			"A Disarium number equals the sum of its digits each raised to its\n" +
			"1-indexed position, e.g. 135 = 1^1 + 3^2 + 5^3.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runFind,
	}

	checkCmd = &cobra.Command{
		Use:   "check N...",
		Short: "Report whether each N is a Disarium number",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	rootCmd.Flags().IntVarP(&digitCount, "digits", "d", 0, "Only numbers with exactly this many digits (ignores bound)")
	rootCmd.Flags().StringVar(&profilePath, "profile", "", "YAML tuning profile replacing the built-in one")
	rootCmd.Flags().BoolVar(&showTime, "time", false, "Report elapsed wall-clock time on stderr")
	rootCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")

	rootCmd.AddCommand(checkCmd)
}

func newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, Error.New("bad --log-level %q: %v", logLevel, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

func runFind(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	opts := []disarium.Option{disarium.WithLogger(logger)}
	if profilePath != "" {
		p, err := disarium.LoadProfile(profilePath)
		if err != nil {
			return err
		}
		logger.Info("profile loaded", "path", profilePath, "tiers", len(p.Tiers))
		opts = append(opts, disarium.WithProfile(p))
	}

	var metrics *searchMetrics
	if metricsFile != "" {
		metrics = newSearchMetrics()
		opts = append(opts, disarium.WithObserver(metrics))
	}

	finder, err := disarium.NewFinder(opts...)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	start := time.Now()

	if cmd.Flags().Changed("digits") {
		res, err := finder.FindForDigitCount(digitCount)
		if err != nil {
			return err
		}
		for _, n := range res {
			fmt.Fprintln(out, n.Dec())
		}
	} else {
		raw := defaultBound
		if len(args) == 1 {
			raw = args[0]
		}
		bound, err := parseBound(raw)
		if err != nil {
			return err
		}
		logger.Info("searching", "bound", bound.Dec())

		for n, err := range finder.All(bound) {
			if err != nil {
				return err
			}
			fmt.Fprintln(out, n.Dec())
		}
	}

	if err := out.Flush(); err != nil {
		return err
	}
	if showTime {
		fmt.Fprintf(cmd.ErrOrStderr(), "elapsed: %s\n", time.Since(start))
	}
	if metrics != nil {
		if err := metrics.writeTextfile(metricsFile); err != nil {
			return Error.New("writing metrics: %v", err)
		}
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		n, err := parseBound(arg)
		if err != nil {
			return err
		}
		ok, err := disarium.CheckDisarium(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %t\n", n.Dec(), ok)
	}
	return nil
}

// parseBound accepts a decimal integer or mEx shorthand (1e10 = 10^10).
func parseBound(s string) (*uint256.Int, error) {
	mant, exp, ok := strings.Cut(strings.ToLower(s), "e")
	if !ok {
		n, err := uint256.FromDecimal(s)
		if err != nil {
			return nil, Error.New("bad number %q: %v", s, err)
		}
		return n, nil
	}

	m, err := uint256.FromDecimal(mant)
	if err != nil {
		return nil, Error.New("bad number %q: %v", s, err)
	}
	e, err := strconv.Atoi(exp)
	if err != nil || e < 0 || e > 77 {
		return nil, Error.New("bad exponent in %q", s)
	}
	p := disarium.Pow10(e)
	if _, overflow := m.MulOverflow(m, &p); overflow {
		return nil, Error.New("%q does not fit in 256 bits", s)
	}
	return m, nil
}
