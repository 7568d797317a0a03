package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/sigwatch/internal/config"
	"github.com/thruflo/sigwatch/internal/logging"
	"github.com/thruflo/sigwatch/signal"
	"github.com/thruflo/sigwatch/signaltest"
)

// ErrCheckFailed is returned when the verdict is FAIL.
var ErrCheckFailed = errors.New("check failed")

var (
	checkEmit       []string
	checkExpect     string
	checkNegate     bool
	checkCold       bool
	checkDelay      time.Duration
	checkTimeout    time.Duration
	checkConfigPath string
	checkVerbose    bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Emit values on a signal and run an emission matcher",
	Long: `Create a signal, emit the given values on it and run the Emit matcher,
or the EmitValue matcher when --expect is set.

By default the signal is watched first, so values emitted before the
matcher runs are replayed to it. With --cold they are lost, unless --delay
pushes the emission into the matcher's window.

Examples:
  sigwatch check --emit a,b,c --expect b
  sigwatch check --not
  sigwatch check --cold --emit a --delay 20ms --timeout 100ms`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringSliceVar(&checkEmit, "emit", nil, "Values to emit, comma separated")
	f.StringVar(&checkExpect, "expect", "", "Expect this value instead of any value")
	f.BoolVar(&checkNegate, "not", false, "Negate the assertion")
	f.BoolVar(&checkCold, "cold", false, "Observe the cold signal instead of a watched one")
	f.DurationVar(&checkDelay, "delay", 0, "Emit asynchronously after this delay")
	f.DurationVar(&checkTimeout, "timeout", config.DefaultTimeout, "Matcher window (overrides config)")
	f.StringVar(&checkConfigPath, "config", "", "Config file (default ./"+config.FileName+")")
	f.BoolVarP(&checkVerbose, "verbose", "v", false, "Log at debug level and always print the diagnostic")
	rootCmd.AddCommand(checkCmd)
}

func loadCheckConfig() (*config.Config, error) {
	if checkConfigPath != "" {
		return config.LoadConfigFile(checkConfigPath, false)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return config.LoadConfig(cwd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadCheckConfig()
	if err != nil {
		return err
	}

	timeout := cfg.Timeout
	if cmd.Flags().Changed("timeout") {
		timeout = checkTimeout
	}
	level := cfg.Level()
	if checkVerbose {
		level = logging.LevelDebug
	}
	logging.SetLevel(level)

	scope := &runScope{}
	defer scope.Close()

	src := signal.NewSubject[string]()
	var target signal.Signal[string] = src
	if !checkCold {
		target = signaltest.Watch(scope, src)
	}

	emitted := make(chan struct{})
	emitAll := func() {
		defer close(emitted)
		for _, v := range checkEmit {
			logging.Debug("emitting", "value", v)
			src.Next(v)
		}
	}
	if checkDelay > 0 {
		go func() {
			time.Sleep(checkDelay)
			emitAll()
		}()
	} else {
		emitAll()
	}

	matchOpts := []signaltest.Option{
		signaltest.WithTimeout(timeout),
		signaltest.WithScope(scope),
	}

	var res signaltest.MatchResult
	if cmd.Flags().Changed("expect") {
		res = signaltest.EmitValue(ctx, target, checkExpect, matchOpts...)
	} else {
		res = signaltest.Emit(ctx, target, matchOpts...)
	}
	<-emitted

	out := cmd.OutOrStdout()
	ok := res.Satisfied(checkNegate)
	if ok {
		fmt.Fprintln(out, "PASS")
	} else {
		fmt.Fprintln(out, "FAIL")
	}
	if !ok || checkVerbose {
		fmt.Fprintf(out, "\n%s\n", res.Message())
	}

	if !ok {
		return ErrCheckFailed
	}
	return nil
}
