package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/saas786/component-countdown-timer/internal/breakdown"
	"github.com/saas786/component-countdown-timer/internal/config"
	"github.com/saas786/component-countdown-timer/internal/render"
	"github.com/saas786/component-countdown-timer/internal/session"
	"github.com/saas786/component-countdown-timer/internal/tui"
)

var version = "dev"

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("COUNTDOWN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "countdown [target]",
		Short: "Render a live countdown toward a target time",
		Long: `countdown renders a live countdown (or count-up) display toward a target
point in time: years, weeks, days, hours, minutes, and seconds, recomputed
every second from the wall clock.

The target is an RFC3339 timestamp or a plain date ("2027-01-01"). A missing
or unparsable target substitutes the current time rather than failing the
run. Unit labels and visibility are configurable per unit via the config
file (.countdown/config.yaml).`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountdown(cmd, logger, logLevel, args)
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .countdown/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogDir, "", "Directory for the debug log")

	// Run flags
	rootCmd.Flags().String(FlagTarget, "", "Target timestamp (overridden by the positional argument)")
	rootCmd.Flags().Duration(FlagPeriod, time.Second, "Recomputation interval")
	rootCmd.Flags().Bool(FlagCompact, false, "Show only the most significant populated unit")
	rootCmd.Flags().Bool(FlagAllowNegative, false, "Keep counting up after the target passes")
	rootCmd.Flags().Bool(FlagPadValues, false, "Zero-pad single-digit values")
	rootCmd.Flags().Bool(FlagShowZeroes, false, "Keep leading zero units in the display")
	rootCmd.Flags().String(FlagSeparator, ", ", "Separator between rendered units")
	rootCmd.Flags().String(FlagHookPolicy, "recover", "Hook panic policy: recover or propagate")
	rootCmd.Flags().Bool(FlagPlain, false, "Line-by-line output instead of the full-screen display")

	// Bind all flags to viper
	bind := func(f *pflag.Flag) { _ = viper.BindPFlag(f.Name, f) }
	rootCmd.PersistentFlags().VisitAll(bind)
	rootCmd.Flags().VisitAll(bind)

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("countdown %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runCountdown wires the session to the terminal display and blocks until
// the countdown completes or the user quits.
func runCountdown(cmd *cobra.Command, logger *slog.Logger, logLevel *slog.LevelVar, args []string) error {
	if viper.GetBool(FlagVerbose) {
		logLevel.Set(slog.LevelDebug)
	}

	cfg, err := config.LoadConfig(viper.GetViper())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlagOverrides(cfg, cmd, args)

	plain := viper.GetBool(FlagPlain)

	// In full-screen mode logs go to a rotating file so they cannot
	// corrupt the display.
	if !plain {
		logDir := cfg.Paths.LogDir
		if dir := viper.GetString(FlagLogDir); dir != "" {
			logDir = dir
		}
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		result := SetupTUILogger(logDir, logLevel, cfg.LogRotation)
		defer func() { _ = result.Close() }()
		logger = result.Logger
	}
	slog.SetDefault(logger)

	clock := session.SystemClock{}
	target := session.ParseTarget(cfg.Timer.Target, clock, logger)

	planChan := make(chan render.Plan, 16)

	hooks := session.Hooks{
		OnCreate: func(target time.Time, initial breakdown.Breakdown) {
			logger.Debug("countdown created", "target", target, "initial", initial)
		},
		OnEnd: func(target time.Time) {
			logger.Info("countdown complete", "target", target)
		},
	}

	buildSession := func() *session.Session {
		return session.New(target,
			session.WithUnits(cfg.UnitSpecs()),
			session.WithOptions(cfg.RenderOptions()),
			session.WithPeriod(cfg.Timer.Period),
			session.WithHooks(hooks),
			session.WithHookPolicy(session.ParseHookPolicy(cfg.Timer.HookPolicy)),
			session.WithSurface(tui.Surface(planChan)),
			session.WithLogger(logger),
			session.WithClock(clock),
		)
	}

	// Pause stops the current session; resume creates a fresh one, since a
	// terminated session never resumes. The plan channel closes only when
	// the active session reaches the target, which ends the display.
	var (
		mu      sync.Mutex
		current *session.Session
		paused  bool
	)
	startSession := func() {
		s := buildSession()
		mu.Lock()
		current = s
		paused = false
		mu.Unlock()
		s.Start()
		go func() {
			<-s.Done()
			mu.Lock()
			completed := current == s && !paused
			mu.Unlock()
			if completed {
				close(planChan)
			}
		}()
	}
	stopSession := func() {
		mu.Lock()
		paused = true
		s := current
		mu.Unlock()
		if s != nil {
			s.Stop()
		}
	}

	startSession()

	display := tui.New(planChan, target,
		tui.WithSeparator(cfg.Display.Separator),
		tui.WithPlain(plain),
		tui.WithOnPause(stopSession),
		tui.WithOnResume(startSession),
		tui.WithOnQuit(stopSession),
	)

	if err := display.Run(); err != nil {
		return fmt.Errorf("run display: %w", err)
	}
	stopSession()
	return nil
}

// applyFlagOverrides folds explicitly-set CLI values into the loaded config.
// The positional argument wins over both the --target flag and the config
// file. Flags left at their defaults never clobber config-file values.
func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	if flags.Changed(FlagTarget) {
		cfg.Timer.Target = viper.GetString(FlagTarget)
	}
	if len(args) > 0 {
		cfg.Timer.Target = args[0]
	}
	if flags.Changed(FlagPeriod) {
		if d := viper.GetDuration(FlagPeriod); d > 0 {
			cfg.Timer.Period = d
		}
	}
	if flags.Changed(FlagCompact) {
		cfg.Display.Compact = viper.GetBool(FlagCompact)
	}
	if flags.Changed(FlagAllowNegative) {
		cfg.Display.AllowNegative = viper.GetBool(FlagAllowNegative)
	}
	if flags.Changed(FlagPadValues) {
		cfg.Display.PadValues = viper.GetBool(FlagPadValues)
	}
	if flags.Changed(FlagShowZeroes) {
		cfg.Display.ShowZeroes = viper.GetBool(FlagShowZeroes)
	}
	if flags.Changed(FlagSeparator) {
		cfg.Display.Separator = viper.GetString(FlagSeparator)
	}
	if flags.Changed(FlagHookPolicy) {
		cfg.Timer.HookPolicy = viper.GetString(FlagHookPolicy)
	}
}
