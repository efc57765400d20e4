package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagLogDir  = "log-dir"

	// Run flags
	FlagTarget        = "target"
	FlagPeriod        = "period"
	FlagCompact       = "compact"
	FlagAllowNegative = "allow-negative"
	FlagPadValues     = "pad-values"
	FlagShowZeroes    = "show-zeroes"
	FlagSeparator     = "separator"
	FlagHookPolicy    = "hook-policy"
	FlagPlain         = "plain"
)
