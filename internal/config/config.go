// Package config defines the top-level CLI structure parsed by kong.
package config

import "github.com/duopad/duopad/internal/cmd"

// Log groups the logging flags shared by all commands.
type Log struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"DUOPAD_LOG_LEVEL"`
	File    string `help:"Log file path; empty logs to stdout/stderr" env:"DUOPAD_LOG_FILE"`
	RawFile string `help:"Raw report dump file; implied on stdout at trace level" env:"DUOPAD_LOG_RAW_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	ConfigFile string `name:"config-file" help:"Path to configuration file" env:"DUOPAD_CONFIG"`
	Log        Log    `embed:"" prefix:"log."`

	Serve  cmd.Serve         `cmd:"" default:"withargs" help:"Run the DuoPad merger service"`
	Key    cmd.Key           `cmd:"" help:"Generate or rotate the control API password"`
	Config cmd.ConfigCommand `cmd:"" help:"Configuration template helpers"`
}
