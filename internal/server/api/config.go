package api

import "time"

// ServerConfig represents the control API configuration.
type ServerConfig struct {
	Addr              string        `help:"Control API listen address" default:":3360" env:"DUOPAD_API_ADDR"`
	Password          string        `help:"Control API password; empty disables authentication" env:"DUOPAD_API_PASSWORD"`
	ConnectionTimeout time.Duration `kong:"-"`
}
