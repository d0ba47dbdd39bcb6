package output

import "time"

// Config represents the output driver configuration.
type Config struct {
	DeviceName      string        `help:"Name the virtual pad is registered under" default:"DuoPad Merged Gamepad" env:"DUOPAD_OUTPUT_DEVICE_NAME"`
	Serial          string        `help:"Serial reported for the virtual pad" default:"DUOPAD-0001" env:"DUOPAD_OUTPUT_SERIAL"`
	Tick            time.Duration `help:"Send cycle period" default:"10ms" env:"DUOPAD_OUTPUT_TICK"`
	JoinTimeout     time.Duration `help:"How long Stop waits for the send cycle to exit" default:"1s" env:"DUOPAD_OUTPUT_JOIN_TIMEOUT"`
	MaxSendFailures int           `help:"Consecutive send failures before the cycle terminates" default:"3" env:"DUOPAD_OUTPUT_MAX_SEND_FAILURES"`
}

func (c *Config) applyDefaults() {
	if c.DeviceName == "" {
		c.DeviceName = "DuoPad Merged Gamepad"
	}
	if c.Serial == "" {
		c.Serial = "DUOPAD-0001"
	}
	if c.Tick <= 0 {
		c.Tick = 10 * time.Millisecond
	}
	if c.JoinTimeout <= 0 {
		c.JoinTimeout = time.Second
	}
	if c.MaxSendFailures <= 0 {
		c.MaxSendFailures = 3
	}
}
