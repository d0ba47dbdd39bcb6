//go:build !windows

package util

func IsRunFromGUI() bool {
	// On non-Windows, always return false.
	// We only use this to auto-select the serve command when double-clicked;
	// on Linux there are plenty of better ways to run a service.
	return false
}

func HideConsoleWindow() {
	// No-op on non-Windows platforms
}
