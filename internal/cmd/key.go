package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"

	"golang.org/x/term"

	"github.com/duopad/duopad/internal/configpaths"
	"github.com/duopad/duopad/internal/server/api/auth"
)

// Key manages the control API password stored next to the configuration.
type Key struct {
	Show   bool `help:"Print the current password instead of rotating it"`
	Prompt bool `help:"Read a custom password from the terminal instead of generating one"`
}

// Run is called by Kong when the key command is executed.
func (k *Key) Run(logger *slog.Logger) error {
	keyFileDir, err := configpaths.DefaultConfigDir()
	if err != nil {
		return fmt.Errorf("failed to resolve key file path: %w", err)
	}
	keyFilePath := path.Join(keyFileDir, keyFileName)

	if k.Show {
		pwd, err := os.ReadFile(keyFilePath)
		if err != nil {
			return fmt.Errorf("no password stored at %s: %w", keyFilePath, err)
		}
		fmt.Println(strings.TrimSpace(string(pwd)))
		return nil
	}

	var newPwd string
	if k.Prompt {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return fmt.Errorf("--prompt requires an interactive terminal")
		}
		fmt.Fprint(os.Stderr, "New API password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		newPwd = strings.TrimSpace(string(raw))
		if newPwd == "" {
			return fmt.Errorf("password cannot be empty")
		}
	} else {
		newPwd, err = auth.GenerateKey()
		if err != nil {
			return fmt.Errorf("failed to generate new API password: %w", err)
		}
	}

	if err := os.MkdirAll(keyFileDir, 0o700); err != nil {
		return fmt.Errorf("failed to create config dir for key file: %w", err)
	}
	if err := os.WriteFile(keyFilePath, []byte(newPwd), 0o600); err != nil {
		return fmt.Errorf("failed to write API password to file: %w", err)
	}

	logger.Info("API password updated", "path", keyFilePath)
	if !k.Prompt {
		fmt.Println(newPwd)
	}
	return nil
}
