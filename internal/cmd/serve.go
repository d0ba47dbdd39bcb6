package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"

	"github.com/duopad/duopad/bridge"
	"github.com/duopad/duopad/internal/configpaths"
	"github.com/duopad/duopad/internal/log"
	"github.com/duopad/duopad/internal/server/api"
	"github.com/duopad/duopad/internal/server/api/auth"
	"github.com/duopad/duopad/internal/server/api/handler"
	"github.com/duopad/duopad/merger"
	"github.com/duopad/duopad/output"
)

const keyFileName = "duopad.key.txt"

// Serve runs the merger service: output driver, merge cycle and control API.
type Serve struct {
	OutputConfig output.Config    `embed:"" prefix:"output."`
	MergeConfig  merger.Config    `embed:"" prefix:"merge."`
	ApiConfig    api.ServerConfig `embed:"" prefix:"api."`

	AutoStart bool `help:"Start the merged output as soon as the service is up" default:"true" env:"DUOPAD_AUTO_START"`
}

// Run is called by Kong when the serve command is executed.
func (s *Serve) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.StartService(ctx, logger, rawLogger)
}

func (s *Serve) StartService(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	logger.Info("Starting DuoPad merger service")

	if s.ApiConfig.Password == "" {
		keyFileDir, err := configpaths.DefaultConfigDir()
		if err != nil {
			return fmt.Errorf("failed to resolve key file path: %w", err)
		}
		keyFilePath := path.Join(keyFileDir, keyFileName)
		if pwd, err := os.ReadFile(keyFilePath); err == nil {
			s.ApiConfig.Password = strings.TrimSpace(string(pwd))
		} else {
			newPwd, err := auth.GenerateKey()
			if err != nil {
				return fmt.Errorf("failed to generate new API password: %w", err)
			}
			if err := os.MkdirAll(keyFileDir, 0o700); err != nil {
				return fmt.Errorf("failed to create config dir for key file: %w", err)
			}
			if err := os.WriteFile(keyFilePath, []byte(newPwd), 0o600); err != nil {
				return fmt.Errorf("failed to write new API password to file: %w", err)
			}
			s.ApiConfig.Password = newPwd
			logger.Info("Generated API server password", "path", keyFilePath)
			logger.Info("-------------------------------------")
			logger.Info("Your DuoPad API server password is:")
			logger.Info("-------------------------------------")
			logger.Info(newPwd)
			logger.Info("-------------------------------------")
			logger.Info("You can change this password at any time by editing the file")
		}
	}

	br := bridge.NewLogWithRaw(logger, rawLogger)
	driver := output.New(br, s.OutputConfig, logger)
	if err := driver.Initialize(); err != nil {
		// The service stays up for the control API; output/start will keep
		// failing until the backend becomes available.
		logger.Error("output bridge unavailable", "error", err)
	}

	engine := merger.New(driver, s.MergeConfig, logger)

	if s.ApiConfig.Addr == "" {
		logger.Error("API server address must be set (default :3360).")
		return fmt.Errorf("API server address must be set (default :3360)")
	}

	apiSrv := api.New(engine, s.ApiConfig.Addr, s.ApiConfig, logger)
	r := apiSrv.Router()
	r.Register("ping", handler.Ping())
	r.Register("status", handler.Status(engine))
	r.Register("output/start", handler.OutputStart(engine))
	r.Register("output/stop", handler.OutputStop(engine))
	r.Register("state/{which}", handler.State(engine))
	r.RegisterStream("feed/{player}", handler.Feed(engine))

	if err := apiSrv.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}
	defer apiSrv.Close()

	if s.AutoStart {
		if err := engine.Start(); err != nil {
			logger.Warn("merged output not started", "error", err)
		}
	}

	<-ctx.Done()
	logger.Info("Shutting down")
	engine.Stop()
	return nil
}
