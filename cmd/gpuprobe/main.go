package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/gpuprobe/internal/config"
	"github.com/genricoloni/gpuprobe/internal/desktop"
	"github.com/genricoloni/gpuprobe/internal/displayconfig"
	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/dpi"
	"github.com/genricoloni/gpuprobe/internal/driver"
	"github.com/genricoloni/gpuprobe/internal/dxgi"
	"github.com/genricoloni/gpuprobe/internal/loader"
	"github.com/genricoloni/gpuprobe/internal/probe"
	"github.com/genricoloni/gpuprobe/internal/report"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// arguments are the command-line arguments without the program name
type arguments []string

// AppOptions wires every component of the probe. The caller supplies the
// arguments.
var AppOptions = fx.Options(
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	fx.Provide(
		newConfig,
		func(c *config.AppConfig) domain.Config { return c },
		newLogger,
		loader.NewSystemProvider,
		func(p *loader.Provider) probe.Capabilities { return p },

		// Graphics stack
		dxgi.NewFactoryFunc,
		dxgi.NewEnumerator,

		// Display configuration
		fx.Annotate(displayconfig.NewConfig, fx.As(new(domain.DisplayConfig))),
		fx.Annotate(displayconfig.NewSettings, fx.As(new(domain.DisplaySettings))),
		fx.Annotate(displayconfig.NewDeviceContexts, fx.As(new(domain.DeviceContexts))),
		displayconfig.NewResolver,

		// Driver information
		fx.Annotate(driver.NewDeviceTree, fx.As(new(domain.DeviceTree))),
		fx.Annotate(driver.NewRegistry, fx.As(new(domain.Registry))),
		driver.NewResolver,

		// DPI
		dpi.NewNative,
		func(n *dpi.Native) domain.DPIQuerier { return n },
		func(n *dpi.Native) domain.MonitorInfo { return n },
		func(n *dpi.Native) dpi.AwarenessDeclarer { return n },
		dpi.NewResolver,

		desktop.NewScreens,
		report.NewRenderer,
		probe.NewEngine,
	),

	fx.Invoke(registerHooks),
)

func main() {
	os.Exit(run(arguments(os.Args[1:]), os.Stdin, os.Stdout))
}

// run probes once and returns the process exit code
func run(args arguments, stdin io.Reader, stdout io.Writer) int {
	var (
		engine *probe.Engine
		cfg    *config.AppConfig
		logger *zap.Logger
	)

	app := fx.New(
		AppOptions,
		fx.Supply(args),
		fx.Populate(&engine, &cfg, &logger),
	)
	if err := app.Err(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "gpuprobe: %v\n", err)
		return 1
	}

	// Handle Ctrl+C between items
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		logger.Error("Failed to start", zap.Error(err))
		return 1
	}

	code := 0
	if err := engine.Run(ctx, stdout); err != nil {
		logger.Error("Probe failed", zap.Error(err))
		code = 1
	}

	if cfg.Pause() {
		waitForEnter(stdin, stdout)
	}

	if err := app.Stop(context.Background()); err != nil {
		logger.Error("Failed to stop", zap.Error(err))
	}
	return code
}

func waitForEnter(stdin io.Reader, stdout io.Writer) {
	fmt.Fprint(stdout, "Press ENTER to exit...")
	_, _ = bufio.NewReader(stdin).ReadString('\n')
}

func newConfig(args arguments) (*config.AppConfig, error) {
	return config.NewAppConfig(args)
}

// newLogger creates a console logger on stderr at the configured level
func newLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.DisableStacktrace = true
	zapCfg.OutputPaths = []string{"stderr"}
	return zapCfg.Build()
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, cfg *config.AppConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Configuration loaded", cfg.Fields()...)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Debug("Shutting down")
			return nil
		},
	})
}
