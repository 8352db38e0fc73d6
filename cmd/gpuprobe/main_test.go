package main

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/genricoloni/gpuprobe/internal/config"
	"github.com/genricoloni/gpuprobe/internal/probe"
	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"
)

// TestAppGraphValidity verifies that the dependency graph is resolvable.
// This test will fail if you forget an fx.Provide for a required interface.
func TestAppGraphValidity(t *testing.T) {
	err := fx.ValidateApp(
		AppOptions,
		fx.Supply(arguments{}),
		fx.Invoke(func(*probe.Engine) {}),
	)

	if err != nil {
		t.Errorf("Dependency graph is not valid: %v", err)
	}
}

// TestNewLogger specifically verifies the logger configuration
func TestNewLogger(t *testing.T) {
	cfg, err := config.NewAppConfig([]string{"--log-level", "debug"})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	if logger == nil {
		t.Fatal("Logger should not be nil")
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug level should be enabled")
	}
	logger.Debug("Test logger initialization")
}

// TestEndToEndStartup tries a real startup/stop in a controlled environment
func TestEndToEndStartup(t *testing.T) {
	var engine *probe.Engine
	app := fx.New(
		AppOptions,
		fx.Supply(arguments{}),
		fx.Populate(&engine),
		fx.NopLogger,
	)

	if err := app.Start(t.Context()); err != nil {
		t.Fatalf("App failed to start: %v", err)
	}
	if engine == nil {
		t.Fatal("Engine should be populated")
	}
	if err := app.Stop(t.Context()); err != nil {
		t.Fatalf("App failed to stop: %v", err)
	}
}

func TestRun_Help(t *testing.T) {
	if code := run(arguments{"--help"}, strings.NewReader(""), &bytes.Buffer{}); code != 0 {
		t.Errorf("Expected exit code 0 for --help, got %d", code)
	}
}

func TestRun_InvalidArguments(t *testing.T) {
	if code := run(arguments{"--format", "xml"}, strings.NewReader(""), &bytes.Buffer{}); code != 1 {
		t.Errorf("Expected exit code 1 for an invalid format, got %d", code)
	}
}

// TestRun_UnsupportedHost verifies the fatal exit on a host without the
// Windows graphics libraries
func TestRun_UnsupportedHost(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a host without user32.dll")
	}

	t.Setenv("GPUPROBE_FORMAT", "")
	t.Setenv("GPUPROBE_NO_COLOR", "")

	var out bytes.Buffer
	code := run(arguments{"--pause", "--log-level", "fatal"}, strings.NewReader("\n"), &out)
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "Press ENTER to exit") {
		t.Errorf("Expected the pause prompt, got %q", out.String())
	}
}

func TestWaitForEnter(t *testing.T) {
	var out bytes.Buffer
	waitForEnter(strings.NewReader("\n"), &out)
	if out.String() != "Press ENTER to exit..." {
		t.Errorf("Unexpected prompt %q", out.String())
	}
}
