package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"Lumen3D/internal/engine"
	"Lumen3D/internal/logger"
	"Lumen3D/internal/ui"

	"go.uber.org/zap"
)

func init() {
	// GLFW and OpenGL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "lumen.json", "Path to the JSON config file")
	variant := flag.String("variant", "", "Demo variant: basic, multi or debug (default from config)")
	debugLog := flag.Bool("debug-log", false, "Enable development logging")
	flag.Parse()

	if err := run(engine.Flags{ConfigPath: *configPath, Variant: *variant, DebugLog: *debugLog}); err != nil {
		fmt.Fprintf(os.Stderr, "lumen: %v\n", err)
		os.Exit(1)
	}
}

func run(flags engine.Flags) error {
	// the logger comes first so config loading can report its fallbacks
	if err := logger.Init(flags.DebugLog); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := engine.LoadConfig(flags.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Resolve(flags); err != nil {
		return err
	}
	if cfg.DebugLog && !flags.DebugLog {
		logger.Sync()
		if err := logger.Init(true); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}

	logger.Log.Info("Lumen3D starting",
		zap.String("variant", cfg.Variant),
		zap.String("config", flags.ConfigPath))

	lumen, err := engine.NewLumen(cfg)
	if err != nil {
		return err
	}
	if err := lumen.Open(); err != nil {
		logger.Log.Error("Startup failed", zap.Error(err))
		return err
	}
	defer lumen.Close()

	overlay, err := ui.NewOverlay(lumen.GetWindow(), lumen.State, lumen.Camera, cfg.FontScale)
	if err != nil {
		logger.Log.Error("UI startup failed", zap.Error(err))
		return err
	}
	defer overlay.Dispose()
	overlay.OnScroll(lumen.HandleScroll)
	overlay.OnClick(lumen.HandleClick)

	lumen.SetOnUpdateCallback(func(float64) {
		overlay.BuildFrame()
		lumen.SetUIWantsInput(overlay.WantsInput())
	})
	lumen.SetOnRenderCallback(func(float64) {
		overlay.Draw()
	})

	lumen.RenderLoop()
	logger.Log.Info("Lumen3D shutting down")
	return nil
}
