package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pawndev/retrobridge/internal/config"
	"github.com/pawndev/retrobridge/pkg/retrobridge"
	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
	"github.com/pawndev/retrobridge/pkg/retrobridge/platform/evdev"
	sdlplatform "github.com/pawndev/retrobridge/pkg/retrobridge/platform/sdl"
	"github.com/pawndev/retrobridge/pkg/retrobridge/platform/term"
)

type runFlags struct {
	multiDisk bool
	presenter string
	corePath  string
	endpoint  string
	language  string
	extras    []string
}

var flags runFlags

var runCmd = &cobra.Command{
	Use:   "run [-- core args...]",
	Short: "Launch a core and host its overlay menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath, flags, cmd.Flags().Changed, args)
		if err != nil {
			return err
		}
		return runBridge(cmd.Context(), cfg)
	},
}

func init() {
	runCmd.Flags().BoolVar(&flags.multiDisk, "multidisk", false, "content spans several disks; adds Swap Disk to the menu")
	runCmd.Flags().StringVar(&flags.presenter, "presenter", "", `menu presenter, "sdl" or "term"`)
	runCmd.Flags().StringVar(&flags.corePath, "core", "", "path of the core executable")
	runCmd.Flags().StringVar(&flags.endpoint, "endpoint", "", `command channel, "pipe" or a ws:// URL`)
	runCmd.Flags().StringVar(&flags.language, "lang", "", "menu language code")
	runCmd.Flags().StringSliceVar(&flags.extras, "extra", nil, "launch extra as KEY=VALUE, repeatable; a bare KEY means true, MULTIDISK=false or 0 hides Swap Disk")
}

// loadConfig reads the config file and lays the flags the user set over it.
func loadConfig(path string, flags runFlags, changed func(name string) bool, args []string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if changed("presenter") {
		cfg.UI.Presenter = flags.presenter
	}
	if changed("core") {
		cfg.Core.Path = flags.corePath
	}
	if changed("endpoint") {
		cfg.Core.Endpoint = flags.endpoint
	}
	if changed("lang") {
		cfg.UI.Language = flags.language
	}
	if len(args) > 0 {
		cfg.Core.Args = args
	}

	extras := maps.Clone(cfg.Launch.Extras)
	if extras == nil {
		extras = map[string]string{}
	}
	maps.Copy(extras, retrobridge.ParseLaunchParams(flags.extras).Map())
	if flags.multiDisk {
		extras[constants.ExtraMultiDisk] = "true"
	}
	cfg.Launch.Extras = extras

	return cfg, cfg.Validate()
}

// bridge is everything a presenter backend needs to host a session.
type bridge struct {
	cfg     config.Config
	logger  *slog.Logger
	sink    retrobridge.CommandSink
	session retrobridge.Session
	looper  *retrobridge.Looper
	launch  retrobridge.LaunchParams
}

func runBridge(parent context.Context, cfg config.Config) error {
	err := retrobridge.Init(retrobridge.Options{
		LogFilename: cfg.Log.File,
		LogDir:      cfg.Log.Dir,
		LogLevel:    cfg.Log.Level,
		Language:    cfg.UI.Language,
	})
	if err != nil {
		return err
	}
	defer retrobridge.Close()

	logger := retrobridge.GetLogger()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := connectCore(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if conn.wait != nil {
		go func() {
			if err := conn.wait(); err != nil {
				logger.Warn("Core exited", "error", err)
			} else {
				logger.Info("Core exited")
			}
			cancel()
		}()
	}

	b := &bridge{
		cfg:     cfg,
		logger:  logger,
		sink:    conn.sink,
		session: conn.session,
		looper:  retrobridge.NewLooper(),
		launch:  retrobridge.NewLaunchParams(cfg.Launch.Extras),
	}

	logger.Info("Bridge starting",
		"presenter", cfg.UI.Presenter,
		"endpoint", cfg.Core.Endpoint,
		"multidisk", b.launch.MultiDisk())

	switch cfg.UI.Presenter {
	case config.PresenterTerm:
		return b.runTerminal(ctx)
	default:
		return b.runSDL(ctx)
	}
}

// watchMenuSignals opens the menu on SIGUSR1 so launchers without a window
// can still bring it up.
func (b *bridge) watchMenuSignals(ctx context.Context, screen *retrobridge.Screen) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGUSR1)

	go func() {
		defer signal.Stop(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ch:
				screen.ShowMenu()
			}
		}
	}()
}

// watchMenuDevice opens the menu when the configured evdev node reports the
// menu button.
func (b *bridge) watchMenuDevice(ctx context.Context, screen *retrobridge.Screen) {
	if b.cfg.UI.MenuDevice == "" {
		return
	}

	watcher, err := evdev.NewWatcher(evdev.WatcherOptions{
		Path:   b.cfg.UI.MenuDevice,
		OnMenu: screen.ShowMenu,
	})
	if err != nil {
		b.logger.Warn("Menu button device unavailable", "path", b.cfg.UI.MenuDevice, "error", err)
		return
	}
	watcher.Start(ctx)
}

func (b *bridge) runTerminal(ctx context.Context) error {
	screen, err := retrobridge.NewScreen(retrobridge.ScreenOptions{
		Context:   ctx,
		Session:   b.session,
		Sink:      b.sink,
		Probe:     evdev.Probe{Skip: b.cfg.UI.SkipDevices},
		Thread:    b.looper,
		Presenter: term.Presenter{},
		Launch:    b.launch,
	})
	if err != nil {
		return err
	}
	defer screen.Close()

	b.watchMenuSignals(ctx, screen)
	b.watchMenuDevice(ctx, screen)

	screen.OnResume()

	fmt.Fprintf(os.Stderr, "retrobridge: send SIGUSR1 to pid %d to open the menu\n", os.Getpid())

	if err := b.looper.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	screen.OnPause()
	return nil
}

func (b *bridge) runSDL(ctx context.Context) error {
	if err := sdlplatform.Init(); err != nil {
		return err
	}
	defer sdlplatform.Quit()

	window, err := sdlplatform.NewWindow(b.cfg.UI.WindowTitle)
	if err != nil {
		return err
	}
	defer window.Close()

	controllers := sdlplatform.NewControllers()
	controllers.Scan()
	defer controllers.Close()

	screen, err := retrobridge.NewScreen(retrobridge.ScreenOptions{
		Context:   ctx,
		Session:   b.session,
		Sink:      b.sink,
		Probe:     retrobridge.AnyProbe{controllers, evdev.Probe{Skip: b.cfg.UI.SkipDevices}},
		Immersive: sdlplatform.Immersive{},
		Window:    window,
		Thread:    b.looper,
		Presenter: sdlplatform.MessageBoxPresenter{Window: window},
		Launch:    b.launch,
	})
	if err != nil {
		return err
	}
	defer screen.Close()

	b.watchMenuSignals(ctx, screen)
	b.watchMenuDevice(ctx, screen)

	screen.OnResume()
	if b.cfg.UI.FullscreenOnStart {
		screen.SetImmersiveMode()
	}

	host := sdlplatform.NewHost(sdlplatform.HostOptions{
		Screen:      screen,
		Tasks:       b.looper,
		Controllers: controllers,
		MenuKeys:    sdlplatform.MenuKeysFromNames(b.cfg.UI.MenuKeys),
		MenuButtons: sdlplatform.MenuButtonsFromNames(b.cfg.UI.MenuButtons),
	})
	return host.Run(ctx)
}
