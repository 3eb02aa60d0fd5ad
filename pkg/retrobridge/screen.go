package retrobridge

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pawndev/retrobridge/pkg/retrobridge/internal"
)

var ErrNoUIThread = errors.New("screen requires a UI thread")

// Presenter shows a menu and blocks until the user picks an item, returning
// its id, or dismisses it, returning ErrCancelled. Present is always called
// on the UI thread.
type Presenter interface {
	Present(ctx context.Context, menu *Menu) (int, error)
}

type ScreenOptions struct {
	// Context bounds the screen. When it is done a menu being presented is
	// cancelled. Defaults to context.Background.
	Context context.Context

	Session   Session
	Sink      CommandSink
	Probe     ControllerProbe
	Immersive ImmersiveService
	Window    Window
	Thread    UIThread
	Presenter Presenter
	Launch    LaunchParams

	// Fallback handles menu ids the bridge does not own. Without one such
	// ids are reported as unhandled.
	Fallback func(id int) bool
}

// Screen hosts one emulation session: it drives its lifecycle, the overlay
// menu and immersive mode.
type Screen struct {
	session      Session
	launch       LaunchParams
	thread       UIThread
	presenter    Presenter
	fallback     func(id int) bool
	dispatcher   *Dispatcher
	orchestrator *Orchestrator
	immersive    *ImmersiveController
	logger       *slog.Logger
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewScreen(options ScreenOptions) (*Screen, error) {
	if options.Thread == nil {
		return nil, ErrNoUIThread
	}

	parent := options.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	s := &Screen{
		session:      options.Session,
		launch:       options.Launch,
		thread:       options.Thread,
		presenter:    options.Presenter,
		fallback:     options.Fallback,
		dispatcher:   NewDispatcher(options.Sink),
		orchestrator: NewOrchestrator(options.Session),
		immersive:    NewImmersiveController(options.Immersive, options.Probe, options.Window, options.Thread),
		logger:       internal.GetInternalLogger(),
		ctx:          ctx,
		cancel:       cancel,
	}
	s.orchestrator.OnResumed = s.immersive.ApplyDeferred

	return s, nil
}

func (s *Screen) Orchestrator() *Orchestrator {
	return s.orchestrator
}

func (s *Screen) Dispatcher() *Dispatcher {
	return s.dispatcher
}

func (s *Screen) Immersive() *ImmersiveController {
	return s.immersive
}

// OnResume is called when the screen comes to the foreground. While the
// menu is open the session stays paused.
func (s *Screen) OnResume() {
	if !s.orchestrator.Paused() && s.session != nil {
		s.session.Resume()
	}
	s.immersive.ApplyDeferred()
}

func (s *Screen) OnPause() {
	if s.session != nil {
		s.session.Pause()
	}
}

// SetImmersiveMode forces immersive mode outside the resume path.
func (s *Screen) SetImmersiveMode() {
	s.immersive.ApplyNow()
}

func (s *Screen) OnCreateMenu(ctx MenuContext) bool {
	return BuildMenu(ctx, s.launch.MultiDisk())
}

func (s *Screen) OnMenuItemSelected(id int) bool {
	if s.dispatcher.OnMenuSelection(id) {
		return true
	}
	if s.fallback != nil {
		return s.fallback(id)
	}
	return false
}

func (s *Screen) OnMenuOpened() bool {
	return s.orchestrator.MenuOpened()
}

func (s *Screen) OnMenuClosed() bool {
	return s.orchestrator.MenuClosed()
}

// ShowMenu requests the overlay menu from any goroutine. It returns at once;
// the menu opens on the UI thread.
func (s *Screen) ShowMenu() {
	s.thread.Post(s.openMenu)
}

// Close cancels a menu that is being presented.
func (s *Screen) Close() {
	s.cancel()
}

func (s *Screen) openMenu() {
	if s.presenter == nil {
		s.logger.Warn("No menu presenter configured")
		return
	}

	menu := &Menu{Title: MenuTitle()}
	s.OnCreateMenu(menu)

	if !s.OnMenuOpened() {
		return
	}
	defer s.OnMenuClosed()

	id, err := s.presenter.Present(s.ctx, menu)
	if err != nil {
		if !errors.Is(err, ErrCancelled) {
			s.logger.Error("Menu presenter failed", "error", err)
		}
		return
	}

	if !s.OnMenuItemSelected(id) {
		s.logger.Debug("Menu selection not handled", "id", id)
	}
}
