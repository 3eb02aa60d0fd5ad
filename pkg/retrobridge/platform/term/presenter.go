package term

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pawndev/retrobridge/pkg/retrobridge"
)

// Presenter runs the menu as a bubbletea program. Nil Input and Output use
// the process terminal.
type Presenter struct {
	Input  io.Reader
	Output io.Writer
}

func (p Presenter) Present(ctx context.Context, menu *retrobridge.Menu) (int, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.Input != nil {
		opts = append(opts, tea.WithInput(p.Input))
	}
	if p.Output != nil {
		opts = append(opts, tea.WithOutput(p.Output))
	}

	final, err := tea.NewProgram(newMenuModel(menu), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return 0, retrobridge.ErrCancelled
		}
		return 0, fmt.Errorf("menu program failed: %w", err)
	}

	m, ok := final.(menuModel)
	if !ok || m.cancelled || !m.done {
		return 0, retrobridge.ErrCancelled
	}
	return m.chosen, nil
}
