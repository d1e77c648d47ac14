package viz

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/san-kum/pulse/internal/config"
)

// RunASCII runs the terminal animation until interrupted. On a real
// terminal it runs the full-screen Bubble Tea program; when stdout is
// redirected it falls back to the plain newline-separated loop.
func RunASCII(cfg *config.Config) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return runPlain(cfg, os.Stdout)
	}

	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
