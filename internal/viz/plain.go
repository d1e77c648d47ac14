package viz

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/san-kum/pulse/internal/config"
)

// runPlain prints frames separated by blank lines, one every half
// pulse period, until the process is interrupted. Used when the
// terminal cannot be cleared (stdout is not a tty).
func runPlain(cfg *config.Config, w io.Writer) error {
	period := cfg.Period
	if period <= 0 {
		period = config.DefaultPeriod
	}
	interval := time.Duration(period / 2 * float64(time.Second))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	frames := Frames()
	phase := 0
	fmt.Fprintln(w, frames[phase].Art)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-sig:
			return nil
		case <-ticker.C:
			phase = (phase + 1) % len(frames)
			fmt.Fprintln(w)
			fmt.Fprintln(w, frames[phase].Art)
		}
	}
}
