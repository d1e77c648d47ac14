package main

import (
	"fmt"
	"os"

	"github.com/san-kum/pulse/internal/config"
	"github.com/san-kum/pulse/internal/export"
	"github.com/san-kum/pulse/internal/gui"
	"github.com/san-kum/pulse/internal/heart"
	"github.com/san-kum/pulse/internal/viz"
	"github.com/spf13/cobra"
)

var (
	asciiMode bool
	width     int
	height    int
	fps       int
	pulse     float64
	noGlow    bool
	themeName string
	// Config file
	configFile string
	// Preset name
	preset string
	// Export options
	exportOut     string
	exportBraille bool
)

// main is the entry point for the pulse CLI; it registers commands and
// flags, runs the GUI animation when no flag is given and the terminal
// animation with --ascii.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pulse",
		Short: "pulsing heart animation (GUI / ASCII)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if asciiMode {
				return viz.RunASCII(cfg)
			}
			return gui.Run(cfg)
		},
	}
	rootCmd.Flags().BoolVar(&asciiMode, "ascii", false, "run the terminal animation instead of the GUI")
	addAnimationFlags(rootCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render one heart frame to SVG",
		RunE:  exportFrame,
	}
	exportCmd.Flags().StringVar(&exportOut, "out", "heart.svg", "output file")
	exportCmd.Flags().BoolVar(&exportBraille, "braille", false, "export the terminal frame instead of the smooth curve")
	addAnimationFlags(exportCmd)

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list terminal color themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	framesCmd := &cobra.Command{
		Use:   "frames",
		Short: "print the two terminal frames once",
		Run: func(cmd *cobra.Command, args []string) {
			frames := viz.Frames()
			fmt.Println(frames[0].Art)
			fmt.Println()
			fmt.Println(frames[1].Art)
		},
	}

	rootCmd.AddCommand(exportCmd, themesCmd, framesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addAnimationFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	cmd.Flags().Float64Var(&pulse, "pulse", config.DefaultPeriod, "pulse period in seconds")
	cmd.Flags().BoolVar(&noGlow, "no-glow", false, "disable glow effect")
	cmd.Flags().StringVar(&themeName, "theme", "", "terminal color theme")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadConfig builds the effective config: preset or file first, then
// explicitly set flags override.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (have: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("pulse") {
		cfg.Period = pulse
	}
	if cmd.Flags().Changed("no-glow") {
		cfg.Glow = !noGlow
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = themeName
	}

	return cfg, nil
}

func exportFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var svg string
	if exportBraille {
		svg = export.CanvasToSVG(viz.FrameCanvas(viz.LargeScale), 4.0, heart.Color(cfg.BaseHue).Hex())
	} else {
		fill := heart.Color(cfg.BaseHue)
		glowHex := ""
		if cfg.Glow {
			glowHex = heart.Glow(fill).Hex()
		}
		svg = export.HeartToSVG(heart.Outline(1.0, cfg.Steps), cfg.Width, cfg.Height, fill.Hex(), glowHex)
	}

	if err := os.WriteFile(exportOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", exportOut)
	return nil
}
