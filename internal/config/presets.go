package config

var Presets = map[string]*Config{
	"calm": {
		Width: DefaultWidth, Height: DefaultHeight, FPS: 30,
		Period: 2.4, Depth: 0.06, BaseHue: 0.95,
		Glow: true, Theme: "rose", Steps: DefaultSteps, Scale: DefaultScale,
	},
	"racing": {
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Period: 0.6, Depth: 0.2, BaseHue: DefaultHue,
		Glow: true, Theme: "crimson", Steps: DefaultSteps, Scale: DefaultScale,
	},
	"ember": {
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Period: 1.8, Depth: 0.1, BaseHue: 0.08,
		Glow: true, Theme: "ember", Steps: DefaultSteps, Scale: DefaultScale,
	},
	"mono": {
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Period: DefaultPeriod, Depth: DefaultDepth, BaseHue: DefaultHue,
		Glow: false, Theme: "mono", Steps: DefaultSteps, Scale: DefaultScale,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
