package config

import "testing"

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	a := GetPreset("system")
	a.Axes[0].Streams[0].GroupStyle[0].Label = "changed"
	a.Axes[1].Streams[0].Params["channels"] = 9

	b := GetPreset("system")
	if b.Axes[0].Streams[0].GroupStyle[0].Label != "gc cpu" {
		t.Error("preset group style shared between calls")
	}
	if b.Axes[1].Streams[0].Params["channels"] != 4 {
		t.Error("preset params shared between calls")
	}
}
