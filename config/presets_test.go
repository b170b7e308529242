package config

import (
	"reflect"
	"testing"
)

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantErr  bool
	}{
		{"standard", "Standard", false},
		{"Kriegsmarine", "Kriegsmarine", false},
		{" LUFTWAFFE ", "Luftwaffe", false},
		{"wehrmacht", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := LookupPreset(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
			if p.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", p.Name, tt.wantName)
			}
		})
	}
}

func TestPresetNames(t *testing.T) {
	want := []string{"Kriegsmarine", "Luftwaffe", "Standard"}
	if got := PresetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("PresetNames = %v, want %v", got, want)
	}
}

func TestPresets_Validate(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			p, err := LookupPreset(name)
			if err != nil {
				t.Fatal(err)
			}
			cfg := Defaults()
			cfg.Plugboard = "QR"
			p.Apply(cfg)
			if cfg.Plugboard != p.Plugboard {
				t.Errorf("Plugboard = %q, want %q", cfg.Plugboard, p.Plugboard)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s does not validate: %v", name, err)
			}
		})
	}
}
