package config

import (
	"gridpath/grid"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Width != 10 || c.Height != 10 || c.WallPercent != 15 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"too narrow", func(c *Config) { c.Width = 2 }, false},
		{"too tall", func(c *Config) { c.Height = MaxSide + 1 }, false},
		{"negative walls", func(c *Config) { c.WallPercent = -1 }, false},
		{"bad mode", func(c *Config) { c.Mode = "gui" }, false},
		{"tui", func(c *Config) { c.Mode = ModeTUI }, true},
		{"no walls", func(c *Config) { c.WallPercent = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			if err := c.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GRIDPATH_WIDTH":  "20",
		"GRIDPATH_HEIGHT": "12",
		"GRIDPATH_WALLS":  "30",
		"GRIDPATH_SEED":   "7",
		"GRIDPATH_ADDR":   "127.0.0.1:9000",
	}
	c := Default()
	if err := c.applyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatal(err)
	}
	if c.Width != 20 || c.Height != 12 || c.WallPercent != 30 || c.Seed != 7 || c.Addr != "127.0.0.1:9000" {
		t.Errorf("env not applied: %+v", c)
	}

	bad := Default()
	if err := bad.applyEnv(func(k string) string {
		if k == "GRIDPATH_WIDTH" {
			return "wide"
		}
		return ""
	}); err == nil {
		t.Error("expected error for non-numeric width")
	}
}

func TestGridOptionsSeedIsReproducible(t *testing.T) {
	c := Default()
	c.Seed = 11
	a, err := grid.Generate(c.Width, c.Height, c.GridOptions()...)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := grid.Generate(c.Width, c.Height, c.GridOptions()...)
	for i, row := range a.Strings() {
		if b.Strings()[i] != row {
			t.Fatalf("row %d differs", i)
		}
	}
}
