package config

import (
	"os"
	"testing"
	"time"
)

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		def       int
		want      int
		wantPanic bool
	}{
		{
			name:      "valid integer",
			key:       "TEST_INT",
			value:     "42",
			shouldSet: true,
			def:       7,
			want:      42,
		},
		{
			name: "unset falls back to default",
			key:  "TEST_INT_MISSING",
			def:  7,
			want: 7,
		},
		{
			name:      "invalid integer panics",
			key:       "TEST_INT_BAD",
			value:     "not-a-number",
			shouldSet: true,
			def:       7,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("getenvInt() should have panicked")
					}
				}()
			}

			if got := getenvInt(tt.key, tt.def); !tt.wantPanic && got != tt.want {
				t.Errorf("getenvInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		def       time.Duration
		want      time.Duration
	}{
		{
			name:      "valid duration",
			key:       "TEST_DUR",
			value:     "30s",
			shouldSet: true,
			def:       5 * time.Second,
			want:      30 * time.Second,
		},
		{
			name: "unset falls back to default",
			key:  "TEST_DUR_MISSING",
			def:  5 * time.Second,
			want: 5 * time.Second,
		},
		{
			name:      "invalid duration falls back to default",
			key:       "TEST_DUR_BAD",
			value:     "soon",
			shouldSet: true,
			def:       5 * time.Second,
			want:      5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}

			if got := mustDuration(tt.key, tt.def); got != tt.want {
				t.Errorf("mustDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		shouldSet bool
		def       bool
		want      bool
	}{
		{name: "true", value: "true", shouldSet: true, def: false, want: true},
		{name: "false", value: "false", shouldSet: true, def: true, want: false},
		{name: "unset uses default", def: true, want: true},
		{name: "garbage uses default", value: "yes please", shouldSet: true, def: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_BOOL"
			if tt.shouldSet {
				t.Setenv(key, tt.value)
			} else {
				key = "TEST_BOOL_MISSING"
			}

			if got := mustBool(key, tt.def); got != tt.want {
				t.Errorf("mustBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	// Make sure no CCL_ variable from the environment leaks into the test.
	for _, key := range []string{"CCL_LISTEN_PORT", "CCL_REDIS_ADDR", "CCL_JURISDICTIONS_FILE"} {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want %q", cfg.ListenPort, ":8080")
	}
	if cfg.StatsEnabled() {
		t.Error("StatsEnabled() = true without CCL_REDIS_ADDR, want false")
	}
	if cfg.JurisdictionsFile != "" {
		t.Errorf("JurisdictionsFile = %q, want empty", cfg.JurisdictionsFile)
	}
}

func TestStatsEnabled(t *testing.T) {
	t.Setenv("CCL_REDIS_ADDR", "localhost:6379")

	cfg := Load()
	if !cfg.StatsEnabled() {
		t.Error("StatsEnabled() = false with CCL_REDIS_ADDR set, want true")
	}
}
