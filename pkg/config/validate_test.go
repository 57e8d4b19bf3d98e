package config

import (
	"fmt"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfgs     []ValidatableConfig
		wantErrs int
	}{
		{
			name:     "no configs",
			cfgs:     []ValidatableConfig{},
			wantErrs: 0,
		},
		{
			name: "one valid config",
			cfgs: []ValidatableConfig{
				Default(),
			},
			wantErrs: 0,
		},
		{
			name: "one invalid config",
			cfgs: []ValidatableConfig{
				&Config{Quit: "q", MinBytes: -1},
			},
			wantErrs: 1,
		},
		{
			name: "multiple configs with errors",
			cfgs: []ValidatableConfig{
				&Config{Quit: "", MinBytes: 0},
				&Config{Quit: "q", TimeoutDeciseconds: 256},
			},
			wantErrs: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			errs := Validate(tc.cfgs...)
			if len(errs) != tc.wantErrs {
				t.Errorf("Validate() returned %d errors, want %d", len(errs), tc.wantErrs)
			}
		})
	}
}

func TestValidateCC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"max", 255, false},
		{"negative", -1, true},
		{"just over", 256, true},
		{"far over", 100000, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := validateCC(tc.value)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateCC(%d) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
		})
	}
}

// mockValidatableConfig is a mock implementation for testing.
type mockValidatableConfig struct {
	errors []error
}

func (m *mockValidatableConfig) Validate() []error {
	return m.errors
}

func TestValidate_Accumulates(t *testing.T) {
	t.Parallel()

	mock1 := &mockValidatableConfig{
		errors: []error{fmt.Errorf("error1"), fmt.Errorf("error2")},
	}
	mock2 := &mockValidatableConfig{
		errors: []error{fmt.Errorf("error3")},
	}

	errs := Validate(mock1, mock2)
	if len(errs) != 3 {
		t.Errorf("Validate() returned %d errors, want 3", len(errs))
	}
}
