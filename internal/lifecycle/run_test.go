package lifecycle_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/st3v3nmw/cfc/internal/lifecycle"
	"github.com/st3v3nmw/cfc/internal/problem"
	"github.com/st3v3nmw/cfc/internal/registry"
	"github.com/st3v3nmw/cfc/internal/state"
)

func TestRunPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		state   *state.State
		wantErr error
	}{
		{
			name:    "No Current Problem",
			state:   &state.State{CurrentLanguage: ptr(registry.Cpp)},
			wantErr: lifecycle.ErrNoCurrentProblem,
		},
		{
			name:    "Problem Without Language",
			state:   &state.State{CurrentProblem: ptr(problem.ID("1987C"))},
			wantErr: lifecycle.ErrInconsistentState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.save(t, tt.state)

			err := h.ctrl.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if len(h.launcher.calls) != 0 {
				t.Errorf("launched %v", h.launcher.calls)
			}
		})
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		language registry.Language
		fail     string
		want     [][]string
		wantStep string
	}{
		{
			name:     "Interpreted",
			language: registry.Pypy,
			want:     [][]string{{"pypy3", "1987C.py"}},
		},
		{
			name:     "Compiled",
			language: registry.Cpp,
			want: [][]string{
				{"g++", "-std=c++17", "-O2", "-o", "1987C", "1987C.cpp"},
				{"./1987C"},
			},
		},
		{
			name:     "Compile Error",
			language: registry.C,
			fail:     "gcc",
			want:     [][]string{{"gcc", "-O2", "-o", "1987C", "1987C.c", "-lm"}},
			wantStep: "compile",
		},
		{
			name:     "Runtime Error",
			language: registry.Java,
			fail:     "java",
			want:     [][]string{{"java", "1987C.java"}},
			wantStep: "run",
		},
		{
			name:     "Project",
			language: registry.Rust,
			want: [][]string{
				{"cargo", "build", "--release", "--quiet", "--manifest-path", "cf_1987c/Cargo.toml"},
				{"cf_1987c/target/release/cf_1987c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.save(t, &state.State{
				CurrentProblem:  ptr(problem.ID("1987C")),
				CurrentLanguage: ptr(tt.language),
			})
			if tt.fail != "" {
				h.launcher.fail[tt.fail] = true
			}

			err := h.ctrl.Run(context.Background())
			if tt.wantStep == "" && err != nil {
				t.Fatalf("Run: %v", err)
			}

			if tt.wantStep != "" {
				var stepErr *lifecycle.StepError
				if !errors.As(err, &stepErr) || stepErr.Step != tt.wantStep {
					t.Fatalf("Run() error = %v, want a %s StepError", err, tt.wantStep)
				}
			}

			if !reflect.DeepEqual(h.launcher.calls, tt.want) {
				t.Errorf("launches = %v, want %v", h.launcher.calls, tt.want)
			}
		})
	}
}
