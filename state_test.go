package generator

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{NotStarted, "not-started"},
		{Running, "running"},
		{Yielded, "yielded"},
		{Finished, "finished"},
		{State(42), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
