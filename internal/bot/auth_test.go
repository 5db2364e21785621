package bot

import "testing"

func TestAuthIsAuthorized(t *testing.T) {
	auth := NewAuth([]int64{42, 99})

	tests := []struct {
		name string
		id   int64
		want bool
	}{
		{"allowed", 42, true},
		{"another allowed", 99, true},
		{"not allowed", 7, false},
		{"zero id never authorized", 0, false},
		{"negative id", -42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := auth.IsAuthorized(tt.id); got != tt.want {
				t.Errorf("IsAuthorized(%d) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestAuthEmptyAllowSet(t *testing.T) {
	auth := NewAuth(nil)
	if auth.IsAuthorized(1) {
		t.Error("empty allow-set authorized a caller")
	}
}

func TestAuthIDs(t *testing.T) {
	auth := NewAuth([]int64{1, 2, 3})
	ids := auth.IDs()
	if len(ids) != 3 {
		t.Fatalf("got %d ids, want 3", len(ids))
	}
	seen := make(map[int64]bool)
	for _, id := range ids {
		seen[id] = true
	}
	for _, want := range []int64{1, 2, 3} {
		if !seen[want] {
			t.Errorf("id %d missing from IDs()", want)
		}
	}
}
