package featureflags

import "testing"

func TestEnabled_BooleanValues(t *testing.T) {
	m := NewManager("feed_cache=on,new_checkout=off,a=true,b=false,c=1,d=0")

	if !m.Enabled(FeedCache, 1) || !m.Enabled("a", 1) || !m.Enabled("c", 1) {
		t.Fatal("expected enabled boolean values to evaluate true")
	}
	if m.Enabled("new_checkout", 1) || m.Enabled("b", 1) || m.Enabled("d", 1) {
		t.Fatal("expected disabled boolean values to evaluate false")
	}
}

func TestEnabled_PercentageValues(t *testing.T) {
	m := NewManager("always=100%,never=0%,canary=25%")

	if !m.Enabled("always", 1) {
		t.Fatal("100% rollout should always be enabled")
	}
	if m.Enabled("never", 1) {
		t.Fatal("0% rollout should always be disabled")
	}

	first := m.Enabled("canary", 42)
	for i := 0; i < 5; i++ {
		if got := m.Enabled("canary", 42); got != first {
			t.Fatal("rollout evaluation must be deterministic per user")
		}
	}

	if m.Enabled("canary", 0) {
		t.Fatal("percentage rollout requires non-zero userID")
	}
}

func TestEnabled_UnknownAndNil(t *testing.T) {
	m := NewManager("feed_cache=on")
	if m.Enabled("missing", 1) {
		t.Fatal("unknown flags default to off")
	}

	var nilManager *Manager
	if nilManager.Enabled(FeedCache, 1) {
		t.Fatal("nil manager must evaluate every flag to off")
	}
}

func TestParseAndSnapshot(t *testing.T) {
	m := NewManager(" bad ,feed_cache=on, canary = 20% ,legacy=off ")

	raw := m.Raw()
	if len(raw) != 3 {
		t.Fatalf("expected 3 parsed flags, got %d", len(raw))
	}
	if raw["feed_cache"] != "on" || raw["canary"] != "20%" || raw["legacy"] != "off" {
		t.Fatalf("unexpected raw flags: %#v", raw)
	}

	snap := m.Snapshot(123)
	if len(snap) != 3 {
		t.Fatalf("expected snapshot size 3, got %d", len(snap))
	}
	if !snap["feed_cache"] || snap["legacy"] {
		t.Fatalf("unexpected snapshot values: %#v", snap)
	}
}
