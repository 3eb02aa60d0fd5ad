package constants

import "testing"

func TestMenuIDsStartAtFirst(t *testing.T) {
	ids := MenuIDs()
	if len(ids) != 8 {
		t.Fatalf("expected 8 ids, got %d", len(ids))
	}

	for i, id := range ids {
		if id != MenuFirst+i {
			t.Errorf("expected id %d at %d, got %d", MenuFirst+i, i, id)
		}
	}
}

func TestMenuTableIsTotal(t *testing.T) {
	seen := make(map[Command]int)
	cancels := 0

	for _, id := range MenuIDs() {
		action, ok := LookupMenuAction(id)
		if !ok {
			t.Fatalf("id %d has no action", id)
		}
		if action.Cancel {
			cancels++
			continue
		}
		seen[action.Command]++
	}

	if cancels != 1 {
		t.Errorf("expected exactly one cancel item, got %d", cancels)
	}

	for _, c := range Commands() {
		if seen[c] != 1 {
			t.Errorf("expected command %s bound once, got %d", c, seen[c])
		}
	}
}

func TestLookupUnknownID(t *testing.T) {
	for _, id := range []int{0, MenuFirst - 1, MenuSwapID + 1, 1000, -5} {
		if _, ok := LookupMenuAction(id); ok {
			t.Errorf("expected id %d to be unknown", id)
		}
	}
}
