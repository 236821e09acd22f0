package engine

import "testing"

func TestRepetitionWindow_Threefold(t *testing.T) {
	w := newRepetitionWindow(9, 4)
	keys := []string{"a", "b", "c", "d", "a", "b", "c", "d"}

	for _, k := range keys {
		if w.checkThreefold(k) {
			t.Fatalf("checkThreefold(%q) = true before the window filled", k)
		}
	}
	if !w.checkThreefold("a") {
		t.Error("checkThreefold(a) = false, want true on the ninth key")
	}
	if w.Len() != 8 {
		t.Errorf("Len() = %d, want 8 after eviction", w.Len())
	}
	if w.checkThreefold("x") {
		t.Error("checkThreefold(x) = true, want false")
	}
}

func TestRepetitionWindow_Fivefold(t *testing.T) {
	w := newRepetitionWindow(17, 4)

	for i := 0; i < 16; i++ {
		k := string(rune('a' + i%4))
		if w.checkFivefold(k) {
			t.Fatalf("checkFivefold at key %d = true, want false", i)
		}
	}
	if !w.checkFivefold("a") {
		t.Fatal("checkFivefold(a) = false, want true on the seventeenth key")
	}
	if w.Len() != 17 {
		t.Errorf("Len() = %d, want 17: a detected repetition is not evicted", w.Len())
	}
}

func TestRepetitionWindow_NoMatchShifts(t *testing.T) {
	w := newRepetitionWindow(5, 4)

	for _, k := range []string{"a", "b", "c", "d", "e"} {
		if w.checkFivefold(k) {
			t.Fatalf("checkFivefold(%q) = true, want false", k)
		}
	}
	if w.Len() != 4 {
		t.Errorf("Len() = %d, want 4", w.Len())
	}
	if !w.checkFivefold("b") {
		t.Error("checkFivefold(b) = false, want true once b returns after four plies")
	}
}
