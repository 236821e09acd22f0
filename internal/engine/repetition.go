package engine

// repetitionWindow is a fixed-size FIFO of position keys. A position that
// recurs every period plies shows up at every period-th slot of a full
// window.
type repetitionWindow struct {
	size   int
	period int
	keys   []string
}

func newRepetitionWindow(size, period int) *repetitionWindow {
	return &repetitionWindow{size: size, period: period, keys: make([]string, 0, size)}
}

// push appends a key and reports whether the window is full.
func (w *repetitionWindow) push(key string) bool {
	w.keys = append(w.keys, key)
	return len(w.keys) == w.size
}

// repeats reports whether every period-th older entry of a full window
// equals the newest one.
func (w *repetitionWindow) repeats() bool {
	if len(w.keys) < w.size {
		return false
	}
	current := w.keys[len(w.keys)-1]
	for i := 0; i < len(w.keys)-1; i += w.period {
		if w.keys[i] != current {
			return false
		}
	}
	return true
}

// evict drops the oldest key.
func (w *repetitionWindow) evict() {
	if len(w.keys) == 0 {
		return
	}
	copy(w.keys, w.keys[1:])
	w.keys = w.keys[:len(w.keys)-1]
}

// Len returns the number of keys held.
func (w *repetitionWindow) Len() int {
	return len(w.keys)
}

// checkThreefold records the key and reports whether the position has now
// occurred three times within the window. The oldest key is always evicted
// from a full window.
func (w *repetitionWindow) checkThreefold(key string) bool {
	if !w.push(key) {
		return false
	}
	found := w.repeats()
	w.evict()
	return found
}

// checkFivefold records the key and reports whether the position has now
// occurred five times within the window. A full window is only shifted
// when there is no repetition, so a detected repetition stays recorded.
func (w *repetitionWindow) checkFivefold(key string) bool {
	if !w.push(key) {
		return false
	}
	if w.repeats() {
		return true
	}
	w.evict()
	return false
}
