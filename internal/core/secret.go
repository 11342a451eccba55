package core

import (
	"strings"
	"time"
	"unicode"
)

// SecretDetector watches typed letters for unlock codes.
// Only A-Z count (lower case is folded up); the buffer keeps just the trailing
// characters needed for the longest code.
type SecretDetector struct {
	codes    map[string]string // code -> game ID
	buf      []rune
	limit    int
	unlocked map[string]bool
}

// NewSecretDetector creates a detector for the given code -> game ID table.
// Codes are upper-cased; empty codes are ignored.
func NewSecretDetector(codes map[string]string) *SecretDetector {
	d := &SecretDetector{
		codes:    make(map[string]string, len(codes)),
		unlocked: make(map[string]bool),
	}
	for code, id := range codes {
		code = strings.ToUpper(code)
		if code == "" {
			continue
		}
		d.codes[code] = id
		d.limit = max(d.limit, len([]rune(code)))
	}
	return d
}

// Feed adds one typed key. It returns the game ID whose code was just
// completed, or "" when nothing new unlocked.
func (d *SecretDetector) Feed(r rune) string {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' || d.limit == 0 {
		return ""
	}
	d.buf = append(d.buf, r)
	if len(d.buf) > d.limit {
		d.buf = d.buf[len(d.buf)-d.limit:]
	}

	typed := string(d.buf)
	for code, id := range d.codes {
		if d.unlocked[id] || !strings.HasSuffix(typed, code) {
			continue
		}
		d.unlocked[id] = true
		return id
	}
	return ""
}

// Buffer returns the letters currently held.
func (d *SecretDetector) Buffer() string {
	return string(d.buf)
}

// Unlocked reports whether a game's code has been entered.
func (d *SecretDetector) Unlocked(id string) bool {
	return d.unlocked[id]
}

// Unlock marks a game as unlocked without typing its code.
func (d *SecretDetector) Unlock(id string) {
	d.unlocked[id] = true
}

// Clear empties the typed buffer. Unlock state is kept.
func (d *SecretDetector) Clear() {
	d.buf = d.buf[:0]
}

// Relock forgets that a game was unlocked and clears the buffer, so the code
// must be typed again.
func (d *SecretDetector) Relock(id string) {
	delete(d.unlocked, id)
	d.Clear()
}

// TapCounter detects a burst of taps, the touch-screen unlock gesture.
type TapCounter struct {
	Need   int
	Window time.Duration
	count  int
	last   time.Duration
}

// NewTapCounter requires need taps, each within window of the previous one.
func NewTapCounter(need int, window time.Duration) *TapCounter {
	return &TapCounter{Need: need, Window: window}
}

// Tap records a tap at now and reports whether the burst is complete.
func (t *TapCounter) Tap(now time.Duration) bool {
	if t.count > 0 && now-t.last > t.Window {
		t.count = 0
	}
	t.count++
	t.last = now
	if t.count >= t.Need {
		t.count = 0
		return true
	}
	return false
}
