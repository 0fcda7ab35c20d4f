package automaton

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds parameters for a single automaton run.
type Config struct {
	States    int
	Radius    int
	Code      string
	Condition string
	MaxSteps  int
}

// DefaultConfig returns Rule 30 grown from a single seed cell.
func DefaultConfig() Config {
	return Config{States: 2, Radius: 1, Code: "30", Condition: "1", MaxSteps: 300}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["k"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.States = parsed
		}
	}
	if v, ok := cfg["r"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["code"]; ok && v != "" {
		c.Code = v
	}
	if v, ok := cfg["ic"]; ok && v != "" {
		c.Condition = v
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxSteps = parsed
		}
	}
	return c
}

// ParseCondition converts a string of decimal digits into states below k.
func ParseCondition(s string, k int) ([]uint8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyCondition
	}
	ic := make([]uint8, len(s))
	for i, c := range s {
		if c < '0' || c > '9' || int(c-'0') >= k {
			return nil, fmt.Errorf("%w: %q at position %d with k=%d", ErrInvalidDigit, c, i, k)
		}
		ic[i] = uint8(c - '0')
	}
	return ic, nil
}

// FormatCondition renders states as the digit string ParseCondition accepts.
func FormatCondition(ic []uint8) string {
	var b strings.Builder
	b.Grow(len(ic))
	for _, s := range ic {
		b.WriteByte('0' + s)
	}
	return b.String()
}
