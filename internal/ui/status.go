package ui

import (
	"strings"

	"rulescroll/internal/core"
)

var statusKeys = []string{"rule", "generation", "w", "h"}

// StatusLine summarises the sim parameters as a single HUD line.
func StatusLine(snap core.ParameterSnapshot, paused bool) string {
	var parts []string
	for _, key := range statusKeys {
		p, ok := snap.Lookup(key)
		if !ok {
			continue
		}
		label := strings.ToLower(p.Label)
		if label == "" {
			label = p.Key
		}
		parts = append(parts, label+" "+p.Value)
	}
	if paused {
		parts = append(parts, "[paused]")
	}
	return strings.Join(parts, "  ")
}
