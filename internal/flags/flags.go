// Package flags provides read-only feature flags for the optional sheet
// gestures and live config reload.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/sheets/internal/log"
)

const (
	// FlagTapOutsideDismiss lets a click above the sheet dismiss it.
	FlagTapOutsideDismiss = "tap-outside-dismiss"

	// FlagDragDismiss lets a wheel-down over the sheet dismiss it.
	FlagDragDismiss = "drag-dismiss"

	// FlagConfigReload re-reads the config file when it changes on disk.
	FlagConfigReload = "config-reload"
)

// Registry holds feature flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a copy of flags. A nil map disables everything.
func New(flags map[string]bool) *Registry {
	r := &Registry{flags: make(map[string]bool, len(flags))}
	maps.Copy(r.flags, flags)
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(r.flags), "flags", r.Names())
	return r
}

// Enabled returns true if the named flag is enabled.
// Unknown flags and a nil registry report false.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	return r.flags[name]
}

// All returns a copy of all flags.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return make(map[string]bool)
	}
	return maps.Clone(r.flags)
}

// Names returns the enabled flag names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	var names []string
	for name, on := range r.flags {
		if on {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
