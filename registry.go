package hxtable

import "fmt"

// registerFeatures validates the feature list at construction time so a
// misconfigured table fails in New rather than on first use.
func registerFeatures[T any](features []Feature[T]) {
	seen := make(map[string]struct{}, len(features))
	for i, f := range features {
		if f == nil {
			panic(fmt.Sprintf("hxtable: feature %d is nil", i))
		}
		name := f.Name()
		if _, exists := seen[name]; exists {
			panic(fmt.Sprintf("hxtable: feature %q registered twice", name))
		}
		seen[name] = struct{}{}
	}
}

// mergeOptions fills the unset change handlers in opts from defaults.
// Only handlers are mergeable; features do not supply data or state.
func mergeOptions[T any](opts, defaults Options[T]) Options[T] {
	if opts.OnRowHoveringChange == nil {
		opts.OnRowHoveringChange = defaults.OnRowHoveringChange
	}
	if opts.OnRowSelectionChange == nil {
		opts.OnRowSelectionChange = defaults.OnRowSelectionChange
	}
	return opts
}
