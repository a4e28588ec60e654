package registry

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the container the way a build would: every alias must
// resolve to a definition, every decorator's parent chain must exist and
// flatten, and every Reference argument of a concrete (non-abstract)
// service must name a known id. All problems are reported together.
func (c *Container) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var errs *multierror.Error

	for _, id := range slices.Sorted(maps.Keys(c.aliases)) {
		if _, err := c.resolveAlias(id); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("alias %q is unresolved: %w", id, err))
		}
	}

	for _, id := range slices.Sorted(maps.Keys(c.definitions)) {
		def, err := c.effective(id, map[string]struct{}{})
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		if def.Abstract {
			continue
		}

		for _, ref := range references(def) {
			if !c.has(string(ref)) {
				errs = multierror.Append(errs, fmt.Errorf("service %q references %q: %w", id, string(ref), ErrServiceNotFound))
			}
		}
	}

	return errs.ErrorOrNil()
}

// references collects Reference values among arguments and call arguments,
// descending into slices and string-keyed maps. OptionalReference values
// are not collected.
func references(def *Definition) []Reference {
	var out []Reference

	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case Reference:
			out = append(out, t)
		case []any:
			for _, e := range t {
				walk(e)
			}
		case map[string]any:
			for _, k := range slices.Sorted(maps.Keys(t)) {
				walk(t[k])
			}
		}
	}

	for _, a := range def.Arguments {
		walk(a)
	}

	for _, call := range def.Calls {
		for _, a := range call.Args {
			walk(a)
		}
	}

	return out
}
