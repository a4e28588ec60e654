package plan

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"uploadwire/internal/registry"
)

// Apply commits the plan's instructions to reg, in order. Every instruction
// is checked against reg and the plan's own definitions first; if any would
// fail, reg is left untouched and all problems are returned together.
func (p *Plan) Apply(reg registry.Registry) error {
	if err := p.check(reg); err != nil {
		return err
	}

	for i, in := range p.Instructions {
		if err := in.apply(reg); err != nil {
			return fmt.Errorf("instruction %d (%s %q): %w", i, in.Op, in.ID, err)
		}
	}

	return nil
}

// check replays the instructions against a scratch view of the definitions
// they touch.
func (p *Plan) check(reg registry.Reader) error {
	var errs *multierror.Error

	scratch := make(map[string]*registry.Definition)
	lookup := func(id string) (*registry.Definition, bool) {
		if def, ok := scratch[id]; ok {
			return def, def != nil
		}

		def, ok := reg.Definition(id)
		if ok {
			scratch[id] = def
		}

		return def, ok
	}

	for i, in := range p.Instructions {
		fail := func(err error) {
			errs = multierror.Append(errs, fmt.Errorf("instruction %d (%s %q): %w", i, in.Op, in.ID, err))
		}

		if in.ID == "" {
			fail(errors.New("empty id"))
			continue
		}

		switch in.Op {
		case OpDefine:
			if in.Definition == nil {
				fail(errors.New("nil definition"))
				continue
			}

			if in.Definition.Parent == in.ID {
				fail(registry.ErrCircularReference)
				continue
			}

			scratch[in.ID] = in.Definition.Clone()
		case OpAlias:
			if in.Alias.Target == "" || in.Alias.Target == in.ID {
				fail(fmt.Errorf("%w: alias target %q", registry.ErrCircularReference, in.Alias.Target))
				continue
			}

			// an alias shadows any definition with the same id
			scratch[in.ID] = nil
		case OpRemoveAlias, OpSetParameter:
		case OpReplaceArgument:
			def, ok := lookup(in.ID)
			if !ok {
				fail(registry.ErrServiceNotFound)
				continue
			}

			if err := def.ReplaceArgument(in.Index, in.Value); err != nil {
				fail(err)
			}
		case OpAddTag:
			if _, ok := lookup(in.ID); !ok {
				fail(registry.ErrServiceNotFound)
			}
		default:
			fail(fmt.Errorf("unsupported op %s", in.Op))
		}
	}

	return errs.ErrorOrNil()
}

func (in Instruction) apply(reg registry.Registry) error {
	switch in.Op {
	case OpDefine:
		return reg.Define(in.ID, in.Definition.Clone())
	case OpAlias:
		return reg.Alias(in.ID, in.Alias)
	case OpRemoveAlias:
		reg.RemoveAlias(in.ID)
		return nil
	case OpReplaceArgument:
		return reg.ReplaceArgument(in.ID, in.Index, in.Value)
	case OpAddTag:
		return reg.AddTag(in.ID, in.Tag)
	case OpSetParameter:
		reg.SetParameter(in.ID, in.Value)
		return nil
	default:
		return fmt.Errorf("unsupported op %s", in.Op)
	}
}
