package monomial

import (
	"github.com/roach88/qxseries/internal/ir"
)

// Action is a Weyl group action on monomial labels.
// No algebraic properties (closure, involution) are checked.
type Action func(ir.Label) ir.Label

// NamedAction pairs an Action with the name it was supplied under.
type NamedAction struct {
	Name  string
	Apply Action
}

// Actions is an ordered list of named actions.
// Iteration order is list order.
type Actions []NamedAction

// HighestMonomial returns the first-inserted label of m.
// Returns an EMPTY_INPUT ComputeError if m has no terms.
func HighestMonomial(m Mapping) (ir.Label, error) {
	if m.Len() == 0 {
		return "", ir.NewEmptyInputError("monomial mapping")
	}
	return m.terms[0].Label, nil
}

// ExtremalMonomials applies every action to the highest monomial of m and
// keeps each image that is a key of m with coefficient exactly 1.
//
// Results are keyed by the transformed label, not the action name: two
// actions with the same image collapse to one entry. The entry sits at the
// position of its first insertion and holds the value from the last action
// applied, which is always 1.
//
// An empty result (no action matched) is not an error.
func ExtremalMonomials(m Mapping, actions Actions) (Mapping, error) {
	highest, err := HighestMonomial(m)
	if err != nil {
		return Mapping{}, err
	}

	var out Mapping
	for _, a := range actions {
		if a.Apply == nil {
			return Mapping{}, ir.NewInvalidArgumentError("action "+a.Name, "no function supplied")
		}
		image := a.Apply(highest)
		if coeff, ok := m.Lookup(image); ok && coeff == 1 {
			out.set(image, coeff)
		}
	}
	return out, nil
}

// SubstitutionAction returns an Action defined by a finite relabelling table.
// Labels missing from the table map to themselves.
func SubstitutionAction(table map[ir.Label]ir.Label) Action {
	t := make(map[ir.Label]ir.Label, len(table))
	for k, v := range table {
		t[k] = v
	}
	return func(l ir.Label) ir.Label {
		if img, ok := t[l]; ok {
			return img
		}
		return l
	}
}

// Identity is the trivial Weyl action.
func Identity(l ir.Label) ir.Label { return l }
