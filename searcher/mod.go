package searcher

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultDepth = 2

var ErrUnknownVariant = errors.New("unknown adversarial search variant")

// Variant selects how adversaries are modelled.
type Variant int

const (
	// Minimax assumes every adversary minimizes agent 0's value.
	Minimax Variant = iota
	// AlphaBeta is Minimax with branches pruned once they cannot change
	// the result.
	AlphaBeta
	// Expectimax assumes every adversary picks uniformly at random.
	Expectimax
)

var variantNames = map[Variant]string{
	Minimax:    "minimax",
	AlphaBeta:  "alphabeta",
	Expectimax: "expectimax",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for variant, variantName := range variantNames {
		if variantName == name {
			return variant, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// ContractViolation is the panic value raised when the searcher and the
// game disagree on the turn contract, e.g. a non-terminal state with no
// legal actions. It is never recovered by the searcher.
type ContractViolation struct {
	Reason string
}

func (c ContractViolation) Error() string {
	return "contract violation: " + c.Reason
}

func violation(format string, args ...any) ContractViolation {
	return ContractViolation{Reason: fmt.Sprintf(format, args...)}
}
