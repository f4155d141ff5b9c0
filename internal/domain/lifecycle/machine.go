package lifecycle

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Machine is a transition-table state machine. The table is configuration,
// not code: the two order profiles and the contract lifecycle are all
// instances of the same machine over different tables.

type Machine[S comparable] struct {
	transitions map[S]map[S]bool
}

func NewMachine[S comparable](table map[S][]S) *Machine[S] {
	transitions := make(map[S]map[S]bool, len(table))
	for from, tos := range table {
		set := make(map[S]bool, len(tos))
		for _, to := range tos {
			set[to] = true
		}
		transitions[from] = set
	}
	return &Machine[S]{transitions: transitions}
}

func (m *Machine[S]) CanTransition(from, to S) bool {
	return m.transitions[from][to]
}

// Transition validates from -> to against the table. It never mutates
// anything; on an illegal pair it returns ErrInvalidTransition wrapped with
// both states so handlers can surface them.
func (m *Machine[S]) Transition(from, to S) error {
	if !m.CanTransition(from, to) {
		return fmt.Errorf("%w: %v -> %v", ErrInvalidTransition, from, to)
	}
	return nil
}

// Terminal reports whether no transition leaves the given state.
func (m *Machine[S]) Terminal(s S) bool {
	return len(m.transitions[s]) == 0
}
