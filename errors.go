package fsa

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReference is matched by every *InvalidReferenceError.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrUndeclaredSymbol is matched by every *UndeclaredSymbolError.
	ErrUndeclaredSymbol = errors.New("undeclared symbol")
)

// SetKind names the declared set an element was expected to belong to.
type SetKind int

const (
	SetStates SetKind = iota
	SetAlphabet
)

func (k SetKind) String() string {
	switch k {
	case SetStates:
		return "states"
	case SetAlphabet:
		return "alphabet"
	default:
		return fmt.Sprintf("SetKind(%d)", int(k))
	}
}

// Reason tells why an element was rejected.
type Reason int

const (
	// NotDeclared the element is missing from the expected set.
	NotDeclared Reason = iota
	// Reserved the element is the epsilon symbol, which may not be declared.
	Reserved
	// AlreadyDeclared the element was to be added but is already in the set.
	AlreadyDeclared
)

// InvalidReferenceError A state or symbol was used without being declared in Set.
// Element holds the offending state (of the automaton's state type) or Symbol.
type InvalidReferenceError struct {
	Element any
	Set     SetKind
	Reason  Reason
}

func (e *InvalidReferenceError) Error() string {
	switch e.Reason {
	case Reserved:
		return fmt.Sprintf("invalid reference: %q is reserved in %s", e.Element, e.Set)
	case AlreadyDeclared:
		return fmt.Sprintf("invalid reference: %v already declared in %s", e.Element, e.Set)
	}
	return fmt.Sprintf("invalid reference: %v not declared in %s", e.Element, e.Set)
}

func (e *InvalidReferenceError) Is(target error) bool {
	return target == ErrInvalidReference
}

// UndeclaredSymbolError An input symbol is outside the automaton's alphabet.
type UndeclaredSymbolError struct {
	Symbol Symbol
}

func (e *UndeclaredSymbolError) Error() string {
	return fmt.Sprintf("undeclared symbol: %q", e.Symbol)
}

func (e *UndeclaredSymbolError) Is(target error) bool {
	return target == ErrUndeclaredSymbol
}
