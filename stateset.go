package fsa

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// MurmurHash3 32-bit finalization mix.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// StateSet Accumulates state indices while a worklist step is running.
// Indices are positions in an automaton's sorted state list.
type StateSet struct {
	bits *bitset.BitSet
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{bits: bitset.New(uint(numStates))}
}

// Add Adds the state and reports whether it was not already present.
func (s *StateSet) Add(state int) bool {
	if s.bits.Test(uint(state)) {
		return false
	}
	s.bits.Set(uint(state))
	return true
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

// GetArray Returns the members in ascending order.
func (s *StateSet) GetArray() []int {
	values := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return values
}

// Freeze Returns an immutable, hashable copy of the current members.
func (s *StateSet) Freeze() *FrozenStateSet {
	return NewFrozenStateSet(s.GetArray())
}

var _ Hashable = &FrozenStateSet{}

// FrozenStateSet A sorted, deduplicated set of state indices used as a key while
// building macro-states. Two sets with the same members always hash and compare equal.
type FrozenStateSet struct {
	values   []int
	hashCode uint64
}

// NewFrozenStateSet values must be sorted ascending without duplicates.
func NewFrozenStateSet(values []int) *FrozenStateSet {
	hashCode := uint64(len(values))
	for _, v := range values {
		hashCode += uint64(mix32(v))
	}
	return &FrozenStateSet{values: values, hashCode: hashCode}
}

func (f *FrozenStateSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenStateSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenStateSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == o
	}
	return f.hashCode == o.hashCode && slices.Equal(f.values, o.values)
}

func (f *FrozenStateSet) GetArray() []int {
	return f.values
}

func (f *FrozenStateSet) Size() int {
	return len(f.values)
}

// canonicalKey renders members, which must already be sorted and deduplicated,
// as "{a,b,c}". The empty set renders as "{}".
//
// A member is written as is when it is non-empty, has balanced braces, no quote or
// backslash and no comma outside braces; otherwise it is written Go-quoted. So
// {"a,b"} renders as {"a,b"} and {""} as {""}, and distinct sets get distinct keys.
func canonicalKey[S cmp.Ordered](members []S) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		name := fmt.Sprint(m)
		if plainMember(name) {
			b.WriteString(name)
		} else {
			b.WriteString(strconv.Quote(name))
		}
	}
	b.WriteByte('}')
	return b.String()
}

func plainMember(name string) bool {
	if name == "" {
		return false
	}
	depth := 0
	for _, r := range name {
		switch r {
		case '"', '\\':
			return false
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		case ',':
			if depth == 0 {
				return false
			}
		}
	}
	return depth == 0
}

// DeadState Canonical key of the empty state set; used as the reject sink when
// a deterministic automaton is completed. Every state built from a non-empty set
// has a different name.
const DeadState = "{}"
