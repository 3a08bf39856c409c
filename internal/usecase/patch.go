package usecase

import (
	"bytes"
	"encoding/json"
)

// Patch is a three-state field for update shapes. A plain pointer cannot
// tell "caller did not mention this field" apart from "caller wants it
// cleared", so every updatable field carries one of:
//
//	absent        -> Set == false           (leave stored value unchanged)
//	explicit null -> Set == true, Null true (clear, when the column is nullable)
//	a value       -> Set == true, Null false
type Patch[T any] struct {
	Set  bool
	Null bool
	Val  T
}

// UnmarshalJSON only runs for keys present in the document, which is what
// flips Set.
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	p.Set = true
	if bytes.Equal(data, []byte("null")) {
		p.Null = true
		var zero T
		p.Val = zero
		return nil
	}
	return json.Unmarshal(data, &p.Val)
}

func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if !p.Set || p.Null {
		return []byte("null"), nil
	}
	return json.Marshal(p.Val)
}

// HasValue reports a concrete (non-null) value was supplied.
func (p Patch[T]) HasValue() bool {
	return p.Set && !p.Null
}

// Ptr returns the value as a pointer, nil when null. Only meaningful when
// Set is true.
func (p Patch[T]) Ptr() *T {
	if !p.HasValue() {
		return nil
	}
	v := p.Val
	return &v
}

// PatchValue builds a set, non-null Patch. Test and internal-caller helper.
func PatchValue[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Val: v}
}

// PatchNull builds an explicit-null Patch.
func PatchNull[T any]() Patch[T] {
	return Patch[T]{Set: true, Null: true}
}
