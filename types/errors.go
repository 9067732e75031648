package types

import (
	"errors"
	"fmt"
)

// Construction-time failures. All of them are fatal for the call that returns them;
// match with errors.Is and recover the details with errors.As.
var (
	ErrGeometry          = errors.New("degenerate element geometry")
	ErrDimensionMismatch = errors.New("dof array dimension mismatch")
	ErrIndexPartition    = errors.New("invalid interior/boundary index partition")
)

type GeometryError struct {
	Element int
	Reason  string
}

func NewGeometryError(k int, format string, args ...interface{}) *GeometryError {
	return &GeometryError{
		Element: k,
		Reason:  fmt.Sprintf(format, args...),
	}
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: element %d: %s", ErrGeometry.Error(), e.Element, e.Reason)
}

func (e *GeometryError) Is(target error) bool { return target == ErrGeometry }

type DimensionError struct {
	What       string
	Have, Want int
}

func NewDimensionError(what string, have, want int) *DimensionError {
	return &DimensionError{
		What: what,
		Have: have,
		Want: want,
	}
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s has length %d, expected %d",
		ErrDimensionMismatch.Error(), e.What, e.Have, e.Want)
}

func (e *DimensionError) Is(target error) bool { return target == ErrDimensionMismatch }

// PartitionError reports the first DOF index that breaks the partition. Index is -1
// when the failure is about the sets as a whole.
type PartitionError struct {
	Kind   string
	Index  int
	Reason string
}

func NewPartitionError(kind string, index int, reason string) *PartitionError {
	return &PartitionError{
		Kind:   kind,
		Index:  index,
		Reason: reason,
	}
}

func (e *PartitionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s dofs: %s", ErrIndexPartition.Error(), e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s dof %d: %s", ErrIndexPartition.Error(), e.Kind, e.Index, e.Reason)
}

func (e *PartitionError) Is(target error) bool { return target == ErrIndexPartition }
