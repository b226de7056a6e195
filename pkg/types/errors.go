// SPDX-FileCopyrightText: 2025 Christoph Mewes
// SPDX-License-Identifier: MIT

package types

import (
	"errors"
	"fmt"
)

var ErrMissingEntity = errors.New("missing entity")

// MissingEntityError is returned when a relationship references an entity
// that was never declared.
type MissingEntityError struct {
	Entity       string
	Relationship Relationship
}

func (e *MissingEntityError) Error() string {
	r := e.Relationship
	return fmt.Sprintf("relationship %s %s %s references unknown entity %q", r.Source, r.Cardinality, r.Target, e.Entity)
}

func (e *MissingEntityError) Is(target error) bool {
	return target == ErrMissingEntity
}
