package repository

import (
	"fmt"

	"github.com/tutu-network/salesdesk/internal/domain"
)

// New builds an empty repository of the requested kind. capacity only
// applies to the array kind; the linked kinds are unbounded.
func New(kind domain.RepositoryKind, capacity int) (domain.SequenceRepository, error) {
	switch kind {
	case domain.KindArray:
		a, err := NewArray(capacity)
		if err != nil {
			return nil, err
		}
		return a, nil
	case domain.KindSinglyLinked:
		return NewSinglyLinked(), nil
	case domain.KindDoublyLinked:
		return NewDoublyLinked(), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRepoKind, kind)
}
