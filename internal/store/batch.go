package store

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/types"
)

// OpKind identifies a batch operation.
type OpKind int

const (
	OpAdd OpKind = iota
	OpPut
	OpDelete
)

// Op is one element of a batch: an add or put carrying a record, or a
// delete carrying a key.
type Op[T any, K Key] struct {
	Kind   OpKind
	Key    K
	Record *T
}

// Batch applies a heterogeneous sequence of add/put/delete operations
// inside one transaction. Any failure rolls the whole transaction back;
// nothing from a failed batch is visible afterwards.
func (c *Collection[T, K]) Batch(ops []Op[T, K]) error {
	c.st.mu.RLock()
	defer c.st.mu.RUnlock()

	if !c.st.ready {
		return types.ErrStoreClosed
	}

	tx, err := c.st.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning %s batch: %w", c.sch.Name, err)
	}
	defer tx.Rollback()

	for i, op := range ops {
		switch op.Kind {
		case OpAdd:
			if op.Record == nil {
				return fmt.Errorf("%w: add without record at %d", types.ErrInvalidOp, i)
			}
			_, err = c.addIn(tx, op.Record)
		case OpPut:
			if op.Record == nil {
				return fmt.Errorf("%w: put without record at %d", types.ErrInvalidOp, i)
			}
			err = c.putIn(tx, op.Record)
		case OpDelete:
			err = c.deleteIn(tx, op.Key)
		default:
			return fmt.Errorf("%w: unknown kind at %d", types.ErrInvalidOp, i)
		}
		if err != nil {
			return fmt.Errorf("%s batch op %d: %w", c.sch.Name, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s batch: %w", c.sch.Name, err)
	}
	return nil
}
