package labelstore

import (
	"errors"
	"fmt"

	"github.com/arloliu/lencoder/internal/options"
	"go.uber.org/zap"
)

// AssignOrder controls which distinct value receives which label when several
// values are labeled in one Fit or Update call.
type AssignOrder uint8

const (
	// OrderFirstSeen labels values in the order they first occur in the input.
	OrderFirstSeen AssignOrder = iota
	// OrderSorted labels values in ascending order (see category.Compare).
	OrderSorted
)

func (o AssignOrder) String() string {
	switch o {
	case OrderFirstSeen:
		return "first-seen"
	case OrderSorted:
		return "sorted"
	default:
		return "unknown"
	}
}

// Option configures a Store.
type Option = options.Option[*Store]

// WithLogger sets the logger of the store.
func WithLogger(l *zap.Logger) Option {
	return options.New(func(s *Store) error {
		if l == nil {
			return errors.New("nil logger")
		}
		s.logger = l

		return nil
	})
}

// WithAssignOrder sets how new labels are distributed among new values.
func WithAssignOrder(order AssignOrder) Option {
	return options.New(func(s *Store) error {
		if order > OrderSorted {
			return fmt.Errorf("invalid assign order: %d", order)
		}
		s.order = order

		return nil
	})
}
