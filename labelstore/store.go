package labelstore

import (
	"context"
	"fmt"
	"slices"

	"github.com/arloliu/lencoder/category"
	"github.com/arloliu/lencoder/errs"
	"github.com/arloliu/lencoder/internal/logging"
	"github.com/arloliu/lencoder/internal/options"
	"github.com/arloliu/lencoder/mapping"
	"github.com/arloliu/lencoder/repository"
	"go.uber.org/zap"
)

// Store fits, extends and applies label mappings kept in a repository.
type Store struct {
	repo   repository.Repository
	order  AssignOrder
	logger *zap.Logger
}

// New creates a store on repo.
func New(repo repository.Repository, opts ...Option) (*Store, error) {
	s := &Store{
		repo:   repo,
		order:  OrderFirstSeen,
		logger: logging.Named("labelstore"),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Order returns the configured assign order.
func (s *Store) Order() AssignOrder {
	return s.order
}

// Fit labels the distinct values of data 0..K-1 and saves the mapping to
// target.
//
// An existing mapping at target is overwritten without warning; use Update to
// extend a mapping while keeping its labels.
func (s *Store) Fit(ctx context.Context, data []category.Value, target string) error {
	distinct, err := s.newcomers(data, nil)
	if err != nil {
		return err
	}

	m := mapping.NewWithCapacity(len(distinct))
	if _, err := mapping.NewAllocator(m).AssignAll(distinct); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, target, m); err != nil {
		return err
	}

	s.logger.Info("fitted mapping",
		zap.String("target", target),
		zap.Int("rows", len(data)),
		zap.Int("categories", m.Len()))

	return nil
}

// Update adds the values of data that target does not know yet, each with
// the smallest label not in use at the time it is assigned.
//
// Labels already in the mapping are never changed. When data holds no new
// values the mapping is not written at all.
func (s *Store) Update(ctx context.Context, data []category.Value, target string) error {
	m, err := s.repo.Load(ctx, target)
	if err != nil {
		return err
	}

	fresh, err := s.newcomers(data, m)
	if err != nil {
		return err
	}
	if len(fresh) == 0 {
		s.logger.Debug("no new categories", zap.String("target", target))
		return nil
	}

	if _, err := mapping.NewAllocator(m).AssignAll(fresh); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, target, m); err != nil {
		return err
	}

	s.logger.Info("updated mapping",
		zap.String("target", target),
		zap.Int("added", len(fresh)),
		zap.Int("categories", m.Len()))

	return nil
}

// Transform returns the label of every value of data, in input order.
//
// It fails with errs.ErrUnknownCategory on the first value the mapping does
// not contain; no partial result is returned.
func (s *Store) Transform(ctx context.Context, data []category.Value, source string) ([]int, error) {
	m, err := s.repo.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	labels := make([]int, len(data))
	for i, v := range data {
		label, ok := m.Label(v)
		if !ok {
			return nil, fmt.Errorf("%w: %#v at position %d", errs.ErrUnknownCategory, v, i)
		}
		labels[i] = label
	}

	return labels, nil
}

// InverseTransform returns the value owning every label of data, in input
// order.
//
// It fails with errs.ErrUnknownLabel on the first label that was never
// assigned.
func (s *Store) InverseTransform(ctx context.Context, data []int, source string) ([]category.Value, error) {
	m, err := s.repo.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	values := make([]category.Value, len(data))
	for i, label := range data {
		v, ok := m.Category(label)
		if !ok {
			return nil, fmt.Errorf("%w: %d at position %d", errs.ErrUnknownLabel, label, i)
		}
		values[i] = v
	}

	return values, nil
}

// Mapping loads the mapping stored at source.
// The result is owned by the caller; changing it does not affect storage.
func (s *Store) Mapping(ctx context.Context, source string) (*mapping.Mapping, error) {
	return s.repo.Load(ctx, source)
}

// newcomers returns the distinct values of data missing from known, in the
// configured assign order. known may be nil.
func (s *Store) newcomers(data []category.Value, known *mapping.Mapping) ([]category.Value, error) {
	distinct := category.Distinct(data)

	fresh := distinct[:0]
	for _, v := range distinct {
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: zero value in input", errs.ErrInvalidCategory)
		}
		if known != nil && known.Contains(v) {
			continue
		}
		fresh = append(fresh, v)
	}

	if s.order == OrderSorted {
		slices.SortFunc(fresh, category.Compare)
	}

	return fresh, nil
}
