package sales

import (
	"github.com/tutu-network/salesdesk/internal/domain"
	"github.com/tutu-network/salesdesk/internal/infra/metrics"
)

// SupportsAdvancedOps reports whether the entity's repository offers
// reverse, threshold search and duplicate detection.
func (s *Service) SupportsAdvancedOps(e domain.Entity) bool {
	r, err := s.repo(e)
	return err == nil && r.SupportsAdvancedOps()
}

// Reverse reverses one entity in place. The other entity is left as is.
func (s *Service) Reverse(e domain.Entity) error {
	r, err := s.repo(e)
	if err == nil {
		err = r.Reverse()
	}
	s.record("reverse", err)
	return err
}

// RemoveDuplicates finds repeated values in entity e and deletes the whole
// month pair at each repeated index, highest index first so earlier indices
// stay valid. It returns the number of records removed.
func (s *Service) RemoveDuplicates(e domain.Entity) (int, error) {
	r, err := s.repo(e)
	if err != nil {
		return 0, err
	}
	dups, err := r.FindDuplicateIndices()
	if err != nil {
		s.record("dedupe", err)
		return 0, err
	}
	for k := len(dups) - 1; k >= 0; k-- {
		if err := s.deletePair(dups[k]); err != nil {
			s.record("dedupe", err)
			return len(dups) - 1 - k, err
		}
	}
	s.record("dedupe", nil)
	metrics.DuplicatesRemoved.Add(float64(len(dups)))
	s.log.Info().Str("entity", string(e)).Ints("indices", dups).Msg("duplicates removed")
	return len(dups), nil
}

// RemoveByValue deletes the month pair holding the first occurrence of v in
// entity e. It reports false when v is absent.
func (s *Service) RemoveByValue(e domain.Entity, v float64) (bool, error) {
	r, err := s.repo(e)
	if err != nil {
		return false, err
	}
	i := r.IndexOf(v)
	if i < 0 {
		return false, nil
	}
	err = s.deletePair(i)
	s.record("remove_value", err)
	return err == nil, err
}

// FindFirstAtLeast returns the first index in entity e whose value is at
// least t, or -1. Repositories without advanced operations are scanned
// through Get.
func (s *Service) FindFirstAtLeast(e domain.Entity, t float64) (int, error) {
	r, err := s.repo(e)
	if err != nil {
		return -1, err
	}
	if r.SupportsAdvancedOps() {
		return r.FindFirstAtLeast(t)
	}
	for i := 0; i < r.Len(); i++ {
		v, err := r.Get(i)
		if err != nil {
			return -1, err
		}
		if v >= t {
			return i, nil
		}
	}
	return -1, nil
}
