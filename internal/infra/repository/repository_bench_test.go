package repository

import (
	"fmt"
	"testing"

	"github.com/tutu-network/salesdesk/internal/domain"
)

// The benchmarks below make the per-kind cost model visible:
//
//	go test -bench . ./internal/infra/repository
//
// array front ops grow with n, doubly linked front/back stay flat, singly
// linked back ops and linked random access grow with n.

var benchSizes = []int{1_000, 10_000}

func seeded(b *testing.B, kind domain.RepositoryKind, n int) domain.SequenceRepository {
	b.Helper()
	r, err := New(kind, n*2)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		r.InsertBack(float64(i))
	}
	return r
}

func BenchmarkInsertFront(b *testing.B) {
	for _, kind := range domain.RepositoryKinds() {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", kind, n), func(b *testing.B) {
				r := seeded(b, kind, n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					r.InsertFront(1)
					r.DeleteFront()
				}
			})
		}
	}
}

func BenchmarkInsertBack(b *testing.B) {
	for _, kind := range domain.RepositoryKinds() {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", kind, n), func(b *testing.B) {
				r := seeded(b, kind, n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					r.InsertBack(1)
					r.DeleteBack()
				}
			})
		}
	}
}

func BenchmarkGetMiddle(b *testing.B) {
	for _, kind := range domain.RepositoryKinds() {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", kind, n), func(b *testing.B) {
				r := seeded(b, kind, n)
				mid := n / 2
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := r.Get(mid); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
