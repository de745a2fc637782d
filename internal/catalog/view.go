package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nikolayk812/storefront-core/internal/domain"
)

// View memoizes the last pipeline result keyed by (catalog version, query
// signature), so repeating the same settled query against an unchanged
// snapshot costs a signature comparison instead of a recompute.
type View struct {
	mu       sync.Mutex
	version  uint64
	products []domain.Product

	memoVersion   uint64
	memoSignature string
	memoValid     bool
	memo          Grouped
}

func NewView(products []domain.Product) *View {
	v := &View{}
	v.SetCatalog(products)
	return v
}

// SetCatalog replaces the snapshot and bumps the catalog version,
// invalidating the memo. A refetch always produces a fresh snapshot.
func (v *View) SetCatalog(products []domain.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.products = make([]domain.Product, len(products))
	copy(v.products, products)
	v.version++
	v.memoValid = false
}

// Query runs the pipeline, reusing the memoized result when neither the
// catalog version nor the query signature changed.
func (v *View) Query(q domain.FilterQuery) Grouped {
	v.mu.Lock()
	defer v.mu.Unlock()

	sig := signature(q)
	if v.memoValid && v.memoVersion == v.version && v.memoSignature == sig {
		return v.memo
	}

	result := Run(v.products, q)

	v.memo = result
	v.memoVersion = v.version
	v.memoSignature = sig
	v.memoValid = true

	return result
}

// signature is a deterministic encoding of every query field that affects
// the result. Differently-ordered equivalent selections may produce
// different signatures; that only costs a recompute, never a wrong answer.
func signature(q domain.FilterQuery) string {
	var b strings.Builder

	b.WriteString(q.Category)
	b.WriteByte('|')
	b.WriteString(strings.ToLower(strings.TrimSpace(q.SearchText)))
	b.WriteByte('|')
	b.WriteString(string(q.Sort))

	b.WriteByte('|')
	for _, r := range q.PriceRanges {
		fmt.Fprintf(&b, "%s..%s,%t;", r.Min.String(), r.Max.String(), r.Unbounded)
	}

	b.WriteByte('|')
	if q.SliderRange != nil {
		r := *q.SliderRange
		fmt.Fprintf(&b, "%s..%s,%t", r.Min.String(), r.Max.String(), r.Unbounded)
	}

	b.WriteByte('|')
	for _, r := range q.MinRatings {
		fmt.Fprintf(&b, "%d;", r)
	}

	return b.String()
}
