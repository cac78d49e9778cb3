// Package paginated computes the page numbers a paginated control displays
// and serves pages of Redis lists alongside that window.
package paginated

const (
	// DefaultSiblingsSize is the number of pages shown on each side of the current page.
	DefaultSiblingsSize = 2

	// DefaultBoundarySize is the number of pages pinned at each end of the range.
	DefaultBoundarySize = 2
)

// Request describes the page window to compute.
type Request struct {
	// Total number of pages. Zero yields an empty window.
	TotalPages int

	// Page number starting from one. Not range checked.
	CurrentPage int

	// Pages shown on each side of CurrentPage.
	SiblingsSize int

	// Pages pinned at the start and end of the range.
	BoundarySize int
}

// Option customizes a Request built by NewRequest.
type Option func(*Request)

// WithSiblings sets the number of sibling pages.
func WithSiblings(n int) Option {
	return func(r *Request) {
		r.SiblingsSize = n
	}
}

// WithBoundary sets the number of boundary pages.
func WithBoundary(n int) Option {
	return func(r *Request) {
		r.BoundarySize = n
	}
}

// NewRequest returns a Request with the default siblings and boundary sizes.
func NewRequest(totalPages, currentPage int, opts ...Option) Request {
	r := Request{
		TotalPages:   totalPages,
		CurrentPage:  currentPage,
		SiblingsSize: DefaultSiblingsSize,
		BoundarySize: DefaultBoundarySize,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Result is the computed page window.
type Result struct {
	// Pages is the contiguous, ascending run of pages around the current page.
	Pages []int `json:"pages"`

	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`

	// FirstBoundary and LastBoundary never contain a page of Pages. When
	// BoundarySize reaches past the window they may hold the same pages.
	FirstBoundary []int `json:"first_boundary"`
	LastBoundary  []int `json:"last_boundary"`

	// PrevTruncated reports a gap between FirstBoundary and Pages.
	PrevTruncated bool `json:"prev_truncated"`
	// NextTruncated reports a gap between Pages and LastBoundary.
	NextTruncated bool `json:"next_truncated"`

	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// Compute selects the visible pages, boundary pages and truncation flags
// for req. It never fails; an out-of-range CurrentPage is routed through
// the edge checks as is.
func Compute(req Request) Result {
	total := req.TotalPages
	if total < 0 {
		total = 0
	}
	windowSize := req.SiblingsSize*2 + 1

	reachedFirst := req.CurrentPage <= req.SiblingsSize
	reachedLast := req.CurrentPage >= req.TotalPages-req.SiblingsSize

	var pages []int
	switch {
	case reachedFirst:
		pages = pageRange(0, windowSize, total)
	case reachedLast:
		pages = pageRange(total-windowSize, total, total)
	default:
		pages = pageRange(req.CurrentPage-req.SiblingsSize-1, req.CurrentPage+req.SiblingsSize, total)
	}

	var before, after []int
	if len(pages) > 0 {
		before = pageRange(0, pages[0]-1, total)
		after = pageRange(pages[len(pages)-1], total, total)
	}

	first := []int{}
	if !reachedFirst && len(before) > 0 {
		first = exclude(pageRange(0, req.BoundarySize, total), pages)
	}
	last := []int{}
	if !reachedLast && len(after) > 0 {
		last = exclude(pageRange(total-req.BoundarySize, total, total), pages)
	}

	return Result{
		Pages:         pages,
		HasPrev:       req.CurrentPage > 1,
		HasNext:       req.TotalPages > req.CurrentPage,
		FirstBoundary: first,
		LastBoundary:  last,
		PrevTruncated: len(exclude(exclude(before, first), pages)) > 0,
		NextTruncated: len(exclude(exclude(after, last), pages)) > 0,
		TotalPages:    req.TotalPages,
		CurrentPage:   req.CurrentPage,
	}
}

// pageRange returns the pages at zero-based indices [from, to) of the
// sequence 1..total. Both bounds are clamped to [0, total].
func pageRange(from, to, total int) []int {
	from = clamp(from, 0, total)
	to = clamp(to, 0, total)
	if to <= from {
		return []int{}
	}
	pages := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		pages = append(pages, i+1)
	}
	return pages
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// exclude returns the pages of src not present in drop. Both are ascending.
func exclude(src, drop []int) []int {
	out := make([]int, 0, len(src))
	j := 0
	for _, p := range src {
		for j < len(drop) && drop[j] < p {
			j++
		}
		if j < len(drop) && drop[j] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}
