package paginated

import "math"

const (
	// DefaultPageSize is used when a Pagination carries no size.
	DefaultPageSize = 20

	// MaxPageSize caps the number of items fetched for one page.
	MaxPageSize = 1024
)

// Pagination specifies the page size and page number
// for the list operation.
type Pagination struct {
	// Number of items in the page.
	Size int

	// Page number starting from one.
	Page int
}

func (p Pagination) normalize() Pagination {
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// inRange reports whether the page maps to list offsets that are
// non-negative and fit in an int64.
func (p Pagination) inRange() bool {
	if p.Page < 1 || p.Size <= 0 {
		return false
	}
	size := int64(p.Size)
	return int64(p.Page-1) <= (math.MaxInt64-(size-1))/size
}

func (p Pagination) start() int64 {
	return int64(p.Size) * int64(p.Page-1)
}

func (p Pagination) stop() int64 {
	return p.start() + int64(p.Size) - 1
}

// TotalPages returns the number of pages needed to hold count items,
// or 0 if either argument is not positive.
func TotalPages(count, size int64) int64 {
	if count <= 0 || size <= 0 {
		return 0
	}
	pages := count / size
	if count%size > 0 {
		pages++
	}
	return pages
}
