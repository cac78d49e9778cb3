package paginated

import (
	"fmt"

	"github.com/spf13/cast"
)

// Keys read by RequestFromMap.
const (
	TotalPagesKey   = "total_pages"
	CurrentPageKey  = "current_page"
	SiblingsSizeKey = "siblings_size"
	BoundarySizeKey = "boundary_size"
)

// RequestFromMap builds a Request from loosely typed values such as a
// decoded JSON body. Numbers may be given as ints, floats or strings.
// Missing sizes take their defaults; missing page fields are zero.
func RequestFromMap(m map[string]interface{}) (Request, error) {
	req := NewRequest(0, 0)

	fields := []struct {
		key string
		dst *int
	}{
		{TotalPagesKey, &req.TotalPages},
		{CurrentPageKey, &req.CurrentPage},
		{SiblingsSizeKey, &req.SiblingsSize},
		{BoundarySizeKey, &req.BoundarySize},
	}
	for _, f := range fields {
		raw, ok := m[f.key]
		if !ok || raw == nil {
			continue
		}
		n, err := cast.ToIntE(raw)
		if err != nil {
			return Request{}, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = n
	}
	return req, nil
}
