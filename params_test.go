package paginated

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFromMap(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]interface{}
		want    Request
		wantErr bool
	}{
		{
			name:  "Integers",
			input: map[string]interface{}{"total_pages": 10, "current_page": 4, "siblings_size": 1, "boundary_size": 3},
			want:  Request{TotalPages: 10, CurrentPage: 4, SiblingsSize: 1, BoundarySize: 3},
		},
		{
			name:  "Strings",
			input: map[string]interface{}{"total_pages": "12", "current_page": "7"},
			want:  Request{TotalPages: 12, CurrentPage: 7, SiblingsSize: DefaultSiblingsSize, BoundarySize: DefaultBoundarySize},
		},
		{
			name:  "Explicit zero sizes",
			input: map[string]interface{}{"total_pages": 5, "current_page": 1, "siblings_size": 0, "boundary_size": "0"},
			want:  Request{TotalPages: 5, CurrentPage: 1},
		},
		{
			name:  "Nil values",
			input: map[string]interface{}{"total_pages": 5, "siblings_size": nil},
			want:  Request{TotalPages: 5, SiblingsSize: DefaultSiblingsSize, BoundarySize: DefaultBoundarySize},
		},
		{
			name:    "Invalid number",
			input:   map[string]interface{}{"total_pages": "ten"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequestFromMap(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("RequestFromMap() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("RequestFromMap() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRequestFromJSON(t *testing.T) {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"total_pages": 10, "current_page": 5}`), &body))

	req, err := RequestFromMap(body)
	require.NoError(t, err)

	got := Compute(req)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, got.Pages)
	assert.Equal(t, []int{1, 2}, got.FirstBoundary)
	assert.Equal(t, []int{9, 10}, got.LastBoundary)
}
