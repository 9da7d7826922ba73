package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	tests := []struct {
		name string
		in   PaginateQuery
		want PaginateQuery
	}{
		{name: "defaults", in: PaginateQuery{}, want: PaginateQuery{Page: 1, Limit: DefaultLimit}},
		{name: "clamped", in: PaginateQuery{Page: 3, Limit: 1000}, want: PaginateQuery{Page: 3, Limit: MaxLimit}},
		{name: "kept", in: PaginateQuery{Page: 2, Limit: 10}, want: PaginateQuery{Page: 2, Limit: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, int64(0), PaginateQuery{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, int64(40), PaginateQuery{Page: 3, Limit: 20}.Offset())
}

func TestToResponse(t *testing.T) {
	resp := New(PaginateQuery{Page: 2, Limit: 20}, 45, 20).ToResponse()
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)

	last := New(PaginateQuery{Page: 3, Limit: 20}, 45, 5).ToResponse()
	assert.False(t, last.HasNext)

	empty := New(PaginateQuery{Page: 1, Limit: 20}, 0, 0).ToResponse()
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
