package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/letlang/pkg/compiler/location"
)

func TestNewSpan(t *testing.T) {
	s := location.NewSpan(2, 5)
	assert.Equal(t, location.Pos(2), s.Start)
	assert.Equal(t, location.Pos(5), s.End)
	assert.Equal(t, uint(3), s.Len())
	assert.Equal(t, "2..5", s.String())

	empty := location.NewSpan(4, 4)
	assert.Equal(t, uint(0), empty.Len())
	assert.False(t, empty.Contains(4))
}

func TestNewSpanInverted(t *testing.T) {
	assert.Panics(t, func() { location.NewSpan(3, 1) })
}

func TestSpanRelations(t *testing.T) {
	tests := []struct {
		name   string
		a, b   location.Span
		cover  location.Span
		before bool
	}{
		{
			name:   "Disjoint",
			a:      location.NewSpan(0, 3),
			b:      location.NewSpan(5, 8),
			cover:  location.NewSpan(0, 8),
			before: true,
		},
		{
			name:   "Adjacent",
			a:      location.NewSpan(0, 3),
			b:      location.NewSpan(3, 4),
			cover:  location.NewSpan(0, 4),
			before: true,
		},
		{
			name:   "Overlapping",
			a:      location.NewSpan(2, 6),
			b:      location.NewSpan(1, 4),
			cover:  location.NewSpan(1, 6),
			before: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.cover, tt.a.Cover(tt.b))
			assert.Equal(t, tt.cover, tt.b.Cover(tt.a))
			assert.Equal(t, tt.before, tt.a.Before(tt.b))
		})
	}
}

func TestContains(t *testing.T) {
	s := location.NewSpan(1, 3)
	assert.False(t, s.Contains(0))
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))
}

func TestSpanned(t *testing.T) {
	v := location.New(0, 3, "let")
	assert.Equal(t, location.NewSpan(0, 3), v.Span)
	assert.Equal(t, "let", v.Data)

	w := location.Wrap(v.Span, 42)
	assert.Equal(t, v.Span, w.Span)
	assert.Equal(t, 42, w.Data)
}
