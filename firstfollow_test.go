package firstfollow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	s := Span{3, 5}
	assert.Equal(t, uint64(3), s.From())
	assert.Equal(t, uint64(5), s.To())
	assert.Equal(t, uint64(2), s.Len())
	assert.False(t, s.IsNull())
	assert.True(t, Span{}.IsNull())
	assert.Equal(t, "(3…5)", s.String())
}

func TestSpanShift(t *testing.T) {
	s := Span{0, 2}.Shift(4)
	if s.From() != 4 || s.To() != 6 {
		t.Errorf("Expected shifted span to be (4…6), is %s", s)
	}
}
