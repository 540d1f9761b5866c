package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := NewStack("home", "a", "b")

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "b", top)

	s.Push("c")
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 1, s.IndexOf("a"))
	assert.Equal(t, -1, s.IndexOf("missing"))

	popped, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, "c", popped)

	s.SetTop("z")
	assert.Equal(t, []string{"home", "a", "z"}, s.Screens())

	s.Truncate(10)
	assert.Equal(t, 3, s.Len())
	s.Truncate(2)
	assert.Equal(t, []string{"home", "a"}, s.Screens())

	s.KeepTop()
	assert.Equal(t, []string{"a"}, s.Screens())
	s.KeepTop()
	assert.Equal(t, []string{"a"}, s.Screens())

	s.Push("b")
	s.Truncate(0)
	assert.True(t, s.IsEmpty())
	s.KeepTop()
	assert.True(t, s.IsEmpty())
	s.Push("a")

	s.Clear()
	assert.True(t, s.IsEmpty())
	_, ok = s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.SetTop("root")
	assert.Equal(t, []string{"root"}, s.Screens())
}
