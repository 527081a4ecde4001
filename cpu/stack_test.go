package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_PushPop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	s.Push(2)
	s.Push(7)
	assert.Equal(2, s.Depth())

	past, ok := s.Peek()
	assert.True(ok)
	assert.Equal(7, past)

	past, ok = s.Pop()
	assert.True(ok)
	assert.Equal(7, past)

	past, ok = s.Pop()
	assert.True(ok)
	assert.Equal(2, past)
	assert.True(s.Empty())

	past, ok = s.Pop()
	assert.False(ok)
	assert.Equal(0, past)
}

func TestStack_Capacity(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}

	for i := range STACK_LIMIT {
		assert.False(s.Full())
		s.Push(i)
	}

	assert.True(s.Full())
	assert.Equal(STACK_LIMIT, s.Depth())

	s.Reset()
	assert.True(s.Empty())
	assert.False(s.Full())
}
