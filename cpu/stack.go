package cpu

const (
	STACK_LIMIT = 256 // Maximum saved return slots.
)

// Stack holds the return slots saved by nested gotos.
type Stack struct {
	Data []int
}

func (s *Stack) Push(past int) {
	s.Data = append(s.Data, past)
}

func (s *Stack) Pop() (past int, ok bool) {
	past, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) >= STACK_LIMIT
}

// Depth returns the number of saved return slots.
func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Peek() (past int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
