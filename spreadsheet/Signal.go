package spreadsheet

type ConnectionID uint64

type listener[T any] struct {
	id      ConnectionID
	handler func(T)
}

// Signal is a synchronous listener list. Handlers run on the emitting goroutine
// in connection order and may mutate the model again before Emit returns.
type Signal[T any] struct {
	listeners []listener[T]
	nextID    ConnectionID
	blocked   bool
}

func (s *Signal[T]) Connect(handler func(T)) ConnectionID {
	s.nextID++
	s.listeners = append(s.listeners, listener[T]{id: s.nextID, handler: handler})
	return s.nextID
}

func (s *Signal[T]) Disconnect(id ConnectionID) {
	for index, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:index:index], s.listeners[index+1:]...)
			return
		}
	}
}

// Block suspends delivery. Emissions while blocked are dropped, not queued.
func (s *Signal[T]) Block(blocked bool) (previous bool) {
	previous = s.blocked
	s.blocked = blocked
	return
}

func (s *Signal[T]) Blocked() bool {
	return s.blocked
}

func (s *Signal[T]) Emit(payload T) {
	if s.blocked {
		return
	}

	// a handler may connect or disconnect while we iterate
	snapshot := s.listeners
	for _, l := range snapshot {
		l.handler(payload)
	}
}
