package board

// Event is a notification raised by a Board. The set of events is closed.
type Event interface {
	boardEvent()
}

// CellChanged is raised when the color or visibility of one cell changes.
type CellChanged struct {
	Index int
	Cell  Cell
}

func (CellChanged) boardEvent() {}

// CellMoved is raised when one cell is relocated from From to To and the
// cells in between shift by one position.
type CellMoved struct {
	From int
	To   int
}

func (CellMoved) boardEvent() {}

// CellRemoved is raised by the administrative Remove operation.
type CellRemoved struct {
	Index int
}

func (CellRemoved) boardEvent() {}

// Moved is raised after an accepted swap has been executed.
type Moved struct {
	A int
	B int
}

func (Moved) boardEvent() {}

// Matched is raised after matches were cleared. Points is what this
// clearing scored; Score is the cumulative score after it.
type Matched struct {
	Cleared int
	Points  int
	Score   int
}

func (Matched) boardEvent() {}

// NoLegalMoves is raised when a settled board has no legal swap left.
type NoLegalMoves struct {
	Score int
}

func (NoLegalMoves) boardEvent() {}

// Dealt is raised after a new game has been dealt.
type Dealt struct {
	Attempts int
	Relaxed  bool // pre-existing matches were allowed to find a solvable deal
}

func (Dealt) boardEvent() {}

// Observer receives board events synchronously, in the order they happen.
type Observer interface {
	OnEvent(e Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(e Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) {
	f(e)
}

type subscription struct {
	id       int
	observer Observer
}

// Subscribe registers o and returns a function that removes it again.
func (b *Board) Subscribe(o Observer) (unsubscribe func()) {
	b.nextSubID++
	id := b.nextSubID
	b.observers = append(b.observers, subscription{id: id, observer: o})
	return func() {
		for i, s := range b.observers {
			if s.id == id {
				b.observers = append(b.observers[:i], b.observers[i+1:]...)
				return
			}
		}
	}
}

func (b *Board) emit(e Event) {
	if len(b.observers) == 0 {
		return
	}
	// Observers may unsubscribe while being notified.
	subs := append([]subscription(nil), b.observers...)
	for _, s := range subs {
		s.observer.OnEvent(e)
	}
}
