package state

import "github.com/iw2rmb/lineed/buffer"

// Op names the operation that produced a change.
type Op uint8

const (
	OpSetText Op = iota
	OpReplaceLine
	OpInsertLine
	OpRemoveLines
	OpSelect
	OpClearSelected
	OpNewLine
	OpMove
	OpPaste
)

func (o Op) String() string {
	switch o {
	case OpSetText:
		return "set-text"
	case OpReplaceLine:
		return "replace-line"
	case OpInsertLine:
		return "insert-line"
	case OpRemoveLines:
		return "remove-lines"
	case OpSelect:
		return "select"
	case OpClearSelected:
		return "clear-selected"
	case OpNewLine:
		return "new-line"
	case OpMove:
		return "move"
	case OpPaste:
		return "paste"
	default:
		return "unknown"
	}
}

// ChangeEvent describes one effective transition of the state.
type ChangeEvent struct {
	Op            Op
	VersionBefore uint64
	VersionAfter  uint64

	SelectionBefore buffer.Selection
	SelectionAfter  buffer.Selection

	// TextChanged reports that rows [FirstRow, LastRow] (post-change indices)
	// hold new text. FirstRow and LastRow are meaningless otherwise.
	TextChanged bool
	FirstRow    int
	LastRow     int

	// Shifted reports that lines were inserted or removed, so every row after
	// FirstRow may now hold different text.
	Shifted bool
}

type subscriber struct {
	id int
	fn func(ChangeEvent)
}

type changeBuilder struct {
	op              Op
	versionBefore   uint64
	selectionBefore buffer.Selection

	text    bool
	first   int
	last    int
	shifted bool
}

// Subscribe registers fn to run after every effective change. The returned
// function removes the registration.
func (s *State) Subscribe(fn func(ChangeEvent)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextSubID++
	id := s.nextSubID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// LastChange returns the most recent effective change.
func (s *State) LastChange() (ChangeEvent, bool) {
	return s.lastChange, s.hasLastChange
}

func (s *State) beginChange(op Op) changeBuilder {
	return changeBuilder{
		op:              op,
		versionBefore:   s.version,
		selectionBefore: s.sel,
	}
}

func (cb *changeBuilder) touch(row int) {
	if !cb.text {
		cb.text = true
		cb.first, cb.last = row, row
		return
	}
	if row < cb.first {
		cb.first = row
	}
	if row > cb.last {
		cb.last = row
	}
}

func (cb *changeBuilder) shift(row int) {
	cb.touch(row)
	cb.shifted = true
}

func (s *State) commitChange(cb changeBuilder) {
	if !cb.text && s.sel == cb.selectionBefore {
		return
	}
	s.version++

	ev := ChangeEvent{
		Op:              cb.op,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    s.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  s.sel,
		TextChanged:     cb.text,
		FirstRow:        cb.first,
		LastRow:         cb.last,
		Shifted:         cb.shifted,
	}
	if lastRow := s.buf.LineCount() - 1; ev.TextChanged && ev.LastRow > lastRow {
		ev.LastRow = lastRow
		if ev.FirstRow > lastRow {
			ev.FirstRow = lastRow
		}
	}
	s.lastChange = ev
	s.hasLastChange = true

	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(ev)
	}
}
