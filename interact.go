package main

import "time"

// IncompleteLinePolicy controls what a finalize attempt does when the
// draft has too few points: keep the draft and stay in draw mode
// (upstream behavior) or cancel it outright.
type IncompleteLinePolicy int

const (
	IncompleteKeep IncompleteLinePolicy = iota
	IncompleteCancel
)

// The interaction state is a tagged union so illegal combinations
// (dragging while drawing) are unrepresentable instead of merely
// untriggered.
type interactionState interface{ isInteractionState() }

type idleState struct{}

type draggingState struct {
	componentID string
	grabDX      int
	grabDY      int
}

type drawingState struct {
	componentID string
}

func (idleState) isInteractionState()     {}
func (draggingState) isInteractionState() {}
func (drawingState) isInteractionState()  {}

type InteractionResult int

const (
	ResultNone InteractionResult = iota
	ResultDragStart
	ResultDragMove
	ResultDragEnd
	ResultPointAdded
	ResultFinalized
	ResultIncomplete
	ResultCancelled
)

// Event reports what a pointer or draw command did to the scene.
type Event struct {
	Result      InteractionResult
	ComponentID string
	Connection  *Connection
}

// Interaction translates raw pointer coordinates into scene mutations.
// Double clicks are synthesized from two presses on the same cell inside
// the double-click window.
type Interaction struct {
	scene  *Scene
	state  interactionState
	policy IncompleteLinePolicy

	lastPressAt time.Time
	lastPressX  int
	lastPressY  int
}

func NewInteraction(scene *Scene, policy IncompleteLinePolicy) *Interaction {
	return &Interaction{scene: scene, state: idleState{}, policy: policy}
}

func (in *Interaction) Idle() bool {
	_, ok := in.state.(idleState)
	return ok
}

// DraggingID returns the dragged component id, or "".
func (in *Interaction) DraggingID() string {
	if st, ok := in.state.(draggingState); ok {
		return st.componentID
	}
	return ""
}

// DrawingID returns the component owning the active draft, or "".
func (in *Interaction) DrawingID() string {
	if st, ok := in.state.(drawingState); ok {
		return st.componentID
	}
	return ""
}

// BeginDraw enters line-drawing for the component. Refused while a drag
// or another draft is active, mirroring the disabled draw buttons of the
// original tool.
func (in *Interaction) BeginDraw(componentID string) bool {
	if !in.Idle() {
		return false
	}
	if in.scene.StartLine(componentID) == nil {
		return false
	}
	in.state = drawingState{componentID: componentID}
	return true
}

func (in *Interaction) PointerDown(x, y int, now time.Time) Event {
	switch st := in.state.(type) {
	case drawingState:
		doubleClick := !in.lastPressAt.IsZero() &&
			now.Sub(in.lastPressAt) <= doubleClickWindow &&
			x == in.lastPressX && y == in.lastPressY
		in.lastPressAt = now
		in.lastPressX, in.lastPressY = x, y

		if doubleClick {
			in.lastPressAt = time.Time{}
			// The first press of the pair already appended its vertex
			// plus a provisional duplicate; drop the provisional before
			// committing so the pair counts as one click.
			in.scene.DropLastDraftPoint()
			return in.finalize(x, y, st.componentID)
		}
		// A click pins the provisional vertex at the click position and
		// appends a fresh provisional duplicate for pointer moves to
		// rubber-band. The first click has no provisional yet and
		// appends both.
		if len(in.scene.Draft().Points) == 0 {
			in.scene.AppendPoint(x, y)
		} else {
			in.scene.UpdateLastPoint(x, y)
		}
		in.scene.AppendPoint(x, y)
		return Event{Result: ResultPointAdded, ComponentID: st.componentID}

	case idleState:
		in.lastPressAt = now
		in.lastPressX, in.lastPressY = x, y
		id := in.scene.ComponentAt(x, y)
		if id == "" {
			return Event{Result: ResultNone}
		}
		c := in.scene.Component(id)
		in.state = draggingState{componentID: id, grabDX: x - c.X, grabDY: y - c.Y}
		return Event{Result: ResultDragStart, ComponentID: id}
	}
	return Event{Result: ResultNone}
}

func (in *Interaction) PointerMove(x, y int) Event {
	switch st := in.state.(type) {
	case draggingState:
		in.scene.MoveComponent(st.componentID, x-st.grabDX, y-st.grabDY)
		return Event{Result: ResultDragMove, ComponentID: st.componentID}
	case drawingState:
		in.scene.UpdateLastPoint(x, y)
		return Event{Result: ResultNone}
	}
	return Event{Result: ResultNone}
}

func (in *Interaction) PointerUp(x, y int) Event {
	if st, ok := in.state.(draggingState); ok {
		in.state = idleState{}
		return Event{Result: ResultDragEnd, ComponentID: st.componentID}
	}
	return Event{Result: ResultNone}
}

// FinishDraw finalizes the draft at the given coordinate (the keyboard
// path; the mouse path is a double click).
func (in *Interaction) FinishDraw(x, y int) Event {
	st, ok := in.state.(drawingState)
	if !ok {
		return Event{Result: ResultNone}
	}
	return in.finalize(x, y, st.componentID)
}

func (in *Interaction) finalize(x, y int, componentID string) Event {
	if conn := in.scene.FinalizeLine(x, y); conn != nil {
		in.state = idleState{}
		return Event{Result: ResultFinalized, ComponentID: componentID, Connection: conn}
	}
	if in.policy == IncompleteCancel {
		in.scene.DiscardDraft()
		in.state = idleState{}
		return Event{Result: ResultCancelled, ComponentID: componentID}
	}
	return Event{Result: ResultIncomplete, ComponentID: componentID}
}

// CancelDraw abandons the active draft, if any.
func (in *Interaction) CancelDraw() bool {
	if _, ok := in.state.(drawingState); !ok {
		return false
	}
	in.scene.DiscardDraft()
	in.state = idleState{}
	return true
}
