package main

type ActionType int

const (
	ActionMoveBox ActionType = iota
	ActionAddConnection
	ActionUndoSegment
	ActionRecolor
	ActionVisibility
	ActionClearConnections
)

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type MoveBoxData struct {
	ID string
	X  int
	Y  int
}

type AddConnectionData struct {
	Connection Connection
}

type UndoSegmentData struct {
	ConnID string
}

type SegmentRestore struct {
	Connection Connection
	Deleted    bool
}

type RecolorData struct {
	ID    string
	Color string
}

type VisibilityData struct {
	ID      string
	Visible bool
}

// ClearConnectionsData records a bulk delete. ComponentID "" means the
// clear covered every component.
type ClearConnectionsData struct {
	ComponentID string
	Removed     []Connection
}

func (m *model) recordAction(actionType ActionType, data, inverse interface{}) {
	m.undoStack = append(m.undoStack, Action{Type: actionType, Data: data, Inverse: inverse})
	m.redoStack = m.redoStack[:0]
}

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		return
	}
	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	switch action.Type {
	case ActionMoveBox:
		data := action.Inverse.(MoveBoxData)
		m.scene.MoveComponent(data.ID, data.X, data.Y)
	case ActionAddConnection:
		data := action.Data.(AddConnectionData)
		m.scene.RemoveConnectionByID(data.Connection.ID)
	case ActionUndoSegment:
		data := action.Inverse.(SegmentRestore)
		if data.Deleted {
			m.scene.RestoreConnection(data.Connection)
		} else {
			m.scene.ReplaceConnection(data.Connection)
		}
	case ActionRecolor:
		data := action.Inverse.(RecolorData)
		m.scene.SetComponentColor(data.ID, data.Color)
	case ActionVisibility:
		data := action.Inverse.(VisibilityData)
		m.scene.SetVisibility(data.ID, data.Visible)
	case ActionClearConnections:
		data := action.Data.(ClearConnectionsData)
		for _, conn := range data.Removed {
			m.scene.RestoreConnection(conn)
		}
	}

	m.redoStack = append(m.redoStack, action)
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		return
	}
	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	switch action.Type {
	case ActionMoveBox:
		data := action.Data.(MoveBoxData)
		m.scene.MoveComponent(data.ID, data.X, data.Y)
	case ActionAddConnection:
		data := action.Data.(AddConnectionData)
		m.scene.RestoreConnection(data.Connection)
	case ActionUndoSegment:
		data := action.Data.(UndoSegmentData)
		m.scene.TrimLastPoint(data.ConnID)
	case ActionRecolor:
		data := action.Data.(RecolorData)
		m.scene.SetComponentColor(data.ID, data.Color)
	case ActionVisibility:
		data := action.Data.(VisibilityData)
		m.scene.SetVisibility(data.ID, data.Visible)
	case ActionClearConnections:
		data := action.Data.(ClearConnectionsData)
		if data.ComponentID == "" {
			m.scene.ClearAllConnections()
		} else {
			m.scene.ClearConnections(data.ComponentID)
		}
	}

	m.undoStack = append(m.undoStack, action)
}
