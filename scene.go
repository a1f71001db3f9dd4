package main

import "github.com/google/uuid"

// Scene owns the canonical component and connection lists. Every
// mutation goes through a method here so the cross-entity rules (the
// recolor cascade, undo-to-delete) cannot be forgotten at a call site.
// Lookups by id that miss are silent no-ops; a stale id must never take
// down the render loop.
type Scene struct {
	components  []ComponentBox
	connections []Connection
	draft       *DraftLine
}

func NewScene() *Scene {
	return &Scene{
		components:  make([]ComponentBox, 0),
		connections: make([]Connection, 0),
	}
}

// NewSceneFromInventory arranges one box per inventory item in a fixed
// three-column grid. Used when no saved slot exists.
func NewSceneFromInventory(items []InventoryItem) *Scene {
	s := NewScene()
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		label := item.Category
		if label == "" {
			label = "Component"
		}
		s.components = append(s.components, ComponentBox{
			ID:        id,
			Label:     label,
			Brand:     item.Brand,
			Model:     item.Model,
			X:         layoutOriginX + (i%layoutColumns)*layoutPitchX,
			Y:         layoutOriginY + (i/layoutColumns)*layoutPitchY,
			IsVisible: true,
			LineColor: defaultLineColor,
		})
	}
	return s
}

func (s *Scene) Components() []ComponentBox {
	return s.components
}

func (s *Scene) Connections() []Connection {
	return s.connections
}

func (s *Scene) Draft() *DraftLine {
	return s.draft
}

func (s *Scene) Component(id string) *ComponentBox {
	for i := range s.components {
		if s.components[i].ID == id {
			return &s.components[i]
		}
	}
	return nil
}

// ComponentAt returns the id of the topmost visible box containing the
// given canvas point, or "" when the point hits nothing.
func (s *Scene) ComponentAt(x, y int) string {
	for i := len(s.components) - 1; i >= 0; i-- {
		if s.components[i].IsVisible && s.components[i].Contains(x, y) {
			return s.components[i].ID
		}
	}
	return ""
}

func (s *Scene) MoveComponent(id string, x, y int) {
	if c := s.Component(id); c != nil {
		c.X = x
		c.Y = y
	}
}

func (s *Scene) SetVisibility(id string, visible bool) {
	if c := s.Component(id); c != nil {
		c.IsVisible = visible
	}
}

// SetComponentColor recolors the box and every connection it owns in one
// step, so the displayed colors are consistent by the next render.
func (s *Scene) SetComponentColor(id, color string) {
	c := s.Component(id)
	if c == nil {
		return
	}
	c.LineColor = color
	for i := range s.connections {
		if s.connections[i].ComponentID == id {
			s.connections[i].Color = color
		}
	}
}

// StartLine begins a new draft anchored at the component's anchor point.
// No-op while another draft is active or when the id is unknown.
func (s *Scene) StartLine(id string) *DraftLine {
	if s.draft != nil {
		return nil
	}
	c := s.Component(id)
	if c == nil {
		return nil
	}
	s.draft = &DraftLine{
		ComponentID: id,
		Anchor:      c.Anchor(),
	}
	return s.draft
}

// AppendPoint adds a vertex to the active draft. Coincident points are
// kept as-is; the interaction layer relies on appending a provisional
// duplicate for rubber-banding.
func (s *Scene) AppendPoint(x, y int) {
	if s.draft == nil {
		return
	}
	s.draft.Points = append(s.draft.Points, Point{x, y})
}

// UpdateLastPoint replaces the most recently appended vertex, giving the
// live preview while the pointer moves between clicks.
func (s *Scene) UpdateLastPoint(x, y int) {
	if s.draft == nil || len(s.draft.Points) == 0 {
		return
	}
	s.draft.Points[len(s.draft.Points)-1] = Point{x, y}
}

// FinalizeLine commits the draft as a Connection. The final coordinate
// replaces the last provisional vertex rather than appending. A draft
// with no appended points cannot be finalized; it is left in place and
// nil is returned so the caller can apply its incomplete-line policy.
func (s *Scene) FinalizeLine(x, y int) *Connection {
	if s.draft == nil || len(s.draft.Points) == 0 {
		return nil
	}
	owner := s.Component(s.draft.ComponentID)
	if owner == nil {
		s.draft = nil
		return nil
	}
	s.draft.Points[len(s.draft.Points)-1] = Point{x, y}
	points := make([]Point, len(s.draft.Points))
	copy(points, s.draft.Points)
	conn := Connection{
		ID:          uuid.NewString(),
		ComponentID: owner.ID,
		Points:      points,
		Color:       owner.LineColor,
	}
	s.connections = append(s.connections, conn)
	s.draft = nil
	return &s.connections[len(s.connections)-1]
}

func (s *Scene) DiscardDraft() {
	s.draft = nil
}

// DropLastDraftPoint removes the most recently appended draft vertex.
// Used when a double click has to retract the provisional duplicate its
// first press appended.
func (s *Scene) DropLastDraftPoint() {
	if s.draft == nil || len(s.draft.Points) == 0 {
		return
	}
	s.draft.Points = s.draft.Points[:len(s.draft.Points)-1]
}

// UndoLastSegment trims the most recently created connection owned by
// the component (insertion order, not spatial order). When the trim
// would leave zero points the whole connection is deleted instead.
// Returns the removed point, the affected connection as it was before
// the call, and whether the connection was deleted.
func (s *Scene) UndoLastSegment(id string) (Point, Connection, bool, bool) {
	for i := len(s.connections) - 1; i >= 0; i-- {
		if s.connections[i].ComponentID != id {
			continue
		}
		before := cloneConnection(s.connections[i])
		last := s.connections[i].Points[len(s.connections[i].Points)-1]
		if len(s.connections[i].Points) > 1 {
			s.connections[i].Points = s.connections[i].Points[:len(s.connections[i].Points)-1]
			return last, before, false, true
		}
		s.connections = append(s.connections[:i], s.connections[i+1:]...)
		return last, before, true, true
	}
	return Point{}, Connection{}, false, false
}

// ClearConnections deletes every connection owned by the component and
// returns the removed set for undo recording.
func (s *Scene) ClearConnections(id string) []Connection {
	var removed []Connection
	kept := s.connections[:0]
	for _, conn := range s.connections {
		if conn.ComponentID == id {
			removed = append(removed, cloneConnection(conn))
		} else {
			kept = append(kept, conn)
		}
	}
	s.connections = kept
	return removed
}

// ClearAllConnections deletes every connection but leaves all boxes and
// their positions untouched, so a reset never loses manual layout work.
func (s *Scene) ClearAllConnections() []Connection {
	removed := make([]Connection, len(s.connections))
	for i, conn := range s.connections {
		removed[i] = cloneConnection(conn)
	}
	s.connections = s.connections[:0]
	return removed
}

// RestoreConnection re-appends a previously removed connection.
func (s *Scene) RestoreConnection(conn Connection) {
	s.connections = append(s.connections, cloneConnection(conn))
}

// RemoveConnectionByID deletes a single connection.
func (s *Scene) RemoveConnectionByID(id string) {
	for i := range s.connections {
		if s.connections[i].ID == id {
			s.connections = append(s.connections[:i], s.connections[i+1:]...)
			return
		}
	}
}

// ReplaceConnection swaps a connection's stored state, keyed by id.
func (s *Scene) ReplaceConnection(conn Connection) {
	for i := range s.connections {
		if s.connections[i].ID == conn.ID {
			s.connections[i] = cloneConnection(conn)
			return
		}
	}
}

// TrimLastPoint removes the last point of the identified connection,
// deleting it when it would drop to zero points. Used by redo.
func (s *Scene) TrimLastPoint(id string) {
	for i := range s.connections {
		if s.connections[i].ID != id {
			continue
		}
		if len(s.connections[i].Points) > 1 {
			s.connections[i].Points = s.connections[i].Points[:len(s.connections[i].Points)-1]
		} else {
			s.connections = append(s.connections[:i], s.connections[i+1:]...)
		}
		return
	}
}

// Snapshot captures the full persisted state of the scene.
func (s *Scene) Snapshot(vt VehicleType, vehicleColor string) DiagramConfiguration {
	cfg := DiagramConfiguration{
		VehicleType:  vt,
		VehicleColor: vehicleColor,
		Components:   make([]ComponentBox, len(s.components)),
		Connections:  make([]Connection, len(s.connections)),
	}
	copy(cfg.Components, s.components)
	for i, conn := range s.connections {
		cfg.Connections[i] = cloneConnection(conn)
	}
	return cfg
}

// Restore replaces the scene contents with a saved configuration. Any
// active draft is dropped.
func (s *Scene) Restore(cfg DiagramConfiguration) {
	s.components = make([]ComponentBox, len(cfg.Components))
	copy(s.components, cfg.Components)
	s.connections = make([]Connection, len(cfg.Connections))
	for i, conn := range cfg.Connections {
		s.connections[i] = cloneConnection(conn)
	}
	s.draft = nil
}

func cloneConnection(conn Connection) Connection {
	points := make([]Point, len(conn.Points))
	copy(points, conn.Points)
	conn.Points = points
	return conn
}
