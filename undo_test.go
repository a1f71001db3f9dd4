package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func undoModel(s *Scene) *model {
	return &model{scene: s}
}

func TestUndoRedoMove(t *testing.T) {
	s := testScene(box("amp", 50, 50))
	m := undoModel(s)

	s.MoveComponent("amp", 200, 100)
	m.recordAction(ActionMoveBox, MoveBoxData{ID: "amp", X: 200, Y: 100}, MoveBoxData{ID: "amp", X: 50, Y: 50})

	m.undo()
	c := s.Component("amp")
	assert.Equal(t, 50, c.X)
	assert.Equal(t, 50, c.Y)

	m.redo()
	assert.Equal(t, 200, c.X)
	assert.Equal(t, 100, c.Y)
}

func TestUndoRedoAddConnection(t *testing.T) {
	s := testScene(box("amp", 50, 50))
	m := undoModel(s)

	conn := drawLine(t, s, "amp", Point{300, 200}, Point{400, 250})
	m.recordAction(ActionAddConnection, AddConnectionData{Connection: conn}, nil)

	m.undo()
	assert.Empty(t, s.Connections())

	m.redo()
	require.Len(t, s.Connections(), 1)
	assert.Equal(t, conn, s.Connections()[0])
}

func TestUndoRedoSegmentTrim(t *testing.T) {
	s := testScene(box("amp", 50, 50))
	m := undoModel(s)
	conn := drawLine(t, s, "amp", Point{300, 200}, Point{400, 250})

	_, before, deleted, ok := s.UndoLastSegment("amp")
	require.True(t, ok)
	require.False(t, deleted)
	m.recordAction(ActionUndoSegment, UndoSegmentData{ConnID: before.ID}, SegmentRestore{Connection: before, Deleted: deleted})
	assert.Equal(t, []Point{{300, 200}}, s.Connections()[0].Points)

	m.undo()
	require.Len(t, s.Connections(), 1)
	assert.Equal(t, conn.Points, s.Connections()[0].Points)

	m.redo()
	require.Len(t, s.Connections(), 1)
	assert.Equal(t, []Point{{300, 200}}, s.Connections()[0].Points)
}

func TestUndoRedoSegmentDeletion(t *testing.T) {
	s := testScene(box("amp", 50, 50))
	m := undoModel(s)
	conn := drawLine(t, s, "amp", Point{400, 250})

	_, before, deleted, ok := s.UndoLastSegment("amp")
	require.True(t, ok)
	require.True(t, deleted)
	m.recordAction(ActionUndoSegment, UndoSegmentData{ConnID: before.ID}, SegmentRestore{Connection: before, Deleted: deleted})
	assert.Empty(t, s.Connections())

	m.undo()
	require.Len(t, s.Connections(), 1)
	assert.Equal(t, conn, s.Connections()[0])

	m.redo()
	assert.Empty(t, s.Connections())
}

func TestUndoRedoRecolorCascades(t *testing.T) {
	s := testScene(box("amp", 50, 50))
	m := undoModel(s)
	drawLine(t, s, "amp", Point{300, 200})

	s.SetComponentColor("amp", "#22c55e")
	m.recordAction(ActionRecolor, RecolorData{ID: "amp", Color: "#22c55e"}, RecolorData{ID: "amp", Color: defaultLineColor})

	m.undo()
	assert.Equal(t, defaultLineColor, s.Component("amp").LineColor)
	assert.Equal(t, defaultLineColor, s.Connections()[0].Color)

	m.redo()
	assert.Equal(t, "#22c55e", s.Component("amp").LineColor)
	assert.Equal(t, "#22c55e", s.Connections()[0].Color)
}

func TestUndoRedoVisibility(t *testing.T) {
	s := testScene(box("amp", 50, 50))
	m := undoModel(s)

	s.SetVisibility("amp", false)
	m.recordAction(ActionVisibility, VisibilityData{ID: "amp", Visible: false}, VisibilityData{ID: "amp", Visible: true})

	m.undo()
	assert.True(t, s.Component("amp").IsVisible)
	m.redo()
	assert.False(t, s.Component("amp").IsVisible)
}

func TestUndoRedoClearAll(t *testing.T) {
	s := testScene(box("amp", 50, 50), box("sub", 300, 120))
	m := undoModel(s)
	drawLine(t, s, "amp", Point{300, 200})
	drawLine(t, s, "sub", Point{100, 250})

	removed := s.ClearAllConnections()
	m.recordAction(ActionClearConnections, ClearConnectionsData{ComponentID: "", Removed: removed}, nil)
	assert.Empty(t, s.Connections())

	m.undo()
	assert.Len(t, s.Connections(), 2)

	m.redo()
	assert.Empty(t, s.Connections())
}

func TestUndoRedoClearOneComponent(t *testing.T) {
	s := testScene(box("amp", 50, 50), box("sub", 300, 120))
	m := undoModel(s)
	drawLine(t, s, "amp", Point{300, 200})
	kept := drawLine(t, s, "sub", Point{100, 250})

	removed := s.ClearConnections("amp")
	m.recordAction(ActionClearConnections, ClearConnectionsData{ComponentID: "amp", Removed: removed}, nil)
	require.Len(t, s.Connections(), 1)

	m.undo()
	assert.Len(t, s.Connections(), 2)

	m.redo()
	require.Len(t, s.Connections(), 1)
	assert.Equal(t, kept.ID, s.Connections()[0].ID)
}

func TestNewActionClearsRedoStack(t *testing.T) {
	s := testScene(box("amp", 50, 50))
	m := undoModel(s)

	s.MoveComponent("amp", 200, 100)
	m.recordAction(ActionMoveBox, MoveBoxData{ID: "amp", X: 200, Y: 100}, MoveBoxData{ID: "amp", X: 50, Y: 50})
	m.undo()
	require.Len(t, m.redoStack, 1)

	s.SetVisibility("amp", false)
	m.recordAction(ActionVisibility, VisibilityData{ID: "amp", Visible: false}, VisibilityData{ID: "amp", Visible: true})
	assert.Empty(t, m.redoStack)
}

func TestUndoEmptyStacksAreNoOps(t *testing.T) {
	m := undoModel(testScene(box("amp", 50, 50)))
	m.undo()
	m.redo()
	assert.Empty(t, m.undoStack)
	assert.Empty(t, m.redoStack)
}
