package main

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ComponentBox is one physical audio component placed on the diagram.
// Position is the top-left corner in canvas units and is never clamped
// to the visible canvas.
type ComponentBox struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Brand     string `json:"brand,omitempty"`
	Model     string `json:"model,omitempty"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	IsVisible bool   `json:"isVisible"`
	LineColor string `json:"lineColor"`
}

// Connection is a polyline from a component's anchor to a point on the
// vehicle artwork. The anchor itself is implicit and never stored in
// Points.
type Connection struct {
	ID          string  `json:"id"`
	ComponentID string  `json:"componentId"`
	Points      []Point `json:"points"`
	Color       string  `json:"color"`
}

// DraftLine is the in-progress polyline while the user is clicking
// points. It becomes a Connection on finalize.
type DraftLine struct {
	ComponentID string
	Anchor      Point
	Points      []Point
}

// DiagramConfiguration is the unit of save/load: the full scene snapshot.
type DiagramConfiguration struct {
	VehicleType  VehicleType    `json:"vehicleType"`
	VehicleColor string         `json:"vehicleColor"`
	Components   []ComponentBox `json:"components"`
	Connections  []Connection   `json:"connections"`
}

// InventoryItem is a caller-supplied component used to seed the default
// layout when no saved configuration exists.
type InventoryItem struct {
	ID       string
	Category string
	Brand    string
	Model    string
}

func (c ComponentBox) Anchor() Point {
	return Point{c.X + anchorOffsetX, c.Y + anchorOffsetY}
}

func (c ComponentBox) Contains(x, y int) bool {
	return x >= c.X && x < c.X+boxWidth && y >= c.Y && y < c.Y+boxHeight
}
