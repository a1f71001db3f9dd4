package main

import "time"

type Mode int

const (
	ModeNormal Mode = iota
	ModeVehiclePick
	ModeColorPick
	ModeSlotSave
	ModeSlotLoad
	ModeSlotName
	ModeConfirm
	ModeFileInput
)

type ConfirmAction int

const (
	ConfirmClearAll ConfirmAction = iota
	ConfirmClearComponent
	ConfirmQuit
)

const (
	boxWidth      = 120
	boxHeight     = 40
	anchorOffsetX = 120
	anchorOffsetY = 20

	gridPitch = 20

	vehicleWidth  = 500
	vehicleHeight = 300

	layoutColumns = 3
	layoutPitchX  = 200
	layoutPitchY  = 100
	layoutOriginX = 40
	layoutOriginY = 40

	slotCount = 3

	defaultLineColor    = "#fbbf24"
	defaultVehicleColor = "#3b82f6"

	doubleClickWindow = 400 * time.Millisecond

	exportFilename = "audio-diagram.png"
)

// Recolor palette offered for component lines and the vehicle body.
var paletteColors = []string{
	"#fbbf24", // amber
	"#22c55e", // green
	"#3b82f6", // blue
	"#ef4444", // red
	"#a855f7", // purple
	"#14b8a6", // teal
	"#f97316", // orange
	"#e5e7eb", // gray
}
