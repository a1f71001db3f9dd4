package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	config := loadConfig()
	store, err := NewFileSlotStore(config.SlotDirectory())
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(
		initialModel(EditorOptions{
			DiagramID: "default",
			Inventory: defaultInventory(),
			Store:     store,
			Config:    config,
		}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// defaultInventory seeds a fresh diagram with a typical install.
func defaultInventory() []InventoryItem {
	return []InventoryItem{
		{ID: "head-unit", Category: "Head Unit"},
		{ID: "amp-1", Category: "Amplifier"},
		{ID: "sub-1", Category: "Subwoofer"},
		{ID: "speakers-front", Category: "Speakers"},
		{ID: "dsp-1", Category: "DSP"},
		{ID: "battery", Category: "Battery"},
	}
}

// EditorOptions is the editor's external boundary: an opaque diagram id
// for persistence, optional seed data, the component inventory, and an
// optional post-save callback.
type EditorOptions struct {
	DiagramID   string
	InitialData *DiagramConfiguration
	Inventory   []InventoryItem
	Store       SlotStore
	Config      *Config
	OnSave      func(DiagramConfiguration)
}

type model struct {
	width  int
	height int

	scene       *Scene
	interaction *Interaction
	renderer    *SceneRenderer
	store       SlotStore
	config      *Config

	diagramID   string
	initialData *DiagramConfiguration
	inventory   []InventoryItem
	onSave      func(DiagramConfiguration)

	vehicleType  VehicleType
	vehicleColor string
	showGrid     bool

	mode          Mode
	help          bool
	confirmAction ConfirmAction
	selectedID    string
	colorTarget   string // component id, or "" for the vehicle body

	slots   []SlotEntry
	seeded  bool
	saving  bool
	loading bool
	dirty   bool

	pendingSlot int
	slotName    string
	filename    string

	mouseX int
	mouseY int

	dragFrom MoveBoxData

	undoStack []Action
	redoStack []Action

	errorMessage   string
	successMessage string

	// Cancelled on quit so an in-flight save or load from a torn-down
	// session can never clobber a later one.
	ctx    context.Context
	cancel context.CancelFunc
}

func initialModel(opts EditorOptions) model {
	ctx, cancel := context.WithCancel(context.Background())

	config := opts.Config
	if config == nil {
		config = loadConfig()
	}

	vehicles := NewVehicleRenderer(config.AssetDirectory)
	renderer, err := NewSceneRenderer(vehicles)
	if err != nil {
		log.Fatal(err)
	}

	scene := NewScene()
	return model{
		scene:        scene,
		interaction:  NewInteraction(scene, config.IncompleteLine),
		renderer:     renderer,
		store:        opts.Store,
		config:       config,
		diagramID:    opts.DiagramID,
		initialData:  opts.InitialData,
		inventory:    opts.Inventory,
		onSave:       opts.OnSave,
		vehicleType:  VehicleSedan,
		vehicleColor: config.VehicleColor,
		showGrid:     config.GridEnabled,
		mode:         ModeNormal,
		loading:      true,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// --- async persistence ------------------------------------------------

type slotsLoadedMsg struct {
	entries []SlotEntry
	err     error
}

type slotSavedMsg struct {
	entry SlotEntry
	err   error
}

func loadSlotsCmd(ctx context.Context, store SlotStore, diagramID string) tea.Cmd {
	return func() tea.Msg {
		entries, err := store.LoadSlots(ctx, diagramID)
		return slotsLoadedMsg{entries: entries, err: err}
	}
}

func saveSlotCmd(ctx context.Context, store SlotStore, diagramID string, slot int, name string, cfg DiagramConfiguration) tea.Cmd {
	return func() tea.Msg {
		entry, err := store.SaveSlot(ctx, diagramID, slot, name, cfg)
		return slotSavedMsg{entry: entry, err: err}
	}
}

func (m model) Init() tea.Cmd {
	return loadSlotsCmd(m.ctx, m.store, m.diagramID)
}

// seedScene applies the startup precedence: saved slot 1, then caller
// seed data, then the inventory grid.
func (m *model) seedScene() {
	if m.seeded {
		return
	}
	m.seeded = true
	for _, entry := range m.slots {
		if entry.Slot == 1 {
			m.applyConfiguration(entry.Data)
			return
		}
	}
	if m.initialData != nil {
		m.applyConfiguration(*m.initialData)
		return
	}
	m.scene.Restore(NewSceneFromInventory(m.inventory).Snapshot(m.vehicleType, m.vehicleColor))
}

func (m *model) applyConfiguration(cfg DiagramConfiguration) {
	m.interaction.CancelDraw()
	m.scene.Restore(cfg)
	if cfg.VehicleType.Valid() {
		m.vehicleType = cfg.VehicleType
	}
	if cfg.VehicleColor != "" {
		m.vehicleColor = cfg.VehicleColor
	}
	m.undoStack = m.undoStack[:0]
	m.redoStack = m.redoStack[:0]
	m.selectedID = ""
	m.dirty = false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case slotsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// A failed load never replaces a scene that is already
			// displayed; worst case the seed falls back to inventory.
			m.errorMessage = "Failed to load diagram configuration"
			m.seedScene()
			return m, nil
		}
		m.slots = msg.entries
		m.seedScene()
		return m, nil

	case slotSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errorMessage = "Failed to save diagram configuration"
			return m, nil
		}
		replaced := false
		for i := range m.slots {
			if m.slots[i].Slot == msg.entry.Slot {
				m.slots[i] = msg.entry
				replaced = true
			}
		}
		if !replaced {
			m.slots = append(m.slots, msg.entry)
		}
		m.dirty = false
		m.successMessage = fmt.Sprintf("Saved to slot %d", msg.entry.Slot)
		if m.onSave != nil {
			m.onSave(msg.entry.Data)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}
	x := msg.X*cellWidth + cellWidth/2
	y := msg.Y*cellHeight + cellHeight/2
	m.mouseX, m.mouseY = x, y

	switch msg.Type {
	case tea.MouseLeft:
		m.errorMessage = ""
		m.successMessage = ""
		ev := m.interaction.PointerDown(x, y, time.Now())
		m.applyEvent(ev)
	case tea.MouseMotion:
		m.interaction.PointerMove(x, y)
	case tea.MouseRelease:
		ev := m.interaction.PointerUp(x, y)
		m.applyEvent(ev)
	}
	return m, nil
}

func (m *model) applyEvent(ev Event) {
	switch ev.Result {
	case ResultDragStart:
		m.selectedID = ev.ComponentID
		c := m.scene.Component(ev.ComponentID)
		m.dragFrom = MoveBoxData{ID: ev.ComponentID, X: c.X, Y: c.Y}
	case ResultDragEnd:
		c := m.scene.Component(ev.ComponentID)
		if c != nil && (c.X != m.dragFrom.X || c.Y != m.dragFrom.Y) {
			m.recordAction(ActionMoveBox,
				MoveBoxData{ID: ev.ComponentID, X: c.X, Y: c.Y},
				m.dragFrom)
			m.dirty = true
		}
	case ResultPointAdded:
		m.dirty = true
	case ResultFinalized:
		m.recordAction(ActionAddConnection,
			AddConnectionData{Connection: cloneConnection(*ev.Connection)}, nil)
		m.dirty = true
		m.successMessage = "Line added"
	case ResultIncomplete:
		m.errorMessage = "Need at least one more point to finish the line"
	case ResultCancelled:
		m.errorMessage = "Line cancelled"
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		m.help = false
		return m, nil
	}

	switch m.mode {
	case ModeVehiclePick:
		return m.handleVehiclePick(msg.String())
	case ModeColorPick:
		return m.handleColorPick(msg.String())
	case ModeSlotSave, ModeSlotLoad:
		return m.handleSlotPick(msg.String())
	case ModeSlotName:
		return m.handleSlotName(msg)
	case ModeConfirm:
		return m.handleConfirm(msg.String())
	case ModeFileInput:
		return m.handleFileInput(msg)
	}
	return m.handleNormalKey(msg)
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.errorMessage = ""
	m.successMessage = ""
	switch key {
	case "q", "ctrl+c":
		if m.config.Confirmations && m.dirty {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		m.cancel()
		return m, tea.Quit

	case "?":
		m.help = true

	case "tab":
		m.selectNext(1)
	case "shift+tab":
		m.selectNext(-1)

	case "h", "left", "j", "down", "k", "up", "l", "right",
		"H", "shift+left", "J", "shift+down", "K", "shift+up", "L", "shift+right":
		m.nudgeSelected(key)

	case "d":
		if m.selectedID == "" {
			m.errorMessage = "Select a component first (tab)"
		} else if !m.interaction.BeginDraw(m.selectedID) {
			m.errorMessage = "A line is already in progress"
		} else {
			m.successMessage = "Drawing: click to add points, double-click to finish"
		}

	case "enter":
		if m.interaction.DrawingID() != "" {
			ev := m.interaction.FinishDraw(m.mouseX, m.mouseY)
			m.applyEvent(ev)
		}

	case "backspace":
		if m.selectedID != "" {
			if _, before, deleted, ok := m.scene.UndoLastSegment(m.selectedID); ok {
				m.recordAction(ActionUndoSegment,
					UndoSegmentData{ConnID: before.ID},
					SegmentRestore{Connection: before, Deleted: deleted})
				m.dirty = true
			}
		}

	case "v":
		if c := m.scene.Component(m.selectedID); c != nil {
			m.recordAction(ActionVisibility,
				VisibilityData{ID: c.ID, Visible: !c.IsVisible},
				VisibilityData{ID: c.ID, Visible: c.IsVisible})
			m.scene.SetVisibility(c.ID, !c.IsVisible)
			m.dirty = true
		}

	case "c":
		if m.selectedID == "" {
			m.errorMessage = "Select a component first (tab)"
		} else {
			m.mode = ModeColorPick
			m.colorTarget = m.selectedID
		}

	case "b":
		m.mode = ModeColorPick
		m.colorTarget = ""

	case "V":
		m.mode = ModeVehiclePick

	case "g":
		m.showGrid = !m.showGrid

	case "x":
		if m.selectedID != "" {
			if m.config.Confirmations {
				m.mode = ModeConfirm
				m.confirmAction = ConfirmClearComponent
			} else {
				m.clearComponentConnections()
			}
		}

	case "X":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClearAll
		} else {
			m.clearAllConnections()
		}

	case "u":
		m.undo()
	case "U":
		m.redo()

	case "s":
		if m.saving {
			m.errorMessage = "A save is already in flight"
		} else {
			m.mode = ModeSlotSave
		}
	case "o":
		if m.loading {
			m.errorMessage = "A load is already in flight"
		} else {
			m.mode = ModeSlotLoad
			m.loading = true
			return m, loadSlotsCmd(m.ctx, m.store, m.diagramID)
		}

	case "e":
		m.mode = ModeFileInput
		m.filename = exportFilename

	case "y":
		if err := m.copyConfigJSON(); err != nil {
			m.errorMessage = fmt.Sprintf("Clipboard copy failed: %s", err.Error())
		} else {
			m.successMessage = "Configuration copied to clipboard"
		}
	}
	return m, nil
}

func (m *model) clearComponentConnections() {
	removed := m.scene.ClearConnections(m.selectedID)
	if len(removed) > 0 {
		m.recordAction(ActionClearConnections,
			ClearConnectionsData{ComponentID: m.selectedID, Removed: removed}, nil)
		m.dirty = true
		m.successMessage = "Lines cleared"
	}
}

func (m *model) clearAllConnections() {
	removed := m.scene.ClearAllConnections()
	if len(removed) > 0 {
		m.recordAction(ActionClearConnections,
			ClearConnectionsData{ComponentID: "", Removed: removed}, nil)
		m.dirty = true
	}
	m.successMessage = "Diagram reset (layout kept)"
}

func (m *model) selectNext(dir int) {
	components := m.scene.Components()
	if len(components) == 0 {
		return
	}
	idx := -1
	for i, c := range components {
		if c.ID == m.selectedID {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(components)) % len(components)
	m.selectedID = components[idx].ID
}

// nudgeSelected moves the selected box with the keyboard; shift doubles
// the step.
func (m *model) nudgeSelected(key string) {
	c := m.scene.Component(m.selectedID)
	if c == nil {
		return
	}
	speed := gridPitch / 2
	switch key {
	case "H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		speed = gridPitch
	}
	fromX, fromY := c.X, c.Y
	x, y := c.X, c.Y
	switch key {
	case "h", "left", "H", "shift+left":
		x -= speed
	case "l", "right", "L", "shift+right":
		x += speed
	case "k", "up", "K", "shift+up":
		y -= speed
	case "j", "down", "J", "shift+down":
		y += speed
	}
	m.scene.MoveComponent(c.ID, x, y)
	m.recordAction(ActionMoveBox,
		MoveBoxData{ID: c.ID, X: x, Y: y},
		MoveBoxData{ID: c.ID, X: fromX, Y: fromY})
	m.dirty = true
}

func (m model) handleVehiclePick(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "escape", "q":
		m.mode = ModeNormal
		return m, nil
	}
	if key >= "1" && key <= "6" {
		m.vehicleType = vehicleTypes[key[0]-'1']
		m.dirty = true
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleColorPick(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "escape", "q":
		m.mode = ModeNormal
		return m, nil
	}
	if key >= "1" && key <= "8" {
		color := paletteColors[key[0]-'1']
		if m.colorTarget == "" {
			m.vehicleColor = color
		} else if c := m.scene.Component(m.colorTarget); c != nil {
			m.recordAction(ActionRecolor,
				RecolorData{ID: c.ID, Color: color},
				RecolorData{ID: c.ID, Color: c.LineColor})
			m.scene.SetComponentColor(c.ID, color)
		}
		m.dirty = true
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleSlotPick(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "escape", "q":
		m.mode = ModeNormal
		return m, nil
	}
	if key < "1" || key > "3" {
		return m, nil
	}
	slot := int(key[0] - '0')

	if m.mode == ModeSlotSave {
		m.pendingSlot = slot
		m.slotName = ""
		for _, entry := range m.slots {
			if entry.Slot == slot {
				m.slotName = entry.Name
			}
		}
		m.mode = ModeSlotName
		return m, nil
	}

	for _, entry := range m.slots {
		if entry.Slot == slot {
			m.applyConfiguration(entry.Data)
			m.mode = ModeNormal
			m.successMessage = fmt.Sprintf("Loaded slot %d", slot)
			return m, nil
		}
	}
	m.errorMessage = fmt.Sprintf("Slot %d is empty", slot)
	return m, nil
}

func (m model) handleSlotName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "escape":
		m.mode = ModeNormal
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.slotName)
		if name == "" {
			name = fmt.Sprintf("Slot %d", m.pendingSlot)
		}
		m.mode = ModeNormal
		m.saving = true
		cfg := m.scene.Snapshot(m.vehicleType, m.vehicleColor)
		return m, saveSlotCmd(m.ctx, m.store, m.diagramID, m.pendingSlot, name, cfg)
	case "backspace":
		if len(m.slotName) > 0 {
			m.slotName = m.slotName[:len(m.slotName)-1]
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.slotName += string(msg.Runes)
	}
	return m, nil
}

func (m model) handleConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y", "enter":
		switch m.confirmAction {
		case ConfirmClearAll:
			m.clearAllConnections()
		case ConfirmClearComponent:
			m.clearComponentConnections()
		case ConfirmQuit:
			m.cancel()
			return m, tea.Quit
		}
		m.mode = ModeNormal
	case "n", "N", "escape", "q":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) handleFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "escape":
		m.mode = ModeNormal
		return m, nil
	case "enter", "shift+enter":
		name := strings.TrimSpace(m.filename)
		if name == "" {
			m.errorMessage = "Please enter a filename"
			return m, nil
		}
		includeBoxes := msg.String() == "shift+enter"
		if err := m.exportPNG(name, includeBoxes); err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting PNG: %s", err.Error())
		} else {
			m.successMessage = fmt.Sprintf("Exported to %s", m.config.GetSavePath(name))
		}
		m.mode = ModeNormal
		return m, nil
	case "backspace":
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m model) canvasWidth() int {
	if m.width < 20 {
		return 80
	}
	return m.width
}

func (m model) canvasHeight() int {
	h := m.height - 2
	if h < 10 {
		return 24
	}
	return h
}

// --- view -------------------------------------------------------------

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fbbf24"))
	menuStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e5e7eb"))
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var b strings.Builder
	switch m.mode {
	case ModeVehiclePick:
		b.WriteString(m.vehicleMenu())
	case ModeColorPick:
		b.WriteString(m.colorMenu())
	case ModeSlotSave, ModeSlotLoad:
		b.WriteString(m.slotMenu())
	case ModeSlotName:
		b.WriteString(titleStyle.Render("Slot name") + "\n\n  > " + m.slotName + "█\n\n" + menuStyle.Render("enter to save, esc to cancel"))
	case ModeFileInput:
		b.WriteString(titleStyle.Render("Export PNG") + "\n\n  > " + m.filename + "█\n\n" + menuStyle.Render("enter exports the canvas, shift+enter includes component boxes, esc cancels"))
	case ModeConfirm:
		b.WriteString(m.confirmPrompt())
	default:
		b.WriteString(m.canvasView())
	}
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m model) canvasView() string {
	frame := m.renderer.RenderCells(m.scene, m.vehicleType, m.vehicleColor, RenderOptions{
		Width:      m.canvasWidth(),
		Height:     m.canvasHeight(),
		ShowGrid:   m.showGrid,
		SelectedID: m.selectedID,
	})

	var b strings.Builder
	for y := 0; y < frame.height; y++ {
		x := 0
		for x < frame.width {
			hex := frame.colors[y][x]
			run := x
			for run < frame.width && frame.colors[y][run] == hex {
				run++
			}
			text := string(frame.runes[y][x:run])
			if hex == "" {
				b.WriteString(text)
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(text))
			}
			x = run
		}
		if y < frame.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m model) vehicleMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Vehicle type") + "\n\n")
	for i, vt := range vehicleTypes {
		marker := "  "
		if vt == m.vehicleType {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", marker, i+1, vt.Label()))
	}
	b.WriteString("\n" + menuStyle.Render("1-6 to choose, esc to cancel"))
	return b.String()
}

func (m model) colorMenu() string {
	target := "vehicle body"
	if m.colorTarget != "" {
		if c := m.scene.Component(m.colorTarget); c != nil {
			target = c.Label
		}
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Color for "+target) + "\n\n")
	for i, hex := range paletteColors {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
		b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, swatch, hex))
	}
	b.WriteString("\n" + menuStyle.Render("1-8 to choose, esc to cancel"))
	return b.String()
}

func (m model) slotMenu() string {
	title := "Save to slot"
	if m.mode == ModeSlotLoad {
		title = "Load from slot"
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	for slot := 1; slot <= slotCount; slot++ {
		line := fmt.Sprintf("  %d. (empty)", slot)
		for _, entry := range m.slots {
			if entry.Slot == slot {
				line = fmt.Sprintf("  %d. %s — %s", slot, entry.Name, entry.SavedAt.Local().Format("2006-01-02 15:04"))
			}
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + menuStyle.Render("1-3 to choose, esc to cancel"))
	return b.String()
}

func (m model) confirmPrompt() string {
	prompt := ""
	switch m.confirmAction {
	case ConfirmClearAll:
		prompt = "Clear every line? Box positions are kept. (y/n)"
	case ConfirmClearComponent:
		prompt = "Clear all lines for the selected component? (y/n)"
	case ConfirmQuit:
		prompt = "Unsaved changes. Quit anyway? (y/n)"
	}
	return titleStyle.Render("Confirm") + "\n\n  " + prompt
}

func (m model) statusBar() string {
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}

	parts := []string{m.vehicleType.Label(), m.vehicleColor}
	if c := m.scene.Component(m.selectedID); c != nil {
		parts = append(parts, "sel: "+c.Label)
	}
	if id := m.interaction.DrawingID(); id != "" {
		parts = append(parts, "drawing line")
	}
	if m.saving {
		parts = append(parts, "saving…")
	}
	if m.loading {
		parts = append(parts, "loading…")
	}
	if m.dirty {
		parts = append(parts, "*")
	}
	parts = append(parts, "? for help")
	return statusStyle.Render(strings.Join(parts, " │ "))
}

func (m model) helpView() string {
	lines := []string{
		"wiremap — car audio wiring diagrams",
		"===================================",
		"",
		"Components:",
		"  tab/shift+tab    Select next/previous component",
		"  mouse drag       Move a component box",
		"  h/j/k/l, arrows  Nudge selected box (shift = bigger step)",
		"  v                Toggle selected box visibility",
		"  c                Recolor selected box (cascades to its lines)",
		"",
		"Lines:",
		"  d                Start a line from the selected component",
		"  click            Add a point",
		"  double-click     Finish the line (needs at least two points)",
		"  enter            Finish the line at the last pointer position",
		"  backspace        Undo the last segment of the selected component",
		"  x / X            Clear lines for selection / everything",
		"",
		"Vehicle:",
		"  V                Choose vehicle type",
		"  b                Choose vehicle body color",
		"  g                Toggle grid",
		"",
		"Files:",
		"  s / o            Save to / load from a slot (1-3)",
		"  e                Export PNG (shift+enter includes boxes)",
		"  y                Copy configuration JSON to clipboard",
		"",
		"  u / U            Undo / redo",
		"  q                Quit",
		"",
		"press any key to close",
	}
	return strings.Join(lines, "\n")
}
