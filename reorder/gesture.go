// ABOUTME: Drag and touch gesture state machine for list reordering
// ABOUTME: Separates intentional drags from scrolls and tracks the hovered drop target

package reorder

import (
	"math"
	"sort"

	"go.uber.org/zap"
)

// TouchMoveThreshold is the movement in pixels needed before a touch gesture
// is classified as either a scroll or a drag
const TouchMoveThreshold = 10.0

// DragState names the active drag source
type DragState struct {
	ItemID string
}

// DragOverState names the current drop target and the side to drop on
type DragOverState struct {
	ItemID   string
	Position Position
}

// TouchPhase is the disambiguation phase of the current touch sequence
type TouchPhase int

// Touch phases: no touch, touch not yet classified, confirmed drag
const (
	PhaseIdle TouchPhase = iota
	PhaseAmbiguous
	PhaseConfirmed
)

func (p TouchPhase) String() string {
	switch p {
	case PhaseAmbiguous:
		return "ambiguous"
	case PhaseConfirmed:
		return "confirmed"
	default:
		return "idle"
	}
}

// PointerEvent is the mouse drag-over contract: the pointer's vertical
// coordinate and the hovered row's bounds
type PointerEvent struct {
	ClientY float64
	Target  Rect
}

// TouchEvent carries the active touch points; only the first is used.
// An event with no touches is ignored.
type TouchEvent struct {
	Touches []Point
}

func (e TouchEvent) primary() (Point, bool) {
	if len(e.Touches) == 0 {
		return Point{}, false
	}

	p := e.Touches[0]
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return Point{}, false
	}

	return p, true
}

// TouchEndResult is the snapshot taken just before a touch sequence is reset
type TouchEndResult struct {
	DraggedItemID string
	TargetItemID  string
	Position      Position
	WasDragging   bool
}

// Reorderable reports whether the snapshot describes a completed drag that
// the caller should turn into a Reorder call
func (r TouchEndResult) Reorderable() bool {
	return r.WasDragging && r.DraggedItemID != "" && r.TargetItemID != "" && r.DraggedItemID != r.TargetItemID
}

// BoundsFunc reports a registered row's current bounds. ok is false when the
// row is not currently laid out.
type BoundsFunc func() (rect Rect, ok bool)

type touchTracking struct {
	origin Point
	itemID string
	phase  TouchPhase
}

// GestureController owns drag and touch state for one list. It is driven by
// untrusted UI events: every inconsistent input is ignored rather than reported.
// It is not safe for concurrent use.
type GestureController struct {
	dragged  *DragState
	dragOver *DragOverState
	touch    touchTracking
	rows     map[string]BoundsFunc
	logger   *zap.Logger
}

// Option configures a controller
type Option func(*GestureController)

// WithLogger sets the logger used for gesture transition debug output
func WithLogger(logger *zap.Logger) Option {
	return func(g *GestureController) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGestureController creates an idle controller
func NewGestureController(opts ...Option) *GestureController {
	g := &GestureController{
		rows:   make(map[string]BoundsFunc),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Dragged returns a copy of the active drag source, or nil
func (g *GestureController) Dragged() *DragState {
	if g.dragged == nil {
		return nil
	}

	d := *g.dragged

	return &d
}

// DragOver returns a copy of the current drop target, or nil
func (g *GestureController) DragOver() *DragOverState {
	if g.dragOver == nil {
		return nil
	}

	d := *g.dragOver

	return &d
}

// Phase returns the touch disambiguation phase
func (g *GestureController) Phase() TouchPhase {
	return g.touch.phase
}

// RegisterRow makes a row a candidate for touch hit-testing
func (g *GestureController) RegisterRow(itemID string, bounds BoundsFunc) {
	if itemID == "" || bounds == nil {
		return
	}

	g.rows[itemID] = bounds
}

// UnregisterRow removes a row from touch hit-testing
func (g *GestureController) UnregisterRow(itemID string) {
	delete(g.rows, itemID)
}

// HandleDragStart marks itemID as the drag source
func (g *GestureController) HandleDragStart(itemID string) {
	if itemID == "" {
		return
	}

	g.dragged = &DragState{ItemID: itemID}
	g.dragOver = nil
	g.logger.Debug("drag start", zap.String("item", itemID))
}

// HandleDragOver updates the drop target while a drag is active
func (g *GestureController) HandleDragOver(ev PointerEvent, itemID string) {
	if g.dragged == nil || itemID == "" {
		return
	}

	g.dragOver = &DragOverState{
		ItemID:   itemID,
		Position: ClassifyPosition(ev.ClientY, ev.Target),
	}
}

// HandleDragLeave clears the drop target
func (g *GestureController) HandleDragLeave() {
	g.dragOver = nil
}

// HandleDragEnd clears all drag state, covering drops outside the list and
// cancelled drags
func (g *GestureController) HandleDragEnd() {
	if g.dragged != nil {
		g.logger.Debug("drag end", zap.String("item", g.dragged.ItemID))
	}

	g.dragged = nil
	g.dragOver = nil
}

// HandleTouchStart begins tracking a touch on itemID. A touch on the drag
// handle is confirmed as a drag immediately; any other touch stays ambiguous
// until HandleTouchMove classifies it.
func (g *GestureController) HandleTouchStart(ev TouchEvent, itemID string, isDragHandleHit bool) {
	p, ok := ev.primary()
	if !ok || itemID == "" {
		return
	}

	g.touch = touchTracking{
		origin: p,
		itemID: itemID,
		phase:  PhaseAmbiguous,
	}
	g.dragged = nil
	g.dragOver = nil

	if isDragHandleHit {
		g.confirmDrag("handle")
	}
}

// HandleDragHandleTouchStart begins a touch that started on the drag handle
func (g *GestureController) HandleDragHandleTouchStart(ev TouchEvent, itemID string) {
	g.HandleTouchStart(ev, itemID, true)
}

// HandleTouchMove advances the touch state machine. It returns true when the
// caller must prevent the platform's default scrolling and stop propagation;
// it never does so for a gesture classified as a scroll.
func (g *GestureController) HandleTouchMove(ev TouchEvent) bool {
	if g.touch.phase == PhaseIdle {
		return false
	}

	p, ok := ev.primary()
	if !ok {
		return false
	}

	if g.touch.phase == PhaseAmbiguous {
		dx := math.Abs(p.X - g.touch.origin.X)
		dy := math.Abs(p.Y - g.touch.origin.Y)

		switch {
		case dy > 2*dx && dy > TouchMoveThreshold:
			g.logger.Debug("touch classified as scroll",
				zap.String("item", g.touch.itemID),
				zap.Float64("dx", dx),
				zap.Float64("dy", dy))
			g.touch = touchTracking{}

			return false
		case dx > TouchMoveThreshold || (dx > TouchMoveThreshold/2 && dy > TouchMoveThreshold/2):
			g.confirmDrag("movement")
		default:
			return false
		}
	}

	if id, rect, found := g.hitTest(p); found && id != g.touch.itemID {
		g.dragOver = &DragOverState{
			ItemID:   id,
			Position: ClassifyPosition(p.Y, rect),
		}
	}

	return true
}

// HandleTouchEnd returns a snapshot of the finished gesture and resets all
// state. Calling it again is a no-op that returns an empty snapshot.
func (g *GestureController) HandleTouchEnd() TouchEndResult {
	result := TouchEndResult{
		WasDragging: g.touch.phase == PhaseConfirmed,
	}

	if g.dragged != nil {
		result.DraggedItemID = g.dragged.ItemID
	}

	if g.dragOver != nil {
		result.TargetItemID = g.dragOver.ItemID
		result.Position = g.dragOver.Position
	}

	g.reset()

	return result
}

// HandleTouchCancel resets all state without reporting a drop
func (g *GestureController) HandleTouchCancel() {
	if g.touch.phase != PhaseIdle {
		g.logger.Debug("touch cancelled", zap.String("item", g.touch.itemID))
	}

	g.reset()
}

func (g *GestureController) confirmDrag(reason string) {
	g.touch.phase = PhaseConfirmed
	g.dragged = &DragState{ItemID: g.touch.itemID}
	g.logger.Debug("touch drag confirmed",
		zap.String("item", g.touch.itemID),
		zap.String("reason", reason))
}

func (g *GestureController) reset() {
	g.touch = touchTracking{}
	g.dragged = nil
	g.dragOver = nil
}

// hitTest finds the registered row containing p. Rows are visited in id
// order so overlapping bounds resolve deterministically.
func (g *GestureController) hitTest(p Point) (string, Rect, bool) {
	ids := make([]string, 0, len(g.rows))
	for id := range g.rows {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	for _, id := range ids {
		rect, ok := g.rows[id]()
		if ok && rect.Contains(p) {
			return id, rect, true
		}
	}

	return "", Rect{}, false
}
