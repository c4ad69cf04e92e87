package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Rakly3/CursorDemo/engine/mathutil"
)

// State tracks cursor and keyboard state per frame
type State struct {
	// Cursor
	Cursor   mathutil.Vec2
	Delta    mathutil.Vec2 // movement since last frame
	Velocity mathutil.Vec2 // pixels per second
	Moved    bool
	prev     mathutil.Vec2

	// Buttons
	LeftPressed       bool
	RightPressed      bool
	LeftJustPressed   bool
	RightJustPressed  bool
	LeftJustReleased  bool
	RightJustReleased bool
	LeftHeldFor       float64 // seconds the left button has been down
	ScrollY           float64

	// Keyboard
	KeysPressed map[ebiten.Key]bool
}

func NewState() *State {
	return &State{
		KeysPressed: make(map[ebiten.Key]bool),
	}
}

// Update should be called once per frame with the frame delta
func (s *State) Update(dt float64) {
	// Cursor position and motion
	s.prev = s.Cursor
	x, y := ebiten.CursorPosition()
	s.Cursor = mathutil.Vec2{X: float64(x), Y: float64(y)}
	s.Delta = s.Cursor.Sub(s.prev)
	s.Moved = s.Delta.X != 0 || s.Delta.Y != 0
	if dt > 0 {
		s.Velocity = s.Delta.Scale(1 / dt)
	}

	// Mouse buttons
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.RightJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.RightPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	switch {
	case s.LeftJustPressed:
		s.LeftHeldFor = 0
	case s.LeftPressed:
		s.LeftHeldFor += dt
	default:
		s.LeftHeldFor = 0
	}

	// Scroll
	_, scrollY := ebiten.Wheel()
	s.ScrollY = scrollY

	// Demo keys
	demoKeys := []ebiten.Key{
		ebiten.KeyEscape, ebiten.KeySpace,
		ebiten.KeyN, ebiten.KeyP, ebiten.KeyE, ebiten.KeyR,
		ebiten.KeyG, ebiten.KeyC,
		ebiten.KeyF1, ebiten.KeyF3,
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	}
	for _, k := range demoKeys {
		s.KeysPressed[k] = ebiten.IsKeyPressed(k)
	}
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *State) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// CursorInside reports whether the cursor is within r
func (s *State) CursorInside(r mathutil.Rect) bool {
	return mathutil.PointInRect(s.Cursor, r)
}
