// Package frame tracks drawing scopes and paces the frame loop.
package frame

import "errors"

// Scope misuse errors.
var (
	ErrAlreadyDrawing = errors.New("BeginDrawing called inside an open drawing scope")
	ErrNotDrawing     = errors.New("no drawing scope is open")
	ErrAlready3D      = errors.New("BeginMode3D called inside an open 3D scope")
	ErrNot3D          = errors.New("no 3D scope is open")
	ErrUnclosed3D     = errors.New("EndDrawing called with an open 3D scope")
)

// Tracker records which drawing scopes are open.
type Tracker struct {
	drawing bool
	mode3D  bool
	warned  map[string]bool
}

// Drawing reports whether a BeginDrawing scope is open.
func (t *Tracker) Drawing() bool { return t.drawing }

// In3D reports whether a BeginMode3D scope is open.
func (t *Tracker) In3D() bool { return t.mode3D }

// BeginDrawing opens the frame scope.
func (t *Tracker) BeginDrawing() error {
	if t.drawing {
		return ErrAlreadyDrawing
	}
	t.drawing = true
	return nil
}

// EndDrawing closes the frame scope. An open 3D scope is closed along with
// it and reported as ErrUnclosed3D; the frame still ends.
func (t *Tracker) EndDrawing() error {
	if !t.drawing {
		return ErrNotDrawing
	}
	t.drawing = false
	if t.mode3D {
		t.mode3D = false
		return ErrUnclosed3D
	}
	return nil
}

// BeginMode3D opens a 3D scope inside the frame scope.
func (t *Tracker) BeginMode3D() error {
	switch {
	case !t.drawing:
		return ErrNotDrawing
	case t.mode3D:
		return ErrAlready3D
	}
	t.mode3D = true
	return nil
}

// EndMode3D closes the 3D scope.
func (t *Tracker) EndMode3D() error {
	if !t.mode3D {
		return ErrNot3D
	}
	t.mode3D = false
	return nil
}

// Check2D returns an error unless 2D drawing is allowed.
func (t *Tracker) Check2D() error {
	if !t.drawing {
		return ErrNotDrawing
	}
	return nil
}

// Check3D returns an error unless 3D drawing is allowed.
func (t *Tracker) Check3D() error {
	if !t.mode3D {
		return ErrNot3D
	}
	return nil
}

// FirstMisuse reports true the first time op is reported, so a misuse
// repeated every frame is logged once.
func (t *Tracker) FirstMisuse(op string) bool {
	if t.warned == nil {
		t.warned = make(map[string]bool)
	}
	if t.warned[op] {
		return false
	}
	t.warned[op] = true
	return true
}
