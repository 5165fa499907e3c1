package frame

import (
	"errors"
	"testing"
)

func TestTrackerNesting(t *testing.T) {
	var tr Tracker

	steps := []struct {
		name    string
		op      func() error
		wantErr error
		drawing bool
		in3D    bool
	}{
		{"end before begin", tr.EndDrawing, ErrNotDrawing, false, false},
		{"3d outside frame", tr.BeginMode3D, ErrNotDrawing, false, false},
		{"begin", tr.BeginDrawing, nil, true, false},
		{"begin twice", tr.BeginDrawing, ErrAlreadyDrawing, true, false},
		{"end 3d without begin", tr.EndMode3D, ErrNot3D, true, false},
		{"begin 3d", tr.BeginMode3D, nil, true, true},
		{"begin 3d twice", tr.BeginMode3D, ErrAlready3D, true, true},
		{"end 3d", tr.EndMode3D, nil, true, false},
		{"end", tr.EndDrawing, nil, false, false},
	}

	for _, s := range steps {
		err := s.op()
		if !errors.Is(err, s.wantErr) {
			t.Fatalf("%s: err = %v, want %v", s.name, err, s.wantErr)
		}
		if tr.Drawing() != s.drawing || tr.In3D() != s.in3D {
			t.Fatalf("%s: drawing=%v in3D=%v, want %v %v", s.name, tr.Drawing(), tr.In3D(), s.drawing, s.in3D)
		}
	}
}

func TestEndDrawingClosesOpen3D(t *testing.T) {
	var tr Tracker
	_ = tr.BeginDrawing()
	_ = tr.BeginMode3D()

	if err := tr.EndDrawing(); !errors.Is(err, ErrUnclosed3D) {
		t.Fatalf("EndDrawing = %v, want ErrUnclosed3D", err)
	}
	if tr.Drawing() || tr.In3D() {
		t.Error("both scopes should be closed")
	}
	if err := tr.BeginDrawing(); err != nil {
		t.Errorf("next frame should start cleanly: %v", err)
	}
}

func TestCheckDraw(t *testing.T) {
	var tr Tracker
	if tr.Check2D() == nil || tr.Check3D() == nil {
		t.Error("nothing may be drawn outside a frame")
	}

	_ = tr.BeginDrawing()
	if tr.Check2D() != nil {
		t.Error("2D drawing is allowed inside a frame")
	}
	if tr.Check3D() == nil {
		t.Error("3D drawing needs BeginMode3D")
	}

	_ = tr.BeginMode3D()
	if tr.Check2D() != nil || tr.Check3D() != nil {
		t.Error("both 2D and 3D drawing are allowed in a 3D scope")
	}
}

func TestFirstMisuse(t *testing.T) {
	var tr Tracker
	if !tr.FirstMisuse("DrawCube") {
		t.Error("first report should be logged")
	}
	if tr.FirstMisuse("DrawCube") {
		t.Error("repeat report should be suppressed")
	}
	if !tr.FirstMisuse("EndMode3D") {
		t.Error("a different op should be logged")
	}
}
