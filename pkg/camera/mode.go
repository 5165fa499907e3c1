package camera

import (
	"fmt"
	"strings"
)

// Mode selects which inputs move the camera and how rotation is anchored.
type Mode int32

const (
	Custom Mode = iota
	Free
	Orbital
	FirstPerson
	ThirdPerson
)

var modeNames = [...]string{
	Custom:      "custom",
	Free:        "free",
	Orbital:     "orbital",
	FirstPerson: "first_person",
	ThirdPerson: "third_person",
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int32(m))
}

// ParseMode parses a mode name such as "orbital" or "third-person".
func ParseMode(s string) (Mode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range modeNames {
		if name == key {
			return Mode(i), nil
		}
	}
	return Custom, fmt.Errorf("unknown camera mode %q", s)
}

// ParseProjection parses "perspective" or "orthographic".
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perspective", "":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	}
	return Perspective, fmt.Errorf("unknown camera projection %q", s)
}

// moveInWorldPlane keeps walking modes on the ground plane.
func (m Mode) moveInWorldPlane() bool {
	return m == FirstPerson || m == ThirdPerson
}

func (m Mode) rotateAroundTarget() bool {
	return m == ThirdPerson || m == Orbital
}

func (m Mode) lockView() bool {
	return m == FirstPerson || m == ThirdPerson || m == Orbital
}

func (m Mode) zooms() bool {
	return m == ThirdPerson || m == Orbital || m == Free
}
