package mode

import "fmt"

type Mode uint8

const (
	Light Mode = iota
	Particles
)

func Parse(text string) (Mode, error) {
	switch text {
	case "light", "l":
		return Light, nil
	case "particles", "p":
		return Particles, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Particles:
		return "particles"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Toggle switches Light to Particles and back.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Particles
	}
	return Light
}
