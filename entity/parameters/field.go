package parameters

import "fmt"

type Field uint8

const (
	Separation Field = iota
	Width
	Wavelength
	ScreenDistance
	Input
)

// Range is a closed interval.
type Range struct {
	Lo, Hi float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

var ranges = map[Field]Range{
	Separation:     {1, 100},
	Width:          {1, 15},
	Wavelength:     {MinWavelength, MaxWavelength},
	ScreenDistance: {20, 200},
}

// steps are the increments of the +/- buttons of the control panel.
var steps = map[Field]float64{
	Separation:     1,
	Width:          1,
	Wavelength:     25,
	ScreenDistance: 10,
}

func Numeric() []Field {
	return []Field{Separation, Width, Wavelength, ScreenDistance}
}

func (f Field) Range() Range {
	return ranges[f]
}

// Step returns the increment of one button press for f, zero for Input.
func (f Field) Step() float64 {
	return steps[f]
}

func ParseField(text string) (Field, error) {
	switch text {
	case "separation":
		return Separation, nil
	case "width", "slit_width":
		return Width, nil
	case "wavelength":
		return Wavelength, nil
	case "distance", "screen_distance":
		return ScreenDistance, nil
	case "input", "mode":
		return Input, nil
	default:
		return 0, fmt.Errorf("invalid field: %q", text)
	}
}

func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Field) String() string {
	switch f {
	case Separation:
		return "separation"
	case Width:
		return "width"
	case Wavelength:
		return "wavelength"
	case ScreenDistance:
		return "distance"
	case Input:
		return "input"
	default:
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
}
