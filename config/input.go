package config

// Motion is a numpad-notation direction, relative to the fighter's facing.
//
//	7 8 9
//	4 5 6
//	1 2 3
type Motion uint8

const (
	MotionDownBack    Motion = 1
	MotionDown        Motion = 2
	MotionDownForward Motion = 3
	MotionBack        Motion = 4
	MotionNeutral     Motion = 5
	MotionForward     Motion = 6
	MotionUpBack      Motion = 7
	MotionUp          Motion = 8
	MotionUpForward   Motion = 9
)

// Valid reports whether m is one of the nine numpad codes
func (m Motion) Valid() bool {
	return m >= MotionDownBack && m <= MotionUpForward
}

// IsUp is true for 7, 8 and 9
func (m Motion) IsUp() bool {
	return m >= MotionUpBack
}

// IsDown is true for 1, 2 and 3
func (m Motion) IsDown() bool {
	return m >= MotionDownBack && m <= MotionDownForward
}

// Byte returns the ASCII digit used in the flattened motion history.
func (m Motion) Byte() byte {
	return '0' + byte(m)
}

// Button is a bitmask of attack buttons pressed on one frame
type Button uint8

const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonC
	ButtonD
	ButtonE
	ButtonF
	ButtonCount = 6 // Must match the number of buttons above
)

var buttonNames = [ButtonCount]string{"A", "B", "C", "D", "E", "F"}

// Has reports whether every bit of other is set in b
func (b Button) Has(other Button) bool {
	return other != 0 && b&other == other
}

// Buttons lists the single buttons in b, newest-bit first (F before A).
func (b Button) Buttons() []Button {
	var out []Button
	for i := ButtonCount - 1; i >= 0; i-- {
		bit := Button(1) << i
		if b&bit != 0 {
			out = append(out, bit)
		}
	}
	return out
}

// String returns the attack-notation letter of a single button, or the
// concatenated letters of a mask.
func (b Button) String() string {
	s := ""
	for i := 0; i < ButtonCount; i++ {
		if b&(1<<i) != 0 {
			s += buttonNames[i]
		}
	}
	return s
}

// EncodeMotion maps raw stick axes to a numpad code. horizontal is
// screen-space (-1 left, 1 right) and is flipped by facing so that 6 is
// always forward. Up wins over down when both are held.
func EncodeMotion(horizontal, vertical int, facing float64) Motion {
	h := horizontal
	if facing < 0 {
		h = -h
	}
	col := 1
	switch {
	case h < 0:
		col = 0
	case h > 0:
		col = 2
	}
	row := 1
	switch {
	case vertical > 0:
		row = 2
	case vertical < 0:
		row = 0
	}
	return Motion(row*3 + col + 1)
}
