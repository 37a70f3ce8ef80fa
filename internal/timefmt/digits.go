package timefmt

// Accuracy controls how many fractional digits are shown.
type Accuracy int

const (
	Seconds Accuracy = iota
	Tenths
	Hundredths
	Milliseconds
)

// DigitsFormat controls the minimum number of leading groups shown, and
// whether the smallest always-shown group is zero-padded to two digits.
type DigitsFormat int

const (
	SingleDigitSeconds DigitsFormat = iota
	DoubleDigitSeconds
	SingleDigitMinutes
	DoubleDigitMinutes
	SingleDigitHours
	DoubleDigitHours
)

const dash = "—"
const minus = "−"
const separator = ":"
