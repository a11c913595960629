package random

// Sequence is a scripted Source that replays its values in order and wraps
// around at the end. A Sequence with no values always yields 0.
type Sequence struct {
	values []float64
	next   int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (that *Sequence) Float64() float64 {
	if len(that.values) == 0 {
		return 0
	}

	value := that.values[that.next%len(that.values)]
	that.next++

	return value
}

// Draws reports how many values have been consumed.
func (that *Sequence) Draws() int {
	return that.next
}
