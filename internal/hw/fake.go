package hw

// FakeLine is a test double that returns scripted digital levels.
// Each call to Level() consumes the next value; once the script is
// exhausted, the last value repeats.
type FakeLine struct {
	Levels []Level
	index  int
}

// NewFakeLine creates a FakeLine with the given scripted levels.
func NewFakeLine(levels ...Level) *FakeLine {
	return &FakeLine{Levels: levels}
}

// Level returns the next scripted level. An empty script reads High,
// matching an idle pulled-up line.
func (f *FakeLine) Level() Level {
	if len(f.Levels) == 0 {
		return High
	}
	l := f.Levels[f.index]
	if f.index < len(f.Levels)-1 {
		f.index++
	}
	return l
}

// Set replaces the script with a single steady level.
func (f *FakeLine) Set(l Level) {
	f.Levels = []Level{l}
	f.index = 0
}

// FakePWM records every duty level applied to it.
type FakePWM struct {
	// History contains every value passed to SetDuty, in order.
	History []int
}

// SetDuty records the applied level.
func (f *FakePWM) SetDuty(v int) {
	f.History = append(f.History, v)
}

// Last returns the most recently applied level, or 0 if none.
func (f *FakePWM) Last() int {
	if len(f.History) == 0 {
		return 0
	}
	return f.History[len(f.History)-1]
}

// FakeADC is a test double that returns scripted analog samples.
// Once the script is exhausted, the last sample repeats.
type FakeADC struct {
	Samples []int
	index   int
}

// NewFakeADC creates a FakeADC with the given scripted samples.
func NewFakeADC(samples ...int) *FakeADC {
	return &FakeADC{Samples: samples}
}

// Sample returns the next scripted reading.
func (f *FakeADC) Sample() int {
	if len(f.Samples) == 0 {
		return 0
	}
	s := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return s
}

// Set replaces the script with a single steady reading.
func (f *FakeADC) Set(v int) {
	f.Samples = []int{v}
	f.index = 0
}
