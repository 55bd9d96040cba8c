package delay

import "fmt"

// Line is a circular delay line with integer read offsets.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a delay line holding the last size samples.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Write writes one sample.
func (d *Line) Write(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read returns the sample written delay writes ago. Read(Len()) is the
// oldest retained sample; Read(1) the most recent one.
func (d *Line) Read(delay int) float64 {
	size := len(d.buffer)
	if size == 0 {
		return 0
	}
	readPos := ((d.writePos-delay)%size + size) % size
	return d.buffer[readPos]
}

// Fill sets every retained sample to value, as if value had been written
// Len() times.
func (d *Line) Fill(value float64) {
	for i := range d.buffer {
		d.buffer[i] = value
	}
	d.writePos = 0
}

// Reset clears line state.
func (d *Line) Reset() {
	d.Fill(0)
}
