package road

// Markings animates the dashed centre line. It is decoration only and has
// no effect on the simulation.
type Markings struct {
	offsets []float64
	height  float64
	wrap    float64
}

// NewMarkings creates count dashes spread evenly over a road of the given height
func NewMarkings(count int, height, wrap float64) *Markings {
	m := &Markings{
		offsets: make([]float64, count),
		height:  height,
		wrap:    wrap,
	}
	m.Reset()
	return m
}

// Reset spaces the dashes evenly from the top of the road
func (m *Markings) Reset() {
	if len(m.offsets) == 0 {
		return
	}
	spacing := m.height / float64(len(m.offsets))
	for i := range m.offsets {
		m.offsets[i] = float64(i) * spacing
	}
}

// Advance scrolls the dashes down by speed, wrapping past the bottom
func (m *Markings) Advance(speed float64) {
	for i := range m.offsets {
		m.offsets[i] += speed
		if m.offsets[i] > m.height {
			m.offsets[i] = m.offsets[i] - m.height - m.wrap
		}
	}
}

// Offsets returns a copy of the dash Y positions
func (m *Markings) Offsets() []float64 {
	out := make([]float64, len(m.offsets))
	copy(out, m.offsets)
	return out
}
