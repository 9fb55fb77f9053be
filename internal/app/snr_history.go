package app

// SNRRing keeps the most recent SNR readings, in dB, for the metrics
// sparkline. One reading is pushed per simulator run, so the window
// covers the last capacity parameter changes. Oldest readings fall off
// first.
type SNRRing struct {
	buf  []float64
	next int
	full bool
}

// NewSNRRing creates a ring holding up to capacity readings. A capacity
// below one is raised to one so Push never indexes an empty buffer.
func NewSNRRing(capacity int) *SNRRing {
	if capacity < 1 {
		capacity = 1
	}
	return &SNRRing{buf: make([]float64, capacity)}
}

// Push records one SNR reading, evicting the oldest when full.
func (r *SNRRing) Push(snrDB float64) {
	r.buf[r.next] = snrDB
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
}

// Values returns the stored readings oldest first, or nil when empty.
func (r *SNRRing) Values() []float64 {
	if !r.full {
		if r.next == 0 {
			return nil
		}
		out := make([]float64, r.next)
		copy(out, r.buf[:r.next])
		return out
	}
	out := make([]float64, 0, len(r.buf))
	out = append(out, r.buf[r.next:]...)
	return append(out, r.buf[:r.next]...)
}

// Last returns the most recent reading, or 0 when empty.
func (r *SNRRing) Last() float64 {
	if !r.full && r.next == 0 {
		return 0
	}
	idx := r.next - 1
	if idx < 0 {
		idx = len(r.buf) - 1
	}
	return r.buf[idx]
}

// Len returns the number of stored readings.
func (r *SNRRing) Len() int {
	if r.full {
		return len(r.buf)
	}
	return r.next
}
