package adc

// slidingWindow is the fixed-size history of recently produced output bytes,
// kept as a ring buffer. Back-references are resolved against it, so memory
// stays at WindowSize no matter how long the decoded output is. WindowSize is
// MaxOffset+1, so any offset the format can encode is servable once enough
// bytes have been produced.
type slidingWindow struct {
	buf  [WindowSize]byte
	pos  int // next write position
	size int // bytes of history held, up to WindowSize
}

// push appends one produced byte, evicting the oldest when full.
func (w *slidingWindow) push(b byte) {
	w.buf[w.pos] = b
	w.pos = (w.pos + 1) % WindowSize
	if w.size < WindowSize {
		w.size++
	}
}

// extend appends p in bulk. When p alone exceeds the window, only its
// trailing WindowSize bytes matter; older bytes can never be referenced
// again, so they are skipped instead of cycled through.
func (w *slidingWindow) extend(p []byte) {
	if len(p) >= WindowSize {
		copy(w.buf[:], p[len(p)-WindowSize:])
		w.pos = 0
		w.size = WindowSize

		return
	}

	n := copy(w.buf[w.pos:], p)
	copy(w.buf[:], p[n:])
	w.pos = (w.pos + len(p)) % WindowSize
	if w.size += len(p); w.size > WindowSize {
		w.size = WindowSize
	}
}

// get returns the byte at back-distance offset (0 = newest byte).
// ok is false when fewer than offset+1 bytes of history are held.
func (w *slidingWindow) get(offset int) (byte, bool) {
	if offset >= w.size {
		return 0, false
	}

	return w.buf[(w.pos-1-offset+WindowSize)%WindowSize], true
}
