package model

const defaultHistorySize = 5

// History keeps the fingerprints of the most recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history holding at most size fingerprints
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds a fingerprint and drops the oldest one once full
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Repeats reports whether hash matches any recorded fingerprint, i.e. the
// board has returned to a recent state
func (h *History) Repeats(hash string) bool {
	for _, recorded := range h.hashes {
		if recorded == hash {
			return true
		}
	}
	return false
}

// Len returns the number of recorded fingerprints
func (h *History) Len() int {
	return len(h.hashes)
}

// Clear forgets every recorded fingerprint
func (h *History) Clear() {
	h.hashes = nil
}
