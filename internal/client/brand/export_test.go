package brand

import "sync"

// resetForTest restores the package state so Apply can run again.
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()
	applyOnce = sync.Once{}
	current = Defaults()
	colorOn = true
}
