// Package affinity pins the calling goroutine's OS thread to one CPU.
//
// Pinning locks the goroutine to its thread (runtime.LockOSThread) before
// changing the thread's CPU mask, so the mask never leaks to other
// goroutines. Release restores the previous mask and unlocks; if the mask
// cannot be restored the thread stays locked and is discarded by the
// runtime when the goroutine exits.
package affinity

import "errors"

// ErrUnsupported is returned on platforms without thread affinity control.
var ErrUnsupported = errors.New("affinity: not supported on this platform")

// Release undoes a successful Pin. It must run on the pinned goroutine.
type Release func()
