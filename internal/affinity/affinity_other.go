//go:build !linux

package affinity

// Allowed reports ErrUnsupported on this platform.
func Allowed() ([]int, error) {
	return nil, ErrUnsupported
}

// Pin reports ErrUnsupported on this platform.
func Pin(int) (Release, error) {
	return nil, ErrUnsupported
}
