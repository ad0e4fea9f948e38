package blend

import "errors"

var (
	ErrDimensionMismatch = errors.New("blend: buffer dimensions differ")
	ErrNullBuffer        = errors.New("blend: missing buffer")
	ErrBufferOverlap     = errors.New("blend: destination partially overlaps a source")
	ErrAllocationFailure = errors.New("blend: buffer allocation failed")
	ErrAlignment         = errors.New("blend: buffer not aligned for packed access")
	ErrThreadCreation    = errors.New("blend: worker could not be started")

	ErrInvalidThreadCount = errors.New("blend: thread count must be >= 1")
	ErrInvalidLaneWidth   = errors.New("blend: lane width must be >= 1")
	ErrInvalidPartition   = errors.New("blend: invalid partition request")
	ErrUnknownStrategy    = errors.New("blend: unknown strategy")
	ErrUnknownBackend     = errors.New("blend: unknown lane backend")
	ErrUnknownAlignment   = errors.New("blend: unknown alignment policy")
)
