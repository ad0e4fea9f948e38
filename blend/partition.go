package blend

import "fmt"

// Partition is the half-open index range [Start, End).
type Partition struct {
	Start int
	End   int
}

// Len returns the number of indices in p.
func (p Partition) Len() int {
	return p.End - p.Start
}

// Plan splits [0, n) into groups contiguous partitions in ascending order.
// Every partition gets n/groups indices and the last one also takes the
// n%groups remainder, so the union is exactly [0, n) with no gaps or
// overlaps. groups > n is allowed; the leading partitions are then empty.
func Plan(n, groups int) ([]Partition, error) {
	if n < 0 || groups < 1 {
		return nil, fmt.Errorf("%w: n=%d groups=%d", ErrInvalidPartition, n, groups)
	}

	base := n / groups
	plan := make([]Partition, groups)
	for g := range plan {
		start := g * base
		plan[g] = Partition{Start: start, End: start + base}
	}
	plan[groups-1].End = n

	return plan, nil
}

// PacketLayout describes how a vector executor covers [0, n): Packets full
// packets of Width lanes over Body, then Tail handled one sample at a time.
type PacketLayout struct {
	Width   int
	Packets int
	Body    Partition
	Tail    Partition
}

// PacketPlan computes the packet decomposition of n samples for the given
// lane width.
func PacketPlan(n, width int) (PacketLayout, error) {
	if n < 0 {
		return PacketLayout{}, fmt.Errorf("%w: n=%d", ErrInvalidPartition, n)
	}
	if width < 1 {
		return PacketLayout{}, fmt.Errorf("%w: %d", ErrInvalidLaneWidth, width)
	}

	packets := n / width
	split := packets * width
	return PacketLayout{
		Width:   width,
		Packets: packets,
		Body:    Partition{Start: 0, End: split},
		Tail:    Partition{Start: split, End: n},
	}, nil
}
