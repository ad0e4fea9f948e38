package blend

// Execute blends src1 and src2 into dst with the given strategy. param is
// the thread count for StrategyThreaded and the lane width for
// StrategyVectorized; 0 selects the automatic value and it is ignored for
// StrategyScalar.
func Execute(strategy Strategy, dst, src1, src2 []float64, param int) error {
	var opts []Option
	switch strategy {
	case StrategyThreaded:
		opts = append(opts, WithThreads(param))
	case StrategyVectorized:
		opts = append(opts, WithLaneWidth(param))
	}

	exec, err := New(strategy, opts...)
	if err != nil {
		return err
	}
	return exec.Run(dst, src1, src2)
}
