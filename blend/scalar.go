package blend

// Scalar is the sequential executor. It applies Screen to every index in
// ascending order and serves as the reference the other executors are
// tested against.
type Scalar struct{}

// Name implements Executor.
func (Scalar) Name() string { return StrategyScalar.String() }

// Run writes the screen blend of src1 and src2 into dst.
func (Scalar) Run(dst, src1, src2 []float64) error {
	if err := validate(dst, src1, src2); err != nil {
		return err
	}
	ScreenBlock(dst, src1, src2)
	return nil
}
