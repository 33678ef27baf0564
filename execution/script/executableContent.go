package script

// ExecutableContent is validated script content ready for evaluation.
type ExecutableContent interface {
	// GetSource returns the original script content.
	GetSource() string

	// GetByteCode returns the compiled program in a machine specific format. The
	// evaluator asserts it into the type it expects.
	GetByteCode() any
}
