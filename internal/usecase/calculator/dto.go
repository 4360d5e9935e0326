package calculator

// BinaryRequest carries the two operands of an arithmetic operation.
type BinaryRequest struct {
	A int
	B int
}

// ResultResponse carries the result of an arithmetic operation.
type ResultResponse struct {
	Value int
}
