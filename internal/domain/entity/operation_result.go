package entity

// OperationResult pairs a business outcome with a human readable message.
// It carries no failure variant; argument errors travel as error values.
type OperationResult[T any] struct {
	Result  T
	Message string
}

func NewOperationResult[T any](result T, message string) OperationResult[T] {
	return OperationResult[T]{Result: result, Message: message}
}
