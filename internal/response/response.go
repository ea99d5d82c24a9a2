package response

// DefaultStatusCode is the code an envelope carries unless an operation overrides it.
const DefaultStatusCode = 200

// Response is the envelope returned by every single-entity operation.
type Response[T any] struct {
	Data    T      `json:"data" doc:"Operation result, null on failure"`
	Code    int    `json:"code" doc:"HTTP-like status code"`
	Message string `json:"message" doc:"Human readable outcome"`
}

// New creates a Response with the default success code.
func New[T any](data T, message string) Response[T] {
	return Response[T]{Data: data, Code: DefaultStatusCode, Message: message}
}

// WithCode creates a Response with an explicit code.
func WithCode[T any](data T, code int, message string) Response[T] {
	return Response[T]{Data: data, Code: code, Message: message}
}

// IsSuccess reports whether the code is in the 2xx range.
func (r Response[T]) IsSuccess() bool {
	return r.Code >= 200 && r.Code <= 299
}
