package models

// Result is the envelope every endpoint responds with, whatever the outcome.
// ClientMessage is safe to show to users; DevMessage may carry internal detail.
type Result[T any] struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"statusCode"`
	Data          T      `json:"data"`
	ClientMessage string `json:"clientMessage"`
	DevMessage    string `json:"devMessage"`
}

func OK[T any](status int, data T, clientMessage, devMessage string) Result[T] {
	return Result[T]{
		Success:       true,
		StatusCode:    status,
		Data:          data,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
	}
}

// Fail builds a failed envelope; Data is the zero value of T (null for
// pointers and slices).
func Fail[T any](status int, clientMessage, devMessage string) Result[T] {
	return Result[T]{
		StatusCode:    status,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
	}
}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
