package models

// Result codes of the explorer envelope.
const (
	ResponseCodeSuccess = 10000
	ResponseCodeFailure = 50000
)

// Response is the envelope returned by explorer and workspace endpoints.
type Response[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// Success wraps data into a successful envelope.
func Success[T any](data T) Response[T] {
	return Response[T]{Code: ResponseCodeSuccess, Msg: "success", Data: data}
}

// Failure wraps err into a failed envelope with the given fallback data.
func Failure[T any](err error, data T) Response[T] {
	return Response[T]{Code: ResponseCodeFailure, Msg: err.Error(), Data: data}
}
