package response

import "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/pagination"

// SingleResponse wraps a single resource
type SingleResponse[T any] struct {
	Data T `json:"data"`
}

// MultiResponse wraps a page of resources with its page metadata
type MultiResponse[T any] struct {
	Data     []T             `json:"data"`
	PageInfo pagination.Info `json:"pageInfo"`
}

func Single[T any](data T) SingleResponse[T] {
	return SingleResponse[T]{Data: data}
}

func Multi[T any](data []T, info pagination.Info) MultiResponse[T] {
	if data == nil {
		data = []T{}
	}
	return MultiResponse[T]{Data: data, PageInfo: info}
}
