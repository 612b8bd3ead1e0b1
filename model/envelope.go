// Package model defines the Central data transfer objects and the response
// envelopes returned by both channels.
package model

import "encoding/json"

// Empty is the payload of operations that return no data.
type Empty struct{}

// HTTPStatus describes the transport response behind a failed request.
type HTTPStatus struct {
	Status     int             `json:"status"`
	StatusText string          `json:"statusText"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// Response is the request channel envelope. Callers branch on Success; when
// it is false Response carries the transport status.
type Response[T any] struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Data     T           `json:"data,omitempty"`
	Response *HTTPStatus `json:"response,omitempty"`
}

// Status returns the HTTP status of a failed response, or 0.
func (r Response[T]) Status() int {
	if r.Response == nil {
		return 0
	}
	return r.Response.Status
}

// SocketResponse is the reply envelope of an event channel call.
type SocketResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}
