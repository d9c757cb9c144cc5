// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package client

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ResponseInterceptor allows a caller to observe the raw response of a
// dispatched request before the standard error classification kicks in,
// typically used for debug tracing of API interactions
type ResponseInterceptor func(resp *resty.Response) error

// RequestInfo describes an outgoing API request, built up by the
// domain managers and handed over to the Client for dispatch. it
// carries no transport concerns of its own
type RequestInfo struct {
	method      string
	url         string
	body        any
	headers     map[string]string
	query       map[string]string
	interceptor ResponseInterceptor
}

// NewGetRequest creates a request descriptor for a GET call to the
// given url, relative urls are resolved against the client endpoint
func NewGetRequest(url string) *RequestInfo {
	return newRequestInfo(http.MethodGet, url, nil)
}

// NewDeleteRequest creates a request descriptor for a DELETE call
func NewDeleteRequest(url string) *RequestInfo {
	return newRequestInfo(http.MethodDelete, url, nil)
}

// NewPostRequest creates a request descriptor for a POST call with
// the given payload, serialized as json on dispatch
func NewPostRequest(url string, body any) *RequestInfo {
	return newRequestInfo(http.MethodPost, url, body)
}

// NewPatchRequest creates a request descriptor for a PATCH call with
// the given payload, serialized as json on dispatch
func NewPatchRequest(url string, body any) *RequestInfo {
	return newRequestInfo(http.MethodPatch, url, body)
}

func newRequestInfo(method, url string, body any) *RequestInfo {
	return &RequestInfo{
		method:  method,
		url:     url,
		body:    body,
		headers: map[string]string{},
		query:   map[string]string{},
	}
}

// AddHeader adds a header to be sent along with the request
func (r *RequestInfo) AddHeader(name, value string) *RequestInfo {
	r.headers[name] = value
	return r
}

// AddAllHeaders adds all the provided headers to the request
func (r *RequestInfo) AddAllHeaders(headers map[string]string) *RequestInfo {
	for name, value := range headers {
		r.headers[name] = value
	}
	return r
}

// SetQueryParam sets a query parameter on the request url
func (r *RequestInfo) SetQueryParam(name, value string) *RequestInfo {
	r.query[name] = value
	return r
}

// SetResponseInterceptor sets the interceptor to be invoked with the
// raw response of this request
func (r *RequestInfo) SetResponseInterceptor(interceptor ResponseInterceptor) *RequestInfo {
	r.interceptor = interceptor
	return r
}
