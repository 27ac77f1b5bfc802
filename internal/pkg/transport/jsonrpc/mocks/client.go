// Package mocks holds a mockery-style double of jsonrpc.Client.
package mocks

import (
	"context"
	"encoding/json"

	mock "github.com/stretchr/testify/mock"
)

// Client is a mock type for the jsonrpc.Client type
type Client struct {
	mock.Mock
}

type Client_Expecter struct {
	mock *mock.Mock
}

func (_m *Client) EXPECT() *Client_Expecter {
	return &Client_Expecter{mock: &_m.Mock}
}

// Fetch provides a mock function with given fields: ctx, method, params
func (_m *Client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	var _ca []interface{}
	_ca = append(_ca, ctx, method)
	_ca = append(_ca, params...)
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for Fetch")
	}

	var r0 json.RawMessage
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, ...any) (json.RawMessage, error)); ok {
		return rf(ctx, method, params...)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(json.RawMessage)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// Client_Fetch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Fetch'
type Client_Fetch_Call struct {
	*mock.Call
}

// Fetch is a helper method to define mock.On call
//   - ctx context.Context
//   - method string
//   - params ...any
func (_e *Client_Expecter) Fetch(ctx interface{}, method interface{}, params ...interface{}) *Client_Fetch_Call {
	return &Client_Fetch_Call{Call: _e.mock.On("Fetch",
		append([]interface{}{ctx, method}, params...)...)}
}

func (_c *Client_Fetch_Call) Return(_a0 json.RawMessage, _a1 error) *Client_Fetch_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *Client_Fetch_Call) RunAndReturn(run func(context.Context, string, ...any) (json.RawMessage, error)) *Client_Fetch_Call {
	_c.Call.Return(run)
	return _c
}

// NewClient creates a new instance of Client. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *Client {
	mock := &Client{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
