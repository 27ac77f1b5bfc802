// Package mocks holds mockery expecter-style doubles of the txtrack interfaces
// for use outside the txtrack package.
package mocks

import (
	"context"
	"math/big"

	"github.com/gabapcia/txtrack/internal/txtrack"

	mock "github.com/stretchr/testify/mock"
)

// Service is a mock type for the txtrack.Service type
type Service struct {
	mock.Mock
}

var _ txtrack.Service = (*Service)(nil)

type Service_Expecter struct {
	mock *mock.Mock
}

func (_m *Service) EXPECT() *Service_Expecter {
	return &Service_Expecter{mock: &_m.Mock}
}

// ActiveDepositTotal provides a mock function with no fields
func (_m *Service) ActiveDepositTotal() map[string]*big.Int {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ActiveDepositTotal")
	}

	var r0 map[string]*big.Int
	if rf, ok := ret.Get(0).(func() map[string]*big.Int); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]*big.Int)
	}

	return r0
}

// Service_ActiveDepositTotal_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ActiveDepositTotal'
type Service_ActiveDepositTotal_Call struct {
	*mock.Call
}

// ActiveDepositTotal is a helper method to define mock.On call
func (_e *Service_Expecter) ActiveDepositTotal() *Service_ActiveDepositTotal_Call {
	return &Service_ActiveDepositTotal_Call{Call: _e.mock.On("ActiveDepositTotal")}
}

func (_c *Service_ActiveDepositTotal_Call) Run(run func()) *Service_ActiveDepositTotal_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *Service_ActiveDepositTotal_Call) Return(_a0 map[string]*big.Int) *Service_ActiveDepositTotal_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *Service_ActiveDepositTotal_Call) RunAndReturn(run func() map[string]*big.Int) *Service_ActiveDepositTotal_Call {
	_c.Call.Return(run)
	return _c
}

// Deposits provides a mock function with no fields
func (_m *Service) Deposits() txtrack.DepositsSnapshot {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Deposits")
	}

	var r0 txtrack.DepositsSnapshot
	if rf, ok := ret.Get(0).(func() txtrack.DepositsSnapshot); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(txtrack.DepositsSnapshot)
	}

	return r0
}

// Service_Deposits_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Deposits'
type Service_Deposits_Call struct {
	*mock.Call
}

// Deposits is a helper method to define mock.On call
func (_e *Service_Expecter) Deposits() *Service_Deposits_Call {
	return &Service_Deposits_Call{Call: _e.mock.On("Deposits")}
}

func (_c *Service_Deposits_Call) Run(run func()) *Service_Deposits_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *Service_Deposits_Call) Return(_a0 txtrack.DepositsSnapshot) *Service_Deposits_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *Service_Deposits_Call) RunAndReturn(run func() txtrack.DepositsSnapshot) *Service_Deposits_Call {
	_c.Call.Return(run)
	return _c
}

// Subscribe provides a mock function with given fields: ctx
func (_m *Service) Subscribe(ctx context.Context) <-chan txtrack.Change {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Subscribe")
	}

	var r0 <-chan txtrack.Change
	if rf, ok := ret.Get(0).(func(context.Context) <-chan txtrack.Change); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(<-chan txtrack.Change)
	}

	return r0
}

// Service_Subscribe_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Subscribe'
type Service_Subscribe_Call struct {
	*mock.Call
}

// Subscribe is a helper method to define mock.On call
//   - ctx context.Context
func (_e *Service_Expecter) Subscribe(ctx interface{}) *Service_Subscribe_Call {
	return &Service_Subscribe_Call{Call: _e.mock.On("Subscribe", ctx)}
}

func (_c *Service_Subscribe_Call) Run(run func(ctx context.Context)) *Service_Subscribe_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *Service_Subscribe_Call) Return(_a0 <-chan txtrack.Change) *Service_Subscribe_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *Service_Subscribe_Call) RunAndReturn(run func(context.Context) <-chan txtrack.Change) *Service_Subscribe_Call {
	_c.Call.Return(run)
	return _c
}

// Watch provides a mock function with given fields: ctx, hash, existing
func (_m *Service) Watch(ctx context.Context, hash string, existing bool) error {
	ret := _m.Called(ctx, hash, existing)

	if len(ret) == 0 {
		panic("no return value specified for Watch")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) error); ok {
		r0 = rf(ctx, hash, existing)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Service_Watch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Watch'
type Service_Watch_Call struct {
	*mock.Call
}

// Watch is a helper method to define mock.On call
//   - ctx context.Context
//   - hash string
//   - existing bool
func (_e *Service_Expecter) Watch(ctx interface{}, hash interface{}, existing interface{}) *Service_Watch_Call {
	return &Service_Watch_Call{Call: _e.mock.On("Watch", ctx, hash, existing)}
}

func (_c *Service_Watch_Call) Run(run func(ctx context.Context, hash string, existing bool)) *Service_Watch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(bool))
	})
	return _c
}

func (_c *Service_Watch_Call) Return(_a0 error) *Service_Watch_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *Service_Watch_Call) RunAndReturn(run func(context.Context, string, bool) error) *Service_Watch_Call {
	_c.Call.Return(run)
	return _c
}

// WatchDeposit provides a mock function with given fields: ctx, handle, tokenSymbol, amount
func (_m *Service) WatchDeposit(ctx context.Context, handle txtrack.DepositHandle, tokenSymbol string, amount string) error {
	ret := _m.Called(ctx, handle, tokenSymbol, amount)

	if len(ret) == 0 {
		panic("no return value specified for WatchDeposit")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, txtrack.DepositHandle, string, string) error); ok {
		r0 = rf(ctx, handle, tokenSymbol, amount)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Service_WatchDeposit_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WatchDeposit'
type Service_WatchDeposit_Call struct {
	*mock.Call
}

// WatchDeposit is a helper method to define mock.On call
//   - ctx context.Context
//   - handle txtrack.DepositHandle
//   - tokenSymbol string
//   - amount string
func (_e *Service_Expecter) WatchDeposit(ctx interface{}, handle interface{}, tokenSymbol interface{}, amount interface{}) *Service_WatchDeposit_Call {
	return &Service_WatchDeposit_Call{Call: _e.mock.On("WatchDeposit", ctx, handle, tokenSymbol, amount)}
}

func (_c *Service_WatchDeposit_Call) Run(run func(ctx context.Context, handle txtrack.DepositHandle, tokenSymbol string, amount string)) *Service_WatchDeposit_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(txtrack.DepositHandle), args[2].(string), args[3].(string))
	})
	return _c
}

func (_c *Service_WatchDeposit_Call) Return(_a0 error) *Service_WatchDeposit_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *Service_WatchDeposit_Call) RunAndReturn(run func(context.Context, txtrack.DepositHandle, string, string) error) *Service_WatchDeposit_Call {
	_c.Call.Return(run)
	return _c
}

// NewService creates a new instance of Service. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewService(t interface {
	mock.TestingT
	Cleanup(func())
}) *Service {
	mock := &Service{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
