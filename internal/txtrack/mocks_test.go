// Test doubles in the mockery expecter layout.

package txtrack

import (
	context "context"
	time "time"

	mock "github.com/stretchr/testify/mock"
)

// NotifierMock is a mock type for the Notifier type
type NotifierMock struct {
	mock.Mock
}

type NotifierMock_Expecter struct {
	mock *mock.Mock
}

func (_m *NotifierMock) EXPECT() *NotifierMock_Expecter {
	return &NotifierMock_Expecter{mock: &_m.Mock}
}

// NotifyTransaction provides a mock function with given fields: ctx, hash, phase
func (_m *NotifierMock) NotifyTransaction(ctx context.Context, hash string, phase Phase) error {
	ret := _m.Called(ctx, hash, phase)

	if len(ret) == 0 {
		panic("no return value specified for NotifyTransaction")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, Phase) error); ok {
		r0 = rf(ctx, hash, phase)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NotifierMock_NotifyTransaction_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NotifyTransaction'
type NotifierMock_NotifyTransaction_Call struct {
	*mock.Call
}

// NotifyTransaction is a helper method to define mock.On call
//   - ctx context.Context
//   - hash string
//   - phase Phase
func (_e *NotifierMock_Expecter) NotifyTransaction(ctx interface{}, hash interface{}, phase interface{}) *NotifierMock_NotifyTransaction_Call {
	return &NotifierMock_NotifyTransaction_Call{Call: _e.mock.On("NotifyTransaction", ctx, hash, phase)}
}

func (_c *NotifierMock_NotifyTransaction_Call) Run(run func(ctx context.Context, hash string, phase Phase)) *NotifierMock_NotifyTransaction_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(Phase))
	})
	return _c
}

func (_c *NotifierMock_NotifyTransaction_Call) Return(_a0 error) *NotifierMock_NotifyTransaction_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *NotifierMock_NotifyTransaction_Call) RunAndReturn(run func(context.Context, string, Phase) error) *NotifierMock_NotifyTransaction_Call {
	_c.Call.Return(run)
	return _c
}

// NewNotifierMock creates a new instance of NotifierMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewNotifierMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotifierMock {
	mock := &NotifierMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// DepositHandleMock is a mock type for the DepositHandle type
type DepositHandleMock struct {
	mock.Mock
}

type DepositHandleMock_Expecter struct {
	mock *mock.Mock
}

func (_m *DepositHandleMock) EXPECT() *DepositHandleMock_Expecter {
	return &DepositHandleMock_Expecter{mock: &_m.Mock}
}

// awaitCall is shared by the three Await methods, which have identical signatures.
func (_m *DepositHandleMock) awaitCall(method string, ctx context.Context) error {
	ret := _m.MethodCalled(method, ctx)

	if len(ret) == 0 {
		panic("no return value specified for " + method)
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// AwaitReceipt provides a mock function with given fields: ctx
func (_m *DepositHandleMock) AwaitReceipt(ctx context.Context) error {
	return _m.awaitCall("AwaitReceipt", ctx)
}

// AwaitSourceCommit provides a mock function with given fields: ctx
func (_m *DepositHandleMock) AwaitSourceCommit(ctx context.Context) error {
	return _m.awaitCall("AwaitSourceCommit", ctx)
}

// AwaitVerifyReceipt provides a mock function with given fields: ctx
func (_m *DepositHandleMock) AwaitVerifyReceipt(ctx context.Context) error {
	return _m.awaitCall("AwaitVerifyReceipt", ctx)
}

// SourceTxHash provides a mock function with no fields
func (_m *DepositHandleMock) SourceTxHash() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for SourceTxHash")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// DepositHandleMock_Await_Call is a *mock.Call that shadows Run/Return methods with type explicit version for the Await methods
type DepositHandleMock_Await_Call struct {
	*mock.Call
}

// AwaitSourceCommit is a helper method to define mock.On call
//   - ctx context.Context
func (_e *DepositHandleMock_Expecter) AwaitSourceCommit(ctx interface{}) *DepositHandleMock_Await_Call {
	return &DepositHandleMock_Await_Call{Call: _e.mock.On("AwaitSourceCommit", ctx)}
}

// AwaitReceipt is a helper method to define mock.On call
//   - ctx context.Context
func (_e *DepositHandleMock_Expecter) AwaitReceipt(ctx interface{}) *DepositHandleMock_Await_Call {
	return &DepositHandleMock_Await_Call{Call: _e.mock.On("AwaitReceipt", ctx)}
}

// AwaitVerifyReceipt is a helper method to define mock.On call
//   - ctx context.Context
func (_e *DepositHandleMock_Expecter) AwaitVerifyReceipt(ctx interface{}) *DepositHandleMock_Await_Call {
	return &DepositHandleMock_Await_Call{Call: _e.mock.On("AwaitVerifyReceipt", ctx)}
}

func (_c *DepositHandleMock_Await_Call) Run(run func(ctx context.Context)) *DepositHandleMock_Await_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *DepositHandleMock_Await_Call) Return(_a0 error) *DepositHandleMock_Await_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *DepositHandleMock_Await_Call) RunAndReturn(run func(context.Context) error) *DepositHandleMock_Await_Call {
	_c.Call.Return(run)
	return _c
}

// DepositHandleMock_SourceTxHash_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SourceTxHash'
type DepositHandleMock_SourceTxHash_Call struct {
	*mock.Call
}

// SourceTxHash is a helper method to define mock.On call
func (_e *DepositHandleMock_Expecter) SourceTxHash() *DepositHandleMock_SourceTxHash_Call {
	return &DepositHandleMock_SourceTxHash_Call{Call: _e.mock.On("SourceTxHash")}
}

func (_c *DepositHandleMock_SourceTxHash_Call) Return(_a0 string) *DepositHandleMock_SourceTxHash_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewDepositHandleMock creates a new instance of DepositHandleMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDepositHandleMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *DepositHandleMock {
	mock := &DepositHandleMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// BalanceRefresherMock is a mock type for the BalanceRefresher type
type BalanceRefresherMock struct {
	mock.Mock
}

type BalanceRefresherMock_Expecter struct {
	mock *mock.Mock
}

func (_m *BalanceRefresherMock) EXPECT() *BalanceRefresherMock_Expecter {
	return &BalanceRefresherMock_Expecter{mock: &_m.Mock}
}

// RequestBalancesUpdate provides a mock function with given fields: ctx, force
func (_m *BalanceRefresherMock) RequestBalancesUpdate(ctx context.Context, force bool) error {
	ret := _m.Called(ctx, force)

	if len(ret) == 0 {
		panic("no return value specified for RequestBalancesUpdate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, bool) error); ok {
		r0 = rf(ctx, force)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// BalanceRefresherMock_RequestBalancesUpdate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RequestBalancesUpdate'
type BalanceRefresherMock_RequestBalancesUpdate_Call struct {
	*mock.Call
}

// RequestBalancesUpdate is a helper method to define mock.On call
//   - ctx context.Context
//   - force bool
func (_e *BalanceRefresherMock_Expecter) RequestBalancesUpdate(ctx interface{}, force interface{}) *BalanceRefresherMock_RequestBalancesUpdate_Call {
	return &BalanceRefresherMock_RequestBalancesUpdate_Call{Call: _e.mock.On("RequestBalancesUpdate", ctx, force)}
}

func (_c *BalanceRefresherMock_RequestBalancesUpdate_Call) Run(run func(ctx context.Context, force bool)) *BalanceRefresherMock_RequestBalancesUpdate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(bool))
	})
	return _c
}

func (_c *BalanceRefresherMock_RequestBalancesUpdate_Call) Return(_a0 error) *BalanceRefresherMock_RequestBalancesUpdate_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewBalanceRefresherMock creates a new instance of BalanceRefresherMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewBalanceRefresherMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *BalanceRefresherMock {
	mock := &BalanceRefresherMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// WatchGuardMock is a mock type for the WatchGuard type
type WatchGuardMock struct {
	mock.Mock
}

type WatchGuardMock_Expecter struct {
	mock *mock.Mock
}

func (_m *WatchGuardMock) EXPECT() *WatchGuardMock_Expecter {
	return &WatchGuardMock_Expecter{mock: &_m.Mock}
}

// ClaimTransactionWatch provides a mock function with given fields: ctx, hash, ttl
func (_m *WatchGuardMock) ClaimTransactionWatch(ctx context.Context, hash string, ttl time.Duration) error {
	ret := _m.Called(ctx, hash, ttl)

	if len(ret) == 0 {
		panic("no return value specified for ClaimTransactionWatch")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Duration) error); ok {
		r0 = rf(ctx, hash, ttl)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ReleaseTransactionWatch provides a mock function with given fields: ctx, hash
func (_m *WatchGuardMock) ReleaseTransactionWatch(ctx context.Context, hash string) error {
	ret := _m.Called(ctx, hash)

	if len(ret) == 0 {
		panic("no return value specified for ReleaseTransactionWatch")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, hash)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// WatchGuardMock_ClaimTransactionWatch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ClaimTransactionWatch'
type WatchGuardMock_ClaimTransactionWatch_Call struct {
	*mock.Call
}

// ClaimTransactionWatch is a helper method to define mock.On call
//   - ctx context.Context
//   - hash string
//   - ttl time.Duration
func (_e *WatchGuardMock_Expecter) ClaimTransactionWatch(ctx interface{}, hash interface{}, ttl interface{}) *WatchGuardMock_ClaimTransactionWatch_Call {
	return &WatchGuardMock_ClaimTransactionWatch_Call{Call: _e.mock.On("ClaimTransactionWatch", ctx, hash, ttl)}
}

func (_c *WatchGuardMock_ClaimTransactionWatch_Call) Return(_a0 error) *WatchGuardMock_ClaimTransactionWatch_Call {
	_c.Call.Return(_a0)
	return _c
}

// WatchGuardMock_ReleaseTransactionWatch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReleaseTransactionWatch'
type WatchGuardMock_ReleaseTransactionWatch_Call struct {
	*mock.Call
}

// ReleaseTransactionWatch is a helper method to define mock.On call
//   - ctx context.Context
//   - hash string
func (_e *WatchGuardMock_Expecter) ReleaseTransactionWatch(ctx interface{}, hash interface{}) *WatchGuardMock_ReleaseTransactionWatch_Call {
	return &WatchGuardMock_ReleaseTransactionWatch_Call{Call: _e.mock.On("ReleaseTransactionWatch", ctx, hash)}
}

func (_c *WatchGuardMock_ReleaseTransactionWatch_Call) Return(_a0 error) *WatchGuardMock_ReleaseTransactionWatch_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewWatchGuardMock creates a new instance of WatchGuardMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewWatchGuardMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *WatchGuardMock {
	mock := &WatchGuardMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// ChangePublisherMock is a mock type for the ChangePublisher type
type ChangePublisherMock struct {
	mock.Mock
}

type ChangePublisherMock_Expecter struct {
	mock *mock.Mock
}

func (_m *ChangePublisherMock) EXPECT() *ChangePublisherMock_Expecter {
	return &ChangePublisherMock_Expecter{mock: &_m.Mock}
}

// PublishChange provides a mock function with given fields: ctx, c
func (_m *ChangePublisherMock) PublishChange(ctx context.Context, c Change) error {
	ret := _m.Called(ctx, c)

	if len(ret) == 0 {
		panic("no return value specified for PublishChange")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, Change) error); ok {
		r0 = rf(ctx, c)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ChangePublisherMock_PublishChange_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PublishChange'
type ChangePublisherMock_PublishChange_Call struct {
	*mock.Call
}

// PublishChange is a helper method to define mock.On call
//   - ctx context.Context
//   - c Change
func (_e *ChangePublisherMock_Expecter) PublishChange(ctx interface{}, c interface{}) *ChangePublisherMock_PublishChange_Call {
	return &ChangePublisherMock_PublishChange_Call{Call: _e.mock.On("PublishChange", ctx, c)}
}

func (_c *ChangePublisherMock_PublishChange_Call) Run(run func(ctx context.Context, c Change)) *ChangePublisherMock_PublishChange_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(Change))
	})
	return _c
}

func (_c *ChangePublisherMock_PublishChange_Call) Return(_a0 error) *ChangePublisherMock_PublishChange_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewChangePublisherMock creates a new instance of ChangePublisherMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewChangePublisherMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChangePublisherMock {
	mock := &ChangePublisherMock{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
