// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=escrow_test
//

// Package escrow_test is a generated GoMock package.
package escrow_test

import (
	context "context"
	reflect "reflect"
	entities "shipledger/internal/entities"
	events "shipledger/internal/events"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// Archive mocks base method.
func (m *MockRepository) Archive(ctx context.Context, escrowEntity *entities.Escrow, liveUntil uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Archive", ctx, escrowEntity, liveUntil)
	ret0, _ := ret[0].(error)
	return ret0
}

// Archive indicates an expected call of Archive.
func (mr *MockRepositoryMockRecorder) Archive(ctx, escrowEntity, liveUntil any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Archive", reflect.TypeOf((*MockRepository)(nil).Archive), ctx, escrowEntity, liveUntil)
}

// ExtendTTL mocks base method.
func (m *MockRepository) ExtendTTL(ctx context.Context, shipmentID, minUntil uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtendTTL", ctx, shipmentID, minUntil)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExtendTTL indicates an expected call of ExtendTTL.
func (mr *MockRepositoryMockRecorder) ExtendTTL(ctx, shipmentID, minUntil any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtendTTL", reflect.TypeOf((*MockRepository)(nil).ExtendTTL), ctx, shipmentID, minUntil)
}

// Get mocks base method.
func (m *MockRepository) Get(ctx context.Context, shipmentID, now uint64) (*entities.Escrow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, shipmentID, now)
	ret0, _ := ret[0].(*entities.Escrow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockRepositoryMockRecorder) Get(ctx, shipmentID, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockRepository)(nil).Get), ctx, shipmentID, now)
}

// Save mocks base method.
func (m *MockRepository) Save(ctx context.Context, escrowEntity *entities.Escrow, liveUntil uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, escrowEntity, liveUntil)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockRepositoryMockRecorder) Save(ctx, escrowEntity, liveUntil any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockRepository)(nil).Save), ctx, escrowEntity, liveUntil)
}

// MockShipmentRepository is a mock of ShipmentRepository interface.
type MockShipmentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockShipmentRepositoryMockRecorder
}

// MockShipmentRepositoryMockRecorder is the mock recorder for MockShipmentRepository.
type MockShipmentRepositoryMockRecorder struct {
	mock *MockShipmentRepository
}

// NewMockShipmentRepository creates a new mock instance.
func NewMockShipmentRepository(ctrl *gomock.Controller) *MockShipmentRepository {
	mock := &MockShipmentRepository{ctrl: ctrl}
	mock.recorder = &MockShipmentRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockShipmentRepository) EXPECT() *MockShipmentRepositoryMockRecorder {
	return m.recorder
}

// ExtendTTL mocks base method.
func (m *MockShipmentRepository) ExtendTTL(ctx context.Context, id, minUntil uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtendTTL", ctx, id, minUntil)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExtendTTL indicates an expected call of ExtendTTL.
func (mr *MockShipmentRepositoryMockRecorder) ExtendTTL(ctx, id, minUntil any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtendTTL", reflect.TypeOf((*MockShipmentRepository)(nil).ExtendTTL), ctx, id, minUntil)
}

// Get mocks base method.
func (m *MockShipmentRepository) Get(ctx context.Context, id, now uint64) (*entities.Shipment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id, now)
	ret0, _ := ret[0].(*entities.Shipment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockShipmentRepositoryMockRecorder) Get(ctx, id, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockShipmentRepository)(nil).Get), ctx, id, now)
}

// MockRolesRepository is a mock of RolesRepository interface.
type MockRolesRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRolesRepositoryMockRecorder
}

// MockRolesRepositoryMockRecorder is the mock recorder for MockRolesRepository.
type MockRolesRepositoryMockRecorder struct {
	mock *MockRolesRepository
}

// NewMockRolesRepository creates a new mock instance.
func NewMockRolesRepository(ctrl *gomock.Controller) *MockRolesRepository {
	mock := &MockRolesRepository{ctrl: ctrl}
	mock.recorder = &MockRolesRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRolesRepository) EXPECT() *MockRolesRepositoryMockRecorder {
	return m.recorder
}

// Admins mocks base method.
func (m *MockRolesRepository) Admins(ctx context.Context) ([]entities.Address, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Admins", ctx)
	ret0, _ := ret[0].([]entities.Address)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Admins indicates an expected call of Admins.
func (mr *MockRolesRepositoryMockRecorder) Admins(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Admins", reflect.TypeOf((*MockRolesRepository)(nil).Admins), ctx)
}

// MockEngineRepository is a mock of EngineRepository interface.
type MockEngineRepository struct {
	ctrl     *gomock.Controller
	recorder *MockEngineRepositoryMockRecorder
}

// MockEngineRepositoryMockRecorder is the mock recorder for MockEngineRepository.
type MockEngineRepositoryMockRecorder struct {
	mock *MockEngineRepository
}

// NewMockEngineRepository creates a new mock instance.
func NewMockEngineRepository(ctrl *gomock.Controller) *MockEngineRepository {
	mock := &MockEngineRepository{ctrl: ctrl}
	mock.recorder = &MockEngineRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEngineRepository) EXPECT() *MockEngineRepositoryMockRecorder {
	return m.recorder
}

// Analytics mocks base method.
func (m *MockEngineRepository) Analytics(ctx context.Context) (entities.Analytics, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Analytics", ctx)
	ret0, _ := ret[0].(entities.Analytics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Analytics indicates an expected call of Analytics.
func (mr *MockEngineRepositoryMockRecorder) Analytics(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Analytics", reflect.TypeOf((*MockEngineRepository)(nil).Analytics), ctx)
}

// Config mocks base method.
func (m *MockEngineRepository) Config(ctx context.Context) (entities.EngineConfig, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Config", ctx)
	ret0, _ := ret[0].(entities.EngineConfig)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Config indicates an expected call of Config.
func (mr *MockEngineRepositoryMockRecorder) Config(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Config", reflect.TypeOf((*MockEngineRepository)(nil).Config), ctx)
}

// Paused mocks base method.
func (m *MockEngineRepository) Paused(ctx context.Context) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Paused", ctx)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Paused indicates an expected call of Paused.
func (mr *MockEngineRepositoryMockRecorder) Paused(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Paused", reflect.TypeOf((*MockEngineRepository)(nil).Paused), ctx)
}

// SaveAnalytics mocks base method.
func (m *MockEngineRepository) SaveAnalytics(ctx context.Context, analytics entities.Analytics) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveAnalytics", ctx, analytics)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveAnalytics indicates an expected call of SaveAnalytics.
func (mr *MockEngineRepositoryMockRecorder) SaveAnalytics(ctx, analytics any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveAnalytics", reflect.TypeOf((*MockEngineRepository)(nil).SaveAnalytics), ctx, analytics)
}

// MockTokenLedger is a mock of TokenLedger interface.
type MockTokenLedger struct {
	ctrl     *gomock.Controller
	recorder *MockTokenLedgerMockRecorder
}

// MockTokenLedgerMockRecorder is the mock recorder for MockTokenLedger.
type MockTokenLedgerMockRecorder struct {
	mock *MockTokenLedger
}

// NewMockTokenLedger creates a new mock instance.
func NewMockTokenLedger(ctrl *gomock.Controller) *MockTokenLedger {
	mock := &MockTokenLedger{ctrl: ctrl}
	mock.recorder = &MockTokenLedgerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenLedger) EXPECT() *MockTokenLedgerMockRecorder {
	return m.recorder
}

// Move mocks base method.
func (m *MockTokenLedger) Move(ctx context.Context, from, to entities.Address, amount int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Move", ctx, from, to, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// Move indicates an expected call of Move.
func (mr *MockTokenLedgerMockRecorder) Move(ctx, from, to, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Move", reflect.TypeOf((*MockTokenLedger)(nil).Move), ctx, from, to, amount)
}

// MockClock is a mock of Clock interface.
type MockClock struct {
	ctrl     *gomock.Controller
	recorder *MockClockMockRecorder
}

// MockClockMockRecorder is the mock recorder for MockClock.
type MockClockMockRecorder struct {
	mock *MockClock
}

// NewMockClock creates a new mock instance.
func NewMockClock(ctrl *gomock.Controller) *MockClock {
	mock := &MockClock{ctrl: ctrl}
	mock.recorder = &MockClockMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockClock) EXPECT() *MockClockMockRecorder {
	return m.recorder
}

// NextSeq mocks base method.
func (m *MockClock) NextSeq(ctx context.Context) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextSeq", ctx)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NextSeq indicates an expected call of NextSeq.
func (mr *MockClockMockRecorder) NextSeq(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextSeq", reflect.TypeOf((*MockClock)(nil).NextSeq), ctx)
}

// Timestamp mocks base method.
func (m *MockClock) Timestamp() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Timestamp")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// Timestamp indicates an expected call of Timestamp.
func (mr *MockClockMockRecorder) Timestamp() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Timestamp", reflect.TypeOf((*MockClock)(nil).Timestamp))
}

// MockEventPublisher is a mock of EventPublisher interface.
type MockEventPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockEventPublisherMockRecorder
}

// MockEventPublisherMockRecorder is the mock recorder for MockEventPublisher.
type MockEventPublisherMockRecorder struct {
	mock *MockEventPublisher
}

// NewMockEventPublisher creates a new mock instance.
func NewMockEventPublisher(ctrl *gomock.Controller) *MockEventPublisher {
	mock := &MockEventPublisher{ctrl: ctrl}
	mock.recorder = &MockEventPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventPublisher) EXPECT() *MockEventPublisherMockRecorder {
	return m.recorder
}

// Emit mocks base method.
func (m *MockEventPublisher) Emit(events ...events.Event) {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range events {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, "Emit", varargs...)
}

// Emit indicates an expected call of Emit.
func (mr *MockEventPublisherMockRecorder) Emit(events ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Emit", reflect.TypeOf((*MockEventPublisher)(nil).Emit), events...)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
