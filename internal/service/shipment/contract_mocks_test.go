// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
//

// Package shipment_test is a generated GoMock package.
package shipment_test

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

// AddCompanyActive mocks base method.
func (m *MockRepository) AddCompanyActive(ctx context.Context, company entities.Address, delta int64, liveUntil uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddCompanyActive", ctx, company, delta, liveUntil)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddCompanyActive indicates an expected call of AddCompanyActive.
func (mr *MockRepositoryMockRecorder) AddCompanyActive(ctx, company, delta, liveUntil any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddCompanyActive", reflect.TypeOf((*MockRepository)(nil).AddCompanyActive), ctx, company, delta, liveUntil)
}

// Archive mocks base method.
func (m *MockRepository) Archive(ctx context.Context, shipmentEntity *entities.Shipment, liveUntil uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Archive", ctx, shipmentEntity, liveUntil)
	ret0, _ := ret[0].(error)
	return ret0
}

// Archive indicates an expected call of Archive.
func (mr *MockRepositoryMockRecorder) Archive(ctx, shipmentEntity, liveUntil any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Archive", reflect.TypeOf((*MockRepository)(nil).Archive), ctx, shipmentEntity, liveUntil)
}

// CompanyActiveCount mocks base method.
func (m *MockRepository) CompanyActiveCount(ctx context.Context, company entities.Address) (uint32, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompanyActiveCount", ctx, company)
	ret0, _ := ret[0].(uint32)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompanyActiveCount indicates an expected call of CompanyActiveCount.
func (mr *MockRepositoryMockRecorder) CompanyActiveCount(ctx, company any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompanyActiveCount", reflect.TypeOf((*MockRepository)(nil).CompanyActiveCount), ctx, company)
}

// ExpiredActiveIDs mocks base method.
func (m *MockRepository) ExpiredActiveIDs(ctx context.Context, now uint64, limit int) ([]uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExpiredActiveIDs", ctx, now, limit)
	ret0, _ := ret[0].([]uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExpiredActiveIDs indicates an expected call of ExpiredActiveIDs.
func (mr *MockRepositoryMockRecorder) ExpiredActiveIDs(ctx, now, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExpiredActiveIDs", reflect.TypeOf((*MockRepository)(nil).ExpiredActiveIDs), ctx, now, limit)
}

// ExtendTTL mocks base method.
func (m *MockRepository) ExtendTTL(ctx context.Context, id, minUntil uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtendTTL", ctx, id, minUntil)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExtendTTL indicates an expected call of ExtendTTL.
func (mr *MockRepositoryMockRecorder) ExtendTTL(ctx, id, minUntil any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtendTTL", reflect.TypeOf((*MockRepository)(nil).ExtendTTL), ctx, id, minUntil)
}

// Get mocks base method.
func (m *MockRepository) Get(ctx context.Context, id, now uint64) (*entities.Shipment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id, now)
	ret0, _ := ret[0].(*entities.Shipment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockRepositoryMockRecorder) Get(ctx, id, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockRepository)(nil).Get), ctx, id, now)
}

// IncEventCount mocks base method.
func (m *MockRepository) IncEventCount(ctx context.Context, id, liveUntil uint64) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncEventCount", ctx, id, liveUntil)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IncEventCount indicates an expected call of IncEventCount.
func (mr *MockRepositoryMockRecorder) IncEventCount(ctx, id, liveUntil any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncEventCount", reflect.TypeOf((*MockRepository)(nil).IncEventCount), ctx, id, liveUntil)
}

// LastStatusUpdate mocks base method.
func (m *MockRepository) LastStatusUpdate(ctx context.Context, id, now uint64) (uint64, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastStatusUpdate", ctx, id, now)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// LastStatusUpdate indicates an expected call of LastStatusUpdate.
func (mr *MockRepositoryMockRecorder) LastStatusUpdate(ctx, id, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastStatusUpdate", reflect.TypeOf((*MockRepository)(nil).LastStatusUpdate), ctx, id, now)
}

// NextID mocks base method.
func (m *MockRepository) NextID(ctx context.Context) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextID", ctx)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NextID indicates an expected call of NextID.
func (mr *MockRepositoryMockRecorder) NextID(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextID", reflect.TypeOf((*MockRepository)(nil).NextID), ctx)
}

// Save mocks base method.
func (m *MockRepository) Save(ctx context.Context, shipmentEntity *entities.Shipment, liveUntil uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Save", ctx, shipmentEntity, liveUntil)
	ret0, _ := ret[0].(error)
	return ret0
}

// Save indicates an expected call of Save.
func (mr *MockRepositoryMockRecorder) Save(ctx, shipmentEntity, liveUntil any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Save", reflect.TypeOf((*MockRepository)(nil).Save), ctx, shipmentEntity, liveUntil)
}

// SetLastStatusUpdate mocks base method.
func (m *MockRepository) SetLastStatusUpdate(ctx context.Context, id, ts, liveUntil uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetLastStatusUpdate", ctx, id, ts, liveUntil)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetLastStatusUpdate indicates an expected call of SetLastStatusUpdate.
func (mr *MockRepositoryMockRecorder) SetLastStatusUpdate(ctx, id, ts, liveUntil any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetLastStatusUpdate", reflect.TypeOf((*MockRepository)(nil).SetLastStatusUpdate), ctx, id, ts, liveUntil)
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

// HasRole mocks base method.
func (m *MockRolesRepository) HasRole(ctx context.Context, addr entities.Address, role entities.Role, now uint64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasRole", ctx, addr, role, now)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasRole indicates an expected call of HasRole.
func (mr *MockRolesRepositoryMockRecorder) HasRole(ctx, addr, role, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasRole", reflect.TypeOf((*MockRolesRepository)(nil).HasRole), ctx, addr, role, now)
}

// IsWhitelisted mocks base method.
func (m *MockRolesRepository) IsWhitelisted(ctx context.Context, company, carrier entities.Address, now uint64) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsWhitelisted", ctx, company, carrier, now)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsWhitelisted indicates an expected call of IsWhitelisted.
func (mr *MockRolesRepositoryMockRecorder) IsWhitelisted(ctx, company, carrier, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsWhitelisted", reflect.TypeOf((*MockRolesRepository)(nil).IsWhitelisted), ctx, company, carrier, now)
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

// Version mocks base method.
func (m *MockEngineRepository) Version(ctx context.Context) (uint32, entities.Hash, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Version", ctx)
	ret0, _ := ret[0].(uint32)
	ret1, _ := ret[1].(entities.Hash)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Version indicates an expected call of Version.
func (mr *MockEngineRepositoryMockRecorder) Version(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Version", reflect.TypeOf((*MockEngineRepository)(nil).Version), ctx)
}

// MockEscrowEngine is a mock of EscrowEngine interface.
type MockEscrowEngine struct {
	ctrl     *gomock.Controller
	recorder *MockEscrowEngineMockRecorder
}

// MockEscrowEngineMockRecorder is the mock recorder for MockEscrowEngine.
type MockEscrowEngineMockRecorder struct {
	mock *MockEscrowEngine
}

// NewMockEscrowEngine creates a new mock instance.
func NewMockEscrowEngine(ctrl *gomock.Controller) *MockEscrowEngine {
	mock := &MockEscrowEngine{ctrl: ctrl}
	mock.recorder = &MockEscrowEngineMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEscrowEngine) EXPECT() *MockEscrowEngineMockRecorder {
	return m.recorder
}

// RefundAll mocks base method.
func (m *MockEscrowEngine) RefundAll(ctx context.Context, shipmentEntity *entities.Shipment) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefundAll", ctx, shipmentEntity)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RefundAll indicates an expected call of RefundAll.
func (mr *MockEscrowEngineMockRecorder) RefundAll(ctx, shipmentEntity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefundAll", reflect.TypeOf((*MockEscrowEngine)(nil).RefundAll), ctx, shipmentEntity)
}

// ReleaseAll mocks base method.
func (m *MockEscrowEngine) ReleaseAll(ctx context.Context, shipmentEntity *entities.Shipment) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReleaseAll", ctx, shipmentEntity)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReleaseAll indicates an expected call of ReleaseAll.
func (mr *MockEscrowEngineMockRecorder) ReleaseAll(ctx, shipmentEntity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReleaseAll", reflect.TypeOf((*MockEscrowEngine)(nil).ReleaseAll), ctx, shipmentEntity)
}

// ReleasePercent mocks base method.
func (m *MockEscrowEngine) ReleasePercent(ctx context.Context, shipmentEntity *entities.Shipment, percent uint32) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReleasePercent", ctx, shipmentEntity, percent)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReleasePercent indicates an expected call of ReleasePercent.
func (mr *MockEscrowEngineMockRecorder) ReleasePercent(ctx, shipmentEntity, percent any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReleasePercent", reflect.TypeOf((*MockEscrowEngine)(nil).ReleasePercent), ctx, shipmentEntity, percent)
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
