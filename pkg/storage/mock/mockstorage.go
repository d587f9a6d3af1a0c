// Code generated by MockGen. DO NOT EDIT.
// Source: interface.go
//
// Generated by this command:
//
//	mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
//

// Package mockstorage is a generated GoMock package.
package mockstorage

import (
	domain "avconsole/pkg/domain"
	storage "avconsole/pkg/storage"
	context "context"
	reflect "reflect"

	river "github.com/riverqueue/river"
	gomock "go.uber.org/mock/gomock"
)

// MockAllStorage is a mock of AllStorage interface.
type MockAllStorage struct {
	ctrl     *gomock.Controller
	recorder *MockAllStorageMockRecorder
	isgomock struct{}
}

// MockAllStorageMockRecorder is the mock recorder for MockAllStorage.
type MockAllStorageMockRecorder struct {
	mock *MockAllStorage
}

// NewMockAllStorage creates a new mock instance.
func NewMockAllStorage(ctrl *gomock.Controller) *MockAllStorage {
	mock := &MockAllStorage{ctrl: ctrl}
	mock.recorder = &MockAllStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAllStorage) EXPECT() *MockAllStorageMockRecorder {
	return m.recorder
}

// AddJob mocks base method.
func (m *MockAllStorage) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddJob", ctx, args, opts)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddJob indicates an expected call of AddJob.
func (mr *MockAllStorageMockRecorder) AddJob(ctx, args, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddJob", reflect.TypeOf((*MockAllStorage)(nil).AddJob), ctx, args, opts)
}

// CompleteScan mocks base method.
func (m *MockAllStorage) CompleteScan(ctx context.Context, id domain.ScanID, completion storage.ScanCompletion) (*domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompleteScan", ctx, id, completion)
	ret0, _ := ret[0].(*domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompleteScan indicates an expected call of CompleteScan.
func (mr *MockAllStorageMockRecorder) CompleteScan(ctx, id, completion any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompleteScan", reflect.TypeOf((*MockAllStorage)(nil).CompleteScan), ctx, id, completion)
}

// CountScans mocks base method.
func (m *MockAllStorage) CountScans(ctx context.Context, filter storage.ScanFilter) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountScans", ctx, filter)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountScans indicates an expected call of CountScans.
func (mr *MockAllStorageMockRecorder) CountScans(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountScans", reflect.TypeOf((*MockAllStorage)(nil).CountScans), ctx, filter)
}

// CountThreats mocks base method.
func (m *MockAllStorage) CountThreats(ctx context.Context, filter storage.ThreatFilter) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountThreats", ctx, filter)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountThreats indicates an expected call of CountThreats.
func (mr *MockAllStorageMockRecorder) CountThreats(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountThreats", reflect.TypeOf((*MockAllStorage)(nil).CountThreats), ctx, filter)
}

// CountUsers mocks base method.
func (m *MockAllStorage) CountUsers(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountUsers", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountUsers indicates an expected call of CountUsers.
func (mr *MockAllStorageMockRecorder) CountUsers(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountUsers", reflect.TypeOf((*MockAllStorage)(nil).CountUsers), ctx)
}

// DeleteScan mocks base method.
func (m *MockAllStorage) DeleteScan(ctx context.Context, id domain.ScanID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteScan", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteScan indicates an expected call of DeleteScan.
func (mr *MockAllStorageMockRecorder) DeleteScan(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteScan", reflect.TypeOf((*MockAllStorage)(nil).DeleteScan), ctx, id)
}

// DeleteThreat mocks base method.
func (m *MockAllStorage) DeleteThreat(ctx context.Context, id domain.ThreatID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteThreat", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteThreat indicates an expected call of DeleteThreat.
func (mr *MockAllStorageMockRecorder) DeleteThreat(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteThreat", reflect.TypeOf((*MockAllStorage)(nil).DeleteThreat), ctx, id)
}

// MarkThreatCleaned mocks base method.
func (m *MockAllStorage) MarkThreatCleaned(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkThreatCleaned", ctx, id)
	ret0, _ := ret[0].(*domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MarkThreatCleaned indicates an expected call of MarkThreatCleaned.
func (mr *MockAllStorageMockRecorder) MarkThreatCleaned(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkThreatCleaned", reflect.TypeOf((*MockAllStorage)(nil).MarkThreatCleaned), ctx, id)
}

// OwnerScans mocks base method.
func (m *MockAllStorage) OwnerScans(ctx context.Context, ownerID domain.UserID, limit uint) ([]domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OwnerScans", ctx, ownerID, limit)
	ret0, _ := ret[0].([]domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OwnerScans indicates an expected call of OwnerScans.
func (mr *MockAllStorageMockRecorder) OwnerScans(ctx, ownerID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OwnerScans", reflect.TypeOf((*MockAllStorage)(nil).OwnerScans), ctx, ownerID, limit)
}

// RecentScans mocks base method.
func (m *MockAllStorage) RecentScans(ctx context.Context, limit uint) ([]domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecentScans", ctx, limit)
	ret0, _ := ret[0].([]domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecentScans indicates an expected call of RecentScans.
func (mr *MockAllStorageMockRecorder) RecentScans(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecentScans", reflect.TypeOf((*MockAllStorage)(nil).RecentScans), ctx, limit)
}

// ScanByID mocks base method.
func (m *MockAllStorage) ScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ScanByID", ctx, id)
	ret0, _ := ret[0].(*domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ScanByID indicates an expected call of ScanByID.
func (mr *MockAllStorageMockRecorder) ScanByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScanByID", reflect.TypeOf((*MockAllStorage)(nil).ScanByID), ctx, id)
}

// StoreScans mocks base method.
func (m *MockAllStorage) StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range scans {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreScans", varargs...)
	ret0, _ := ret[0].([]domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreScans indicates an expected call of StoreScans.
func (mr *MockAllStorageMockRecorder) StoreScans(ctx any, scans ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, scans...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreScans", reflect.TypeOf((*MockAllStorage)(nil).StoreScans), varargs...)
}

// StoreThreats mocks base method.
func (m *MockAllStorage) StoreThreats(ctx context.Context, threats ...domain.Threat) ([]domain.Threat, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range threats {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreThreats", varargs...)
	ret0, _ := ret[0].([]domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreThreats indicates an expected call of StoreThreats.
func (mr *MockAllStorageMockRecorder) StoreThreats(ctx any, threats ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, threats...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreThreats", reflect.TypeOf((*MockAllStorage)(nil).StoreThreats), varargs...)
}

// StoreUser mocks base method.
func (m *MockAllStorage) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StoreUser", ctx, user)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreUser indicates an expected call of StoreUser.
func (mr *MockAllStorageMockRecorder) StoreUser(ctx, user any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreUser", reflect.TypeOf((*MockAllStorage)(nil).StoreUser), ctx, user)
}

// ThreatByID mocks base method.
func (m *MockAllStorage) ThreatByID(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ThreatByID", ctx, id)
	ret0, _ := ret[0].(*domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ThreatByID indicates an expected call of ThreatByID.
func (mr *MockAllStorageMockRecorder) ThreatByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ThreatByID", reflect.TypeOf((*MockAllStorage)(nil).ThreatByID), ctx, id)
}

// Threats mocks base method.
func (m *MockAllStorage) Threats(ctx context.Context, filter storage.ThreatFilter) ([]domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Threats", ctx, filter)
	ret0, _ := ret[0].([]domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Threats indicates an expected call of Threats.
func (mr *MockAllStorageMockRecorder) Threats(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Threats", reflect.TypeOf((*MockAllStorage)(nil).Threats), ctx, filter)
}

// UserByEmail mocks base method.
func (m *MockAllStorage) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserByEmail", ctx, email)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserByEmail indicates an expected call of UserByEmail.
func (mr *MockAllStorageMockRecorder) UserByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserByEmail", reflect.TypeOf((*MockAllStorage)(nil).UserByEmail), ctx, email)
}

// UserByID mocks base method.
func (m *MockAllStorage) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserByID", ctx, id)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserByID indicates an expected call of UserByID.
func (mr *MockAllStorageMockRecorder) UserByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserByID", reflect.TypeOf((*MockAllStorage)(nil).UserByID), ctx, id)
}

// Users mocks base method.
func (m *MockAllStorage) Users(ctx context.Context, limit uint) ([]domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Users", ctx, limit)
	ret0, _ := ret[0].([]domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Users indicates an expected call of Users.
func (mr *MockAllStorageMockRecorder) Users(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Users", reflect.TypeOf((*MockAllStorage)(nil).Users), ctx, limit)
}

// MockTxStorage is a mock of TxStorage interface.
type MockTxStorage struct {
	ctrl     *gomock.Controller
	recorder *MockTxStorageMockRecorder
	isgomock struct{}
}

// MockTxStorageMockRecorder is the mock recorder for MockTxStorage.
type MockTxStorageMockRecorder struct {
	mock *MockTxStorage
}

// NewMockTxStorage creates a new mock instance.
func NewMockTxStorage(ctrl *gomock.Controller) *MockTxStorage {
	mock := &MockTxStorage{ctrl: ctrl}
	mock.recorder = &MockTxStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxStorage) EXPECT() *MockTxStorageMockRecorder {
	return m.recorder
}

// AddJob mocks base method.
func (m *MockTxStorage) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddJob", ctx, args, opts)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddJob indicates an expected call of AddJob.
func (mr *MockTxStorageMockRecorder) AddJob(ctx, args, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddJob", reflect.TypeOf((*MockTxStorage)(nil).AddJob), ctx, args, opts)
}

// Commit mocks base method.
func (m *MockTxStorage) Commit() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Commit")
	ret0, _ := ret[0].(error)
	return ret0
}

// Commit indicates an expected call of Commit.
func (mr *MockTxStorageMockRecorder) Commit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockTxStorage)(nil).Commit))
}

// CompleteScan mocks base method.
func (m *MockTxStorage) CompleteScan(ctx context.Context, id domain.ScanID, completion storage.ScanCompletion) (*domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompleteScan", ctx, id, completion)
	ret0, _ := ret[0].(*domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompleteScan indicates an expected call of CompleteScan.
func (mr *MockTxStorageMockRecorder) CompleteScan(ctx, id, completion any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompleteScan", reflect.TypeOf((*MockTxStorage)(nil).CompleteScan), ctx, id, completion)
}

// CountScans mocks base method.
func (m *MockTxStorage) CountScans(ctx context.Context, filter storage.ScanFilter) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountScans", ctx, filter)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountScans indicates an expected call of CountScans.
func (mr *MockTxStorageMockRecorder) CountScans(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountScans", reflect.TypeOf((*MockTxStorage)(nil).CountScans), ctx, filter)
}

// CountThreats mocks base method.
func (m *MockTxStorage) CountThreats(ctx context.Context, filter storage.ThreatFilter) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountThreats", ctx, filter)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountThreats indicates an expected call of CountThreats.
func (mr *MockTxStorageMockRecorder) CountThreats(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountThreats", reflect.TypeOf((*MockTxStorage)(nil).CountThreats), ctx, filter)
}

// CountUsers mocks base method.
func (m *MockTxStorage) CountUsers(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountUsers", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountUsers indicates an expected call of CountUsers.
func (mr *MockTxStorageMockRecorder) CountUsers(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountUsers", reflect.TypeOf((*MockTxStorage)(nil).CountUsers), ctx)
}

// DeleteScan mocks base method.
func (m *MockTxStorage) DeleteScan(ctx context.Context, id domain.ScanID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteScan", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteScan indicates an expected call of DeleteScan.
func (mr *MockTxStorageMockRecorder) DeleteScan(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteScan", reflect.TypeOf((*MockTxStorage)(nil).DeleteScan), ctx, id)
}

// DeleteThreat mocks base method.
func (m *MockTxStorage) DeleteThreat(ctx context.Context, id domain.ThreatID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteThreat", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteThreat indicates an expected call of DeleteThreat.
func (mr *MockTxStorageMockRecorder) DeleteThreat(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteThreat", reflect.TypeOf((*MockTxStorage)(nil).DeleteThreat), ctx, id)
}

// MarkThreatCleaned mocks base method.
func (m *MockTxStorage) MarkThreatCleaned(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkThreatCleaned", ctx, id)
	ret0, _ := ret[0].(*domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MarkThreatCleaned indicates an expected call of MarkThreatCleaned.
func (mr *MockTxStorageMockRecorder) MarkThreatCleaned(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkThreatCleaned", reflect.TypeOf((*MockTxStorage)(nil).MarkThreatCleaned), ctx, id)
}

// OwnerScans mocks base method.
func (m *MockTxStorage) OwnerScans(ctx context.Context, ownerID domain.UserID, limit uint) ([]domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OwnerScans", ctx, ownerID, limit)
	ret0, _ := ret[0].([]domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OwnerScans indicates an expected call of OwnerScans.
func (mr *MockTxStorageMockRecorder) OwnerScans(ctx, ownerID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OwnerScans", reflect.TypeOf((*MockTxStorage)(nil).OwnerScans), ctx, ownerID, limit)
}

// RecentScans mocks base method.
func (m *MockTxStorage) RecentScans(ctx context.Context, limit uint) ([]domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecentScans", ctx, limit)
	ret0, _ := ret[0].([]domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecentScans indicates an expected call of RecentScans.
func (mr *MockTxStorageMockRecorder) RecentScans(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecentScans", reflect.TypeOf((*MockTxStorage)(nil).RecentScans), ctx, limit)
}

// Rollback mocks base method.
func (m *MockTxStorage) Rollback() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rollback")
	ret0, _ := ret[0].(error)
	return ret0
}

// Rollback indicates an expected call of Rollback.
func (mr *MockTxStorageMockRecorder) Rollback() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rollback", reflect.TypeOf((*MockTxStorage)(nil).Rollback))
}

// ScanByID mocks base method.
func (m *MockTxStorage) ScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ScanByID", ctx, id)
	ret0, _ := ret[0].(*domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ScanByID indicates an expected call of ScanByID.
func (mr *MockTxStorageMockRecorder) ScanByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScanByID", reflect.TypeOf((*MockTxStorage)(nil).ScanByID), ctx, id)
}

// StoreScans mocks base method.
func (m *MockTxStorage) StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range scans {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreScans", varargs...)
	ret0, _ := ret[0].([]domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreScans indicates an expected call of StoreScans.
func (mr *MockTxStorageMockRecorder) StoreScans(ctx any, scans ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, scans...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreScans", reflect.TypeOf((*MockTxStorage)(nil).StoreScans), varargs...)
}

// StoreThreats mocks base method.
func (m *MockTxStorage) StoreThreats(ctx context.Context, threats ...domain.Threat) ([]domain.Threat, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range threats {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreThreats", varargs...)
	ret0, _ := ret[0].([]domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreThreats indicates an expected call of StoreThreats.
func (mr *MockTxStorageMockRecorder) StoreThreats(ctx any, threats ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, threats...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreThreats", reflect.TypeOf((*MockTxStorage)(nil).StoreThreats), varargs...)
}

// StoreUser mocks base method.
func (m *MockTxStorage) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StoreUser", ctx, user)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreUser indicates an expected call of StoreUser.
func (mr *MockTxStorageMockRecorder) StoreUser(ctx, user any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreUser", reflect.TypeOf((*MockTxStorage)(nil).StoreUser), ctx, user)
}

// ThreatByID mocks base method.
func (m *MockTxStorage) ThreatByID(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ThreatByID", ctx, id)
	ret0, _ := ret[0].(*domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ThreatByID indicates an expected call of ThreatByID.
func (mr *MockTxStorageMockRecorder) ThreatByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ThreatByID", reflect.TypeOf((*MockTxStorage)(nil).ThreatByID), ctx, id)
}

// Threats mocks base method.
func (m *MockTxStorage) Threats(ctx context.Context, filter storage.ThreatFilter) ([]domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Threats", ctx, filter)
	ret0, _ := ret[0].([]domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Threats indicates an expected call of Threats.
func (mr *MockTxStorageMockRecorder) Threats(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Threats", reflect.TypeOf((*MockTxStorage)(nil).Threats), ctx, filter)
}

// UserByEmail mocks base method.
func (m *MockTxStorage) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserByEmail", ctx, email)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserByEmail indicates an expected call of UserByEmail.
func (mr *MockTxStorageMockRecorder) UserByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserByEmail", reflect.TypeOf((*MockTxStorage)(nil).UserByEmail), ctx, email)
}

// UserByID mocks base method.
func (m *MockTxStorage) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserByID", ctx, id)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserByID indicates an expected call of UserByID.
func (mr *MockTxStorageMockRecorder) UserByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserByID", reflect.TypeOf((*MockTxStorage)(nil).UserByID), ctx, id)
}

// Users mocks base method.
func (m *MockTxStorage) Users(ctx context.Context, limit uint) ([]domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Users", ctx, limit)
	ret0, _ := ret[0].([]domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Users indicates an expected call of Users.
func (mr *MockTxStorageMockRecorder) Users(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Users", reflect.TypeOf((*MockTxStorage)(nil).Users), ctx, limit)
}

// MockStorage is a mock of Storage interface.
type MockStorage struct {
	ctrl     *gomock.Controller
	recorder *MockStorageMockRecorder
	isgomock struct{}
}

// MockStorageMockRecorder is the mock recorder for MockStorage.
type MockStorageMockRecorder struct {
	mock *MockStorage
}

// NewMockStorage creates a new mock instance.
func NewMockStorage(ctrl *gomock.Controller) *MockStorage {
	mock := &MockStorage{ctrl: ctrl}
	mock.recorder = &MockStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorage) EXPECT() *MockStorageMockRecorder {
	return m.recorder
}

// AddJob mocks base method.
func (m *MockStorage) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddJob", ctx, args, opts)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddJob indicates an expected call of AddJob.
func (mr *MockStorageMockRecorder) AddJob(ctx, args, opts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddJob", reflect.TypeOf((*MockStorage)(nil).AddJob), ctx, args, opts)
}

// Begin mocks base method.
func (m *MockStorage) Begin(ctx context.Context) (storage.TxStorage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin", ctx)
	ret0, _ := ret[0].(storage.TxStorage)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Begin indicates an expected call of Begin.
func (mr *MockStorageMockRecorder) Begin(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockStorage)(nil).Begin), ctx)
}

// Close mocks base method.
func (m *MockStorage) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockStorageMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockStorage)(nil).Close))
}

// CompleteScan mocks base method.
func (m *MockStorage) CompleteScan(ctx context.Context, id domain.ScanID, completion storage.ScanCompletion) (*domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompleteScan", ctx, id, completion)
	ret0, _ := ret[0].(*domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompleteScan indicates an expected call of CompleteScan.
func (mr *MockStorageMockRecorder) CompleteScan(ctx, id, completion any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompleteScan", reflect.TypeOf((*MockStorage)(nil).CompleteScan), ctx, id, completion)
}

// CountScans mocks base method.
func (m *MockStorage) CountScans(ctx context.Context, filter storage.ScanFilter) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountScans", ctx, filter)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountScans indicates an expected call of CountScans.
func (mr *MockStorageMockRecorder) CountScans(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountScans", reflect.TypeOf((*MockStorage)(nil).CountScans), ctx, filter)
}

// CountThreats mocks base method.
func (m *MockStorage) CountThreats(ctx context.Context, filter storage.ThreatFilter) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountThreats", ctx, filter)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountThreats indicates an expected call of CountThreats.
func (mr *MockStorageMockRecorder) CountThreats(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountThreats", reflect.TypeOf((*MockStorage)(nil).CountThreats), ctx, filter)
}

// CountUsers mocks base method.
func (m *MockStorage) CountUsers(ctx context.Context) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountUsers", ctx)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountUsers indicates an expected call of CountUsers.
func (mr *MockStorageMockRecorder) CountUsers(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountUsers", reflect.TypeOf((*MockStorage)(nil).CountUsers), ctx)
}

// DeleteScan mocks base method.
func (m *MockStorage) DeleteScan(ctx context.Context, id domain.ScanID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteScan", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteScan indicates an expected call of DeleteScan.
func (mr *MockStorageMockRecorder) DeleteScan(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteScan", reflect.TypeOf((*MockStorage)(nil).DeleteScan), ctx, id)
}

// DeleteThreat mocks base method.
func (m *MockStorage) DeleteThreat(ctx context.Context, id domain.ThreatID) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteThreat", ctx, id)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteThreat indicates an expected call of DeleteThreat.
func (mr *MockStorageMockRecorder) DeleteThreat(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteThreat", reflect.TypeOf((*MockStorage)(nil).DeleteThreat), ctx, id)
}

// MarkThreatCleaned mocks base method.
func (m *MockStorage) MarkThreatCleaned(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkThreatCleaned", ctx, id)
	ret0, _ := ret[0].(*domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MarkThreatCleaned indicates an expected call of MarkThreatCleaned.
func (mr *MockStorageMockRecorder) MarkThreatCleaned(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkThreatCleaned", reflect.TypeOf((*MockStorage)(nil).MarkThreatCleaned), ctx, id)
}

// OwnerScans mocks base method.
func (m *MockStorage) OwnerScans(ctx context.Context, ownerID domain.UserID, limit uint) ([]domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OwnerScans", ctx, ownerID, limit)
	ret0, _ := ret[0].([]domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OwnerScans indicates an expected call of OwnerScans.
func (mr *MockStorageMockRecorder) OwnerScans(ctx, ownerID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OwnerScans", reflect.TypeOf((*MockStorage)(nil).OwnerScans), ctx, ownerID, limit)
}

// RecentScans mocks base method.
func (m *MockStorage) RecentScans(ctx context.Context, limit uint) ([]domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecentScans", ctx, limit)
	ret0, _ := ret[0].([]domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecentScans indicates an expected call of RecentScans.
func (mr *MockStorageMockRecorder) RecentScans(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecentScans", reflect.TypeOf((*MockStorage)(nil).RecentScans), ctx, limit)
}

// ScanByID mocks base method.
func (m *MockStorage) ScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ScanByID", ctx, id)
	ret0, _ := ret[0].(*domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ScanByID indicates an expected call of ScanByID.
func (mr *MockStorageMockRecorder) ScanByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScanByID", reflect.TypeOf((*MockStorage)(nil).ScanByID), ctx, id)
}

// StoreScans mocks base method.
func (m *MockStorage) StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range scans {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreScans", varargs...)
	ret0, _ := ret[0].([]domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreScans indicates an expected call of StoreScans.
func (mr *MockStorageMockRecorder) StoreScans(ctx any, scans ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, scans...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreScans", reflect.TypeOf((*MockStorage)(nil).StoreScans), varargs...)
}

// StoreThreats mocks base method.
func (m *MockStorage) StoreThreats(ctx context.Context, threats ...domain.Threat) ([]domain.Threat, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx}
	for _, a := range threats {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StoreThreats", varargs...)
	ret0, _ := ret[0].([]domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreThreats indicates an expected call of StoreThreats.
func (mr *MockStorageMockRecorder) StoreThreats(ctx any, threats ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx}, threats...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreThreats", reflect.TypeOf((*MockStorage)(nil).StoreThreats), varargs...)
}

// StoreUser mocks base method.
func (m *MockStorage) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StoreUser", ctx, user)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StoreUser indicates an expected call of StoreUser.
func (mr *MockStorageMockRecorder) StoreUser(ctx, user any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StoreUser", reflect.TypeOf((*MockStorage)(nil).StoreUser), ctx, user)
}

// ThreatByID mocks base method.
func (m *MockStorage) ThreatByID(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ThreatByID", ctx, id)
	ret0, _ := ret[0].(*domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ThreatByID indicates an expected call of ThreatByID.
func (mr *MockStorageMockRecorder) ThreatByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ThreatByID", reflect.TypeOf((*MockStorage)(nil).ThreatByID), ctx, id)
}

// Threats mocks base method.
func (m *MockStorage) Threats(ctx context.Context, filter storage.ThreatFilter) ([]domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Threats", ctx, filter)
	ret0, _ := ret[0].([]domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Threats indicates an expected call of Threats.
func (mr *MockStorageMockRecorder) Threats(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Threats", reflect.TypeOf((*MockStorage)(nil).Threats), ctx, filter)
}

// UserByEmail mocks base method.
func (m *MockStorage) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserByEmail", ctx, email)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserByEmail indicates an expected call of UserByEmail.
func (mr *MockStorageMockRecorder) UserByEmail(ctx, email any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserByEmail", reflect.TypeOf((*MockStorage)(nil).UserByEmail), ctx, email)
}

// UserByID mocks base method.
func (m *MockStorage) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserByID", ctx, id)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserByID indicates an expected call of UserByID.
func (mr *MockStorageMockRecorder) UserByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserByID", reflect.TypeOf((*MockStorage)(nil).UserByID), ctx, id)
}

// Users mocks base method.
func (m *MockStorage) Users(ctx context.Context, limit uint) ([]domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Users", ctx, limit)
	ret0, _ := ret[0].([]domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Users indicates an expected call of Users.
func (mr *MockStorageMockRecorder) Users(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Users", reflect.TypeOf((*MockStorage)(nil).Users), ctx, limit)
}

// WithTx mocks base method.
func (m *MockStorage) WithTx(ctx context.Context, cb func(storage.AllStorage) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", ctx, cb)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockStorageMockRecorder) WithTx(ctx, cb any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockStorage)(nil).WithTx), ctx, cb)
}
