// Code generated by MockGen. DO NOT EDIT.
// Source: interface.go
//
// Generated by this command:
//
//	mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *
//

// Package mockregistry is a generated GoMock package.
package mockregistry

import (
	registry "avconsole/internal/registry"
	domain "avconsole/pkg/domain"
	storage "avconsole/pkg/storage"
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockRegistry is a mock of Registry interface.
type MockRegistry struct {
	ctrl     *gomock.Controller
	recorder *MockRegistryMockRecorder
	isgomock struct{}
}

// MockRegistryMockRecorder is the mock recorder for MockRegistry.
type MockRegistryMockRecorder struct {
	mock *MockRegistry
}

// NewMockRegistry creates a new mock instance.
func NewMockRegistry(ctrl *gomock.Controller) *MockRegistry {
	mock := &MockRegistry{ctrl: ctrl}
	mock.recorder = &MockRegistryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRegistry) EXPECT() *MockRegistryMockRecorder {
	return m.recorder
}

// CleanThreat mocks base method.
func (m *MockRegistry) CleanThreat(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CleanThreat", ctx, id)
	ret0, _ := ret[0].(*domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CleanThreat indicates an expected call of CleanThreat.
func (mr *MockRegistryMockRecorder) CleanThreat(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CleanThreat", reflect.TypeOf((*MockRegistry)(nil).CleanThreat), ctx, id)
}

// CreateRandomThreats mocks base method.
func (m *MockRegistry) CreateRandomThreats(ctx context.Context, count int, ownerID domain.UserID) ([]domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateRandomThreats", ctx, count, ownerID)
	ret0, _ := ret[0].([]domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateRandomThreats indicates an expected call of CreateRandomThreats.
func (mr *MockRegistryMockRecorder) CreateRandomThreats(ctx, count, ownerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateRandomThreats", reflect.TypeOf((*MockRegistry)(nil).CreateRandomThreats), ctx, count, ownerID)
}

// DeleteThreat mocks base method.
func (m *MockRegistry) DeleteThreat(ctx context.Context, id domain.ThreatID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteThreat", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteThreat indicates an expected call of DeleteThreat.
func (mr *MockRegistryMockRecorder) DeleteThreat(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteThreat", reflect.TypeOf((*MockRegistry)(nil).DeleteThreat), ctx, id)
}

// Stats mocks base method.
func (m *MockRegistry) Stats(ctx context.Context) (*registry.Stats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stats", ctx)
	ret0, _ := ret[0].(*registry.Stats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Stats indicates an expected call of Stats.
func (mr *MockRegistryMockRecorder) Stats(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stats", reflect.TypeOf((*MockRegistry)(nil).Stats), ctx)
}

// Threat mocks base method.
func (m *MockRegistry) Threat(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Threat", ctx, id)
	ret0, _ := ret[0].(*domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Threat indicates an expected call of Threat.
func (mr *MockRegistryMockRecorder) Threat(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Threat", reflect.TypeOf((*MockRegistry)(nil).Threat), ctx, id)
}

// Threats mocks base method.
func (m *MockRegistry) Threats(ctx context.Context, filter storage.ThreatFilter) ([]domain.Threat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Threats", ctx, filter)
	ret0, _ := ret[0].([]domain.Threat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Threats indicates an expected call of Threats.
func (mr *MockRegistryMockRecorder) Threats(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Threats", reflect.TypeOf((*MockRegistry)(nil).Threats), ctx, filter)
}

// User mocks base method.
func (m *MockRegistry) User(ctx context.Context, id domain.UserID) (*domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "User", ctx, id)
	ret0, _ := ret[0].(*domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// User indicates an expected call of User.
func (mr *MockRegistryMockRecorder) User(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "User", reflect.TypeOf((*MockRegistry)(nil).User), ctx, id)
}

// Users mocks base method.
func (m *MockRegistry) Users(ctx context.Context, limit uint) ([]domain.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Users", ctx, limit)
	ret0, _ := ret[0].([]domain.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Users indicates an expected call of Users.
func (mr *MockRegistryMockRecorder) Users(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Users", reflect.TypeOf((*MockRegistry)(nil).Users), ctx, limit)
}
