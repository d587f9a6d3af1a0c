// Code generated by MockGen. DO NOT EDIT.
// Source: interface.go
//
// Generated by this command:
//
//	mockgen -package mocksimulator -source=interface.go -destination=mock/mocksimulator.go *
//

// Package mocksimulator is a generated GoMock package.
package mocksimulator

import (
	simulator "avconsole/internal/simulator"
	domain "avconsole/pkg/domain"
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockSimulator is a mock of Simulator interface.
type MockSimulator struct {
	ctrl     *gomock.Controller
	recorder *MockSimulatorMockRecorder
	isgomock struct{}
}

// MockSimulatorMockRecorder is the mock recorder for MockSimulator.
type MockSimulatorMockRecorder struct {
	mock *MockSimulator
}

// NewMockSimulator creates a new mock instance.
func NewMockSimulator(ctrl *gomock.Controller) *MockSimulator {
	mock := &MockSimulator{ctrl: ctrl}
	mock.recorder = &MockSimulatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSimulator) EXPECT() *MockSimulatorMockRecorder {
	return m.recorder
}

// DeleteScan mocks base method.
func (m *MockSimulator) DeleteScan(ctx context.Context, id domain.ScanID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteScan", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteScan indicates an expected call of DeleteScan.
func (mr *MockSimulatorMockRecorder) DeleteScan(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteScan", reflect.TypeOf((*MockSimulator)(nil).DeleteScan), ctx, id)
}

// FinishScan mocks base method.
func (m *MockSimulator) FinishScan(ctx context.Context, id domain.ScanID, trigger simulator.CompletionTrigger) (*domain.Scan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FinishScan", ctx, id, trigger)
	ret0, _ := ret[0].(*domain.Scan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FinishScan indicates an expected call of FinishScan.
func (mr *MockSimulatorMockRecorder) FinishScan(ctx, id, trigger any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FinishScan", reflect.TypeOf((*MockSimulator)(nil).FinishScan), ctx, id, trigger)
}

// OwnerScans mocks base method.
func (m *MockSimulator) OwnerScans(ctx context.Context, ownerID domain.UserID, limit uint) ([]simulator.ScanView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OwnerScans", ctx, ownerID, limit)
	ret0, _ := ret[0].([]simulator.ScanView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OwnerScans indicates an expected call of OwnerScans.
func (mr *MockSimulatorMockRecorder) OwnerScans(ctx, ownerID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OwnerScans", reflect.TypeOf((*MockSimulator)(nil).OwnerScans), ctx, ownerID, limit)
}

// RecentScans mocks base method.
func (m *MockSimulator) RecentScans(ctx context.Context, limit uint) ([]simulator.ScanView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecentScans", ctx, limit)
	ret0, _ := ret[0].([]simulator.ScanView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecentScans indicates an expected call of RecentScans.
func (mr *MockSimulatorMockRecorder) RecentScans(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecentScans", reflect.TypeOf((*MockSimulator)(nil).RecentScans), ctx, limit)
}

// ScanStatus mocks base method.
func (m *MockSimulator) ScanStatus(ctx context.Context, id domain.ScanID) (*simulator.ScanView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ScanStatus", ctx, id)
	ret0, _ := ret[0].(*simulator.ScanView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ScanStatus indicates an expected call of ScanStatus.
func (mr *MockSimulatorMockRecorder) ScanStatus(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScanStatus", reflect.TypeOf((*MockSimulator)(nil).ScanStatus), ctx, id)
}

// StartScan mocks base method.
func (m *MockSimulator) StartScan(ctx context.Context, typ domain.ScanType, ownerID domain.UserID) (*simulator.ScanView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StartScan", ctx, typ, ownerID)
	ret0, _ := ret[0].(*simulator.ScanView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StartScan indicates an expected call of StartScan.
func (mr *MockSimulatorMockRecorder) StartScan(ctx, typ, ownerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StartScan", reflect.TypeOf((*MockSimulator)(nil).StartScan), ctx, typ, ownerID)
}
