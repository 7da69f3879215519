package testing

import "github.com/stretchr/testify/mock"

// MockLogger is a mock implementation of logger.Logger
type MockLogger struct {
	mock.Mock
}

// NewMockLogger returns a MockLogger that accepts every message and reports
// the given debug state from Enabled.
func NewMockLogger(debug bool) *MockLogger {
	m := new(MockLogger)
	m.On("Debug", mock.Anything).Return().Maybe()
	m.On("Info", mock.Anything).Return().Maybe()
	m.On("Warn", mock.Anything).Return().Maybe()
	m.On("Error", mock.Anything).Return().Maybe()
	m.On("Enabled", "debug").Return(debug).Maybe()
	m.On("Enabled", mock.Anything).Return(true).Maybe()
	return m
}

func (m *MockLogger) Debug(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Info(args ...interface{})  { m.Called(args...) }
func (m *MockLogger) Warn(args ...interface{})  { m.Called(args...) }
func (m *MockLogger) Error(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Fatal(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Panic(args ...interface{}) { m.Called(args...) }

func (m *MockLogger) Enabled(level string) bool {
	return m.Called(level).Bool(0)
}
