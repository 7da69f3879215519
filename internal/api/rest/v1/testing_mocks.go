//go:build unit
// +build unit

package v1

import (
	"github.com/stretchr/testify/mock"
)

// MockAESProcessor is a mock implementation of AESProcessor
type MockAESProcessor struct {
	mock.Mock
}

func (m *MockAESProcessor) GenerateKey(keySize int) ([]byte, error) {
	args := m.Called(keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESProcessor) Encrypt(data, key []byte) ([]byte, error) {
	args := m.Called(data, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	args := m.Called(ciphertext, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESProcessor) EncryptBlock(block, key []byte) ([]byte, error) {
	args := m.Called(block, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESProcessor) DecryptBlock(block, key []byte) ([]byte, error) {
	args := m.Called(block, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAESProcessor) ExpandKey(key []byte) ([][]byte, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]byte), args.Error(1)
}
