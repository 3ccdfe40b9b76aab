package iocache

import (
	"github.com/inkwellhq/inkwell/internal/contract"
	"github.com/inkwellhq/inkwell/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetStateStore implements the StoreManager interface.
func (m *MockStoreManager) GetStateStore() contract.StateStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.StateStore)
	return store
}

// GetContentStore implements the StoreManager interface.
func (m *MockStoreManager) GetContentStore() contract.CacheStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CacheStore)
	return store
}

// MockStateStore is a mock implementation of StateStore for testing.
type MockStateStore struct {
	mock.Mock
}

var _ contract.StateStore = &MockStateStore{} // Compile-time check

// LoadSnapshot implements the StateStore interface.
func (m *MockStateStore) LoadSnapshot() (*schema.Snapshot, error) {
	ret := m.Called()
	snap, _ := ret.Get(0).(*schema.Snapshot)
	return snap, ret.Error(1)
}

// SaveSnapshot implements the StateStore interface.
func (m *MockStateStore) SaveSnapshot(snap *schema.Snapshot) error {
	args := m.Called(snap)
	return args.Error(0)
}

// GetStatus implements the StateStore interface.
func (m *MockStateStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the StateStore interface.
func (m *MockStateStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockCacheStore is a mock implementation of CacheStore for testing.
type MockCacheStore struct {
	mock.Mock
}

var _ contract.CacheStore = &MockCacheStore{} // Compile-time check

// Get implements the CacheStore interface.
func (m *MockCacheStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	return args.Get(0).([]byte), args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the CacheStore interface.
func (m *MockCacheStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// GetStatus implements the CacheStore interface.
func (m *MockCacheStore) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}

// Close implements the CacheStore interface.
func (m *MockCacheStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
