package store

import (
	"fmt"
	"sync"

	"github.com/utkarsh5026/gitlet/pkg/objects"
)

// MemoryObjectStore keeps serialized objects in a map. It backs unit tests
// that exercise history and merge logic without touching disk.
type MemoryObjectStore struct {
	mu   sync.RWMutex
	objs map[objects.ObjectHash]objects.SerializedObject
}

// NewMemoryObjectStore returns an empty store.
func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{objs: make(map[objects.ObjectHash]objects.SerializedObject)}
}

func (m *MemoryObjectStore) WriteObject(obj objects.BaseObject) (objects.ObjectHash, error) {
	serialized, err := objects.Serialize(obj)
	if err != nil {
		return "", fmt.Errorf("failed to serialize object: %w", err)
	}
	hash := objects.NewObjectHash(serialized)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objs[hash]; !ok {
		m.objs[hash] = serialized
	}
	return hash, nil
}

func (m *MemoryObjectStore) WriteRaw(hash objects.ObjectHash, data objects.SerializedObject) error {
	if err := verifyRaw(hash, data); err != nil {
		return err
	}
	cp := make(objects.SerializedObject, len(data))
	copy(cp, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objs[hash]; !ok {
		m.objs[hash] = cp
	}
	return nil
}

func (m *MemoryObjectStore) ReadObject(hash objects.ObjectHash) (objects.BaseObject, error) {
	data, err := m.ReadRaw(hash)
	if err != nil {
		return nil, err
	}
	obj, err := decode(data)
	if err != nil {
		return nil, newCorruptError("read", hash, err)
	}
	return obj, nil
}

func (m *MemoryObjectStore) ReadRaw(hash objects.ObjectHash) (objects.SerializedObject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objs[hash]
	if !ok {
		return nil, newNotFoundError("read", hash)
	}
	return data, nil
}

func (m *MemoryObjectStore) HasObject(hash objects.ObjectHash) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objs[hash]
	return ok, nil
}

func (m *MemoryObjectStore) ListObjects() ([]objects.ObjectHash, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]objects.ObjectHash, 0, len(m.objs))
	for h := range m.objs {
		out = append(out, h)
	}
	return out, nil
}
