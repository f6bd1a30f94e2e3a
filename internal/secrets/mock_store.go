package secrets

// MockStore is an in-memory secret store for testing.
type MockStore struct {
	values map[string]string
}

func NewMockStore() *MockStore {
	return &MockStore{values: make(map[string]string)}
}

func (m *MockStore) Set(name, value string) error {
	m.values[Normalize(name)] = value
	return nil
}

func (m *MockStore) Get(name string) (string, error) {
	value, ok := m.values[Normalize(name)]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MockStore) Delete(name string) error {
	name = Normalize(name)
	if _, ok := m.values[name]; !ok {
		return ErrNotFound
	}
	delete(m.values, name)
	return nil
}
