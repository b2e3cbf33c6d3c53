package objcache

// entryStore maps identifiers to the cache's private copies. Every value
// going in or out is cloned, so no caller ever aliases a stored object.
type entryStore struct {
	items map[string]Object
}

func newEntryStore() *entryStore {
	return &entryStore{
		items: make(map[string]Object),
	}
}

// put inserts or replaces the record for the object's identifier.
func (s *entryStore) put(obj Object) {
	s.items[obj.ID()] = obj.Clone()
}

// get returns a copy of the stored value for the given identifier.
func (s *entryStore) get(id string) (Object, bool) {
	obj, ok := s.items[id]
	if !ok {
		return nil, false
	}

	return obj.Clone(), true
}

// remove deletes the record if present and reports whether it existed.
func (s *entryStore) remove(id string) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}

	delete(s.items, id)

	return true
}

// len returns the number of stored records.
func (s *entryStore) len() int {
	return len(s.items)
}

// clear empties the store.
func (s *entryStore) clear() {
	s.items = make(map[string]Object)
}
