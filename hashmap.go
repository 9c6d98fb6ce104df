package fsa

// Hashable 自定义哈希接口
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

const defaultLoadFactor = 0.75

// HashMap Chained hash table keyed by Hashable values. It is owned by a single
// transformation call and is not safe for concurrent writers.
type HashMap[T any] struct {
	buckets    []*entry[T]
	size       int
	mask       uint64
	loadFactor float64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type optionsHashMap struct {
	capacity   int
	loadFactor float64
}

type OptionsHashMap func(*optionsHashMap)

func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

// NewHashMap capacity is rounded up to a power of two.
func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := &optionsHashMap{capacity: 1, loadFactor: defaultLoadFactor}
	for _, fn := range options {
		fn(opt)
	}

	realCap := 1
	for realCap < opt.capacity {
		realCap <<= 1
	}

	return &HashMap[T]{
		buckets:    make([]*entry[T], realCap),
		mask:       uint64(realCap - 1),
		loadFactor: opt.loadFactor,
	}
}

// Set 插入键值对，键已存在时覆盖旧值
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{key: key, value: value, next: m.buckets[index]}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var empty T
	return empty, false
}

func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			newIndex := e.key.Hash() & newMask
			newBuckets[newIndex] = &entry[T]{key: e.key, value: e.value, next: newBuckets[newIndex]}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

func (m *HashMap[T]) Size() int {
	return m.size
}
