package policy

import (
	"container/list"
	"sync"

	"github.com/gozephyr/renderkit/internal"
)

// FIFO implements the Policy interface using First In First Out ordering
type FIFO struct {
	items *internal.SafeMap[string, *list.Element]
	list  *list.List
	mu    sync.Mutex
}

// NewFIFO creates a new FIFO policy
func NewFIFO() *FIFO {
	return &FIFO{
		items: internal.NewSafeMap[string, *list.Element](),
		list:  list.New(),
	}
}

// OnSet is called when a key is stored in the cache
func (p *FIFO) OnSet(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Overwrites keep the original insertion position
	if _, exists := p.items.Get(key); exists {
		return
	}

	element := p.list.PushBack(key)
	p.items.Set(key, element)
}

// OnDelete is called when a key is removed from the cache
func (p *FIFO) OnDelete(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if element, exists := p.items.Get(key); exists {
		p.list.Remove(element)
		p.items.Delete(key)
	}
}

// OnClear is called when the cache is cleared
func (p *FIFO) OnClear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.list = list.New()
	p.items.Clear()
}

// Evict returns the oldest inserted key and removes it from the policy
func (p *FIFO) Evict() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	element := p.list.Front()
	if element == nil {
		return "", false
	}

	key := element.Value.(string)
	p.list.Remove(element)
	p.items.Delete(key)

	return key, true
}

// Len returns the number of keys tracked by the policy
func (p *FIFO) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items.Size()
}
