package dashboard

import "sync"

// Icons is the shared registry of icon identifiers the views may render
type Icons struct {
	lock sync.RWMutex
	ids  []string
	seen map[string]struct{}
}

func NewIcons() *Icons {
	return &Icons{seen: make(map[string]struct{})}
}

// Add registers ids, duplicates are ignored
func (i *Icons) Add(ids ...string) {
	i.lock.Lock()
	defer i.lock.Unlock()

	for _, id := range ids {
		if _, ok := i.seen[id]; ok {
			continue
		}
		i.seen[id] = struct{}{}
		i.ids = append(i.ids, id)
	}
}

// List returns the registered ids in registration order
func (i *Icons) List() []string {
	i.lock.RLock()
	defer i.lock.RUnlock()

	return append([]string{}, i.ids...)
}
