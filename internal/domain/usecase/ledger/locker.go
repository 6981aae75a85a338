package ledger

import (
	"sort"
	"sync"
)

// accountLocker serializes mutations per account number. Every
// balance-changing operation acquires the lock of each account it touches,
// in lexicographic order so a transfer and its reverse cannot deadlock.
// This makes the service the single mutation authority for an account:
// read-modify-write cycles on the same account never interleave.
type accountLocker struct {
	locks sync.Map // map[string]*sync.Mutex
}

func newAccountLocker() *accountLocker {
	return &accountLocker{}
}

func (l *accountLocker) lockFor(accountNumber string) *sync.Mutex {
	mu, _ := l.locks.LoadOrStore(accountNumber, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Lock acquires the locks of all given accounts and returns the release
// function. Duplicate numbers are collapsed before acquisition.
func (l *accountLocker) Lock(accountNumbers ...string) func() {
	seen := make(map[string]struct{}, len(accountNumbers))
	ordered := make([]string, 0, len(accountNumbers))
	for _, n := range accountNumbers {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		ordered = append(ordered, n)
	}
	sort.Strings(ordered)

	held := make([]*sync.Mutex, 0, len(ordered))
	for _, n := range ordered {
		mu := l.lockFor(n)
		mu.Lock()
		held = append(held, mu)
	}

	return func() {
		// Release in reverse acquisition order
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
