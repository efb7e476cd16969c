package locale

import (
	"context"
	"log"
	"sync"

	"contra/internal/i18n"
)

// StorageKey is the client-local persisted language key. It is separate
// state from the cookie the server writes; the two converge through
// reconciliation and explicit switches.
const StorageKey = "lang"

// Storage is the client-local key-value store. A nil Storage models a
// non-browser context: every access becomes a guarded no-op.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Persister sends an explicit language switch to the server write path.
type Persister interface {
	PersistLanguage(ctx context.Context, lang i18n.Language) error
}

// Session owns the active language and loaded catalogs for one page
// session. It is constructed once per session and passed down explicitly
// rather than living in package-level state. Consumers that need to react
// to switches register through Subscribe.
type Session struct {
	mu       sync.Mutex
	current  i18n.Language
	catalogs map[i18n.Language]*i18n.Catalog
	storage  Storage
	persist  Persister

	nextSub int
	subs    map[int]func(i18n.Language)

	persistWG sync.WaitGroup
}

// NewSession seeds a session with the server-resolved language and the
// full catalog set. If storage holds a different supported language from
// an earlier switch in another tab, that value wins without re-persisting:
// the tab that switched already issued the server write.
func NewSession(resolved i18n.Language, catalogs map[i18n.Language]*i18n.Catalog, storage Storage, persist Persister) *Session {
	s := &Session{
		current:  resolved,
		catalogs: catalogs,
		storage:  storage,
		persist:  persist,
		subs:     make(map[int]func(i18n.Language)),
	}
	s.reconcile()
	return s
}

func (s *Session) reconcile() {
	if s.storage == nil {
		return
	}
	stored, ok := s.storage.Get(StorageKey)
	if !ok || !i18n.IsSupported(stored) {
		return
	}
	s.current = i18n.Language(stored)
}

// Locale returns the active language.
func (s *Session) Locale() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Translate looks key up in the active catalog, then the fallback catalog,
// then returns the key itself. A missing key is a catalog defect; showing
// the raw key is the whole recovery.
func (s *Session) Translate(key string) string {
	s.mu.Lock()
	catalog := s.catalogs[s.current]
	fallback := s.catalogs[i18n.Fallback]
	s.mu.Unlock()

	if catalog != nil {
		if msg, ok := catalog.Lookup(key); ok {
			return msg
		}
	}
	if fallback != nil {
		if msg, ok := fallback.Lookup(key); ok {
			return msg
		}
	}
	return key
}

// Subscribe registers fn to run after every locale change and returns a
// cancel func. Callbacks run on the mutating goroutine, outside the
// session lock.
func (s *Session) Subscribe(fn func(i18n.Language)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// SetLocale switches the active language. Setting the current language is
// a no-op: no storage write, no notification, no network call. Otherwise
// state, storage and subscribers update immediately and the server write
// runs in the background; its failure is logged, never surfaced. Rapid
// overlapping switches each issue their own write and may complete out of
// order; the last in-memory state wins.
func (s *Session) SetLocale(ctx context.Context, next i18n.Language) {
	s.setLocale(ctx, next, true)
}

// Adopt applies a switch that originated elsewhere, typically another
// tab writing the shared storage key. State, storage and subscribers
// update as with SetLocale, but no server write is issued: the context
// that performed the switch already persisted it.
func (s *Session) Adopt(next i18n.Language) {
	s.setLocale(context.Background(), next, false)
}

func (s *Session) setLocale(ctx context.Context, next i18n.Language, shouldPersist bool) {
	if !i18n.IsSupported(string(next)) {
		return
	}

	s.mu.Lock()
	if next == s.current {
		s.mu.Unlock()
		return
	}
	s.current = next
	subs := make([]func(i18n.Language), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	storage := s.storage
	persist := s.persist
	s.mu.Unlock()

	if storage != nil {
		storage.Set(StorageKey, string(next))
	}
	for _, fn := range subs {
		fn(next)
	}

	if shouldPersist && persist != nil {
		s.persistWG.Add(1)
		go func() {
			defer s.persistWG.Done()
			if err := persist.PersistLanguage(ctx, next); err != nil {
				log.Printf("locale session: persist language %q: %v", next, err)
			}
		}()
	}
}
