package app

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/louisbranch/mediatr/internal/services/notes/storage"
)

// titleIndex maps case-folded titles to note ids.
type titleIndex struct {
	mu     sync.RWMutex
	titles map[string][]string
}

func newTitleIndex() *titleIndex {
	return &titleIndex{titles: make(map[string][]string)}
}

// foldTitle returns the lookup key of title. A Caser keeps state, so each call
// builds its own.
func foldTitle(title string) string {
	return cases.Fold().String(strings.TrimSpace(title))
}

func (i *titleIndex) add(note storage.Note) {
	key := foldTitle(note.Title)
	i.mu.Lock()
	defer i.mu.Unlock()
	i.titles[key] = append(i.titles[key], note.ID)
}

func (i *titleIndex) lookup(title string) []string {
	key := foldTitle(title)
	i.mu.RLock()
	defer i.mu.RUnlock()
	return slices.Clone(i.titles[key])
}
