// Package tui implements the interactive task list.
package tui

import (
	"log"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tidylist-io/tidylist/internal/models"
	"github.com/tidylist-io/tidylist/internal/slot"
	"github.com/tidylist-io/tidylist/internal/store"
	"github.com/tidylist-io/tidylist/internal/watcher"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Run launches the TUI over an opened store. slotPath is the file the
// collection is persisted in; changes to it from other processes reload
// the list.
func Run(s *store.Store, slotPath, defaultFilter string) error {
	filter, err := models.ParseFilter(defaultFilter)
	if err != nil {
		filter = models.FilterAll
	}

	reopen := reopenFunc(slotPath)
	model := NewModel(s, reopen, filter)

	ref := &programRef{}
	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.Set(p)

	w, err := watcher.New(slotPath)
	if err != nil {
		log.Printf("Warning: slot watching disabled: %v", err)
	} else {
		if err := w.Start(); err != nil {
			log.Printf("Warning: slot watching disabled: %v", err)
		} else {
			defer w.Stop()
			go func() {
				for range w.Events() {
					ref.Send(SlotChangedMsg{})
				}
			}()
		}
	}

	_, err = p.Run()
	return err
}

// reopenFunc rebuilds the store from the slot file, used after an
// external writer changes it.
func reopenFunc(slotPath string) func() (*store.Store, error) {
	dir := filepath.Dir(slotPath)
	key := strings.TrimSuffix(filepath.Base(slotPath), ".yaml")
	return func() (*store.Store, error) {
		return store.Open(slot.NewFile(dir), store.WithKey(key))
	}
}
