package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-fin-simulator/internal/app"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/service"
	"github.com/MKhiriev/go-fin-simulator/models"
)

// ErrNoPendingDelete is returned by ConfirmDelete when no deletion was
// requested.
var ErrNoPendingDelete = errors.New("no deletion awaiting confirmation")

// Editor receives a simulation picked for editing.
type Editor interface {
	Edit(sim models.Simulation)
}

// ListController holds the user's simulations as last loaded.
type ListController struct {
	mu            sync.RWMutex
	simulations   service.ClientSimulationService
	editor        Editor
	items         []models.Simulation
	loaded        bool
	pendingDelete int64
	confirming    bool
	logger        *logger.Logger
}

func NewListController(simulations service.ClientSimulationService, editor Editor, logger *logger.Logger) *ListController {
	return &ListController{
		simulations: simulations,
		editor:      editor,
		logger:      logger,
	}
}

// Refresh reloads the collection. On failure the previous items stay.
func (l *ListController) Refresh(ctx context.Context) error {
	items, err := l.simulations.List(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = items
	l.loaded = true
	return nil
}

// Items returns a copy of the loaded simulations in server order.
func (l *ListController) Items() []models.Simulation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Simulation, len(l.items))
	copy(out, l.items)
	return out
}

// Loaded reports whether at least one Refresh succeeded.
func (l *ListController) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// IsEmpty reports whether the loaded collection has no simulations.
func (l *ListController) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded && len(l.items) == 0
}

// Find returns the loaded simulation with id.
func (l *ListController) Find(id int64) (models.Simulation, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, sim := range l.items {
		if sim.ID == id {
			return sim, true
		}
	}
	return models.Simulation{}, false
}

// RequestEdit hands sim to the editor. The collection is not touched.
func (l *ListController) RequestEdit(sim models.Simulation) {
	if l.editor != nil {
		l.editor.Edit(sim)
	}
}

// RequestDelete records id as awaiting confirmation.
func (l *ListController) RequestDelete(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pendingDelete = id
	l.confirming = true
}

// PendingDelete returns the id awaiting confirmation, if any.
func (l *ListController) PendingDelete() (int64, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pendingDelete, l.confirming
}

// Reset forgets the loaded collection and any pending deletion.
func (l *ListController) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.loaded = false
	l.pendingDelete = 0
	l.confirming = false
}

func (l *ListController) CancelDelete() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pendingDelete = 0
	l.confirming = false
}

// ConfirmDelete deletes the pending simulation and reloads the collection.
// When the deletion fails the collection is left untouched.
func (l *ListController) ConfirmDelete(ctx context.Context) Outcome {
	l.mu.Lock()
	id, ok := l.pendingDelete, l.confirming
	l.pendingDelete = 0
	l.confirming = false
	l.mu.Unlock()

	if !ok {
		return failed(ErrNoPendingDelete)
	}

	if err := l.simulations.Delete(ctx, id); err != nil {
		l.logger.Debug().Err(err).Int64("simulation_id", id).Msg("simulation delete failed")
		return failed(err)
	}

	out := Outcome{Notice: app.MsgSimulationDeleted}
	if err := l.Refresh(ctx); err != nil {
		out.Err = err
	}
	return out
}
