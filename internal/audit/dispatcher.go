package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"gowaveline.backend/internal/domain/entities"
	"gowaveline.backend/pkg/logger"
)

type eventKind int

const (
	kindAction eventKind = iota
	kindFieldEdit
)

type event struct {
	kind      eventKind
	action    *entities.ActionLogEntry
	fieldEdit *entities.FieldEditEntry
}

// Dispatcher appends audit entries off the request path. A full queue
// drops the entry rather than blocking or failing the API call; the
// primary state change stays authoritative either way.
type Dispatcher struct {
	recorder Recorder
	queue    chan event
	done     chan struct{}
	once     sync.Once
}

// NewDispatcher starts the background audit worker
func NewDispatcher(recorder Recorder) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		queue:    make(chan event, 100),
		done:     make(chan struct{}),
	}
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx := context.Background()
		var err error
		switch ev.kind {
		case kindAction:
			err = d.recorder.RecordAction(ctx, ev.action)
		case kindFieldEdit:
			err = d.recorder.RecordFieldEdit(ctx, ev.fieldEdit)
		}
		if err != nil {
			logger.Error(ctx, "audit write failed", zap.Error(err))
		}
	}
}

// RecordAction queues an action-log append.
func (d *Dispatcher) RecordAction(ctx context.Context, entry *entities.ActionLogEntry) error {
	d.enqueue(event{kind: kindAction, action: entry})
	return nil
}

// RecordFieldEdit queues a field-edit append.
func (d *Dispatcher) RecordFieldEdit(ctx context.Context, entry *entities.FieldEditEntry) error {
	d.enqueue(event{kind: kindFieldEdit, fieldEdit: entry})
	return nil
}

func (d *Dispatcher) enqueue(ev event) {
	select {
	case d.queue <- ev:
	default:
		logger.Warn(context.Background(), "audit queue full, dropping entry")
	}
}

// Close drains the queue and stops the worker.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
		<-d.done
	})
}
