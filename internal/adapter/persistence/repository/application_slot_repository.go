package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"pa_dog_license/internal/domain/entities"
	"pa_dog_license/internal/usecase/interfaces"
)

const DefaultSlotKey = "dogLicenseApplications"

// SlotStore is a flat key-value store holding one opaque value per key.
// Load returns (nil, nil) when the key has never been written.
type SlotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// ApplicationSlotRepository keeps every application as one JSON array under a
// single key. Append is a read-modify-write of the slot; the mutex only
// serializes writers inside this process.
type ApplicationSlotRepository struct {
	store SlotStore
	key   string
	mu    sync.Mutex
}

var _ interfaces.IApplicationRepository = (*ApplicationSlotRepository)(nil)

func NewApplicationSlotRepository(store SlotStore, key string) *ApplicationSlotRepository {
	if key == "" {
		key = DefaultSlotKey
	}
	return &ApplicationSlotRepository{store: store, key: key}
}

// List returns the stored applications in insertion order. A missing slot is
// an empty list; an undecodable slot is an error.
func (r *ApplicationSlotRepository) List(ctx context.Context) ([]entities.Application, error) {
	raw, err := r.store.Load(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", r.key, err)
	}
	if len(raw) == 0 {
		return []entities.Application{}, nil
	}

	var apps []entities.Application
	if err := json.Unmarshal(raw, &apps); err != nil {
		return nil, fmt.Errorf("decode slot %q: %w", r.key, err)
	}
	if apps == nil {
		apps = []entities.Application{}
	}
	return apps, nil
}

// Append adds a at the end of the slot. Stored elements are copied back
// verbatim; only the new record is encoded.
func (r *ApplicationSlotRepository) Append(ctx context.Context, a entities.Application) (entities.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.store.Load(ctx, r.key)
	if err != nil {
		return entities.Application{}, fmt.Errorf("load slot %q: %w", r.key, err)
	}

	var elems []json.RawMessage
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &elems); err != nil {
			return entities.Application{}, fmt.Errorf("decode slot %q: %w", r.key, err)
		}
	}
	for _, elem := range elems {
		var head struct {
			TrackingNumber string `json:"trackingNumber"`
		}
		if err := json.Unmarshal(elem, &head); err != nil {
			return entities.Application{}, fmt.Errorf("decode slot %q: %w", r.key, err)
		}
		if head.TrackingNumber == a.TrackingNumber {
			return entities.Application{}, interfaces.ErrDuplicateTrackingNumber
		}
	}

	record, err := json.Marshal(a)
	if err != nil {
		return entities.Application{}, fmt.Errorf("encode slot %q: %w", r.key, err)
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for _, elem := range elems {
		buf.Write(elem)
		buf.WriteByte(',')
	}
	buf.Write(record)
	buf.WriteByte(']')

	if err := r.store.Save(ctx, r.key, buf.Bytes()); err != nil {
		return entities.Application{}, fmt.Errorf("save slot %q: %w", r.key, err)
	}
	return a, nil
}

func (r *ApplicationSlotRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (entities.Application, error) {
	apps, err := r.List(ctx)
	if err != nil {
		return entities.Application{}, err
	}
	for _, a := range apps {
		if a.TrackingNumber == trackingNumber {
			return a, nil
		}
	}
	return entities.Application{}, nil
}
