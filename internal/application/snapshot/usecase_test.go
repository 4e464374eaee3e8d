package snapshot_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/application/snapshot"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func (r *fakeItemRepo) Create(item *entity.Item) error { r.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.items[id], nil
}
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.items[id], nil
}
func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) SetActive(id string, active bool) error         { return nil }

type fakeSnapRepo struct {
	snaps map[string][]*entity.MacSnapshot
}

func (r *fakeSnapRepo) Create(s *entity.MacSnapshot) error {
	r.snaps[s.ItemID] = append(r.snaps[s.ItemID], s)
	return nil
}
func (r *fakeSnapRepo) GetCurrent(itemID string) (*entity.MacSnapshot, error) {
	var head *entity.MacSnapshot
	for _, s := range r.snaps[itemID] {
		if head == nil || s.Seq > head.Seq {
			head = s
		}
	}
	return head, nil
}
func (r *fakeSnapRepo) ListByItem(itemID string, limit, offset int) ([]*entity.MacSnapshot, error) {
	return r.snaps[itemID], nil
}

func newQueryUC() (*snapshot.QueryUseCase, *fakeItemRepo, *fakeSnapRepo) {
	itemRepo := &fakeItemRepo{items: make(map[string]*entity.Item)}
	snapRepo := &fakeSnapRepo{snaps: make(map[string][]*entity.MacSnapshot)}
	return snapshot.NewQueryUseCase(snapRepo, itemRepo), itemRepo, snapRepo
}

func addSnap(r *fakeSnapRepo, itemID string, seq int64, qty, mac string) *entity.MacSnapshot {
	q := decimal.RequireFromString(qty)
	m := decimal.RequireFromString(mac)
	s := &entity.MacSnapshot{
		ID:             uuid.New().String(),
		Seq:            seq,
		ItemID:         itemID,
		QuantityOnHand: q,
		MovingAvgCost:  m,
		TotalValue:     q.Mul(m),
		SnapshotTs:     time.Now(),
	}
	r.snaps[itemID] = append(r.snaps[itemID], s)
	return s
}

// Lectura pura: dos consultas consecutivas sin escrituras intermedias
// devuelven exactamente el mismo snapshot.
func TestCurrentMac_LecturaIdempotente(t *testing.T) {
	uc, itemRepo, snapRepo := newQueryUC()
	item := &entity.Item{ID: "item-1", Name: "gorro", Active: true}
	itemRepo.items[item.ID] = item
	addSnap(snapRepo, item.ID, 1, "10", "5")
	latest := addSnap(snapRepo, item.ID, 2, "20", "6")
	ctx := context.Background()

	first, err := uc.CurrentMac(ctx, item.ID)
	require.NoError(t, err)
	second, err := uc.CurrentMac(ctx, item.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, latest.Seq, first.Seq)
	assert.True(t, first.QuantityOnHand.Equal(decimal.RequireFromString("20")))
	assert.True(t, first.MovingAvgCost.Equal(decimal.RequireFromString("6")))
}

func TestCurrentMac_ItemInexistente(t *testing.T) {
	uc, _, _ := newQueryUC()

	_, err := uc.CurrentMac(context.Background(), "no-such-item")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un ítem recién creado existe en el catálogo pero no tiene historial de
// valoración hasta su primera transacción.
func TestCurrentMac_ItemSinHistorial(t *testing.T) {
	uc, itemRepo, _ := newQueryUC()
	itemRepo.items["item-1"] = &entity.Item{ID: "item-1", Name: "gorro", Active: true}

	_, err := uc.CurrentMac(context.Background(), "item-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_DevuelveTodoElHistorial(t *testing.T) {
	uc, itemRepo, snapRepo := newQueryUC()
	itemRepo.items["item-1"] = &entity.Item{ID: "item-1", Name: "gorro", Active: true}
	addSnap(snapRepo, "item-1", 1, "10", "5")
	addSnap(snapRepo, "item-1", 2, "20", "6")

	hist, err := uc.History(context.Background(), "item-1", 50, 0)
	require.NoError(t, err)
	assert.Len(t, hist, 2)
}
