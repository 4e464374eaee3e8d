package ledger_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-ledger/internal/application/audit"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/Inventario-ledger/pkg/logger"
)

// memStore es el backend en memoria compartido por los repos fake. Los repos
// no toman locks: el TxRunner fake serializa las escrituras igual que lo hace
// el lock por ítem en Postgres, y revierte el estado si fn falla.
type memStore struct {
	mu      sync.Mutex
	items   map[string]*entity.Item
	vendors map[string]*entity.Vendor
	batches map[string]*entity.InventoryBatch
	txns    map[string]*entity.Transaction
	snaps   map[string][]*entity.MacSnapshot
	returns map[string]*entity.ReturnDetail // por transaction_id
	corrs   []*entity.Correction
	snapSeq int64 // secuencia monótona, como el bigserial real

	failTxnCreate bool // inyección de fallo para probar atomicidad
}

func newMemStore() *memStore {
	return &memStore{
		items:   make(map[string]*entity.Item),
		vendors: make(map[string]*entity.Vendor),
		batches: make(map[string]*entity.InventoryBatch),
		txns:    make(map[string]*entity.Transaction),
		snaps:   make(map[string][]*entity.MacSnapshot),
		returns: make(map[string]*entity.ReturnDetail),
	}
}

type storeBackup struct {
	items   map[string]*entity.Item
	vendors map[string]*entity.Vendor
	batches map[string]*entity.InventoryBatch
	txns    map[string]*entity.Transaction
	snaps   map[string][]*entity.MacSnapshot
	returns map[string]*entity.ReturnDetail
	corrs   []*entity.Correction
}

// Las entidades almacenadas nunca se mutan in place, así que basta con copiar
// los contenedores.
func (s *memStore) backup() storeBackup {
	b := storeBackup{
		items:   make(map[string]*entity.Item, len(s.items)),
		vendors: make(map[string]*entity.Vendor, len(s.vendors)),
		batches: make(map[string]*entity.InventoryBatch, len(s.batches)),
		txns:    make(map[string]*entity.Transaction, len(s.txns)),
		snaps:   make(map[string][]*entity.MacSnapshot, len(s.snaps)),
		returns: make(map[string]*entity.ReturnDetail, len(s.returns)),
		corrs:   append([]*entity.Correction(nil), s.corrs...),
	}
	for k, v := range s.items {
		b.items[k] = v
	}
	for k, v := range s.vendors {
		b.vendors[k] = v
	}
	for k, v := range s.batches {
		b.batches[k] = v
	}
	for k, v := range s.txns {
		b.txns[k] = v
	}
	for k, v := range s.snaps {
		b.snaps[k] = append([]*entity.MacSnapshot(nil), v...)
	}
	for k, v := range s.returns {
		b.returns[k] = v
	}
	return b
}

func (s *memStore) restore(b storeBackup) {
	s.items = b.items
	s.vendors = b.vendors
	s.batches = b.batches
	s.txns = b.txns
	s.snaps = b.snaps
	s.returns = b.returns
	s.corrs = b.corrs
}

func (s *memStore) addItem(name string) *entity.Item {
	item := &entity.Item{ID: uuid.New().String(), Name: name, Active: true, CreatedAt: time.Now()}
	s.items[item.ID] = item
	return item
}

func (s *memStore) addVendor(name string, active bool) *entity.Vendor {
	v := &entity.Vendor{ID: uuid.New().String(), Name: name, Active: active, CreatedAt: time.Now()}
	s.vendors[v.ID] = v
	return v
}

// ── Repos fake ────────────────────────────────────────────────────────────────

type memItemRepo struct{ s *memStore }

func (r memItemRepo) Create(item *entity.Item) error { r.s.items[item.ID] = item; return nil }
func (r memItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.s.items[id], nil
}
func (r memItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.s.items[id], nil
}
func (r memItemRepo) List(limit, offset int) ([]*entity.Item, error) { return nil, nil }
func (r memItemRepo) SetActive(id string, active bool) error {
	item, ok := r.s.items[id]
	if !ok {
		return domain.NotFound("item", "id", id)
	}
	cp := *item
	cp.Active = active
	r.s.items[id] = &cp
	return nil
}

type memVendorRepo struct{ s *memStore }

func (r memVendorRepo) Create(v *entity.Vendor) error { r.s.vendors[v.ID] = v; return nil }
func (r memVendorRepo) GetByID(id string) (*entity.Vendor, error) {
	return r.s.vendors[id], nil
}
func (r memVendorRepo) List(limit, offset int) ([]*entity.Vendor, error) { return nil, nil }
func (r memVendorRepo) SetActive(id string, active bool) error          { return nil }

type memBatchRepo struct{ s *memStore }

func (r memBatchRepo) Create(b *entity.InventoryBatch) error { r.s.batches[b.ID] = b; return nil }
func (r memBatchRepo) GetByID(id string) (*entity.InventoryBatch, error) {
	return r.s.batches[id], nil
}
func (r memBatchRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.InventoryBatch, error) {
	return nil, nil
}

type memTxnRepo struct{ s *memStore }

func (r memTxnRepo) Create(txn *entity.Transaction) error {
	if r.s.failTxnCreate {
		return domain.Persistence("transaction", "fallo inyectado")
	}
	r.s.txns[txn.ID] = txn
	return nil
}
func (r memTxnRepo) GetByID(id string) (*entity.Transaction, error) {
	return r.s.txns[id], nil
}
func (r memTxnRepo) ListByItem(itemID string, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.s.txns {
		if t.ItemID == itemID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r memTxnRepo) ListByBatch(batchID string, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.s.txns {
		if t.BatchID == batchID {
			out = append(out, t)
		}
	}
	return out, nil
}

type memSnapRepo struct{ s *memStore }

func (r memSnapRepo) Create(snap *entity.MacSnapshot) error {
	r.s.snapSeq++
	snap.Seq = r.s.snapSeq
	r.s.snaps[snap.ItemID] = append(r.s.snaps[snap.ItemID], snap)
	return nil
}

// El vigente se resuelve por secuencia, no por timestamp: dos snapshots de la
// misma transacción pueden compartir snapshot_ts.
func (r memSnapRepo) GetCurrent(itemID string) (*entity.MacSnapshot, error) {
	var head *entity.MacSnapshot
	for _, s := range r.s.snaps[itemID] {
		if head == nil || s.Seq > head.Seq {
			head = s
		}
	}
	return head, nil
}
func (r memSnapRepo) ListByItem(itemID string, limit, offset int) ([]*entity.MacSnapshot, error) {
	return r.s.snaps[itemID], nil
}

type memReturnRepo struct{ s *memStore }

func (r memReturnRepo) Create(ret *entity.ReturnDetail) error {
	r.s.returns[ret.TransactionID] = ret
	return nil
}
func (r memReturnRepo) GetByTransactionID(txnID string) (*entity.ReturnDetail, error) {
	return r.s.returns[txnID], nil
}
func (r memReturnRepo) SumReturnedByOrigin(originTxnID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, ret := range r.s.returns {
		txn := r.s.txns[ret.TransactionID]
		if txn != nil && txn.RelatedTxnID == originTxnID {
			sum = sum.Add(ret.ReturnedQuantity)
		}
	}
	return sum, nil
}

type memCorrRepo struct{ s *memStore }

func (r memCorrRepo) Create(corr *entity.Correction) error {
	r.s.corrs = append(r.s.corrs, corr)
	return nil
}
func (r memCorrRepo) IsReversal(txnID string) (bool, error) {
	for _, c := range r.s.corrs {
		if c.ReversalTxnID == txnID {
			return true, nil
		}
	}
	return false, nil
}
func (r memCorrRepo) ListByOriginal(originalTxnID string) ([]*entity.Correction, error) {
	var out []*entity.Correction
	for _, c := range r.s.corrs {
		if c.OriginalTxnID == originalTxnID {
			out = append(out, c)
		}
	}
	return out, nil
}

// memAuditRepo lleva su propio lock: el auditor escribe fuera del TxRunner.
type memAuditRepo struct {
	mu      sync.Mutex
	entries []*entity.AuditLogEntry
	fail    bool
}

func (r *memAuditRepo) Create(entry *entity.AuditLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return domain.Persistence("audit_log", "fallo inyectado")
	}
	r.entries = append(r.entries, entry)
	return nil
}
func (r *memAuditRepo) ListByEntity(entityType, entityID string, limit, offset int) ([]*entity.AuditLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.AuditLogEntry
	for _, e := range r.entries {
		if e.EntityType == entityType && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}

// memTxRunner serializa cada Run bajo el mutex del store y revierte el estado
// completo cuando fn falla: mismo contrato que la transacción real.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txnRepo repository.TransactionRepository,
	snapRepo repository.SnapshotRepository,
	returnRepo repository.ReturnRepository,
	corrRepo repository.CorrectionRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b := r.s.backup()
	err := fn(memItemRepo{r.s}, memTxnRepo{r.s}, memSnapRepo{r.s}, memReturnRepo{r.s}, memCorrRepo{r.s})
	if err != nil {
		r.s.restore(b)
	}
	return err
}

// ── Arnés ─────────────────────────────────────────────────────────────────────

type harness struct {
	store     *memStore
	auditRepo *memAuditRepo
	auditor   *audit.Auditor
	runner    *memTxRunner
}

func newHarness() *harness {
	store := newMemStore()
	auditRepo := &memAuditRepo{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return &harness{
		store:     store,
		auditRepo: auditRepo,
		auditor:   audit.NewAuditor(auditRepo, log),
		runner:    &memTxRunner{s: store},
	}
}
