package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-ledger/internal/application/audit"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

// UseCase administra los colaboradores de catálogo (ítems y proveedores) que
// el ledger referencia. Identidad inmutable: nunca se borra, solo se
// deshabilita, porque el historial del ledger sigue apuntando a estas filas.
type UseCase struct {
	itemRepo   repository.ItemRepository
	vendorRepo repository.VendorRepository
	auditor    *audit.Auditor
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(itemRepo repository.ItemRepository, vendorRepo repository.VendorRepository, auditor *audit.Auditor) *UseCase {
	return &UseCase{itemRepo: itemRepo, vendorRepo: vendorRepo, auditor: auditor}
}

// CreateItemResult alta de ítem más la señal de auditoría degradada (el alta
// se persistió pero la fila de auditoría no).
type CreateItemResult struct {
	Item          *entity.Item
	AuditDegraded bool
}

// CreateVendorResult alta de proveedor más la señal de auditoría degradada.
type CreateVendorResult struct {
	Vendor        *entity.Vendor
	AuditDegraded bool
}

// CreateItem da de alta un ítem activo.
func (uc *UseCase) CreateItem(ctx context.Context, actorID, name, itemType, category, color, size, material string) (*CreateItemResult, error) {
	if name == "" {
		return nil, domain.PolicyViolation("item", "name", "el nombre es obligatorio")
	}
	now := time.Now()
	item := &entity.Item{
		ID:        uuid.New().String(),
		Name:      name,
		ItemType:  itemType,
		Category:  category,
		Color:     color,
		Size:      size,
		Material:  material,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	audited := uc.auditor.Record(actorID, "catalog.item.create", "item", item.ID, map[string]any{"name": name})
	return &CreateItemResult{Item: item, AuditDegraded: !audited}, nil
}

// GetItem obtiene un ítem; NotFound clasificado si no existe.
func (uc *UseCase) GetItem(ctx context.Context, id string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("item", "id", id)
	}
	return item, nil
}

// ListItems lista ítems paginados.
func (uc *UseCase) ListItems(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	return uc.itemRepo.List(limit, offset)
}

// SetItemActive habilita o deshabilita un ítem. Deshabilitar no toca el
// historial: las entradas existentes del ledger permanecen intactas.
// auditDegraded es true si el cambio se aplicó pero la auditoría no se
// persistió.
func (uc *UseCase) SetItemActive(ctx context.Context, actorID, id string, active bool) (auditDegraded bool, err error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, domain.NotFound("item", "id", id)
	}
	if err := uc.itemRepo.SetActive(id, active); err != nil {
		return false, err
	}
	audited := uc.auditor.Record(actorID, "catalog.item.set_active", "item", id, map[string]any{"active": active})
	return !audited, nil
}

// CreateVendor da de alta un proveedor activo.
func (uc *UseCase) CreateVendor(ctx context.Context, actorID, name, contactName, email, phone string) (*CreateVendorResult, error) {
	if name == "" {
		return nil, domain.PolicyViolation("vendor", "name", "el nombre es obligatorio")
	}
	now := time.Now()
	vendor := &entity.Vendor{
		ID:          uuid.New().String(),
		Name:        name,
		ContactName: contactName,
		Email:       email,
		Phone:       phone,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.vendorRepo.Create(vendor); err != nil {
		return nil, err
	}
	audited := uc.auditor.Record(actorID, "catalog.vendor.create", "vendor", vendor.ID, map[string]any{"name": name})
	return &CreateVendorResult{Vendor: vendor, AuditDegraded: !audited}, nil
}

// GetVendor obtiene un proveedor; NotFound clasificado si no existe.
func (uc *UseCase) GetVendor(ctx context.Context, id string) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.NotFound("vendor", "id", id)
	}
	return vendor, nil
}

// ListVendors lista proveedores paginados.
func (uc *UseCase) ListVendors(ctx context.Context, limit, offset int) ([]*entity.Vendor, error) {
	return uc.vendorRepo.List(limit, offset)
}

// SetVendorActive habilita o deshabilita un proveedor. auditDegraded es true
// si el cambio se aplicó pero la auditoría no se persistió.
func (uc *UseCase) SetVendorActive(ctx context.Context, actorID, id string, active bool) (auditDegraded bool, err error) {
	vendor, err := uc.vendorRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if vendor == nil {
		return false, domain.NotFound("vendor", "id", id)
	}
	if err := uc.vendorRepo.SetActive(id, active); err != nil {
		return false, err
	}
	audited := uc.auditor.Record(actorID, "catalog.vendor.set_active", "vendor", id, map[string]any{"active": active})
	return !audited, nil
}
