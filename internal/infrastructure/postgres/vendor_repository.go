package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = "id, name, contact_name, email, phone, active, created_at, updated_at"

// Create persiste un proveedor.
func (r *VendorRepo) Create(v *entity.Vendor) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	now := time.Now()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now
	query := `
		INSERT INTO vendors (id, name, contact_name, email, phone, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Name, v.ContactName, v.Email, v.Phone, v.Active, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return wrapDB("create vendor", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	query := "SELECT " + vendorColumns + " FROM vendors WHERE id = $1"
	var v entity.Vendor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.Name, &v.ContactName, &v.Email, &v.Phone, &v.Active, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDB("get vendor", err)
	}
	return &v, nil
}

// List lista proveedores con paginación.
func (r *VendorRepo) List(limit, offset int) ([]*entity.Vendor, error) {
	query := "SELECT " + vendorColumns + " FROM vendors ORDER BY name LIMIT $1 OFFSET $2"
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, wrapDB("list vendors", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.ContactName, &v.Email, &v.Phone,
			&v.Active, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, wrapDB("scan vendor", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// SetActive habilita o deshabilita un proveedor (soft-disable, nunca DELETE).
func (r *VendorRepo) SetActive(id string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		"UPDATE vendors SET active = $1, updated_at = now() WHERE id = $2", active, id)
	if err != nil {
		return wrapDB("set vendor active", err)
	}
	return nil
}
