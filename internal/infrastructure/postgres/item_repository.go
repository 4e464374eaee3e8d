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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = "id, name, item_type, category, color, size, material, active, created_at, updated_at"

// Create persiste un ítem de catálogo.
func (r *ItemRepo) Create(item *entity.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	query := `
		INSERT INTO items (id, name, item_type, category, color, size, material, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.ItemType, item.Category, item.Color,
		item.Size, item.Material, item.Active, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return wrapDB("create item", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el ítem y bloquea su fila (SELECT FOR UPDATE).
// Es el lock de intención exclusivo por ítem: serializa los folds de
// valoración concurrentes sobre el mismo ítem.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.get(id, true)
}

func (r *ItemRepo) get(id string, forUpdate bool) (*entity.Item, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE id = $1"
	if forUpdate {
		query += " FOR UPDATE"
	}
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.ItemType, &it.Category, &it.Color,
		&it.Size, &it.Material, &it.Active, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDB("get item", err)
	}
	return &it, nil
}

// List lista ítems con paginación.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := "SELECT " + itemColumns + " FROM items ORDER BY name LIMIT $1 OFFSET $2"
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, wrapDB("list items", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.ItemType, &it.Category, &it.Color,
			&it.Size, &it.Material, &it.Active, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, wrapDB("scan item", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// SetActive habilita o deshabilita un ítem (soft-disable, nunca DELETE).
func (r *ItemRepo) SetActive(id string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		"UPDATE items SET active = $1, updated_at = now() WHERE id = $2", active, id)
	if err != nil {
		return wrapDB("set item active", err)
	}
	return nil
}
