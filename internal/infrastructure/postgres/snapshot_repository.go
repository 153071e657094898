package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/traslados-api/internal/domain/entity"
)

// SnapshotRepo lee el estado inicial (stock y precios) desde el almacén
// externo. El motor nunca escribe aquí: tras la siembra, el ledger en memoria
// del coordinador es la fuente de verdad.
type SnapshotRepo struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository construye el adaptador de lectura del almacén externo.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool}
}

// LoadStock devuelve todas las celdas bodega/SKU con su cantidad actual.
func (r *SnapshotRepo) LoadStock(ctx context.Context) ([]entity.InventoryItem, error) {
	query := `
		SELECT warehouse_id, sku, quantity, updated_at
		FROM inventory_stock
		ORDER BY warehouse_id, sku`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query stock: %w", err)
	}
	defer rows.Close()

	var items []entity.InventoryItem
	for rows.Next() {
		var item entity.InventoryItem
		var updatedAt *time.Time
		if err := rows.Scan(&item.WarehouseID, &item.SKU, &item.Quantity, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		if updatedAt != nil {
			item.LastUpdated = *updatedAt
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows stock: %w", err)
	}
	return items, nil
}

// LoadProducts devuelve el catálogo de productos con su precio unitario.
func (r *SnapshotRepo) LoadProducts(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT sku, name, category, price, aging_threshold_days
		FROM products
		ORDER BY sku`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		var price *decimal.Decimal
		if err := rows.Scan(&p.SKU, &p.Name, &p.Category, &price, &p.AgingThresholdDays); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if price != nil {
			p.Price = *price
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows products: %w", err)
	}
	return products, nil
}

// LoadWarehouses devuelve las bodegas registradas en el almacén externo.
func (r *SnapshotRepo) LoadWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	query := `
		SELECT id, name, location, region, trade_hub, capacity
		FROM warehouses
		ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.Region, &w.TradeHub, &w.Capacity); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows warehouses: %w", err)
	}
	return warehouses, nil
}
