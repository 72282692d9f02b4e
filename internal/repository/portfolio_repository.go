package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Owen-Kz/bn-portfolio/internal/model"
)

// ListQuery defines filters & pagination for portfolio listings. A zero
// Category (or "All") disables category filtering.
type ListQuery struct {
	Category string
	Page     int
	Limit    int
}

// Normalize clamps the query to valid bounds: page >= 1, a default page
// size of 8 and a hard ceiling of 50, and the "All" pseudo-category mapped
// to no filter.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 8
	}
	if q.Limit > 50 {
		q.Limit = 50
	}
	if strings.EqualFold(q.Category, "All") {
		q.Category = ""
	}
	return q
}

// PageCount converts a row count into the number of pages at the query's
// page size.
func (q ListQuery) PageCount(total int64) int {
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// PortfolioRepo provides access to design-track portfolio items and their
// image/tag child rows.
type PortfolioRepo struct{ DB *sql.DB }

func NewPortfolioRepo(db *sql.DB) *PortfolioRepo { return &PortfolioRepo{DB: db} }

// List returns one page of items plus the total row count for the filter.
// ownerID > 0 restricts the listing to a single owner (dashboard views);
// ownerID == 0 lists everything (public grid).
func (r *PortfolioRepo) List(ctx context.Context, ownerID uint64, q ListQuery) ([]model.PortfolioItem, int64, error) {
	q = q.Normalize()

	where := []string{"1=1"}
	args := []any{}
	if ownerID > 0 {
		where = append(where, "p.owner_id = ?")
		args = append(args, ownerID)
	}
	if q.Category != "" {
		where = append(where, "p.category = ?")
		args = append(args, q.Category)
	}
	cond := strings.Join(where, " AND ")

	var total int64
	countSQL := "SELECT COUNT(*) FROM portfolio_items p WHERE " + cond
	if err := r.DB.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := `SELECT p.id, p.owner_id, p.title, p.category, p.description, p.created_at, p.updated_at
		FROM portfolio_items p
		WHERE ` + cond + `
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ? OFFSET ?`
	args = append(args, q.Limit, (q.Page-1)*q.Limit)

	rows, err := r.DB.QueryContext(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.PortfolioItem, 0, q.Limit)
	ids := make([]uint64, 0, q.Limit)
	for rows.Next() {
		var it model.PortfolioItem
		if err := rows.Scan(&it.ID, &it.OwnerID, &it.Title, &it.Category, &it.Description, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, 0, err
		}
		it.Tags = []string{}
		it.Images = []string{}
		items = append(items, it)
		ids = append(ids, it.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(items) == 0 {
		return items, total, nil
	}

	images, err := r.childStrings(ctx, "portfolio_images", "url", ids)
	if err != nil {
		return nil, 0, err
	}
	tags, err := r.childStrings(ctx, "portfolio_tags", "tag", ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		if v, ok := images[items[i].ID]; ok {
			items[i].Images = v
		}
		if v, ok := tags[items[i].ID]; ok {
			items[i].Tags = v
		}
	}
	return items, total, nil
}

// Count returns the number of items owned by ownerID across all categories.
func (r *PortfolioRepo) Count(ctx context.Context, ownerID uint64) (int64, error) {
	var total int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM portfolio_items WHERE owner_id = ?", ownerID).Scan(&total)
	return total, err
}

// Create inserts an item with its image URLs and tags in one transaction
// and returns the new item ID. Child rows keep their slice order via the
// position column.
func (r *PortfolioRepo) Create(ctx context.Context, it model.PortfolioItem) (uint64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO portfolio_items (owner_id, title, category, description) VALUES (?,?,?,?)",
		it.OwnerID, it.Title, it.Category, it.Description)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for i, url := range it.Images {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO portfolio_images (item_id, position, url) VALUES (?,?,?)",
			id, i, url); err != nil {
			return 0, err
		}
	}
	for i, tag := range it.Tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO portfolio_tags (item_id, position, tag) VALUES (?,?,?)",
			id, i, tag); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// childStrings loads ordered child values (image URLs or tags) for a set of
// item IDs in a single query, grouped by item.
func (r *PortfolioRepo) childStrings(ctx context.Context, table, column string, ids []uint64) (map[uint64][]string, error) {
	ph := strings.TrimRight(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := fmt.Sprintf("SELECT item_id, %s FROM %s WHERE item_id IN (%s) ORDER BY item_id, position",
		column, table, ph)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[uint64][]string{}
	for rows.Next() {
		var itemID uint64
		var v string
		if err := rows.Scan(&itemID, &v); err != nil {
			return nil, err
		}
		out[itemID] = append(out[itemID], v)
	}
	return out, rows.Err()
}
