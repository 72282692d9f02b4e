package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Owen-Kz/bn-portfolio/internal/model"
)

// DevPortfolioRepo provides access to development-track portfolio items.
// It shares the ListQuery/paging rules of PortfolioRepo but carries the
// extra project metadata columns and a technologies child table.
type DevPortfolioRepo struct{ DB *sql.DB }

func NewDevPortfolioRepo(db *sql.DB) *DevPortfolioRepo { return &DevPortfolioRepo{DB: db} }

// List returns one page of dev items plus the total row count for the
// filter. ownerID semantics match PortfolioRepo.List.
func (r *DevPortfolioRepo) List(ctx context.Context, ownerID uint64, q ListQuery) ([]model.DevPortfolioItem, int64, error) {
	q = q.Normalize()

	where := []string{"1=1"}
	args := []any{}
	if ownerID > 0 {
		where = append(where, "d.owner_id = ?")
		args = append(args, ownerID)
	}
	if q.Category != "" {
		where = append(where, "d.category = ?")
		args = append(args, q.Category)
	}
	cond := strings.Join(where, " AND ")

	var total int64
	countSQL := "SELECT COUNT(*) FROM dev_portfolio_items d WHERE " + cond
	if err := r.DB.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := `SELECT d.id, d.owner_id, d.title, d.category, d.type, d.status,
			d.description, d.url, d.preview_url, d.year, d.created_at, d.updated_at
		FROM dev_portfolio_items d
		WHERE ` + cond + `
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT ? OFFSET ?`
	args = append(args, q.Limit, (q.Page-1)*q.Limit)

	rows, err := r.DB.QueryContext(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.DevPortfolioItem, 0, q.Limit)
	ids := make([]uint64, 0, q.Limit)
	for rows.Next() {
		var it model.DevPortfolioItem
		if err := rows.Scan(&it.ID, &it.OwnerID, &it.Title, &it.Category, &it.Type, &it.Status,
			&it.Description, &it.URL, &it.PreviewURL, &it.Year, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, 0, err
		}
		it.Tags = []string{}
		it.Technologies = []string{}
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

	// Child tables share the layout of the design-track ones, so the same
	// batch loader applies.
	helper := &PortfolioRepo{DB: r.DB}
	images, err := helper.childStrings(ctx, "dev_portfolio_images", "url", ids)
	if err != nil {
		return nil, 0, err
	}
	tags, err := helper.childStrings(ctx, "dev_portfolio_tags", "tag", ids)
	if err != nil {
		return nil, 0, err
	}
	techs, err := helper.childStrings(ctx, "dev_portfolio_technologies", "technology", ids)
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
		if v, ok := techs[items[i].ID]; ok {
			items[i].Technologies = v
		}
	}
	return items, total, nil
}

// Create inserts a dev item with its images, tags and technologies in one
// transaction and returns the new item ID.
func (r *DevPortfolioRepo) Create(ctx context.Context, it model.DevPortfolioItem) (uint64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO dev_portfolio_items
			(owner_id, title, category, type, status, description, url, preview_url, year)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		it.OwnerID, it.Title, it.Category, it.Type, it.Status, it.Description, it.URL, it.PreviewURL, it.Year)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	insert := func(table, column string, values []string) error {
		for i, v := range values {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO "+table+" (item_id, position, "+column+") VALUES (?,?,?)",
				id, i, v); err != nil {
				return err
			}
		}
		return nil
	}
	if err := insert("dev_portfolio_images", "url", it.Images); err != nil {
		return 0, err
	}
	if err := insert("dev_portfolio_tags", "tag", it.Tags); err != nil {
		return 0, err
	}
	if err := insert("dev_portfolio_technologies", "technology", it.Technologies); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(id), nil
}
