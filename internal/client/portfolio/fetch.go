package portfolio

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Owen-Kz/bn-portfolio/internal/client/api"
	"github.com/Owen-Kz/bn-portfolio/internal/model"
)

// ItemsPerPage is the page size every grid requests.
const ItemsPerPage = 8

// listPath builds the query string shared by all listing endpoints. The
// "All" pseudo-category is sent as no category parameter at all, matching
// what the grids have always requested.
func listPath(base string, page, limit int, category string) string {
	p := fmt.Sprintf("%s?page=%d&limit=%d", base, page, limit)
	if category != "" && category != DefaultCategory {
		p += "&category=" + url.QueryEscape(category)
	}
	return p
}

// dashboardResp is the authenticated listing shape: total is the page
// count at the requested limit.
type dashboardResp[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// publicResp is the public listing shape, with the page count nested
// under pagination.
type publicResp[T any] struct {
	Items      []T `json:"items"`
	Pagination struct {
		TotalPages int `json:"totalPages"`
	} `json:"pagination"`
}

// NewMyItemsFetch feeds the dashboard design grid.
func NewMyItemsFetch(c *api.Client) FetchFunc[model.PortfolioItem] {
	return func(ctx context.Context, page int, category string) (Page[model.PortfolioItem], error) {
		var resp dashboardResp[model.PortfolioItem]
		if err := c.Get(ctx, listPath("/getMyPortfolioItems", page, ItemsPerPage, category), &resp); err != nil {
			return Page[model.PortfolioItem]{}, err
		}
		return Page[model.PortfolioItem]{Items: resp.Items, TotalPages: resp.Total}, nil
	}
}

// NewMyDevItemsFetch feeds the dashboard dev grid.
func NewMyDevItemsFetch(c *api.Client) FetchFunc[model.DevPortfolioItem] {
	return func(ctx context.Context, page int, category string) (Page[model.DevPortfolioItem], error) {
		var resp dashboardResp[model.DevPortfolioItem]
		if err := c.Get(ctx, listPath("/getDevPortfolioItems", page, ItemsPerPage, category), &resp); err != nil {
			return Page[model.DevPortfolioItem]{}, err
		}
		return Page[model.DevPortfolioItem]{Items: resp.Items, TotalPages: resp.Total}, nil
	}
}

// NewPublicItemsFetch feeds the public design marketing grid.
func NewPublicItemsFetch(c *api.Client) FetchFunc[model.PortfolioItem] {
	return func(ctx context.Context, page int, category string) (Page[model.PortfolioItem], error) {
		var resp publicResp[model.PortfolioItem]
		if err := c.Get(ctx, listPath("/files", page, ItemsPerPage, category), &resp); err != nil {
			return Page[model.PortfolioItem]{}, err
		}
		return Page[model.PortfolioItem]{Items: resp.Items, TotalPages: resp.Pagination.TotalPages}, nil
	}
}

// NewPublicDevItemsFetch feeds the public dev marketing grid.
func NewPublicDevItemsFetch(c *api.Client) FetchFunc[model.DevPortfolioItem] {
	return func(ctx context.Context, page int, category string) (Page[model.DevPortfolioItem], error) {
		var resp publicResp[model.DevPortfolioItem]
		if err := c.Get(ctx, listPath("/devFiles", page, ItemsPerPage, category), &resp); err != nil {
			return Page[model.DevPortfolioItem]{}, err
		}
		return Page[model.DevPortfolioItem]{Items: resp.Items, TotalPages: resp.Pagination.TotalPages}, nil
	}
}
