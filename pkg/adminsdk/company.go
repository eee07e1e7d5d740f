package adminsdk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Company-state resource client. Paths mirror the server's company router:
// list at the collection root, lookups under /info, /name and /user-info,
// mutations under /create and /update.

// ListCompanyStates pages through company-state records.
func (c *Client) ListCompanyStates(ctx context.Context, q CompanyQuery) (*CompanyPage, error) {
	query := url.Values{}
	if q.CompanyName != "" {
		query.Set("companyName", q.CompanyName)
	}
	if q.CompanyCode != "" {
		query.Set("companyCode", q.CompanyCode)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	var page CompanyPage
	if err := c.getJSON(ctx, "/api/company/", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CompanyState(ctx context.Context, id int64) (*CompanyState, error) {
	var state CompanyState
	if err := c.getJSON(ctx, fmt.Sprintf("/api/company/info/%d", id), nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) CompanyStateByName(ctx context.Context, name string) (*CompanyState, error) {
	var state CompanyState
	if err := c.getJSON(ctx, "/api/company/name/"+url.PathEscape(name), nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// CompanyStatesByUser returns the company records linked to a user account.
func (c *Client) CompanyStatesByUser(ctx context.Context, userID int64) ([]CompanyState, error) {
	var states []CompanyState
	if err := c.getJSON(ctx, fmt.Sprintf("/api/company/user-info/%d", userID), nil, &states); err != nil {
		return nil, err
	}
	return states, nil
}

func (c *Client) CreateCompanyState(ctx context.Context, req CreateCompanyStateRequest) (*CompanyState, error) {
	var state CompanyState
	if err := c.postJSON(ctx, "/api/company/create", req, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) UpdateCompanyState(
	ctx context.Context,
	id int64,
	req UpdateCompanyStateRequest,
) (*CompanyState, error) {
	var state CompanyState
	if err := c.putJSON(ctx, fmt.Sprintf("/api/company/update/%d", id), req, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) DeleteCompanyState(ctx context.Context, id int64) error {
	return c.deleteCall(ctx, fmt.Sprintf("/api/company/%d", id))
}
