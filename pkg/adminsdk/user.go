package adminsdk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Login authenticates with the form-encoded credentials endpoint and
// returns the issued token together with the actor's profile. It does not
// touch the credential store; Session.Login owns that lifecycle.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	var resp LoginResponse
	if err := c.postForm(ctx, "/user/login", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the server-side session. Client-side teardown is
// Session.Logout's responsibility and happens regardless of this call's
// outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/user/logout", nil, nil)
}

// UserInfo fetches the authenticated actor's profile (who-am-I).
func (c *Client) UserInfo(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := c.postJSON(ctx, userInfoPath, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Menu fetches the server-driven menu: the ordered route records the
// navigation guard merges with the static whitelist.
func (c *Client) Menu(ctx context.Context) ([]MenuRoute, error) {
	var menu []MenuRoute
	if err := c.getJSON(ctx, "/user/menu", nil, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// UpdateProfile updates the actor's own display fields.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*UserInfo, error) {
	var info UserInfo
	if err := c.putJSON(ctx, "/user/profile", update, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ============================================================================
// Users administration
// ============================================================================

// ListUsers pages through user accounts.
func (c *Client) ListUsers(ctx context.Context, q UserQuery) (*UserPage, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Keyword != "" {
		query.Set("keyword", q.Keyword)
	}
	if q.Role != RoleAnonymous {
		query.Set("role", q.Role.String())
	}
	if q.Status != "" {
		query.Set("status", q.Status)
	}

	var page UserPage
	if err := c.getJSON(ctx, "/users", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*UserRecord, error) {
	var rec UserRecord
	if err := c.postJSON(ctx, "/users", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*UserRecord, error) {
	var rec UserRecord
	if err := c.putJSON(ctx, fmt.Sprintf("/users/%d", id), req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.deleteCall(ctx, fmt.Sprintf("/users/%d", id))
}
