package adminsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyStates(t *testing.T) {
	t.Parallel()

	t.Run("list forwards filters and pagination", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/api/company/", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "Acme", q.Get("companyName"))
			assert.Equal(t, "AC-01", q.Get("companyCode"))
			assert.Equal(t, "2", q.Get("page"))
			assert.Equal(t, "50", q.Get("pageSize"))
			writeEnvelope(t, w, CodeSuccess, "ok", CompanyPage{
				Data:     []CompanyState{{ID: 1, CompanyName: "Acme Pty Ltd"}},
				Total:    1,
				Page:     2,
				PageSize: 50,
			})
		}))
		defer srv.Close()

		client, _, _ := newTestClient(srv)
		page, err := client.ListCompanyStates(context.Background(), CompanyQuery{
			CompanyName: "Acme",
			CompanyCode: "AC-01",
			Page:        2,
			PageSize:    50,
		})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Acme Pty Ltd", page.Data[0].CompanyName)
		assert.Equal(t, 1, page.Total)
	})

	t.Run("lookups hit their dedicated paths", func(t *testing.T) {
		t.Parallel()

		var paths []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.EscapedPath())
			switch {
			case r.URL.Path == "/api/company/user-info/9":
				writeEnvelope(t, w, CodeSuccess, "ok", []CompanyState{{ID: 3}})
			default:
				writeEnvelope(t, w, CodeSuccess, "ok", CompanyState{ID: 3, CompanyName: "Acme"})
			}
		}))
		defer srv.Close()

		client, _, _ := newTestClient(srv)
		ctx := context.Background()

		_, err := client.CompanyState(ctx, 3)
		require.NoError(t, err)
		_, err = client.CompanyStateByName(ctx, "Acme & Sons")
		require.NoError(t, err)
		states, err := client.CompanyStatesByUser(ctx, 9)
		require.NoError(t, err)
		require.Len(t, states, 1)

		require.Len(t, paths, 3)
		assert.Equal(t, "/api/company/info/3", paths[0])
		assert.Equal(t, "/api/company/name/Acme%20&%20Sons", paths[1])
		assert.Equal(t, "/api/company/user-info/9", paths[2])
	})

	t.Run("create posts the linked user", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/company/create", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Acme Pty Ltd", body["companyName"])
			assert.Equal(t, float64(9), body["userId"])

			writeEnvelope(t, w, CodeSuccess, "ok", CompanyState{
				ID: 11, CompanyName: "Acme Pty Ltd", UserID: 9,
			})
		}))
		defer srv.Close()

		client, _, _ := newTestClient(srv)
		created, err := client.CreateCompanyState(context.Background(), CreateCompanyStateRequest{
			CompanyName: "Acme Pty Ltd",
			UserID:      9,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
		assert.Equal(t, int64(9), created.UserID)
	})

	t.Run("update and delete target the record id", func(t *testing.T) {
		t.Parallel()

		var gotMethod, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			writeEnvelope(t, w, CodeSuccess, "ok", CompanyState{ID: 11, CompanyName: "Acme"})
		}))
		defer srv.Close()

		client, _, _ := newTestClient(srv)
		ctx := context.Background()

		_, err := client.UpdateCompanyState(ctx, 11, UpdateCompanyStateRequest{CompanyPhone: "123"})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "/api/company/update/11", gotPath)

		require.NoError(t, client.DeleteCompanyState(ctx, 11))
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/api/company/11", gotPath)
	})
}

func TestUsersAdmin(t *testing.T) {
	t.Parallel()

	t.Run("list forwards filters", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/users", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "1", q.Get("page"))
			assert.Equal(t, "20", q.Get("pageSize"))
			assert.Equal(t, "ali", q.Get("keyword"))
			assert.Equal(t, "admin", q.Get("role"))
			writeEnvelope(t, w, CodeSuccess, "ok", UserPage{
				Data:  []UserRecord{{ID: 1, Username: "alice", Role: RoleAdmin}},
				Total: 1,
			})
		}))
		defer srv.Close()

		client, _, _ := newTestClient(srv)
		page, err := client.ListUsers(context.Background(), UserQuery{
			Page:     1,
			PageSize: 20,
			Keyword:  "ali",
			Role:     RoleAdmin,
		})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "alice", page.Data[0].Username)
	})

	t.Run("zero-value filters stay off the wire", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			writeEnvelope(t, w, CodeSuccess, "ok", UserPage{})
		}))
		defer srv.Close()

		client, _, _ := newTestClient(srv)
		_, err := client.ListUsers(context.Background(), UserQuery{})
		require.NoError(t, err)
	})

	t.Run("create, update and delete", func(t *testing.T) {
		t.Parallel()

		var gotMethod, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			writeEnvelope(t, w, CodeSuccess, "ok", UserRecord{ID: 5, Username: "bob"})
		}))
		defer srv.Close()

		client, _, _ := newTestClient(srv)
		ctx := context.Background()

		created, err := client.CreateUser(ctx, CreateUserRequest{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "pw",
			Role:     RoleUser,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/users", gotPath)

		_, err = client.UpdateUser(ctx, 5, UpdateUserRequest{Email: "new@example.com"})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "/users/5", gotPath)

		require.NoError(t, client.DeleteUser(ctx, 5))
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/users/5", gotPath)
	})

	t.Run("update profile", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			require.Equal(t, "/user/profile", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Alice Chen", body["name"])

			writeEnvelope(t, w, CodeSuccess, "ok", UserInfo{Name: "Alice Chen", Role: RoleUser})
		}))
		defer srv.Close()

		client, _, _ := newTestClient(srv)
		info, err := client.UpdateProfile(context.Background(), ProfileUpdate{Name: "Alice Chen"})
		require.NoError(t, err)
		assert.Equal(t, "Alice Chen", info.Name)
	})
}
