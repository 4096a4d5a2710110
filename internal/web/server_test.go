package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TronJG/telegram-bot/internal/config"
	"github.com/TronJG/telegram-bot/internal/reminder"
	"github.com/TronJG/telegram-bot/internal/storage"
	"github.com/TronJG/telegram-bot/internal/store"
)

type nopNotifier struct{}

func (nopNotifier) Send(ctx context.Context, text string) error { return nil }

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop().Sugar()

	st, err := store.Open(context.Background(),
		storage.NewFile(filepath.Join(t.TempDir(), "data.json")), 3, log)
	require.NoError(t, err)

	engine := reminder.NewEngine(st, nopNotifier{}, 1, log)
	cfg := config.Config{MaxAccountsPerNumber: 3, ReminderDaysBefore: 1}
	return New(st, engine, cfg, log), st
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestAddPhoneForm(t *testing.T) {
	s, st := newTestServer(t)

	w := postForm(t, s, "/add_phone", url.Values{
		"phone_number": {"0912345678"},
		"renewal_date": {"25/12/2025"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	p, exists := st.GetPhone("0912345678")
	require.True(t, exists)
	assert.Equal(t, "25/12/2025", p.RenewalDate.Format("02/01/2006"))
}

func TestAddPhoneFormRejectsBadInput(t *testing.T) {
	s, st := newTestServer(t)

	w := postForm(t, s, "/add_phone", url.Values{
		"phone_number": {"12345"},
		"renewal_date": {"25/12/2025"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "msg=")
	assert.Empty(t, st.AllPhones())

	w = postForm(t, s, "/add_phone", url.Values{
		"phone_number": {"0912345678"},
		"renewal_date": {"31/02/2025"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, st.AllPhones())
}

func TestAddAccountForm(t *testing.T) {
	s, st := newTestServer(t)
	ctx := context.Background()
	d := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local)
	require.True(t, st.AddPhone(ctx, "0912345678", d).OK)

	w := postForm(t, s, "/add_account", url.Values{
		"phone_number": {"0912345678"},
		"account_name": {"Facebook"},
		"renewal_date": {"25/12/2025"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/phone/0912345678"))

	p, _ := st.GetPhone("0912345678")
	require.Len(t, p.Accounts, 1)
	assert.Equal(t, "Facebook", p.Accounts[0].Name)
}

func TestAPIPhones(t *testing.T) {
	s, st := newTestServer(t)
	ctx := context.Background()
	d := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local)
	require.True(t, st.AddPhone(ctx, "0912345678", d).OK)
	require.True(t, st.AddAccount(ctx, "0912345678", "Facebook", d).OK)

	w := get(t, s, "/api/phones")
	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]struct {
		RenewalDate string `json:"renewal_date"`
		Accounts    []struct {
			Name        string `json:"name"`
			RenewalDate string `json:"renewal_date"`
		} `json:"accounts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Contains(t, out, "0912345678")
	assert.Equal(t, "25/12/2025", out["0912345678"].RenewalDate)
	require.Len(t, out["0912345678"].Accounts, 1)
	assert.Equal(t, "Facebook", out["0912345678"].Accounts[0].Name)
}

func TestAPIUpcomingRenewals(t *testing.T) {
	s, st := newTestServer(t)
	ctx := context.Background()
	n := time.Now().AddDate(0, 0, 1)
	due := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.Local)
	require.True(t, st.AddPhone(ctx, "0912345678", due).OK)

	w := get(t, s, "/api/upcoming_renewals?days=1")
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "phone", out[0]["type"])
	assert.Equal(t, "0912345678", out[0]["phone_number"])

	w = get(t, s, "/api/upcoming_renewals?days=nope")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIndexAndDetailPages(t *testing.T) {
	s, st := newTestServer(t)
	ctx := context.Background()
	d := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local)
	require.True(t, st.AddPhone(ctx, "0912345678", d).OK)

	w := get(t, s, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "0912345678")
	assert.Contains(t, w.Body.String(), "25/12/2025")

	w = get(t, s, "/phone/0912345678")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "0912345678")

	w = get(t, s, "/phone/0000000000")
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestAPICheck(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/check", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
