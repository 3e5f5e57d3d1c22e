package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nextel-storefront-be/internal/bootstrap"
	"nextel-storefront-be/internal/config"
	"nextel-storefront-be/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp boots the full HTTP stack with in-memory repositories and no
// external services.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("DATA_DIR", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("NATS_URL", "")
	t.Setenv("DB_CONNECTION_STRING", "")
	t.Setenv("REMOTE_API_BASE_URL", "http://127.0.0.1:1")
	t.Setenv("REMOTE_API_TIMEOUT_SECONDS", "1")
	t.Setenv("CHAT_REPLY_BASE_DELAY_MS", "1")
	t.Setenv("CHAT_REPLY_JITTER_MS", "0")
	t.Setenv("JWT_SECRET", "integration-secret")

	cfg := config.Load()
	container := bootstrap.NewContainer(nil, cfg)
	return server.New(cfg, container).GetApp()
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, cookies []*http.Cookie) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	res, err := app.Test(req, 5000)
	require.NoError(t, err)

	var env envelope
	_ = json.NewDecoder(res.Body).Decode(&env)
	return res, env
}

func TestChatConversationOverHTTP(t *testing.T) {
	app := newTestApp(t)

	res, env := doJSON(t, app, http.MethodPost, "/api/chat/v1/conversations", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.True(t, env.Success)

	var conv struct {
		Id   string   `json:"id"`
		Path []string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &conv))
	assert.Equal(t, []string{"Welcome"}, conv.Path)

	res, env = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/chat/v1/conversations/%s/select", conv.Id),
		map[string]string{"option_id": "billing"}, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Selecting an option the current node does not offer is a 400.
	res, _ = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/chat/v1/conversations/%s/select", conv.Id),
		map[string]string{"option_id": "bogus"}, nil)
	assert.Contains(t, []int{http.StatusBadRequest, http.StatusConflict}, res.StatusCode)

	// The delayed reply lands and shows up on a subsequent read.
	require.Eventually(t, func() bool {
		res, env := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/chat/v1/conversations/%s", conv.Id), nil, nil)
		if res.StatusCode != http.StatusOK {
			return false
		}
		var state struct {
			Transcript    []json.RawMessage `json:"transcript"`
			AwaitingReply bool              `json:"awaiting_reply"`
		}
		if err := json.Unmarshal(env.Data, &state); err != nil {
			return false
		}
		return len(state.Transcript) == 3 && !state.AwaitingReply
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCartAndCheckoutOverHTTP(t *testing.T) {
	app := newTestApp(t)

	// First contact mints the session cookie that keys the cart.
	res, env := doJSON(t, app, http.MethodGet, "/api/cart/v1", nil, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	cookies := res.Cookies()
	require.NotEmpty(t, cookies)

	res, env = doJSON(t, app, http.MethodPost, "/api/cart/v1/items", map[string]interface{}{
		"product": map[string]interface{}{
			"Product_Id":    "prod-boost",
			"Product_Name":  "5G Ultra Speed Boost",
			"Product_Price": "$19.99",
		},
		"quantity": 2,
	}, cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var cart struct {
		Total float64 `json:"total"`
		Count int     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, 39.98, cart.Total)
	assert.Equal(t, 2, cart.Count)

	// Walk the checkout; the upstream is unreachable but masking confirms
	// the order anyway.
	res, _ = doJSON(t, app, http.MethodPost, "/api/checkout/v1/begin", nil, cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = doJSON(t, app, http.MethodPost, "/api/checkout/v1/shipping", map[string]string{
		"name": "Dana", "email": "dana@example.com", "phone": "555-0101",
		"address": "1 Main St", "city": "Springfield", "zip_code": "12345",
	}, cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = doJSON(t, app, http.MethodPost, "/api/checkout/v1/payment", map[string]string{
		"card_number": "4111111111111111", "card_expiry": "12/27", "card_cvc": "123",
	}, cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, env = doJSON(t, app, http.MethodPost, "/api/checkout/v1/submit", nil, cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var order struct {
		OrderId string `json:"order_id"`
		Status  string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.NotEmpty(t, order.OrderId)
	assert.Equal(t, "confirmed", order.Status)

	// The cart is empty after submission.
	res, env = doJSON(t, app, http.MethodGet, "/api/cart/v1", nil, cookies)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, 0, cart.Count)
}

func TestCheckoutRequiresNonEmptyCartOverHTTP(t *testing.T) {
	app := newTestApp(t)

	res, _ := doJSON(t, app, http.MethodGet, "/api/cart/v1", nil, nil)
	cookies := res.Cookies()

	res, env := doJSON(t, app, http.MethodPost, "/api/checkout/v1/begin", nil, cookies)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.False(t, env.Success)
}

func TestSupportTicketOverHTTP(t *testing.T) {
	app := newTestApp(t)

	res, env := doJSON(t, app, http.MethodPost, "/api/support/v1/tickets", map[string]string{
		"name":     "Dana",
		"email":    "dana@example.com",
		"category": "Billing",
		"message":  "I was charged twice this month.",
	}, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.True(t, env.Success)

	var ticket struct {
		Id     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &ticket))
	assert.NotEmpty(t, ticket.Id)
	assert.Equal(t, "open", ticket.Status)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp(t)

	res, _ := doJSON(t, app, http.MethodGet, "/api/me/v1/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
