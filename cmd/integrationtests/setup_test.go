package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"meme-market/internal/caption"
	"meme-market/internal/ledger"
	"meme-market/internal/metrics"
	model "meme-market/internal/models"
	"meme-market/internal/repository"
	"meme-market/internal/server"
	"meme-market/internal/wallet"
	"meme-market/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouterWithMemes initializes the router over an in-memory repository seeded with memes.
func SetupTestRouterWithMemes(t *testing.T, memes ...model.Meme) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, m := range memes {
		repo.AddMeme(m)
	}

	market := ledger.NewLedger(repo, caption.NewTableCaptioner(0))
	require.NoError(t, market.Refresh(context.Background()))

	sessions := wallet.NewSessions(wallet.NewDirectory())
	return server.SetupRouter(market, sessions, metrics.New())
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(helpers.SessionTokenHeader, token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Login opens a session and returns its token and the user payload
func Login(t *testing.T, router *gin.Engine, name string) (string, map[string]any) {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/sessions", "", helpers.LoginRequest{Name: name})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	return data["token"].(string), data["user"].(map[string]any)
}

// httptestGet performs a GET without parsing the body, for non-JSON endpoints
func httptestGet(router *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}
