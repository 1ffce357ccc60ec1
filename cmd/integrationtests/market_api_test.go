package integrationtests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	model "meme-market/internal/models"
	"meme-market/services/market/helpers"

	"github.com/stretchr/testify/require"
)

var seededAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

func listing(id string, price, up, down int, age time.Duration) model.Meme {
	return model.Meme{
		MemeID:    id,
		Title:     "title " + id,
		ImageURL:  "https://example.com/" + id + ".png",
		Tags:      []string{"neon"},
		Upvotes:   up,
		Downvotes: down,
		OwnerID:   "system",
		OwnerName: "SYSTEM",
		Price:     price,
		CreatedAt: seededAt.Add(-age),
		Version:   1,
	}
}

// Login Tests
func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		request     any
		wantStatus  int
		wantName    string
		wantCredits float64
	}{
		{name: "Seeded_Identity", request: helpers.LoginRequest{Name: "cyberninja"}, wantStatus: http.StatusCreated, wantName: "CyberNinja", wantCredits: 2500},
		{name: "New_Identity", request: helpers.LoginRequest{Name: "UnknownName"}, wantStatus: http.StatusCreated, wantName: "UnknownName", wantCredits: 1000},
		{name: "Blank_Name", request: helpers.LoginRequest{Name: "   "}, wantStatus: http.StatusBadRequest},
		{name: "Invalid_JSON", request: []byte("{name: nope}"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouterWithMemes(t)
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/sessions", "", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.NotEmpty(t, data["token"])
				user := data["user"].(map[string]any)
				require.Equal(t, tt.wantName, user["name"])
				require.Equal(t, tt.wantCredits, user["credits"])
			}
		})
	}
}

// Session lifecycle: me, daily bonus twice, logout, token rejected afterwards
func TestSessionLifecycle(t *testing.T) {
	router := SetupTestRouterWithMemes(t)
	token, _ := Login(t, router, "NeonHacker")

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/sessions/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1800.0, resp["data"].(map[string]any)["credits"])

	for _, want := range []float64{2300, 2800} {
		resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/sessions/me/bonus", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, want, resp["data"].(map[string]any)["credits"])
	}

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, "/sessions/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/sessions/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// balance survives logout
	_, user := Login(t, router, "neonhacker")
	require.Equal(t, 2800.0, user["credits"])
}

// SubmitMeme Tests
func TestSubmitMeme(t *testing.T) {
	router := SetupTestRouterWithMemes(t, listing("old", 100, 0, 0, time.Hour))
	token, user := Login(t, router, "GlitchQueen")

	tests := []struct {
		name       string
		token      string
		request    any
		wantStatus int
	}{
		{
			name:       "Valid_Meme",
			token:      token,
			request:    helpers.SubmitMemeRequest{Title: "Neon Cat", ImageURL: "https://example.com/cat.png", Tags: []string{"NEON", "cat", "neon"}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Missing_Image",
			token:      token,
			request:    map[string]any{"title": "No Image"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Anonymous",
			token:      "",
			request:    helpers.SubmitMemeRequest{Title: "t", ImageURL: "u"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/memes", tt.token, tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, []any{"neon", "cat"}, data["tags"])
				require.Equal(t, 100.0, data["price"])
				require.Equal(t, user["user_id"], data["owner_id"])
				require.Equal(t, "Glowing in the digital wasteland", data["ai_caption"])
				require.Equal(t, "Electric Dreams", data["vibe_analysis"])
				_, err := time.Parse(time.RFC3339, data["created_at"].(string))
				require.NoError(t, err)
			}
		})
	}

	// newest first
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/memes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	memes := resp["data"].([]any)
	require.Len(t, memes, 2)
	require.Equal(t, "Neon Cat", memes[0].(map[string]any)["title"])

	// owned memes show up on the session
	resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/sessions/me", token, nil)
	require.Len(t, resp["data"].(map[string]any)["owned_meme_ids"], 1)
}

// PlaceBid Tests
func TestPlaceBid(t *testing.T) {
	tests := []struct {
		name            string
		amount          int
		wantStatus      int
		wantPrice       float64
		wantTransferred bool
		wantCredits     float64
	}{
		{name: "Equal_To_Price", amount: 100, wantStatus: http.StatusConflict, wantPrice: 100, wantCredits: 1000},
		{name: "Just_Above_Price", amount: 101, wantStatus: http.StatusCreated, wantPrice: 101, wantCredits: 899},
		{name: "Below_Instant_Buy", amount: 199, wantStatus: http.StatusCreated, wantPrice: 199, wantCredits: 801},
		{name: "Instant_Buy", amount: 200, wantStatus: http.StatusCreated, wantPrice: 200, wantTransferred: true, wantCredits: 800},
		{name: "Zero", amount: 0, wantStatus: http.StatusBadRequest, wantPrice: 100, wantCredits: 1000},
		{name: "Over_Balance", amount: 1001, wantStatus: http.StatusPaymentRequired, wantPrice: 100, wantCredits: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouterWithMemes(t, listing("m1", 100, 0, 0, 0))
			token, user := Login(t, router, "Bidder")

			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/memes/m1/bids", token, helpers.PlaceBidRequest{Amount: tt.amount})
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, tt.wantTransferred, data["transferred"])
				require.Equal(t, tt.wantCredits, data["credits"])
			}

			resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/memes/m1", "", nil)
			require.Equal(t, http.StatusOK, w.Code)
			meme := resp["data"].(map[string]any)
			require.Equal(t, tt.wantPrice, meme["price"])
			if tt.wantTransferred {
				require.Equal(t, user["user_id"], meme["owner_id"])
			} else {
				require.Equal(t, "system", meme["owner_id"])
			}

			resp, _ = ExecuteRequestAndParse(t, router, http.MethodGet, "/sessions/me", token, nil)
			require.Equal(t, tt.wantCredits, resp["data"].(map[string]any)["credits"])
		})
	}
}

func TestPlaceBid_UnknownMeme(t *testing.T) {
	router := SetupTestRouterWithMemes(t)
	token, _ := Login(t, router, "Bidder")

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/memes/ghost/bids", token, helpers.PlaceBidRequest{Amount: 10})
	require.Equal(t, http.StatusNotFound, w.Code)
}

// TopBids Tests
func TestTopBids(t *testing.T) {
	router := SetupTestRouterWithMemes(t, listing("m1", 10, 0, 0, 0), listing("m2", 10, 0, 0, time.Minute))
	token, _ := Login(t, router, "GlitchQueen")

	// rising bids below the instant-buy threshold each time
	amounts := []int{11, 12, 13, 14, 15, 16, 17}
	for _, a := range amounts {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/memes/m1/bids", token, helpers.PlaceBidRequest{Amount: a})
		require.Equal(t, http.StatusCreated, w.Code)
	}
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/memes/m2/bids", token, helpers.PlaceBidRequest{Amount: 500})
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name      string
		url       string
		wantCount int
		wantTop   float64
	}{
		{name: "Default_Limit", url: "/memes/m1/bids", wantCount: 5, wantTop: 17},
		{name: "Explicit_Limit", url: "/memes/m1/bids?limit=2", wantCount: 2, wantTop: 17},
		{name: "Other_Meme", url: "/memes/m2/bids", wantCount: 1, wantTop: 500},
		{name: "No_Bids", url: "/memes/nonexistent/bids", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, tt.url, "", nil)
			require.Equal(t, http.StatusOK, w.Code)

			bids := resp["data"].([]any)
			require.Len(t, bids, tt.wantCount)
			prev := 1e9
			for _, b := range bids {
				bid := b.(map[string]any)
				require.LessOrEqual(t, bid["amount"].(float64), prev)
				prev = bid["amount"].(float64)
			}
			if tt.wantCount > 0 {
				require.Equal(t, tt.wantTop, bids[0].(map[string]any)["amount"])
			}
		})
	}
}

// Votes and Leaderboard Tests
func TestVotesAndLeaderboard(t *testing.T) {
	router := SetupTestRouterWithMemes(t,
		listing("a", 100, 5, 0, 3*time.Minute),
		listing("b", 100, 4, 0, 2*time.Minute),
		listing("c", 100, 0, 0, time.Minute),
	)
	token, _ := Login(t, router, "CyberNinja")

	for i := 0; i < 6; i++ {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/memes/c/upvote", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/memes/a/downvote", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/memes/a/upvote", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/memes/zzz/upvote", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/leaderboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order []string
	for _, m := range resp["data"].([]any) {
		order = append(order, m.(map[string]any)["meme_id"].(string))
	}
	// c=6, a=4, b=4; a and b tie so the newer b comes first
	require.Equal(t, []string{"c", "b", "a"}, order)
}

// Browse Tests: tag filter, search, popular tags, duel and portfolio
func TestBrowse(t *testing.T) {
	cat := listing("cat", 300, 0, 0, time.Minute)
	cat.Title = "Matrix Cat"
	cat.Tags = []string{"cat", "matrix"}
	doge := listing("doge", 400, 0, 0, 2*time.Minute)
	doge.Title = "Cyber Doge"
	doge.Tags = []string{"doge"}
	router := SetupTestRouterWithMemes(t, cat, doge)

	tests := []struct {
		name      string
		url       string
		wantCount int
	}{
		{name: "All", url: "/memes", wantCount: 2},
		{name: "Tag", url: "/memes?tag=matrix", wantCount: 1},
		{name: "Search", url: "/memes?q=DOGE", wantCount: 1},
		{name: "No_Match", url: "/memes?tag=stonks", wantCount: 0},
		{name: "Popular_Tags", url: "/tags/popular", wantCount: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, tt.url, "", nil)
			require.Equal(t, http.StatusOK, w.Code)
			require.Len(t, resp["data"].([]any), tt.wantCount)
		})
	}

	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/duel", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	duel := resp["data"].(map[string]any)
	require.NotEqual(t, duel["left"].(map[string]any)["meme_id"], duel["right"].(map[string]any)["meme_id"])

	resp, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/users/system/portfolio", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	portfolio := resp["data"].(map[string]any)
	require.Equal(t, 700.0, portfolio["total_value"])
	require.Len(t, portfolio["memes"], 2)
}

func TestDuel_NotEnoughMemes(t *testing.T) {
	router := SetupTestRouterWithMemes(t, listing("only", 100, 0, 0, 0))
	_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/duel", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshAndMetrics(t *testing.T) {
	router := SetupTestRouterWithMemes(t, listing("m1", 100, 0, 0, 0))

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/memes/refresh", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1.0, resp["count"])

	w = httptestGet(router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), fmt.Sprintf(`route="%s"`, "/memes/refresh"))
}
