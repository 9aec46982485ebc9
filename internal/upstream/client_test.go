package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second)
}

func TestDo_AttachesBearerTokenWhenPresent(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	ctx := WithToken(context.Background(), "tok-123")
	_, err := c.Get(ctx, "/users", nil)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)

	_, err = c.Get(context.Background(), "/users", nil)
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestDo_UnauthorizedSentinelForEveryVerb(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	ctx := WithToken(context.Background(), "stale")
	calls := []func() error{
		func() error { _, err := c.Get(ctx, "/x", nil); return err },
		func() error { _, err := c.Post(ctx, "/x", nil, nil); return err },
		func() error { _, err := c.Put(ctx, "/x", nil, nil); return err },
		func() error { _, err := c.Patch(ctx, "/x", nil, nil); return err },
		func() error { _, err := c.Delete(ctx, "/x", nil); return err },
	}
	for i, call := range calls {
		err := call()
		require.ErrorIs(t, err, ErrUnauthorized, "verb %d", i)
	}
}

func TestDo_UnwrapsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":7,"voiceName":"Robot","code":"RB"}],"message":"ok"}`))
	})

	var got []VoiceType
	msg, err := c.Get(context.Background(), "/voice-types", &got)
	require.NoError(t, err)
	require.Equal(t, "ok", msg)
	require.Len(t, got, 1)
	require.Equal(t, int64(7), got[0].ID)
	require.Equal(t, "Robot", got[0].VoiceName)
}

func TestDo_PassesBarePayloadThrough(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalUsers":3,"totalVoiceTypes":2,"totalTopUps":1,"totalCallHistory":9}`))
	})

	var got DashboardStats
	msg, err := c.Get(context.Background(), "/dashboard/stats", &got)
	require.NoError(t, err)
	require.Empty(t, msg)
	require.Equal(t, int64(3), got.TotalUsers)
	require.Equal(t, int64(9), got.TotalCallHistory)
}

func TestDo_MessageWithoutDataIsSurfaced(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"message":"Top-up approved successfully"}`))
	})

	msg, err := c.Patch(context.Background(), "/topup/42/approve", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "Top-up approved successfully", msg)
}

func TestDo_SerializesRequestBody(t *testing.T) {
	var gotBody map[string]any
	var gotContentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	})

	_, err := c.Post(context.Background(), "/voice-types", VoiceTypeRequest{VoiceName: "Alien", Code: "AL"}, nil)
	require.NoError(t, err)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "Alien", gotBody["voiceName"])
	require.Equal(t, "AL", gotBody["code"])
}

func TestDo_BusinessErrorCarriesStatusAndMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"Voice type code already exists"}`))
	})

	_, err := c.Post(context.Background(), "/voice-types", VoiceTypeRequest{VoiceName: "Dup", Code: "DP"}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "Voice type code already exists", apiErr.Message)
}

func TestDo_ErrorFallsBackToStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream fell over"))
	})

	_, err := c.Get(context.Background(), "/users", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestDo_TransportFailureWrapped(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.Get(context.Background(), "/users", nil)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrUnauthorized))
}

func TestLogin_DecodesAuthResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"jwt-abc","username":"admin","roles":["ROLE_ADMIN","ROLE_USER"]}`))
	})

	resp, err := c.Login(context.Background(), Credentials{Username: "admin", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "jwt-abc", resp.Token)
	require.Equal(t, []string{"ROLE_ADMIN", "ROLE_USER"}, resp.Roles)
}
