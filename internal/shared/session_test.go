package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *SessionManager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionManager(client, "test_session", time.Hour, false)
}

func TestSessionRoundTrip(t *testing.T) {
	sm := newManager(t)
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, err := sm.Load(ctx, req)
	require.NoError(t, err)
	require.Empty(t, sess.User())

	sess.SetUser("1", "admin")

	res := httptest.NewRecorder()
	require.NoError(t, sm.Commit(ctx, res, sess))

	cookies := res.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "test_session", cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)

	// Replay the cookie on a second request.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookies[0])
	sess2, err := sm.Load(ctx, req2)
	require.NoError(t, err)
	require.Equal(t, "1", sess2.User())
	require.Equal(t, "admin", sess2.Role())
}

func TestSessionDestroy(t *testing.T) {
	sm := newManager(t)
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, err := sm.Load(ctx, req)
	require.NoError(t, err)
	sess.SetUser("1", "admin")

	res := httptest.NewRecorder()
	require.NoError(t, sm.Commit(ctx, res, sess))
	cookie := res.Result().Cookies()[0]

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookie)
	sess2, err := sm.Load(ctx, req2)
	require.NoError(t, err)

	sm.Destroy(sess2)
	res2 := httptest.NewRecorder()
	require.NoError(t, sm.Commit(ctx, res2, sess2))

	cleared := res2.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Equal(t, -1, cleared[0].MaxAge)

	// The stored session is gone: replaying the old cookie yields anonymous.
	req3 := httptest.NewRequest(http.MethodGet, "/", nil)
	req3.AddCookie(cookie)
	sess3, err := sm.Load(ctx, req3)
	require.NoError(t, err)
	require.Empty(t, sess3.User())
}

func TestUnknownCookieYieldsAnonymousSession(t *testing.T) {
	sm := newManager(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: "stale-id"})

	sess, err := sm.Load(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, sess.User())
	require.Equal(t, "stale-id", sess.ID)
}
