package fortnite

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jose-valero/fortnite-squad-bot/internal/domain"
)

const okBody = `{
  "status": 200,
  "data": {
    "account": {"id": "abc-123", "name": "Ninja"},
    "battlePass": {"level": 87, "progress": 40},
    "stats": {
      "all": {
        "overall": {"wins": 10, "kills": 200, "matches": 100, "kd": 2.22, "winRate": 10.0, "minutesPlayed": 900},
        "solo":    {"wins": 4, "kills": 80, "matches": 40}
      }
    }
  }
}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New("test-key", WithBaseURL(srv.URL))
}

func TestFetchStatsOK(t *testing.T) {
	var gotQuery url.Values
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(okBody))
	})

	ps, err := c.FetchStats(context.Background(), "Ninja")
	require.NoError(t, err)

	require.Equal(t, "test-key", gotAuth)
	require.Equal(t, "Ninja", gotQuery.Get("name"))
	require.Equal(t, "epic", gotQuery.Get("accountType"))
	require.Equal(t, "lifetime", gotQuery.Get("timeWindow"))

	require.Equal(t, "abc-123", ps.AccountID)
	require.Equal(t, "Ninja", ps.Name)
	require.Equal(t, 87, ps.BattlePassLevel)
	require.NotNil(t, ps.Overall)
	require.Equal(t, 10, ps.Overall.Wins)
	require.Equal(t, 200, ps.Overall.Kills)
	require.NotNil(t, ps.Solo)
	require.Nil(t, ps.Duo) // modo sin datos queda nil
}

func TestFetchStatsPlayerNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// el proveedor responde HTTP 200 con status 404 adentro
		w.Write([]byte(`{"status": 404, "error": "account not found"}`))
	})

	_, err := c.FetchStats(context.Background(), "nadie")
	require.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestFetchStatsPrivateAccount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 403, "error": "stats are private"}`))
	})

	_, err := c.FetchStats(context.Background(), "privado")
	require.ErrorIs(t, err, ErrStatsUnavailable)
}

// Stats vacías (cuenta que nunca jugó BR) se tratan como no disponibles.
func TestFetchStatsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 200, "data": {"account": {"id": "x", "name": "Vacio"}, "stats": {"all": {}}}}`))
	})

	_, err := c.FetchStats(context.Background(), "Vacio")
	require.ErrorIs(t, err, ErrStatsUnavailable)
}

// HTTP 200 con JSON válido pero sin el campo status del proveedor: error
// tipado, nunca un envelope a medias (ni un panic aguas arriba).
func TestFetchStatsMissingEnvelopeStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ps, err := c.FetchStats(context.Background(), "Ninja")
	require.Nil(t, ps)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusOK, apiErr.Status)
}

// HTTP 200 con cuerpo que no es JSON: error de decode envuelto, no el
// crudo de json.Unmarshal.
func TestFetchStatsGarbageBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>mantenimiento</html>"))
	})

	_, err := c.FetchStats(context.Background(), "Ninja")
	require.Error(t, err)
	require.Contains(t, err.Error(), "fortnite decode")
}

func TestFetchStatsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := c.FetchStats(context.Background(), "Ninja")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Contains(t, apiErr.Body, "upstream exploded")
}

func TestFetchStatsTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(okBody))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.FetchStats(ctx, "Ninja")
	require.ErrorIs(t, err, ErrTimeout)
}

func TestFetchStatsClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := New("k", WithBaseURL(srv.URL), WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	_, err := c.FetchStats(context.Background(), "Ninja")
	require.ErrorIs(t, err, ErrTimeout)
}

func TestModeStatsStatLookup(t *testing.T) {
	ms := &domain.ModeStats{Wins: 3, Kills: 9, KD: 1.5}
	require.Equal(t, 3.0, ms.Stat(domain.StatWins))
	require.Equal(t, 9.0, ms.Stat(domain.StatKills))
	require.Equal(t, 1.5, ms.Stat(domain.StatKD))
}
