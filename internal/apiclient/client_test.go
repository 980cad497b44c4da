package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/contract"
)

func newStub(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(ts.URL)
}

func TestStatusErrorMapping(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /goals/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(contract.ErrorDetail{Detail: "Not found"})
	})
	mux.HandleFunc("POST /focus/sessions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(contract.ErrorDetail{Detail: "Active session exists"})
	})
	mux.HandleFunc("POST /goals", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(contract.ErrorDetail{Detail: "invalid goal type"})
	})
	mux.HandleFunc("GET /logs", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(contract.ErrorDetail{Detail: "upstream broke"})
	})
	c := newStub(t, mux)
	ctx := context.Background()

	_, err := c.GetGoal(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.StartSession(ctx, nil, 1500)
	assert.ErrorIs(t, err, ErrActiveSession)

	_, err = c.CreateGoal(ctx, "Bad", "weekly")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = c.LogsInRange(ctx, "", "", FetchFirstPage)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream broke", apiErr.Detail)
}

func TestStartSession_ClientSideDurationCheck(t *testing.T) {
	c := New("http://unreachable.invalid")
	_, err := c.StartSession(context.Background(), nil, 1510)
	assert.ErrorIs(t, err, ErrInvalid, "rejected before any request is sent")
}

func TestCurrentSession_NoContentMeansNone(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /focus/sessions/current", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	c := newStub(t, mux)

	session, err := c.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestCurrentSession_DecodesSession(t *testing.T) {
	started := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /focus/sessions/current", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(contract.Session{
			ID: 7, DurationSeconds: 1500, Status: "running", StartedAt: started,
		})
	})
	c := newStub(t, mux)

	session, err := c.CurrentSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, int64(7), session.ID)
	assert.True(t, session.StartedAt.Equal(started))
}

func TestLogsInRange_FetchAllWalksPages(t *testing.T) {
	// The stub serves 5 logs two at a time regardless of the requested
	// limit; FetchAll must keep going until the total is reached.
	all := make([]contract.Log, 5)
	for i := range all {
		all[i] = contract.Log{ID: int64(i + 1), GoalID: 1, Date: "2024-05-10", Value: 10, Source: "manual"}
	}

	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /logs", func(w http.ResponseWriter, r *http.Request) {
		requests++
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		end := offset + 2
		if end > len(all) {
			end = len(all)
		}
		if offset > len(all) {
			offset = len(all)
		}
		json.NewEncoder(w).Encode(contract.LogList{Items: all[offset:end], Total: len(all)})
	})
	c := newStub(t, mux)

	logs, err := c.LogsInRange(context.Background(), "2024-05-01", "2024-05-31", FetchAll)
	require.NoError(t, err)
	assert.Len(t, logs, 5)
	assert.Equal(t, 3, requests)
}

func TestLogsInRange_FirstPageStopsEarly(t *testing.T) {
	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /logs", func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(contract.LogList{
			Items: []contract.Log{{ID: 1, GoalID: 1, Date: "2024-05-10", Value: 10, Source: "manual"}},
			Total: 100,
		})
	})
	c := newStub(t, mux)

	logs, err := c.LogsInRange(context.Background(), "", "", FetchFirstPage)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, 1, requests, "first-page policy never follows pagination")
}

func TestListGoals_FetchAll(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /goals", func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		items := []contract.Goal{}
		if offset == 0 {
			items = []contract.Goal{
				{ID: 1, Name: "A", GoalType: "time", IsActive: true},
				{ID: 2, Name: "B", GoalType: "count", IsActive: true},
			}
		}
		json.NewEncoder(w).Encode(contract.GoalList{Items: items, Total: 2})
	})
	c := newStub(t, mux)

	goals, err := c.ListGoals(context.Background(), FetchAll)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "A", goals[0].Name)
}

func TestHeatmapQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /goals/3/heatmap", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2024-05-07", r.URL.Query().Get("to"))
		json.NewEncoder(w).Encode(contract.Heatmap{
			GoalID: 3, From: "2024-05-01", To: "2024-05-07", Unit: "day",
			Values: []contract.HeatmapDay{{Date: "2024-05-01", Count: 2}},
		})
	})
	c := newStub(t, mux)

	hm, err := c.Heatmap(context.Background(), 3, "2024-05-01", "2024-05-07")
	require.NoError(t, err)
	require.Len(t, hm.Values, 1)
	assert.Equal(t, 2, hm.Values[0].Count)
}
