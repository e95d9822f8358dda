package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveUpstreamCall(t *testing.T) {
	r := NewRecorder(nil)

	r.ObserveUpstreamCall("get_repository", http.StatusOK, 10*time.Millisecond)
	r.ObserveUpstreamCall("get_repository", http.StatusOK, 10*time.Millisecond)
	r.ObserveUpstreamCall("get_repository", 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.upstreamCalls.WithLabelValues("get_repository", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.upstreamCalls.WithLabelValues("get_repository", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.upstreamDuration))
}

func TestRecorder_IncResponse(t *testing.T) {
	r := NewRecorder(nil)

	r.IncResponse("repository", "ok")
	r.IncResponse("repository", "not_found")
	r.IncResponse("repository", "not_found")

	assert.Equal(t, 1.0, testutil.ToFloat64(r.responses.WithLabelValues("repository", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.responses.WithLabelValues("repository", "not_found")))
}

func TestRecorder_Nil(t *testing.T) {
	var r *Recorder

	assert.NotPanics(t, func() {
		r.ObserveUpstreamCall("get_tree", http.StatusOK, time.Second)
		r.IncResponse("structure", "ok")
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder(nil)
	r.IncResponse("repository", "ok")

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), `loro_responses_total{outcome="ok",route="repository"} 1`)
}
