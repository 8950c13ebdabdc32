package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics("peerage")

	m.RecordMember("Labour", "Life peer")
	m.RecordMember("Labour", "Life peer")
	m.RecordMember("Bishops", "Bishops")
	m.RecordFetch(0.5)
	m.RecordForecast("age80", 45, 120)
	m.RecordError(StageFetch)
	m.RecordSuccess()

	assert.InDelta(t, 2, testutil.ToFloat64(m.MembersLoaded.WithLabelValues("Labour", "Life peer")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.MembersLoaded.WithLabelValues("Bishops", "Bishops")), 0)
	assert.InDelta(t, 45, testutil.ToFloat64(m.ForecastRows.WithLabelValues("age80")), 0)
	assert.InDelta(t, 120, testutil.ToFloat64(m.ForecastSeated.WithLabelValues("age80")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RunErrors.WithLabelValues(StageFetch)), 0)
	assert.Positive(t, testutil.ToFloat64(m.LastSuccess))
	assert.Equal(t, 1, testutil.CollectAndCount(m.FetchDuration))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a := NewMetrics("peerage")
	b := NewMetrics("peerage")

	a.RecordError(StageRender)

	assert.InDelta(t, 1, testutil.ToFloat64(a.RunErrors.WithLabelValues(StageRender)), 0)
	assert.Equal(t, 0, testutil.CollectAndCount(b.RunErrors))
}

func TestMetrics_Push(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotBody   string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	m := NewMetrics("peerage")
	m.RecordForecast("age75", 45, 300)

	err := m.Push(context.Background(), &Config{Pushgateway: srv.URL, Job: "peerage"}, map[string]string{"house": "Lords"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.True(t, strings.HasPrefix(gotPath, "/metrics/job/peerage"), gotPath)
	assert.Contains(t, gotPath, "house")
	assert.NotEmpty(t, gotBody)
}

func TestMetrics_Push_Disabled(t *testing.T) {
	m := NewMetrics("peerage")
	assert.NoError(t, m.Push(context.Background(), &Config{}, nil))
}

func TestMetrics_Push_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewMetrics("peerage")

	err := m.Push(context.Background(), &Config{Pushgateway: srv.URL, Job: "peerage"}, nil)
	require.Error(t, err)

	err = m.Push(context.Background(), &Config{Pushgateway: srv.URL}, nil)
	assert.ErrorIs(t, err, ErrJobRequired)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{Pushgateway: "http://localhost:9091", Job: "peerage"}).Validate())
	assert.ErrorIs(t, (&Config{Pushgateway: "http://localhost:9091"}).Validate(), ErrJobRequired)
}
