package cadremote

import (
	"construction-estimator-service/internal/domain"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var parsed = domain.BuildingDimensions{
	FoundationLength: 12, FoundationWidth: 9, FoundationDepth: 0.6,
	ColumnCount: 8, ColumnLength: 0.35, ColumnWidth: 0.35, ColumnHeight: 3.2,
	BeamCount: 10, BeamLength: 4.5, BeamWidth: 0.3, BeamDepth: 0.45,
	WallLength: 30, WallHeight: 3.2, WallThickness: 0.23,
	SlabLength: 12, SlabWidth: 9, SlabThickness: 180,
}

func newSource(t *testing.T, h http.HandlerFunc) *RemoteDimensionSource {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	src, err := NewRemoteDimensionSource(srv.URL+"/", "secret", WithRetry(3, 0))
	require.NoError(t, err)
	return src
}

func modelFile(name, content string) domain.UploadedFile {
	return domain.UploadedFile{Name: name, Size: int64(len(content)), Content: strings.NewReader(content)}
}

func TestRemoteDimensionSource_Extract(t *testing.T) {
	t.Parallel()

	src := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/parse", r.URL.Path)
		assert.Equal(t, "plan.dwg", r.URL.Query().Get("file_name"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, "DWG-BYTES", string(body))

		_ = json.NewEncoder(w).Encode(map[string]any{"dimensions": parsed})
	})

	got, err := src.Extract(context.Background(), modelFile("plan.dwg", "DWG-BYTES"))
	require.NoError(t, err)
	assert.Equal(t, parsed, got)
}

func TestRemoteDimensionSource_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	src := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "SKP", string(body), "every attempt must resend the whole file")

		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"dimensions": parsed})
	})

	got, err := src.Extract(context.Background(), modelFile("house.skp", "SKP"))
	require.NoError(t, err)
	assert.Equal(t, parsed, got)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRemoteDimensionSource_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	src := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "corrupt model", http.StatusUnprocessableEntity)
	})

	_, err := src.Extract(context.Background(), modelFile("house.skp", "SKP"))
	require.Error(t, err)

	var he *httpStatusError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)
	assert.Equal(t, "corrupt model", he.Body)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRemoteDimensionSource_GivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	src := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := src.Extract(context.Background(), modelFile("house.skp", "SKP"))
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRemoteDimensionSource_RejectsBadResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>"},
		{"missing dimensions", `{"status":"ok"}`},
		{"negative dimension", `{"dimensions":{"wall_length":-1}}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			src := newSource(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := src.Extract(context.Background(), modelFile("a.rvt", "RVT"))
			assert.Error(t, err)
		})
	}
}

func TestRemoteDimensionSource_InvalidInput(t *testing.T) {
	t.Parallel()

	src := newSource(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := src.Extract(context.Background(), domain.UploadedFile{Name: "a.skp", Size: 3})
	assert.ErrorContains(t, err, "no content")

	_, err = src.Extract(context.Background(), modelFile("  ", "x"))
	assert.ErrorContains(t, err, "file name")
}

func TestRemoteDimensionSource_CancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	src, err := NewRemoteDimensionSource(srv.URL, "", WithRetry(5, time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = src.Extract(ctx, modelFile("a.skp", "SKP"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewRemoteDimensionSource_RejectsRelativeURL(t *testing.T) {
	t.Parallel()

	_, err := NewRemoteDimensionSource("parser.local/v1", "")
	assert.Error(t, err)
}
