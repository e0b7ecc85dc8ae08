package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeight(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    float64
		wantErr bool
	}{
		{"number", 72.5, 72.5, false},
		{"integer number", float64(80), 80, false},
		{"numeric string", "72.5", 72.5, false},
		{"integer string", "80", 80, false},
		{"non-numeric string", "abc", 0, true},
		{"empty string", "", 0, true},
		{"NaN string", "NaN", 0, true},
		{"Inf string", "+Inf", 0, true},
		{"bool", true, 0, true},
		{"object", map[string]interface{}{"kg": 80}, 0, true},
		{"nil", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeight(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppendLogAndListOrder(t *testing.T) {
	logs := &fakeLogStore{}
	const userID = 1

	for _, weight := range []interface{}{80.5, "79.8", 79.1} {
		rec := httptest.NewRecorder()
		AppendLog(logs)(rec, authedRequest(t, http.MethodPost, "/api/logs",
			map[string]interface{}{"weight": weight}, userID))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := httptest.NewRecorder()
	ListLogs(logs)(rec, authedRequest(t, http.MethodGet, "/api/logs", nil, userID))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	entries := envelope["data"].([]interface{})
	require.Len(t, entries, 3)

	// Returned in insertion order, oldest first.
	weights := make([]float64, 0, len(entries))
	for _, entry := range entries {
		weights = append(weights, entry.(map[string]interface{})["weight"].(float64))
	}
	assert.Equal(t, []float64{80.5, 79.8, 79.1}, weights)
}

func TestAppendLogRejectsInvalidWeight(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing weight", map[string]interface{}{}},
		{"null weight", map[string]interface{}{"weight": nil}},
		{"non-numeric", map[string]interface{}{"weight": "heavy"}},
		{"nan", map[string]interface{}{"weight": "NaN"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := &fakeLogStore{}
			rec := httptest.NewRecorder()
			AppendLog(logs)(rec, authedRequest(t, http.MethodPost, "/api/logs", tt.payload, 1))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, logs.logs)
		})
	}
}

func TestListLogsScopedToOwner(t *testing.T) {
	logs := &fakeLogStore{}

	rec := httptest.NewRecorder()
	AppendLog(logs)(rec, authedRequest(t, http.MethodPost, "/api/logs",
		map[string]interface{}{"weight": 80.5}, 1))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	ListLogs(logs)(rec, authedRequest(t, http.MethodGet, "/api/logs", nil, 2))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Empty(t, envelope["data"])
}

func TestListLogsUnauthenticatedContext(t *testing.T) {
	logs := &fakeLogStore{}
	rec := httptest.NewRecorder()
	ListLogs(logs)(rec, jsonRequest(t, http.MethodGet, "/api/logs", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
