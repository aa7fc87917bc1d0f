package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/transposer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	sheets map[string]model.Sheet
	err    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sheets: map[string]model.Sheet{}}
}

func (m *memoryStore) SaveSheet(s model.Sheet) error {
	if m.err != nil {
		return m.err
	}
	m.sheets[s.ID] = s
	return nil
}

func (m *memoryStore) GetSheets(ids []string) (map[string]model.Sheet, error) {
	if m.err != nil {
		return nil, m.err
	}
	res := map[string]model.Sheet{}
	for _, id := range ids {
		if s, ok := m.sheets[id]; ok {
			res[id] = s
		}
	}
	return res, nil
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func do(t *testing.T, h http.Handler, method string, path string, body io.Reader) *http.Response {
	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func decodeChords(t *testing.T, resp *http.Response) []string {
	var res model.ChordsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res.Chords
}

func decodeDetail(t *testing.T, resp *http.Response) string {
	var res model.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res.Error
}

func TestHealth(t *testing.T) {
	resp := do(t, NewRouter(newMemoryStore()), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestTransposeRoute(t *testing.T) {
	router := NewRouter(newMemoryStore())

	resp := do(t, router, http.MethodPost, "/transpose", jsonBody(t, model.TransposeRequestBody{
		Chords:    []string{"A#/C#", "Abm7(b5)", "C7M(9)/E"},
		Semitones: 2,
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"C/D#", "Bbm7(b5)", "D7M(9)/F#"}, decodeChords(t, resp))

	resp = do(t, router, http.MethodPost, "/transpose", jsonBody(t, model.TransposeRequestBody{
		Chords:    []string{"A", "Ab"},
		Semitones: 3,
		Direction: "down",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Gb", "F"}, decodeChords(t, resp))
}

func TestTransposeHandlerDirectly(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/transpose", jsonBody(t, model.TransposeRequestBody{
		Chords:    []string{"C"},
		Semitones: 7,
	}))
	w := httptest.NewRecorder()
	HandleTranspose(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"G"}, decodeChords(t, resp))
}

func TestTransposeRouteRejects(t *testing.T) {
	router := NewRouter(newMemoryStore())

	cases := []struct {
		name string
		body io.Reader
	}{
		{"not json", bytes.NewReader([]byte("{"))},
		{"bad chord", jsonBody(t, model.TransposeRequestBody{Chords: []string{"H7"}, Semitones: 1})},
		{"negative", jsonBody(t, model.TransposeRequestBody{Chords: []string{"C"}, Semitones: -1})},
		{"bad direction", jsonBody(t, model.TransposeRequestBody{Chords: []string{"C"}, Direction: "sideways"})},
		{"missing chords", jsonBody(t, map[string]int{"semitones": 1})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp := do(t, router, http.MethodPost, "/transpose", c.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, decodeDetail(t, resp))
		})
	}
}

func TestTransposeRouteEmptyList(t *testing.T) {
	resp := do(t, NewRouter(newMemoryStore()), http.MethodPost, "/transpose",
		jsonBody(t, model.TransposeRequestBody{Chords: []string{}, Semitones: 1}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeChords(t, resp))
}

func TestOptimizeRoute(t *testing.T) {
	resp := do(t, NewRouter(newMemoryStore()), http.MethodPost, "/optimize",
		jsonBody(t, model.OptimizeRequestBody{Chords: []string{"A#/Db", "A##/Ebb", "Abb/Ebb"}}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"A#/C#", "B/D", "G/D"}, decodeChords(t, resp))
}

func TestExtractRoute(t *testing.T) {
	resp := do(t, NewRouter(newMemoryStore()), http.MethodPost, "/extract",
		jsonBody(t, model.ExtractRequestBody{Text: "Am  lyrics F\tgo C/E here\nG"}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Am", "F", "C/E", "G"}, decodeChords(t, resp))
}

func TestSheetRoutes(t *testing.T) {
	store := newMemoryStore()
	router := NewRouter(store)

	resp := do(t, router, http.MethodPost, "/sheets",
		jsonBody(t, model.SheetRequestBody{Title: "Song", Text: "Am   C\nla la"}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Sheet
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"Am", "C"}, created.Chords)
	assert.Equal(t, "A", created.Key)
	assert.Contains(t, store.sheets, created.ID)

	resp = do(t, router, http.MethodGet, "/sheets/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched model.Sheet
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fetched))
	assert.Equal(t, created, fetched)

	resp = do(t, router, http.MethodPost, "/sheets/"+created.ID+"/transpose",
		jsonBody(t, model.SheetTransposeRequestBody{Semitones: 2}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var transposed model.Sheet
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&transposed))
	assert.Equal(t, created.ID, transposed.ID)
	assert.Equal(t, "Bm   D\nla la", transposed.Text)
	assert.Equal(t, []string{"Bm", "D"}, transposed.Chords)
	assert.Equal(t, "B", transposed.Key)

	// stored copy is untouched
	assert.Equal(t, "Am   C\nla la", store.sheets[created.ID].Text)
}

func TestSheetNotFound(t *testing.T) {
	router := NewRouter(newMemoryStore())

	resp := do(t, router, http.MethodGet, "/sheets/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, router, http.MethodPost, "/sheets/missing/transpose",
		jsonBody(t, model.SheetTransposeRequestBody{Semitones: 1}))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSheetStoreFailure(t *testing.T) {
	store := newMemoryStore()
	store.err = errors.New("boom")
	router := NewRouter(store)

	resp := do(t, router, http.MethodPost, "/sheets", jsonBody(t, model.SheetRequestBody{Text: "C"}))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, decodeDetail(t, resp), "boom")

	resp = do(t, router, http.MethodGet, "/sheets/any", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCorsPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/transpose", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	NewRouter(newMemoryStore()).ServeHTTP(w, req)

	assert.Equal(t, "*", w.Result().Header.Get("Access-Control-Allow-Origin"))
}
