package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/transposer/chord"
	"github.com/jsphweid/transposer/db"
	"github.com/jsphweid/transposer/logger"
	"github.com/jsphweid/transposer/model"
	"github.com/jsphweid/transposer/sheet"
	"github.com/jsphweid/transposer/transpose"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Could not encode response", err, nil)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("could not decode request body: %w", err)
	}
	return nil
}

func parseChords(names []string) ([]*chord.Chord, error) {
	if names == nil {
		return nil, fmt.Errorf("chords: %w", transpose.ErrNullArgument)
	}
	chords := make([]*chord.Chord, 0, len(names))
	for _, name := range names {
		c, err := chord.Parse(name)
		if err != nil {
			return nil, err
		}
		chords = append(chords, c)
	}
	return chords, nil
}

func chordNames(chords []*chord.Chord) []string {
	res := make([]string, 0, len(chords))
	for _, c := range chords {
		res = append(res, c.String())
	}
	return res
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	dir, err := transpose.ParseDirection(input.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	chords, err := parseChords(input.Chords)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := transpose.ShiftAll(chords, input.Semitones, dir)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ChordsResponse{Chords: chordNames(res)})
}

func HandleOptimize(w http.ResponseWriter, r *http.Request) {
	var input model.OptimizeRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	chords, err := parseChords(input.Chords)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	for i, c := range chords {
		chords[i] = transpose.Optimize(c)
	}

	writeJSON(w, http.StatusOK, model.ChordsResponse{Chords: chordNames(chords)})
}

func HandleExtract(w http.ResponseWriter, r *http.Request) {
	var input model.ExtractRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ChordsResponse{Chords: chordNames(transpose.ExtractChords(input.Text))})
}

type sheetHandlers struct {
	store db.SheetStore
}

func (h *sheetHandlers) HandleCreateSheet(w http.ResponseWriter, r *http.Request) {
	var input model.SheetRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s := sheet.New(input.Title, input.Text)
	if err := h.store.SaveSheet(s); err != nil {
		logger.Error("Could not save sheet", err, logger.Fields{"sheet_id": s.ID})
		writeError(w, http.StatusInternalServerError, errors.New("could not save sheet"))
		return
	}

	logger.Info("Sheet created", logger.Fields{"sheet_id": s.ID, "chords": len(s.Chords)})
	writeJSON(w, http.StatusCreated, s)
}

// lookup writes the error response itself when it returns false.
func (h *sheetHandlers) lookup(w http.ResponseWriter, r *http.Request) (model.Sheet, bool) {
	id := mux.Vars(r)["id"]
	sheets, err := h.store.GetSheets([]string{id})
	if err != nil {
		logger.Error("Could not get sheet", err, logger.Fields{"sheet_id": id})
		writeError(w, http.StatusInternalServerError, errors.New("could not get sheet"))
		return model.Sheet{}, false
	}
	s, ok := sheets[id]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("sheet %s not found", id))
		return model.Sheet{}, false
	}
	return s, true
}

func (h *sheetHandlers) HandleGetSheet(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// HandleTransposeSheet returns a transposed copy. The stored sheet is not changed.
func (h *sheetHandlers) HandleTransposeSheet(w http.ResponseWriter, r *http.Request) {
	var input model.SheetTransposeRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	dir, err := transpose.ParseDirection(input.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	text, err := sheet.Transpose(s.Text, input.Semitones, dir)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := s
	res.Text = text
	res.Chords = sheet.ChordNames(text)
	res.Key = ""
	if key, ok := sheet.Key(text); ok {
		res.Key = key.String()
	}
	writeJSON(w, http.StatusOK, res)
}
