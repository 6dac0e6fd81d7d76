package handler

import (
	"LoveNote/service"
	"LoveNote/types"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

type stubJournalService struct {
	service.IJournalService

	gotDate  string
	gotEntry uint64
	err      error
}

func (s *stubJournalService) ByDate(_ context.Context, _ uint64, date string) ([]*types.JournalItem, error) {
	s.gotDate = date
	return []*types.JournalItem{{ID: 5, Date: date}}, s.err
}

func (s *stubJournalService) Detail(_ context.Context, _ uint64, entryID uint64) (*types.JournalItem, error) {
	s.gotEntry = entryID
	return &types.JournalItem{ID: entryID}, s.err
}

func (s *stubJournalService) Create(_ context.Context, _ uint64, req *types.JournalCreateRequest) (*types.JournalItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &types.JournalItem{ID: 6, Title: req.Title, Date: req.Date}, nil
}

func TestJournalByDateRoute(t *testing.T) {
	journal := &stubJournalService{}
	r := newEngine(&Journal{Config: testConfig(), JournalService: journal})

	w := do(r, http.MethodGet, "/api/journal/by-date?date=2026-10-14", bearer(t, 7), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-10-14", journal.gotDate)
	assert.Equal(t, "2026-10-14", gjson.Get(w.Body.String(), "data.0.date").Str)

	w = do(r, http.MethodGet, "/api/journal/11", bearer(t, 7), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint64(11), journal.gotEntry)
}

func TestJournalCreateConflict(t *testing.T) {
	r := newEngine(&Journal{Config: testConfig(), JournalService: &stubJournalService{err: service.ErrJournalDateTaken}})
	w := do(r, http.MethodPost, "/api/journal", bearer(t, 7), `{"title":"again","date":"2026-10-14"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	r = newEngine(&Journal{Config: testConfig(), JournalService: &stubJournalService{}})
	w = do(r, http.MethodPost, "/api/journal", bearer(t, 7), `{"title":"day","date":"2026-10-14"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "6", gjson.Get(w.Body.String(), "data.id").Str)
}
