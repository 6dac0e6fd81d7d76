package handler

import (
	"LoveNote/service"
	"LoveNote/types"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

type stubNoteService struct {
	service.INoteService

	update    *service.NoteUpdateResult
	deleteAct service.DeleteAction
	err       error
	gotUser   uint64
	gotNote   uint64
	gotList   *types.NoteListRequest
}

func (s *stubNoteService) List(_ context.Context, userID uint64, req *types.NoteListRequest) ([]*types.NoteItem, error) {
	s.gotUser, s.gotList = userID, req
	return []*types.NoteItem{{ID: 1234567890123456789, Title: "t"}}, s.err
}

func (s *stubNoteService) Update(_ context.Context, userID, noteID uint64, _ *types.NoteUpdateRequest) (*service.NoteUpdateResult, error) {
	s.gotUser, s.gotNote = userID, noteID
	return s.update, s.err
}

func (s *stubNoteService) Delete(_ context.Context, userID, noteID uint64) (service.DeleteAction, error) {
	s.gotUser, s.gotNote = userID, noteID
	return s.deleteAct, s.err
}

type stubLikeService struct {
	liked bool
	err   error
}

func (s *stubLikeService) ToggleLike(context.Context, uint64, uint64) (bool, error) {
	return s.liked, s.err
}

func newNoteEngine(notes *stubNoteService, likes *stubLikeService) http.Handler {
	return newEngine(&Note{Config: testConfig(), NoteService: notes, LikeService: likes})
}

func TestNoteRequiresAuth(t *testing.T) {
	r := newNoteEngine(&stubNoteService{}, &stubLikeService{})
	w := do(r, http.MethodGet, "/api/notes", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNoteList(t *testing.T) {
	notes := &stubNoteService{}
	r := newNoteEngine(notes, &stubLikeService{})

	w := do(r, http.MethodGet, "/api/notes?search=kyoto&search_type=title", bearer(t, 7), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint64(7), notes.gotUser)
	assert.Equal(t, "kyoto", notes.gotList.Search)
	assert.Equal(t, "title", notes.gotList.SearchType)
	// 雪花 ID 以字符串返回
	assert.Equal(t, "1234567890123456789", gjson.Get(w.Body.String(), "data.0.id").Str)
}

func TestNoteUpdatePending(t *testing.T) {
	notes := &stubNoteService{update: &service.NoteUpdateResult{Action: service.EditRequested}}
	r := newNoteEngine(notes, &stubLikeService{})

	w := do(r, http.MethodPatch, "/api/notes/42", bearer(t, 7), `{"content":"new"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint64(42), notes.gotNote)
	assert.True(t, gjson.Get(w.Body.String(), "data.edit_requested").Bool())
	assert.Contains(t, gjson.Get(w.Body.String(), "data.message").Str, "Waiting for partner approval")
}

func TestNoteUpdateApplied(t *testing.T) {
	notes := &stubNoteService{update: &service.NoteUpdateResult{
		Action: service.EditApplied,
		Note:   &types.NoteItem{ID: 42, Title: "new"},
	}}
	r := newNoteEngine(notes, &stubLikeService{})

	w := do(r, http.MethodPut, "/api/notes/42", bearer(t, 7), `{"title":"new"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new", gjson.Get(w.Body.String(), "data.title").Str)
	assert.False(t, gjson.Get(w.Body.String(), "data.edit_requested").Exists())
}

func TestNoteDelete(t *testing.T) {
	tests := []struct {
		name   string
		action service.DeleteAction
		err    error
		status int
		check  string
	}{
		{"requested", service.DeleteRequested, nil, http.StatusOK, "data.deletion_requested"},
		{"already requested", service.DeleteAlreadyRequested, nil, http.StatusOK, "data.deletion_requested"},
		{"approved", service.DeleteApproved, nil, http.StatusOK, "data.message"},
		{"not found", 0, service.ErrNotFound, http.StatusNotFound, "msg"},
		{"edit pending", 0, service.ErrInvalidDeleteState, http.StatusConflict, "msg"},
		{"internal", 0, errors.New("db down"), http.StatusInternalServerError, "msg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newNoteEngine(&stubNoteService{deleteAct: tt.action, err: tt.err}, &stubLikeService{})
			w := do(r, http.MethodDelete, "/api/notes/42", bearer(t, 7), "")
			assert.Equal(t, tt.status, w.Code)
			assert.True(t, gjson.Get(w.Body.String(), tt.check).Exists(), w.Body.String())
		})
	}
}

func TestNoteBadID(t *testing.T) {
	r := newNoteEngine(&stubNoteService{}, &stubLikeService{})
	w := do(r, http.MethodDelete, "/api/notes/abc", bearer(t, 7), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoteToggleLike(t *testing.T) {
	r := newNoteEngine(&stubNoteService{}, &stubLikeService{liked: true})
	w := do(r, http.MethodPost, "/api/notes/42/like", bearer(t, 7), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "data.is_liked").Bool())
	assert.Equal(t, "Note liked", gjson.Get(w.Body.String(), "data.message").Str)
}
