package service

import (
	"context"
	"sync"

	"github.com/tieubaoca/answer-engine/types"
)

type fakeNoteRepo struct {
	notes []types.KnowledgeNote
	err   error
}

func (f *fakeNoteRepo) All(ctx context.Context) ([]types.KnowledgeNote, error) {
	return f.notes, f.err
}

func (f *fakeNoteRepo) Get(ctx context.Context, id string) (*types.KnowledgeNote, error) {
	return nil, f.err
}

func (f *fakeNoteRepo) Insert(ctx context.Context, note *types.KnowledgeNote) error {
	f.notes = append(f.notes, *note)
	return f.err
}

func (f *fakeNoteRepo) InsertMany(ctx context.Context, notes []types.KnowledgeNote) error {
	f.notes = append(f.notes, notes...)
	return f.err
}

func (f *fakeNoteRepo) Update(ctx context.Context, id string, note *types.KnowledgeNote) error {
	return f.err
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id string) error {
	return f.err
}

func (f *fakeNoteRepo) Paginate(ctx context.Context, page, limit int64, category string) ([]types.KnowledgeNote, int64, error) {
	return f.notes, int64(len(f.notes)), f.err
}

type fakePromptRepo struct {
	latest *types.SystemPrompt
	err    error
}

func (f *fakePromptRepo) Insert(ctx context.Context, prompt *types.SystemPrompt) error {
	f.latest = prompt
	return f.err
}

func (f *fakePromptRepo) Latest(ctx context.Context) (*types.SystemPrompt, error) {
	return f.latest, f.err
}

type fakeConversationRepo struct {
	mu      sync.Mutex
	appends int
	last    types.ConversationTurn
	err     error
}

func (f *fakeConversationRepo) Append(ctx context.Context, memberID, date string, turn types.ConversationTurn) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appends++
	f.last = turn
	return f.err
}

func (f *fakeConversationRepo) All(ctx context.Context) ([]types.ConversationLog, error) {
	return nil, f.err
}

// fakeAI answers Light requests with filterReply and everything else with
// synthReply.
type fakeAI struct {
	filterReply string
	synthReply  string
	err         error
	calls       []types.CompletionRequest
}

func (f *fakeAI) Complete(ctx context.Context, req types.CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	if req.Light {
		return f.filterReply, nil
	}
	return f.synthReply, nil
}
