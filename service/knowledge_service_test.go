package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/answer-engine/seed"
	"github.com/tieubaoca/answer-engine/types"
	"go.uber.org/zap"
)

func TestKnowledgeServiceServesSeedsBeforeReload(t *testing.T) {
	svc := NewKnowledgeService(&fakeNoteRepo{}, &fakePromptRepo{}, zap.NewNop())

	index := svc.Index()
	assert.Len(t, index, len(seed.Items()))
	assert.Equal(t, seed.DefaultPersona, svc.Persona())
}

func TestReloadMergesCorpusAfterSeeds(t *testing.T) {
	notes := &fakeNoteRepo{notes: []types.KnowledgeNote{
		{Question: "신제품 문의", Answer: "신제품은 매월 공지됩니다.", Category: "faq"},
		{Question: "카테고리 없는 항목", Answer: "답변"},
	}}
	svc := NewKnowledgeService(notes, &fakePromptRepo{}, zap.NewNop())

	require.NoError(t, svc.Reload(context.Background()))

	index := svc.Index()
	assert.Len(t, index, len(seed.Items())+2)

	last := index[len(index)-1]
	assert.Equal(t, types.CategoryGeneral, last.Category, "missing category defaults to general")
	assert.Equal(t, types.SourceCorpus, last.Source)
}

func TestReloadSeedWinsDuplicate(t *testing.T) {
	notes := &fakeNoteRepo{notes: []types.KnowledgeNote{
		// Same normalized question as the seed size entry.
		{Question: "맥스 사이즈 또는 크기?", Answer: "다른 답변", Category: "size"},
	}}
	svc := NewKnowledgeService(notes, &fakePromptRepo{}, zap.NewNop())

	require.NoError(t, svc.Reload(context.Background()))

	index := svc.Index()
	assert.Len(t, index, len(seed.Items()), "duplicate collapses into the seed entry")
	for _, item := range index {
		if item.Question == "맥스 사이즈 또는 크기" {
			assert.Contains(t, item.Answer, "170cm")
		}
	}
}

func TestReloadFailureKeepsPreviousIndex(t *testing.T) {
	notes := &fakeNoteRepo{notes: []types.KnowledgeNote{
		{Question: "신제품 문의", Answer: "답변", Category: "faq"},
	}}
	svc := NewKnowledgeService(notes, &fakePromptRepo{}, zap.NewNop())
	require.NoError(t, svc.Reload(context.Background()))
	loaded := len(svc.Index())

	notes.err = errors.New("store down")
	err := svc.Reload(context.Background())

	assert.Error(t, err)
	assert.Len(t, svc.Index(), loaded, "failed reload leaves the snapshot untouched")
}

func TestReloadRefreshesPersona(t *testing.T) {
	prompts := &fakePromptRepo{latest: &types.SystemPrompt{
		Role:    "판매왕",
		Content: "역할: 판매왕\n지시사항: 친절하게",
	}}
	svc := NewKnowledgeService(&fakeNoteRepo{}, prompts, zap.NewNop())

	require.NoError(t, svc.Reload(context.Background()))

	assert.Contains(t, svc.Persona(), "판매왕")
}

func TestSetPersonaHotSwap(t *testing.T) {
	svc := NewKnowledgeService(&fakeNoteRepo{}, &fakePromptRepo{}, zap.NewNop())

	svc.SetPersona("새 페르소나")

	assert.Equal(t, "새 페르소나", svc.Persona())
}
