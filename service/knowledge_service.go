package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/tieubaoca/answer-engine/repository"
	"github.com/tieubaoca/answer-engine/seed"
	"github.com/tieubaoca/answer-engine/types"
	"github.com/tieubaoca/answer-engine/utils"
	"go.uber.org/zap"
)

// KnowledgeService owns the materialized corpus index and the active
// persona. Both sit behind atomic pointers: Reload builds a fresh snapshot
// and swaps it in whole, concurrent readers keep whichever snapshot they
// grabbed. A failed reload leaves the previous snapshot untouched.
type KnowledgeService struct {
	notes   repository.KnowledgeRepo
	prompts repository.PromptRepo
	seed    []types.KnowledgeItem
	logger  *zap.Logger

	index   atomic.Pointer[[]types.KnowledgeItem]
	persona atomic.Pointer[string]
}

func NewKnowledgeService(notes repository.KnowledgeRepo, prompts repository.PromptRepo, logger *zap.Logger) *KnowledgeService {
	s := &KnowledgeService{
		notes:   notes,
		prompts: prompts,
		seed:    seed.Items(),
		logger:  logger,
	}
	initial := dedup(s.seed)
	s.index.Store(&initial)
	persona := seed.DefaultPersona
	s.persona.Store(&persona)
	return s
}

// Reload rebuilds the index from seeds plus the corpus store, seed entries
// first, and refreshes the persona from the latest persisted record. Never
// fatal to the caller: the returned error is for logging.
func (s *KnowledgeService) Reload(ctx context.Context) error {
	stored, err := s.notes.All(ctx)
	if err != nil {
		s.logger.Error("corpus reload failed, keeping previous index", zap.Error(err))
		return fmt.Errorf("failed to read corpus store: %w", err)
	}

	items := make([]types.KnowledgeItem, 0, len(s.seed)+len(stored))
	items = append(items, s.seed...)
	for _, note := range stored {
		category := note.Category
		if category == "" {
			category = types.CategoryGeneral
		}
		items = append(items, types.KnowledgeItem{
			Question: note.Question,
			Answer:   note.Answer,
			Category: category,
			Source:   types.SourceCorpus,
		})
	}
	items = dedup(items)
	s.index.Store(&items)

	s.refreshPersona(ctx)

	s.logger.Info("corpus index reloaded", zap.Int("items", len(items)))
	return nil
}

func (s *KnowledgeService) refreshPersona(ctx context.Context) {
	prompt, err := s.prompts.Latest(ctx)
	if err != nil {
		s.logger.Error("persona refresh failed, keeping previous persona", zap.Error(err))
		return
	}
	if prompt == nil {
		return
	}
	s.persona.Store(&prompt.Content)
}

// Index returns the current snapshot. Callers must not mutate it.
func (s *KnowledgeService) Index() []types.KnowledgeItem {
	return *s.index.Load()
}

// Persona returns the active system instruction text.
func (s *KnowledgeService) Persona() string {
	return *s.persona.Load()
}

// SetPersona hot-swaps the active persona after an administrative action.
func (s *KnowledgeService) SetPersona(content string) {
	s.persona.Store(&content)
}

// dedup drops later entries whose normalized question text already
// appeared. Seeds load first, so a seed wins over a corpus duplicate.
func dedup(items []types.KnowledgeItem) []types.KnowledgeItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]types.KnowledgeItem, 0, len(items))
	for _, item := range items {
		key := utils.Normalize(item.Question)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
