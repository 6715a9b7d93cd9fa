package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/answer-engine/seed"
	"github.com/tieubaoca/answer-engine/types"
)

func newTestRetriever(cfg RetrieverConfig) *Retriever {
	return NewRetriever(NewIntentClassifier(), cfg)
}

func TestRetrieveEmptyQuery(t *testing.T) {
	r := newTestRetriever(RetrieverConfig{TopK: 3, MinScore: 20, AnswerWeight: 1})
	items := seed.Items()

	assert.Nil(t, r.Retrieve("", items))
	assert.Nil(t, r.Retrieve("   ", items))
	assert.Nil(t, r.Retrieve("아", items), "single-rune query carries no signal")
}

func TestRetrieveSizeQuestion(t *testing.T) {
	r := newTestRetriever(RetrieverConfig{TopK: 3, MinScore: 20, AnswerWeight: 1})

	results := r.Retrieve("맥스 사이즈 알려줘", seed.Items())

	require.NotEmpty(t, results)
	assert.Equal(t, "맥스 사이즈 또는 크기", results[0].Question)
	assert.GreaterOrEqual(t, results[0].Score, 100)
}

func TestRetrieveExactQuestionDominates(t *testing.T) {
	r := newTestRetriever(RetrieverConfig{TopK: 3, MinScore: 20, AnswerWeight: 1})
	items := []types.KnowledgeItem{
		{Question: "세탁은 어떻게 하나요", Answer: "찬물 단독 세탁", Category: "laundry"},
		{Question: "세탁 주의사항", Answer: "건조기 금지", Category: "laundry"},
	}

	results := r.Retrieve("세탁은 어떻게 하나요?", items)

	require.NotEmpty(t, results)
	assert.Equal(t, "세탁은 어떻게 하나요", results[0].Question)
	assert.GreaterOrEqual(t, results[0].Score, scoreExactQuestion)
}

func TestRetrieveMinScoreCutoff(t *testing.T) {
	r := newTestRetriever(RetrieverConfig{TopK: 3, MinScore: 500, AnswerWeight: 1})

	assert.Empty(t, r.Retrieve("맥스 사이즈 알려줘", seed.Items()))
}

func TestRetrieveTopKTruncation(t *testing.T) {
	r := newTestRetriever(RetrieverConfig{TopK: 2, MinScore: 20, AnswerWeight: 1})

	results := r.Retrieve("사이즈 크기", seed.Items())

	assert.LessOrEqual(t, len(results), 2)
}

func TestRetrieveTiesKeepInsertionOrder(t *testing.T) {
	r := newTestRetriever(RetrieverConfig{TopK: 5, MinScore: 1, AnswerWeight: 0})
	items := []types.KnowledgeItem{
		{Question: "배송 안내 첫번째", Answer: "a"},
		{Question: "배송 안내 두번째", Answer: "b"},
	}

	results := r.Retrieve("배송 안내", items)

	require.Len(t, results, 2)
	assert.Equal(t, results[0].Score, results[1].Score)
	assert.Equal(t, "배송 안내 첫번째", results[0].Question)
}

func TestIntentClassifier(t *testing.T) {
	c := NewIntentClassifier()

	tests := []struct {
		query string
		want  string
	}{
		{"맥스 사이즈 알려줘", "size"},
		{"커버링 어떻게 해요", "covering"},
		{"세탁 방법 궁금해요", "laundry"},
		{"배송 언제 와요", "delivery"},
		{"환불하고 싶어요", "refund"},
		{"에이에스 신청하려고요", "service"},
		{"A/S 기간이 궁금해요", "service"},
		{"Yogibo Max has arrived", ""},
		{"안녕하세요", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.query), tt.query)
	}
}
