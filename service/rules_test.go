package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRules() *RuleEngine {
	return NewRuleEngine(nil, nil, NewClarificationStore(), zap.NewNop())
}

func TestRulesBlockOffTopic(t *testing.T) {
	rules := newTestRules()

	text, ok := rules.Evaluate(context.Background(), "파이썬 코드 좀 짜줘", "", "sess")

	require.True(t, ok)
	assert.Contains(t, text, "요기보(Yogibo)")
}

func TestRulesCounselorHandoff(t *testing.T) {
	rules := newTestRules()

	text, ok := rules.Evaluate(context.Background(), "상담사 연결해 주세요", "", "sess")

	require.True(t, ok)
	assert.Contains(t, text, "consult-container")
}

func TestRulesBeadRefill(t *testing.T) {
	rules := newTestRules()

	text, ok := rules.Evaluate(context.Background(), "충전은 어떻게 하나요", "", "sess")

	require.True(t, ok)
	assert.Contains(t, text, "biz_cover.html")
}

func TestRulesCoveringClarification(t *testing.T) {
	rules := newTestRules()
	ctx := context.Background()

	ask, ok := rules.Evaluate(ctx, "커버링 어떻게 해요", "", "sess")
	require.True(t, ok)
	assert.Contains(t, ask, "어떤 제품")

	answer, ok := rules.Evaluate(ctx, "맥스요", "", "sess")
	require.True(t, ok)
	assert.Contains(t, answer, "맥스 커버링")

	// The pending topic is consumed; the same reply no longer resolves.
	_, ok = rules.Evaluate(ctx, "맥스요", "", "sess")
	assert.False(t, ok)
}

func TestRulesClarificationIsPerSession(t *testing.T) {
	rules := newTestRules()
	ctx := context.Background()

	_, ok := rules.Evaluate(ctx, "커버링 어떻게 해요", "", "sess-a")
	require.True(t, ok)

	// Another session answering with a product name gets no covering reply.
	_, ok = rules.Evaluate(ctx, "맥스요", "", "sess-b")
	assert.False(t, ok)
}

func TestRulesRecommendationIntent(t *testing.T) {
	ai := &fakeAI{synthReply: "푹신한 맥스를 추천드려요!"}
	recommend := NewRecommendService(nil, ai, zap.NewNop(), RecommendConfig{Temperature: 0.4, CompletionTimeout: time.Second})
	rules := NewRuleEngine(nil, recommend, NewClarificationStore(), zap.NewNop())

	text, ok := rules.Evaluate(context.Background(), "푹신한 소파 추천해줘", "", "sess")

	require.True(t, ok)
	assert.Contains(t, text, "푹신한 맥스를 추천드려요!")
	assert.Contains(t, text, "보러가기", "deterministic catalog links ride along")
}

func TestRulesRecommendationNotConfigured(t *testing.T) {
	rules := newTestRules()

	// Without a scorer wired the question falls through to retrieval.
	_, ok := rules.Evaluate(context.Background(), "푹신한 소파 추천해줘", "", "sess")

	assert.False(t, ok)
}

func TestRulesProductSearchLink(t *testing.T) {
	rules := newTestRules()

	text, ok := rules.Evaluate(context.Background(), "맥스 구매 링크 좀", "", "sess")

	require.True(t, ok)
	assert.Contains(t, text, "search.html")
	assert.Contains(t, text, "%EC%9A%94%EA%B8%B0%EB%B3%B4") // url-escaped 요기보
}

func TestRulesCustomerCenterPhone(t *testing.T) {
	rules := newTestRules()

	text, ok := rules.Evaluate(context.Background(), "고객센터 전화 번호가 뭐예요", "", "sess")

	require.True(t, ok)
	assert.Contains(t, text, "02-557-0920")
}

func TestRulesCartRequiresLogin(t *testing.T) {
	rules := newTestRules()
	ctx := context.Background()

	guest, ok := rules.Evaluate(ctx, "장바구니 열어줘", "null", "sess")
	require.True(t, ok)
	assert.Contains(t, guest, "로그인")

	member, ok := rules.Evaluate(ctx, "장바구니 열어줘", "hong", "hong")
	require.True(t, ok)
	assert.Contains(t, member, "/order/basket.html")
	assert.Contains(t, member, "hong")
}

func TestRulesOrderNumberRequiresLogin(t *testing.T) {
	rules := newTestRules()

	text, ok := rules.Evaluate(context.Background(), "20240101-0000001 배송 어떻게 되나요", "", "sess")

	require.True(t, ok)
	assert.Contains(t, text, "로그인")
}

func TestRulesOrderLookupWithoutCommerce(t *testing.T) {
	rules := newTestRules()

	text, ok := rules.Evaluate(context.Background(), "20240101-0000001 조회해줘", "hong", "hong")

	require.True(t, ok)
	assert.Contains(t, text, "오류")
}

func TestRulesTrackingHeuristicRequiresLogin(t *testing.T) {
	rules := newTestRules()

	text, ok := rules.Evaluate(context.Background(), "배송 언제 와요", "undefined", "sess")

	require.True(t, ok)
	assert.Contains(t, text, "로그인")
}

func TestRulesNoMatchFallsThrough(t *testing.T) {
	rules := newTestRules()

	_, ok := rules.Evaluate(context.Background(), "안녕하세요", "", "sess")

	assert.False(t, ok)
}
