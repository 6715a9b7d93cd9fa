package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tieubaoca/answer-engine/repository"
	"github.com/tieubaoca/answer-engine/seed"
	"github.com/tieubaoca/answer-engine/types"
	"go.uber.org/zap"
)

// ArbiterState names one stage of the answer pipeline.
type ArbiterState int

const (
	StateRuleShortCircuit ArbiterState = iota
	StateRetrieve
	StateNoEvidence
	StateLLMFilter
	StateLLMSynthesize
	StateGuardCheck
	StateAccepted
	StateRejected
)

var (
	indexListRe = regexp.MustCompile(`\d+`)
	iframeRe    = regexp.MustCompile(`(?s)<iframe.*?</iframe>`)
	imgRe       = regexp.MustCompile(`<img.*?>`)
)

// groundingRules is appended to the persona on every synthesis call so a
// hot-swapped persona cannot drop the refusal contract.
const groundingRules = `

[운영 규칙]
- 반드시 아래 [참고 정보]에 있는 내용만으로 답변하세요. 없는 사실을 지어내지 마세요.
- [참고 정보]로 답할 수 없으면 오직 "` + seed.RefusalSentinel + `"만 출력하세요.`

type ArbiterConfig struct {
	AnswerTemperature float32
	CompletionTimeout time.Duration
}

// Arbiter walks a question through the pipeline: rules first, then
// retrieval, then the completion service behind the candidate filter and
// the no-context guard. Every terminal state returns a literal answer and
// writes exactly one transcript entry; nothing here ever surfaces an error
// to the caller.
type Arbiter struct {
	rules         *RuleEngine
	knowledge     *KnowledgeService
	retriever     *Retriever
	ai            AIService
	conversations repository.ConversationRepo
	logger        *zap.Logger
	cfg           ArbiterConfig
}

func NewArbiter(
	rules *RuleEngine,
	knowledge *KnowledgeService,
	retriever *Retriever,
	ai AIService,
	conversations repository.ConversationRepo,
	logger *zap.Logger,
	cfg ArbiterConfig,
) *Arbiter {
	if cfg.CompletionTimeout <= 0 {
		cfg.CompletionTimeout = 30 * time.Second
	}
	return &Arbiter{
		rules:         rules,
		knowledge:     knowledge,
		retriever:     retriever,
		ai:            ai,
		conversations: conversations,
		logger:        logger,
		cfg:           cfg,
	}
}

// Answer resolves the question and records the final text. The recorded
// answer is the user-visible one, media reattachment included.
func (a *Arbiter) Answer(ctx context.Context, message, memberID, sessionID string) string {
	text := a.run(ctx, message, memberID, sessionID)
	a.record(ctx, memberID, message, text)
	return text
}

func (a *Arbiter) run(ctx context.Context, message, memberID, sessionID string) string {
	state := StateRuleShortCircuit

	var docs []types.ScoredItem
	var top *types.ScoredItem
	var draft string

	for {
		switch state {
		case StateRuleShortCircuit:
			if text, ok := a.rules.Evaluate(ctx, message, memberID, sessionID); ok {
				return text
			}
			state = StateRetrieve

		case StateRetrieve:
			docs = a.retriever.Retrieve(message, a.knowledge.Index())
			if len(docs) == 0 {
				// No evidence, no completion call.
				state = StateNoEvidence
				break
			}
			top = &docs[0]
			state = StateLLMFilter

		case StateLLMFilter:
			kept, err := a.filterCandidates(ctx, message, docs)
			if err != nil {
				a.logger.Error("candidate filter failed", zap.Error(err))
				state = StateRejected
				break
			}
			if len(kept) == 0 {
				state = StateNoEvidence
				break
			}
			docs = kept
			state = StateLLMSynthesize

		case StateLLMSynthesize:
			var err error
			draft, err = a.synthesize(ctx, message, docs)
			if err != nil {
				a.logger.Error("answer synthesis failed", zap.Error(err))
				state = StateRejected
				break
			}
			state = StateGuardCheck

		case StateGuardCheck:
			if strings.Contains(draft, seed.RefusalSentinel) {
				state = StateNoEvidence
				break
			}
			state = StateAccepted

		case StateAccepted:
			return reattachMedia(draft, top)

		case StateNoEvidence, StateRejected:
			return seed.FallbackMessageHTML
		}
	}
}

// filterCandidates asks the completion service which retrieved candidates
// are directly relevant, by index. The call runs on the cheap model with a
// small max-token cap since only a number list comes back.
func (a *Arbiter) filterCandidates(ctx context.Context, message string, docs []types.ScoredItem) ([]types.ScoredItem, error) {
	if a.ai == nil {
		return nil, fmt.Errorf("no completion service configured")
	}

	var list strings.Builder
	for i, doc := range docs {
		fmt.Fprintf(&list, "%d. %s\n", i+1, doc.Question)
	}
	prompt := fmt.Sprintf(`사용자 질문: "%s"

아래 후보 중 이 질문에 답변하는 데 **직접적으로 관련 있는 번호**만 골라주세요.
관련 없으면 "없음"이라고 답하세요.

[후보 목록]
%s
답변 형식: 숫자만 (예: 1 또는 1,3)`, message, list.String())

	ctx, cancel := context.WithTimeout(ctx, a.cfg.CompletionTimeout)
	defer cancel()
	reply, err := a.ai.Complete(ctx, types.CompletionRequest{
		User:        prompt,
		Temperature: 0,
		MaxTokens:   20,
		Light:       true,
	})
	if err != nil {
		return nil, err
	}

	reply = strings.TrimSpace(reply)
	if reply == "없음" || strings.EqualFold(reply, "none") {
		return nil, nil
	}

	var kept []types.ScoredItem
	for _, match := range indexListRe.FindAllString(reply, -1) {
		idx, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		idx--
		if idx >= 0 && idx < len(docs) {
			kept = append(kept, docs[idx])
		}
	}
	return kept, nil
}

func (a *Arbiter) synthesize(ctx context.Context, message string, docs []types.ScoredItem) (string, error) {
	if a.ai == nil {
		return "", fmt.Errorf("no completion service configured")
	}

	var contextBlock strings.Builder
	for i, doc := range docs {
		fmt.Fprintf(&contextBlock, "[정보 %d]\nQ: %s\nA: %s\n\n", i+1, doc.Question, doc.Answer)
	}
	system := a.knowledge.Persona() + groundingRules + "\n\n[참고 정보]\n" + contextBlock.String()

	ctx, cancel := context.WithTimeout(ctx, a.cfg.CompletionTimeout)
	defer cancel()
	return a.ai.Complete(ctx, types.CompletionRequest{
		System:      system,
		User:        message,
		Temperature: a.cfg.AnswerTemperature,
	})
}

// reattachMedia appends media markup from the top-ranked candidate when the
// synthesized text dropped it. Synthesis is never allowed to lose an image
// or an embedded video.
func reattachMedia(answer string, top *types.ScoredItem) string {
	if top == nil {
		return answer
	}
	if strings.Contains(top.Answer, "<iframe") && !strings.Contains(answer, "<iframe") {
		if frames := iframeRe.FindAllString(top.Answer, -1); len(frames) > 0 {
			answer += "\n" + strings.Join(frames, "\n")
		}
	}
	if strings.Contains(top.Answer, "<img") && !strings.Contains(answer, "<img") {
		if imgs := imgRe.FindAllString(top.Answer, -1); len(imgs) > 0 {
			answer += "\n" + strings.Join(imgs, "\n")
		}
	}
	return answer
}

// record appends the turn to the transcript sink. Logging failures are
// logged and swallowed; they must never reach the user.
func (a *Arbiter) record(ctx context.Context, memberID, question, answer string) {
	date := time.Now().Format("2006-01-02")
	turn := types.ConversationTurn{
		UserMessage: question,
		BotResponse: answer,
		CreatedAt:   time.Now(),
	}
	if err := a.conversations.Append(ctx, memberID, date, turn); err != nil {
		a.logger.Error("failed to record conversation turn", zap.Error(err))
	}
}
