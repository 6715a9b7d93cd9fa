package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tieubaoca/answer-engine/seed"
	"github.com/tieubaoca/answer-engine/types"
	"github.com/tieubaoca/answer-engine/utils"
	"go.uber.org/zap"
)

const (
	scoreFeatureHit  = 20
	scoreUseCaseHit  = 15
	scoreCrossSell   = 40
	scoreAnchorBoost = 5

	recommendTopN = 3
)

const recommendSystem = `당신은 요기보(Yogibo)의 판매 전문 상담원입니다.
고객의 질문과 구매 이력, 그리고 추천 후보 제품을 참고해 자연스러운 추천 멘트를 작성하세요.
- 후보에 없는 제품은 절대 언급하지 마세요.
- 가격은 후보에 적힌 그대로만 말하세요.
- 2~3문장, 친근한 말투로 작성하세요.`

type RecommendConfig struct {
	Temperature       float32
	CompletionTimeout time.Duration
}

// RecommendService scores the static catalog against the question and the
// member's recent purchases, then asks the completion service for the
// promotional copy. The candidate set and the CTA links are deterministic;
// only the prose varies.
type RecommendService struct {
	commerce *CommerceService
	ai       AIService
	logger   *zap.Logger
	cfg      RecommendConfig
}

func NewRecommendService(commerce *CommerceService, ai AIService, logger *zap.Logger, cfg RecommendConfig) *RecommendService {
	if cfg.CompletionTimeout <= 0 {
		cfg.CompletionTimeout = 30 * time.Second
	}
	return &RecommendService{
		commerce: commerce,
		ai:       ai,
		logger:   logger,
		cfg:      cfg,
	}
}

// Recommend returns the full recommendation response for the question.
// Anonymous callers and commerce failures degrade to history-free scoring.
func (s *RecommendService) Recommend(ctx context.Context, query, memberID string) string {
	history := s.purchaseHistory(ctx, memberID)
	candidates := rankProducts(query, history)
	if len(candidates) == 0 {
		return seed.RecommendApology
	}

	copyText, err := s.promoCopy(ctx, query, history, candidates)
	if err != nil {
		s.logger.Error("promo copy generation failed", zap.Error(err))
		return seed.RecommendApology
	}
	return copyText + ctaLinks(candidates)
}

// purchaseHistory derives the member's owned products and categories from
// the last two weeks of orders. Empty on any failure; recommendation must
// work for anonymous visitors too.
func (s *RecommendService) purchaseHistory(ctx context.Context, memberID string) *types.PurchaseHistory {
	history := &types.PurchaseHistory{Categories: make(map[string]bool)}
	if !utils.IsLoggedIn(memberID) || s.commerce == nil {
		return history
	}

	orders, err := s.commerce.RecentOrders(ctx, memberID)
	if err != nil {
		s.logger.Warn("purchase history unavailable", zap.String("member_id", memberID), zap.Error(err))
		return history
	}

	for _, order := range orders {
		for _, item := range order.Items {
			history.ProductNames = append(history.ProductNames, item.ProductName)
			if item.OptionValue != "" {
				history.Options = append(history.Options, item.OptionValue)
			}
			for _, product := range seed.Catalog() {
				if strings.Contains(utils.Normalize(item.ProductName), utils.Normalize(product.Name)) {
					history.Categories[product.Category] = true
				}
			}
		}
	}
	return history
}

// rankProducts scores every catalog entry against the question and the
// history and keeps the top three. Products the member already owns are
// skipped.
func rankProducts(query string, history *types.PurchaseHistory) []types.Product {
	lower := strings.ToLower(utils.NormalizeSentence(query))

	type scored struct {
		product types.Product
		score   int
	}
	var ranked []scored

	for _, product := range seed.Catalog() {
		if owned(product, history) {
			continue
		}

		score := 0
		for _, feature := range product.Features {
			if strings.Contains(lower, strings.ToLower(feature)) {
				score += scoreFeatureHit
			}
		}
		for _, useCase := range product.UseCases {
			if strings.Contains(lower, strings.ToLower(useCase)) {
				score += scoreUseCaseHit
			}
		}
		for ownedCat := range history.Categories {
			if seed.ComplementCategory[ownedCat] == product.Category && !history.Categories[product.Category] {
				score += scoreCrossSell
			}
		}
		if product.Anchor {
			score += scoreAnchorBoost
		}

		if score > 0 {
			ranked = append(ranked, scored{product: product, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > recommendTopN {
		ranked = ranked[:recommendTopN]
	}

	products := make([]types.Product, 0, len(ranked))
	for _, r := range ranked {
		products = append(products, r.product)
	}
	return products
}

func owned(product types.Product, history *types.PurchaseHistory) bool {
	for _, name := range history.ProductNames {
		if strings.Contains(utils.Normalize(name), utils.Normalize(product.Name)) {
			return true
		}
	}
	return false
}

func (s *RecommendService) promoCopy(ctx context.Context, query string, history *types.PurchaseHistory, candidates []types.Product) (string, error) {
	if s.ai == nil {
		return "", fmt.Errorf("no completion service configured")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "고객 질문: %s\n\n", query)
	if !history.Empty() {
		fmt.Fprintf(&b, "최근 구매 이력: %s\n\n", strings.Join(history.ProductNames, ", "))
	}
	b.WriteString("[추천 후보]\n")
	for i, product := range candidates {
		fmt.Fprintf(&b, "%d. %s (%d원) - %s\n", i+1, product.Name, product.Price, strings.Join(product.Features, ", "))
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.CompletionTimeout)
	defer cancel()
	reply, err := s.ai.Complete(ctx, types.CompletionRequest{
		System:      recommendSystem,
		User:        b.String(),
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// ctaLinks renders the candidate links. Always appended verbatim so the
// clickable products never depend on what the model chose to mention.
func ctaLinks(candidates []types.Product) string {
	var b strings.Builder
	b.WriteString(`<div style="margin-top:12px;">`)
	for _, product := range candidates {
		fmt.Fprintf(&b,
			`<a href="%s" target="_blank" class="consult-btn" style="background:#58b5ca; color:#fff; justify-content:center; text-decoration:none; margin-top:6px;">%s 보러가기 →</a>`,
			product.URL, product.Name)
	}
	b.WriteString(`</div>`)
	return b.String()
}
