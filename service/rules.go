package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tieubaoca/answer-engine/seed"
	"github.com/tieubaoca/answer-engine/types"
	"github.com/tieubaoca/answer-engine/utils"
	"go.uber.org/zap"
)

// Off-topic keywords deflected without any retrieval or completion call.
var blockKeywords = []string{
	"파이썬", "python", "노드", "node", "자바", "코딩", "sql", "mysql", "db",
	"주식", "비트코인", "날씨", "정치", "게임", "영화", "맛집",
}

var counselorKeywords = []string{
	"상담사", "상담원", "사람", "고객센터 연결",
}

// Product family names the storefront can be searched for.
var productKeywords = []string{
	"슬림", "맥스", "더블", "미디", "미니", "팟", "드롭", "피라미드", "라운저",
	"줄라", "쇼티", "롤", "서포트", "카터필러", "바디필로우", "스퀴지보",
	"트레이보", "모듈라", "플랜트",
}

var searchIntentKeywords = []string{
	"url", "주소", "링크", "검색", "찾아", "보여", "살래", "구매", "알고", "정보",
}

// RuleEngine is the ordered set of deterministic handlers that can answer
// before retrieval runs. Any hit terminates the pipeline with a literal
// response.
type RuleEngine struct {
	commerce  *CommerceService
	recommend *RecommendService
	pending   *ClarificationStore
	logger    *zap.Logger
}

func NewRuleEngine(commerce *CommerceService, recommend *RecommendService, pending *ClarificationStore, logger *zap.Logger) *RuleEngine {
	return &RuleEngine{
		commerce:  commerce,
		recommend: recommend,
		pending:   pending,
		logger:    logger,
	}
}

// Evaluate runs the rules in fixed order and returns the literal answer on
// the first match. sessionID keys the clarification sub-dialog; it falls
// back to the member id for logged-in callers.
func (e *RuleEngine) Evaluate(ctx context.Context, message, memberID, sessionID string) (string, bool) {
	normalized := utils.NormalizeSentence(message)
	lower := strings.ToLower(normalized)

	for _, bad := range blockKeywords {
		if strings.Contains(lower, bad) {
			return "죄송합니다. 저는 **요기보(Yogibo)** 제품 상담만 도와드릴 수 있어요. 😅<br>요기보에 대해 궁금한 점이 있다면 물어봐 주세요!", true
		}
	}

	for _, kw := range counselorKeywords {
		if strings.Contains(normalized, kw) {
			return "전문 상담사와 연결해 드리겠습니다." + seed.CounselorLinksCallHTML, true
		}
	}

	// A previous turn may have asked which product the question was about.
	if topic := e.pending.Take(sessionID); topic != "" {
		if product := firstProductKeyword(normalized); product != "" {
			if answer := seedAnswerFor(topic, product); answer != "" {
				return answer, true
			}
		}
	}

	// Recommendation questions never go through retrieval; the catalog
	// scorer owns them.
	if e.recommend != nil && strings.Contains(normalized, "추천") {
		return e.recommend.Recommend(ctx, message, memberID), true
	}

	if strings.Contains(normalized, "충전") {
		return `비즈 충전을 찾으시는걸까요? 해당 링크를 통해 자세한 내용을 확인하실수 있습니다.<br><a href="https://yogibo.kr/event/yogibo/biz_cover.html" target="_blank">[비즈 충전방법]</a>`, true
	}

	// Covering questions without a product name get a one-turn
	// clarification instead of a guess.
	if strings.Contains(normalized, "커버링") && firstProductKeyword(normalized) == "" {
		e.pending.Set(sessionID, types.CategoryCovering)
		return "어떤 제품의 커버링 방법이 궁금하신가요? 제품 이름(예: 맥스, 미디, 미니)을 알려주세요. 😊", true
	}

	if product := firstProductKeyword(normalized); product != "" {
		for _, intent := range searchIntentKeywords {
			if strings.Contains(lower, intent) {
				searchURL := "http://yogibo.kr/product/search.html?order_by=favor&banner_action=&keyword=" +
					url.QueryEscape("요기보 "+product)
				return fmt.Sprintf(`찾으시는 <b>'%s'</b> 정보를 찾았습니다.<br>아래 링크에서 확인해 보세요! 👇<br><br><a href="%s" target="_blank" class="consult-btn" style="background:#58b5ca; color:#fff; justify-content:center; text-decoration:none;">🔍 %s 검색 결과 보기</a>`, product, searchURL, product), true
			}
		}
	}

	if strings.Contains(normalized, "고객센터") && (strings.Contains(normalized, "번호") || strings.Contains(normalized, "전화")) {
		return "요기보 고객센터 전화번호는 **02-557-0920** 입니다. 😊 (평일 10:00~17:30)", true
	}

	if strings.Contains(normalized, "장바구니") {
		if utils.IsLoggedIn(memberID) {
			return fmt.Sprintf(`%s님의 장바구니로 이동합니다.<br><a href="/order/basket.html">🛒 바로가기</a>`, memberID), true
		}
		return "로그인이 필요합니다." + seed.LoginButtonHTML, true
	}

	if utils.ContainsOrderNumber(normalized) {
		return e.orderNumberLookup(ctx, normalized, memberID), true
	}

	isTracking := (strings.Contains(normalized, "배송") || strings.Contains(normalized, "주문")) &&
		(strings.Contains(normalized, "조회") || strings.Contains(normalized, "확인") ||
			strings.Contains(normalized, "언제") || strings.Contains(normalized, "어디"))
	if isTracking {
		return e.recentOrderLookup(ctx, memberID), true
	}

	return "", false
}

func (e *RuleEngine) orderNumberLookup(ctx context.Context, normalized, memberID string) string {
	if !utils.IsLoggedIn(memberID) {
		return "조회를 위해 로그인이 필요합니다." + seed.LoginButtonHTML
	}
	orderID := utils.OrderNumber(normalized)
	if e.commerce == nil {
		return "조회 중 오류가 발생했습니다."
	}
	shipment, err := e.commerce.Shipment(ctx, orderID)
	if err != nil {
		e.logger.Error("shipment lookup failed", zap.String("order_id", orderID), zap.Error(err))
		return "조회 중 오류가 발생했습니다."
	}
	if shipment == nil {
		return "해당 주문번호의 정보를 찾을 수 없습니다."
	}
	status := shipment.Status
	if status == "" {
		status = "배송 준비중"
	}
	return fmt.Sprintf("주문번호 <strong>%s</strong>의 배송 상태는 <strong>%s</strong>입니다.", orderID, status)
}

func (e *RuleEngine) recentOrderLookup(ctx context.Context, memberID string) string {
	if !utils.IsLoggedIn(memberID) {
		return "배송정보 확인을 위해 로그인이 필요합니다." + seed.LoginButtonHTML
	}
	if e.commerce == nil {
		return "조회 실패."
	}
	orders, err := e.commerce.RecentOrders(ctx, memberID)
	if err != nil {
		e.logger.Error("recent order lookup failed", zap.String("member_id", memberID), zap.Error(err))
		return "조회 실패."
	}
	if len(orders) == 0 {
		return "최근 주문 내역이 없습니다."
	}
	return fmt.Sprintf("최근 주문(<strong>%s</strong>)을 확인했습니다.", orders[0].OrderID)
}

func firstProductKeyword(text string) string {
	for _, product := range productKeywords {
		if strings.Contains(text, product) {
			return product
		}
	}
	return ""
}

// seedAnswerFor resolves a clarified (topic, product) pair against the
// static seed entries: an entry of the topic's category naming the product
// wins, otherwise the topic's generic entry.
func seedAnswerFor(topic, product string) string {
	generic := ""
	for _, item := range seed.Items() {
		if item.Category != topic {
			continue
		}
		if strings.Contains(utils.Normalize(item.Question), strings.ToLower(product)) {
			return item.Answer
		}
		if generic == "" {
			generic = item.Answer
		}
	}
	return generic
}
