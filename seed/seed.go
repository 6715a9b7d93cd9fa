package seed

import "github.com/tieubaoca/answer-engine/types"

// Items returns the static knowledge entries compiled into the binary: the
// FAQ list plus the size and covering guides. They load ahead of the corpus
// store on every index rebuild.
func Items() []types.KnowledgeItem {
	out := make([]types.KnowledgeItem, 0, len(faqItems)+len(sizeItems)+len(coveringItems))
	out = append(out, faqItems...)
	out = append(out, coveringItems...)
	out = append(out, sizeItems...)
	return out
}

var faqItems = []types.KnowledgeItem{
	{
		Question: "배송은 얼마나 걸리나요",
		Answer:   "결제 완료 후 평균 2~5 영업일 이내에 출고됩니다. 도서산간 지역은 1~2일 더 소요될 수 있어요.",
		Category: types.CategoryFAQ,
		Source:   types.SourceSeed,
	},
	{
		Question: "교환 반품은 어떻게 하나요",
		Answer:   "수령일로부터 7일 이내, 미사용 상태라면 교환/반품이 가능합니다. 고객센터(02-557-0920) 또는 마이페이지에서 신청해 주세요.",
		Category: types.CategoryFAQ,
		Source:   types.SourceSeed,
	},
	{
		Question: "세탁은 어떻게 하나요",
		Answer:   "겉커버는 분리하여 찬물에 단독 세탁해 주세요. 이너(비즈) 본체는 세탁할 수 없습니다. 건조기 사용은 피해 주세요.",
		Category: "laundry",
		Source:   types.SourceSeed,
	},
	{
		Question: "AS 신청은 어떻게 하나요",
		Answer:   "지퍼 불량, 봉제 불량 등은 구매일로부터 1년간 무상 AS 대상입니다. 고객센터로 사진과 함께 접수해 주세요.",
		Category: "service",
		Source:   types.SourceSeed,
	},
	{
		Question: "비즈 충전은 어떻게 하나요",
		Answer:   `비즈가 꺼졌다면 리필 비즈로 충전할 수 있어요. <a href="https://yogibo.kr/event/yogibo/biz_cover.html" target="_blank">[비즈 충전방법]</a> 페이지를 참고해 주세요.`,
		Category: types.CategoryFAQ,
		Source:   types.SourceSeed,
	},
	{
		Question: "매장은 어디에 있나요",
		Answer:   "전국 백화점과 아울렛에 공식 매장이 있습니다. 매장 안내 페이지에서 가까운 매장을 확인해 주세요.",
		Category: types.CategoryFAQ,
		Source:   types.SourceSeed,
	},
}

var coveringItems = []types.KnowledgeItem{
	{
		Question: "커버링 교체방법",
		Answer:   `커버링은 지퍼를 열어 이너백을 꺼낸 뒤 새 커버를 씌우면 됩니다. 두 명이 함께 작업하면 훨씬 수월해요. <iframe src="https://www.youtube.com/embed/yogibo-covering" frameborder="0" allowfullscreen></iframe>`,
		Category: types.CategoryCovering,
		Source:   types.SourceSeed,
	},
	{
		Question: "맥스 커버링 방법",
		Answer:   "맥스 커버링은 긴 쪽 지퍼를 끝까지 연 다음 이너백을 세워서 교체하는 것이 가장 쉽습니다.",
		Category: types.CategoryCovering,
		Source:   types.SourceSeed,
	},
}

var sizeItems = []types.KnowledgeItem{
	{
		Question: "맥스 사이즈 또는 크기",
		Answer:   "요기보 맥스의 크기는 길이 170cm, 폭 65cm이며 세우면 약 200cm까지 늘어납니다. 무게는 약 8.5kg입니다.",
		Category: types.CategorySize,
		Source:   types.SourceSeed,
	},
	{
		Question: "미디 사이즈 또는 크기",
		Answer:   "요기보 미디의 크기는 길이 130cm, 폭 65cm, 무게 약 6kg입니다.",
		Category: types.CategorySize,
		Source:   types.SourceSeed,
	},
	{
		Question: "미니 사이즈 또는 크기",
		Answer:   "요기보 미니의 크기는 길이 85cm, 폭 70cm, 무게 약 4.5kg입니다.",
		Category: types.CategorySize,
		Source:   types.SourceSeed,
	},
	{
		Question: "팟 사이즈 또는 크기",
		Answer:   "요기보 팟의 크기는 높이 85cm, 지름 65cm, 무게 약 5kg입니다.",
		Category: types.CategorySize,
		Source:   types.SourceSeed,
	},
}
