package seed

import "github.com/tieubaoca/answer-engine/types"

// Product catalog for the recommendation scorer. Categories pair up for
// cross-sell: a member who owns a sofa but no accessory gets accessory
// candidates boosted, and the other way around.
const (
	CategorySofa      = "sofa"
	CategoryAccessory = "accessory"
)

// ComplementCategory maps a purchased category to the one worth pitching.
var ComplementCategory = map[string]string{
	CategorySofa:      CategoryAccessory,
	CategoryAccessory: CategorySofa,
}

func Catalog() []types.Product {
	return catalog
}

var catalog = []types.Product{
	{
		ID:       "yogibo-max",
		Name:     "요기보 맥스",
		Category: CategorySofa,
		Price:    219000,
		Features: []string{"맥스", "소파", "빈백", "침대"},
		UseCases: []string{"거실", "낮잠", "영화"},
		URL:      "https://yogibo.kr/product/yogibo-max",
		Anchor:   true,
	},
	{
		ID:       "yogibo-midi",
		Name:     "요기보 미디",
		Category: CategorySofa,
		Price:    179000,
		Features: []string{"미디", "소파", "빈백"},
		UseCases: []string{"원룸", "게임", "독서"},
		URL:      "https://yogibo.kr/product/yogibo-midi",
	},
	{
		ID:       "yogibo-mini",
		Name:     "요기보 미니",
		Category: CategorySofa,
		Price:    139000,
		Features: []string{"미니", "빈백", "의자"},
		UseCases: []string{"아이방", "독서"},
		URL:      "https://yogibo.kr/product/yogibo-mini",
	},
	{
		ID:       "yogibo-pod",
		Name:     "요기보 팟",
		Category: CategorySofa,
		Price:    149000,
		Features: []string{"팟", "빈백", "의자"},
		UseCases: []string{"서재", "게임"},
		URL:      "https://yogibo.kr/product/yogibo-pod",
	},
	{
		ID:       "yogibo-support",
		Name:     "요기보 서포트",
		Category: CategoryAccessory,
		Price:    89000,
		Features: []string{"서포트", "쿠션", "등받이"},
		UseCases: []string{"수유", "독서", "허리"},
		URL:      "https://yogibo.kr/product/yogibo-support",
		Anchor:   true,
	},
	{
		ID:       "yogibo-roll-max",
		Name:     "요기보 롤 맥스",
		Category: CategoryAccessory,
		Price:    99000,
		Features: []string{"롤", "바디필로우", "쿠션"},
		UseCases: []string{"수면", "임산부"},
		URL:      "https://yogibo.kr/product/yogibo-roll-max",
	},
	{
		ID:       "yogibo-caterpillar-roll",
		Name:     "요기보 카터필러 롤",
		Category: CategoryAccessory,
		Price:    69000,
		Features: []string{"카터필러", "롤", "쿠션"},
		UseCases: []string{"수면", "쇼파와 함께"},
		URL:      "https://yogibo.kr/product/yogibo-caterpillar-roll",
	},
	{
		ID:       "yogibo-traybo",
		Name:     "요기보 트레이보",
		Category: CategoryAccessory,
		Price:    59000,
		Features: []string{"트레이보", "테이블", "노트북"},
		UseCases: []string{"재택근무", "노트북"},
		URL:      "https://yogibo.kr/product/yogibo-traybo",
	},
}
