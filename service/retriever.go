package service

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tieubaoca/answer-engine/types"
	"github.com/tieubaoca/answer-engine/utils"
)

// Score weights. Question-side hits dominate; answer-body hits are noisy
// and carry the configurable low weight.
const (
	scoreExactQuestion  = 100
	scoreIntentMatch    = 30
	scoreContainsExact  = 50
	scoreContainsLoose  = 30
	scoreMultiKeyword   = 50
	scoreSingleKeyword  = 30
	scoreKeywordInQ     = 10
	maxAnswerWordWeight = 10
)

type RetrieverConfig struct {
	TopK         int
	MinScore     int
	AnswerWeight int
}

// Retriever ranks corpus index entries against a query with a deterministic
// keyword heuristic and returns the top candidates above the cutoff.
type Retriever struct {
	intents *IntentClassifier
	cfg     RetrieverConfig
}

func NewRetriever(intents *IntentClassifier, cfg RetrieverConfig) *Retriever {
	if cfg.TopK <= 0 {
		cfg.TopK = 3
	}
	if cfg.AnswerWeight < 0 {
		cfg.AnswerWeight = 0
	}
	if cfg.AnswerWeight > maxAnswerWordWeight {
		cfg.AnswerWeight = maxAnswerWordWeight
	}
	return &Retriever{intents: intents, cfg: cfg}
}

// Retrieve scores every index entry, keeps those at or above MinScore and
// returns at most TopK, best first. Equal scores keep insertion order, so
// seeds outrank corpus entries on ties.
func (r *Retriever) Retrieve(query string, items []types.KnowledgeItem) []types.ScoredItem {
	keywords := utils.Keywords(query)
	clean := utils.Normalize(query)
	if len(keywords) == 0 && utf8.RuneCountInString(clean) < 2 {
		return nil
	}

	intent := r.intents.Classify(query)

	scored := make([]types.ScoredItem, 0, len(items))
	for _, item := range items {
		score := r.score(clean, keywords, intent, item)
		if score < r.cfg.MinScore {
			continue
		}
		scored = append(scored, types.ScoredItem{KnowledgeItem: item, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > r.cfg.TopK {
		scored = scored[:r.cfg.TopK]
	}
	return scored
}

func (r *Retriever) score(clean string, keywords []string, intent string, item types.KnowledgeItem) int {
	q := utils.Normalize(item.Question)
	a := strings.ToLower(item.Answer)

	score := 0

	if intent != "" && strings.Contains(item.Category, intent) {
		score += scoreIntentMatch
	}

	switch {
	case q == clean:
		// Exact normalized match also counts as containment at the
		// full weight.
		score += scoreExactQuestion + scoreContainsExact
	case q != "" && (strings.Contains(clean, q) || strings.Contains(q, clean)):
		score += scoreContainsLoose
	}

	matched := 0
	for _, w := range keywords {
		if strings.Contains(q, w) {
			matched++
		}
	}
	if matched >= 2 {
		score += scoreMultiKeyword
	} else if matched == 1 && len(keywords) == 1 {
		score += scoreSingleKeyword
	}

	for _, w := range keywords {
		if strings.Contains(q, w) {
			score += scoreKeywordInQ
		}
		if r.cfg.AnswerWeight > 0 && strings.Contains(a, w) {
			score += r.cfg.AnswerWeight
		}
	}

	return score
}
