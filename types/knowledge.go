package types

// Provenance of a corpus index entry.
const (
	SourceSeed   = "seed"
	SourceCorpus = "corpus"
)

const (
	CategoryFAQ      = "faq"
	CategorySize     = "size"
	CategoryCovering = "covering"
	CategoryPDF      = "pdf-knowledge"
	CategoryImage    = "image-knowledge"
	CategoryGeneral  = "general"
)

// KnowledgeNote is the durable corpus store record.
type KnowledgeNote struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Question  string `json:"question" bson:"question"`
	Answer    string `json:"answer" bson:"answer"`
	Category  string `json:"category" bson:"category"`
	CreatedAt int64  `json:"created_at" bson:"created_at"`
	UpdatedAt int64  `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// KnowledgeItem is one entry of the in-memory corpus index. Answer text may
// embed markup (<img>, <iframe>) that must survive synthesis untouched.
type KnowledgeItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

// ScoredItem pairs an index entry with its transient retrieval score.
type ScoredItem struct {
	KnowledgeItem
	Score int `json:"score"`
}

// SystemPrompt is one persisted persona record. Only the most recently
// created record is live.
type SystemPrompt struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Role      string `json:"role" bson:"role"`
	Content   string `json:"content" bson:"content"`
	CreatedAt int64  `json:"created_at" bson:"created_at"`
}
