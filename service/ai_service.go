package service

import (
	"context"

	"github.com/tieubaoca/answer-engine/types"
)

// AIService is the completion collaborator. Both the arbiter and the
// recommendation scorer talk to it; implementations must be safe for
// concurrent use.
type AIService interface {
	Complete(ctx context.Context, req types.CompletionRequest) (string, error)
}
