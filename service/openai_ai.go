package service

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
	"github.com/tieubaoca/answer-engine/types"
)

type OpenAIService struct {
	client      *openai.Client
	model       string
	filterModel string
}

// NewOpenAIService talks to any OpenAI-compatible endpoint. filterModel is
// the cheaper model used for Light requests (candidate filtering); pass ""
// to reuse the synthesis model.
func NewOpenAIService(baseURL, apiKey, model, filterModel string) *OpenAIService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if filterModel == "" {
		filterModel = model
	}
	return &OpenAIService{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		filterModel: filterModel,
	}
}

func (s *OpenAIService) Complete(ctx context.Context, req types.CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	model := s.model
	if req.Light {
		model = s.filterModel
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       model,
			Messages:    messages,
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}
	return resp.Choices[0].Message.Content, nil
}
