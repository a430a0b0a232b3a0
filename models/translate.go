package models

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tsingjyujing/moodscope/config"
)

const DefaultSystemPrompt = "You are a translation engine. Translate the user's text into English. " +
	"Reply with the English translation only, without quotes, notes or explanations. " +
	"Keep emojis, punctuation and capitalisation."

const DefaultOllamaEndpoint = "http://localhost:11434"

type TranslationModel interface {
	// Translate translates text written in sourceLang (ISO 639-1) into English
	Translate(ctx context.Context, text string, sourceLang string) (string, error)
}

// NewTranslationModel builds the backend named by modelType.
// The "none" type returns a nil model, callers treat it as translation disabled.
func NewTranslationModel(modelType string, modelConfig map[string]interface{}) (TranslationModel, error) {
	switch modelType {
	case config.TranslatorOllama:
		info, err := decodeModelInfo[OllamaTranslationModelInfo](modelConfig)
		if err != nil {
			return nil, err
		}
		return NewOllamaTranslationModel(info)
	case config.TranslatorOpenAI:
		info, err := decodeModelInfo[OpenAITranslationModelInfo](modelConfig)
		if err != nil {
			return nil, err
		}
		return NewOpenAITranslationModel(info)
	case config.TranslatorNone, "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown translation model type: %s", modelType)
}

func decodeModelInfo[T any](modelConfig map[string]interface{}) (T, error) {
	var info T
	jsonData, err := json.Marshal(modelConfig)
	if err != nil {
		return info, err
	}
	err = json.Unmarshal(jsonData, &info)
	return info, err
}

func userMessage(text string, sourceLang string) string {
	return fmt.Sprintf("Source language (ISO 639-1): %s\n\n%s", sourceLang, text)
}

type OllamaTranslationModelInfo struct {
	Model        string `json:"model"`
	Endpoint     string `json:"endpoint"`
	SystemPrompt string `json:"system_prompt,omitempty"`
}

type OllamaTranslationModel struct {
	Info   OllamaTranslationModelInfo
	client *api.Client
}

func NewOllamaTranslationModel(info OllamaTranslationModelInfo) (*OllamaTranslationModel, error) {
	if info.Model == "" {
		return nil, fmt.Errorf("ollama translation model: model is required")
	}
	if info.Endpoint == "" {
		info.Endpoint = DefaultOllamaEndpoint
	}
	ollamaUrl, err := url.Parse(info.Endpoint)
	if err != nil {
		return nil, err
	}
	if ollamaUrl.Scheme == "" || ollamaUrl.Host == "" {
		return nil, fmt.Errorf("ollama translation model: invalid endpoint %q", info.Endpoint)
	}
	if info.SystemPrompt == "" {
		info.SystemPrompt = DefaultSystemPrompt
	}
	return &OllamaTranslationModel{
		Info:   info,
		client: api.NewClient(ollamaUrl, http.DefaultClient),
	}, nil
}

func (o OllamaTranslationModel) Translate(ctx context.Context, text string, sourceLang string) (string, error) {
	useStream := false
	req := api.ChatRequest{
		Model: o.Info.Model,
		Messages: []api.Message{
			{
				Role:    "system",
				Content: o.Info.SystemPrompt,
			},
			{
				Role:    "user",
				Content: userMessage(text, sourceLang),
			},
		},
		Stream: &useStream,
	}
	var respString *string = nil
	err := o.client.Chat(ctx, &req, func(resp api.ChatResponse) error {
		respString = &resp.Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}
	if respString == nil {
		return "", fmt.Errorf("no response from translation model")
	}
	return strings.TrimSpace(*respString), nil
}

type OpenAITranslationModelInfo struct {
	Model        string `json:"model"`
	Endpoint     string `json:"endpoint"`
	Token        string `json:"token"`
	SystemPrompt string `json:"system_prompt,omitempty"`
}

type OpenAITranslationModel struct {
	Info   OpenAITranslationModelInfo
	client openai.Client
}

func NewOpenAITranslationModel(info OpenAITranslationModelInfo) (*OpenAITranslationModel, error) {
	if info.Model == "" {
		return nil, fmt.Errorf("openai translation model: model is required")
	}
	options := make([]option.RequestOption, 0)
	if info.Token != "" {
		options = append(options, option.WithAPIKey(info.Token))
	}
	if info.Endpoint != "" {
		options = append(options, option.WithBaseURL(info.Endpoint))
	}
	if info.SystemPrompt == "" {
		info.SystemPrompt = DefaultSystemPrompt
	}
	return &OpenAITranslationModel{
		Info:   info,
		client: openai.NewClient(options...),
	}, nil
}

func (o OpenAITranslationModel) Translate(ctx context.Context, text string, sourceLang string) (string, error) {
	chatCompletion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(o.Info.SystemPrompt),
			openai.UserMessage(userMessage(text, sourceLang)),
		},
		Model: o.Info.Model,
	})
	if err != nil {
		return "", err
	}
	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("no choices from translation model")
	}
	return strings.TrimSpace(chatCompletion.Choices[0].Message.Content), nil
}
