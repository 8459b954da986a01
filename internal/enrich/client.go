package enrich

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/wordlens/wordlens-backend/internal/config"
)

const (
	maxCompletionTokens = 400
	jpegQuality         = 80
)

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	api           oai.Client
	visionModel   string
	textModel     string
	visionTimeout time.Duration
	textTimeout   time.Duration
}

// NewClient builds a client from configuration. The base URL is
// configurable so Groq-style providers work unchanged.
func NewClient(cfg config.EnrichmentConfig) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		api:           oai.NewClient(opts...),
		visionModel:   cfg.VisionModel,
		textModel:     cfg.TextModel,
		visionTimeout: cfg.VisionTimeout,
		textTimeout:   cfg.TextTimeout,
	}
}

// AnalyzeVision runs the image-grounded attempt: the crop is sent as a
// base64 JPEG data URL together with the tapped word.
func (c *Client) AnalyzeVision(ctx context.Context, word string, crop image.Image, sourceLang, targetLang string) (*Result, error) {
	dataURL, err := jpegDataURL(crop)
	if err != nil {
		return nil, fmt.Errorf("encode crop: %w", err)
	}

	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.visionModel),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(systemPrompt(languageName(sourceLang), languageName(targetLang), word)),
			oai.UserMessage([]oai.ChatCompletionContentPartUnionParam{
				oai.TextContentPart(fmt.Sprintf("User tapped the word: %q", word)),
				oai.ImageContentPart(oai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
			}),
		},
		Temperature:         param.NewOpt(0.0),
		MaxCompletionTokens: param.NewOpt(int64(maxCompletionTokens)),
	}

	return c.complete(ctx, params, c.visionTimeout)
}

// AnalyzeText runs the text fallback with the token's context window.
func (c *Client) AnalyzeText(ctx context.Context, word, contextWindow, sourceLang, targetLang string) (*Result, error) {
	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.textModel),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.SystemMessage(systemPrompt(languageName(sourceLang), languageName(targetLang), word)),
			oai.UserMessage(fmt.Sprintf("User tapped the word: %q\nContext:\n%s", word, contextWindow)),
		},
		ResponseFormat: oai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Temperature:         param.NewOpt(0.0),
		MaxCompletionTokens: param.NewOpt(int64(maxCompletionTokens)),
	}

	return c.complete(ctx, params, c.textTimeout)
}

func (c *Client) complete(ctx context.Context, params oai.ChatCompletionNewParams, timeout time.Duration) (*Result, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion: no choices")
	}
	return parseResult(resp.Choices[0].Message.Content)
}

func jpegDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
