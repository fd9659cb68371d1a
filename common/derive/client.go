package derive

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/lyzr/docgateway/common/logger"
)

// Client sends normalized document text to the LLM provider and shapes the
// replies. Every task is a single provider call with no internal retry;
// provider and reply-parse failures come back as ordinary errors and never
// escape this layer as panics.
type Client struct {
	llm   llms.Model
	model string
	log   *logger.Logger
}

// NewClient creates a derivation client for the configured provider model.
func NewClient(apiKey, model string, log *logger.Logger) (*Client, error) {
	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize llm provider: %w", err)
	}

	log.Info("derivation client initialized", "model", model)
	return &Client{llm: llm, model: model, log: log}, nil
}

// SummaryResult carries a freeform summary plus character counts.
type SummaryResult struct {
	Summary        string
	OriginalLength int
	SummaryLength  int
}

// Fields returns the response fields for the task data object.
func (r *SummaryResult) Fields() map[string]any {
	return map[string]any{
		"summary":         r.Summary,
		"original_length": r.OriginalLength,
		"summary_length":  r.SummaryLength,
	}
}

// Summarize condenses the document into a single paragraph.
func (c *Client) Summarize(ctx context.Context, text string) (*SummaryResult, error) {
	reply, err := c.complete(ctx, summarizePrompt(text),
		llms.WithMaxTokens(500),
		llms.WithTemperature(0.3),
	)
	if err != nil {
		return nil, fmt.Errorf("summarization failed: %w", err)
	}
	if reply == "" {
		return nil, fmt.Errorf("summarization failed: empty reply from provider")
	}

	return &SummaryResult{
		Summary:        reply,
		OriginalLength: utf8.RuneCountInString(text),
		SummaryLength:  utf8.RuneCountInString(reply),
	}, nil
}

// SentimentResult carries the overall sentiment with a confidence score.
type SentimentResult struct {
	Sentiment   string
	Confidence  float64
	Explanation string
}

func (r *SentimentResult) Fields() map[string]any {
	return map[string]any{
		"sentiment":   r.Sentiment,
		"confidence":  r.Confidence,
		"explanation": r.Explanation,
	}
}

// AnalyzeSentiment classifies the document as positive, negative, or
// neutral with an explanation.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (*SentimentResult, error) {
	reply, err := c.complete(ctx, sentimentPrompt(text),
		llms.WithJSONMode(),
		llms.WithMaxTokens(300),
		llms.WithTemperature(0.1),
	)
	if err != nil {
		return nil, fmt.Errorf("sentiment analysis failed: %w", err)
	}
	return parseSentiment(reply)
}

// KeywordsResult carries the extracted keywords. The cap of 15 entries is
// communicated to the provider in the instruction, not enforced here.
type KeywordsResult struct {
	Keywords []string
	Count    int
}

func (r *KeywordsResult) Fields() map[string]any {
	return map[string]any{
		"keywords":      r.Keywords,
		"keyword_count": r.Count,
	}
}

// ExtractKeywords pulls the most important keywords and key phrases.
func (c *Client) ExtractKeywords(ctx context.Context, text string) (*KeywordsResult, error) {
	reply, err := c.complete(ctx, keywordsPrompt(text),
		llms.WithJSONMode(),
		llms.WithMaxTokens(400),
		llms.WithTemperature(0.2),
	)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction failed: %w", err)
	}
	return parseKeywords(reply)
}

// TranslationResult carries the translated text plus character counts.
// The source language is never asked of the provider; it is reported as
// the literal "auto-detected".
type TranslationResult struct {
	TranslatedText   string
	SourceLanguage   string
	TargetLanguage   string
	OriginalLength   int
	TranslatedLength int
}

func (r *TranslationResult) Fields() map[string]any {
	return map[string]any{
		"translated_text":   r.TranslatedText,
		"source_language":   r.SourceLanguage,
		"target_language":   r.TargetLanguage,
		"original_length":   r.OriginalLength,
		"translated_length": r.TranslatedLength,
	}
}

// Translate renders the document in the target language.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (*TranslationResult, error) {
	reply, err := c.complete(ctx, translatePrompt(text, targetLanguage),
		llms.WithMaxTokens(2000),
		llms.WithTemperature(0.1),
	)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}
	if reply == "" {
		return nil, fmt.Errorf("translation failed: empty reply from provider")
	}

	return &TranslationResult{
		TranslatedText:   reply,
		SourceLanguage:   "auto-detected",
		TargetLanguage:   targetLanguage,
		OriginalLength:   utf8.RuneCountInString(text),
		TranslatedLength: utf8.RuneCountInString(reply),
	}, nil
}

// StructuredDataResult carries the entity structure parsed from the
// provider's JSON reply, passed through as-is.
type StructuredDataResult struct {
	StructuredData map[string]any
}

func (r *StructuredDataResult) Fields() map[string]any {
	return map[string]any{
		"structured_data": r.StructuredData,
	}
}

// StructureData extracts names, dates, amounts, contact info, and key
// entities from the document.
func (c *Client) StructureData(ctx context.Context, text string) (*StructuredDataResult, error) {
	reply, err := c.complete(ctx, structurePrompt(text),
		llms.WithJSONMode(),
		llms.WithMaxTokens(800),
		llms.WithTemperature(0.1),
	)
	if err != nil {
		return nil, fmt.Errorf("data structuring failed: %w", err)
	}
	return parseStructuredData(reply)
}

// Topic is a single detected theme with a confidence score in [0, 1].
type Topic struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

// TopicsResult carries the detected topics. The cap of 8 entries is
// communicated to the provider in the instruction, not enforced here.
type TopicsResult struct {
	Topics     []Topic
	TopicCount int
}

func (r *TopicsResult) Fields() map[string]any {
	return map[string]any{
		"topics":      r.Topics,
		"topic_count": r.TopicCount,
	}
}

// DetectTopics identifies the primary topics and themes of the document.
func (c *Client) DetectTopics(ctx context.Context, text string) (*TopicsResult, error) {
	reply, err := c.complete(ctx, topicsPrompt(text),
		llms.WithJSONMode(),
		llms.WithMaxTokens(600),
		llms.WithTemperature(0.2),
	)
	if err != nil {
		return nil, fmt.Errorf("topic detection failed: %w", err)
	}
	return parseTopics(reply)
}

func (c *Client) complete(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, opts...)
	if err != nil {
		return "", fmt.Errorf("provider call failed: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
