package derive

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Structured replies are requested in JSON mode, but the provider contract
// is soft; gjson tolerates field drift and missing keys without failing
// the whole request.

func parseSentiment(reply string) (*SentimentResult, error) {
	if !gjson.Valid(reply) {
		return nil, fmt.Errorf("sentiment analysis failed: provider reply is not valid JSON")
	}

	root := gjson.Parse(reply)
	return &SentimentResult{
		Sentiment:   root.Get("sentiment").String(),
		Confidence:  root.Get("confidence").Float(),
		Explanation: root.Get("explanation").String(),
	}, nil
}

func parseKeywords(reply string) (*KeywordsResult, error) {
	if !gjson.Valid(reply) {
		return nil, fmt.Errorf("keyword extraction failed: provider reply is not valid JSON")
	}

	keywords := []string{}
	for _, kw := range gjson.Get(reply, "keywords").Array() {
		keywords = append(keywords, kw.String())
	}

	return &KeywordsResult{
		Keywords: keywords,
		Count:    len(keywords),
	}, nil
}

func parseStructuredData(reply string) (*StructuredDataResult, error) {
	if !gjson.Valid(reply) {
		return nil, fmt.Errorf("data structuring failed: provider reply is not valid JSON")
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(reply), &data); err != nil {
		return nil, fmt.Errorf("data structuring failed: %w", err)
	}

	return &StructuredDataResult{StructuredData: data}, nil
}

func parseTopics(reply string) (*TopicsResult, error) {
	if !gjson.Valid(reply) {
		return nil, fmt.Errorf("topic detection failed: provider reply is not valid JSON")
	}

	topics := []Topic{}
	for _, t := range gjson.Get(reply, "topics").Array() {
		topics = append(topics, Topic{
			Name:        t.Get("name").String(),
			Description: t.Get("description").String(),
			Confidence:  t.Get("confidence").Float(),
		})
	}

	return &TopicsResult{
		Topics:     topics,
		TopicCount: len(topics),
	}, nil
}
