package derive

import "fmt"

func summarizePrompt(text string) string {
	return fmt.Sprintf(`Please summarize the following document into a concise paragraph that captures the main points and key information:

%s

Provide a clear, informative summary that maintains the essential details while being significantly shorter than the original.`, text)
}

func sentimentPrompt(text string) string {
	return fmt.Sprintf(`Analyze the sentiment of the following text and provide:
1. Overall sentiment (positive, negative, or neutral)
2. Confidence score (0.0 to 1.0)
3. Brief explanation of the sentiment analysis

Text to analyze:
%s

Respond in JSON format with the following structure:
{
    "sentiment": "positive/negative/neutral",
    "confidence": 0.85,
    "explanation": "Brief explanation of the sentiment analysis"
}`, text)
}

func keywordsPrompt(text string) string {
	return fmt.Sprintf(`Extract the most important keywords and key phrases from the following text.
Focus on:
- Important nouns and proper nouns
- Key concepts and themes
- Technical terms
- Names of people, places, organizations

Text to analyze:
%s

Respond in JSON format with a list of keywords:
{
    "keywords": ["keyword1", "keyword2", "keyword3", ...]
}

Limit to the top 15 most important keywords.`, text)
}

func translatePrompt(text, targetLanguage string) string {
	return fmt.Sprintf(`Translate the following text to %s.
Maintain the original meaning, tone, and structure as much as possible.

Text to translate:
%s

Provide only the translated text without any additional commentary.`, targetLanguage, text)
}

func structurePrompt(text string) string {
	return fmt.Sprintf(`Extract structured data from the following text. Look for and extract:
- Names (people, organizations, locations)
- Dates and times
- Numbers and amounts (monetary, quantities, percentages)
- Contact information (emails, phone numbers, addresses)
- Key entities and their relationships

Text to analyze:
%s

Respond in JSON format with the following structure:
{
    "names": {
        "people": ["person1", "person2"],
        "organizations": ["org1", "org2"],
        "locations": ["location1", "location2"]
    },
    "dates": ["date1", "date2"],
    "amounts": {
        "monetary": ["$100", "$200"],
        "quantities": ["50 units", "25%%"],
        "numbers": ["100", "200"]
    },
    "contact_info": {
        "emails": ["email1", "email2"],
        "phones": ["phone1", "phone2"],
        "addresses": ["address1", "address2"]
    },
    "key_entities": ["entity1", "entity2"]
}`, text)
}

func topicsPrompt(text string) string {
	return fmt.Sprintf(`Identify the primary topics and themes discussed in the following text.
Categorize the content and provide:
- Main topics (up to 8 topics)
- Brief description for each topic
- Confidence score for each topic (0.0 to 1.0)

Text to analyze:
%s

Respond in JSON format:
{
    "topics": [
        {
            "name": "Topic Name",
            "description": "Brief description of the topic",
            "confidence": 0.85
        }
    ]
}`, text)
}
