package domain

import "time"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentSpam     Sentiment = "spam"
)

// ParseSentiment aceita apenas os valores conhecidos
func ParseSentiment(s string) (Sentiment, bool) {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentSpam:
		return Sentiment(s), true
	}
	return "", false
}

type CommentStatus string

const (
	CommentPending CommentStatus = "pending"
	CommentHandled CommentStatus = "handled"
)

type CommentAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Comment struct {
	ID        string        `json:"id"`
	AdID      string        `json:"adId"`
	Message   string        `json:"message"`
	Author    CommentAuthor `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
	Sentiment Sentiment     `json:"sentiment,omitempty"`
	Status    CommentStatus `json:"status"`
}

// CommentFilter filtra o snapshot de comentários; campos vazios não filtram
type CommentFilter struct {
	Status    CommentStatus
	Sentiment Sentiment
}

func (f CommentFilter) Match(c Comment) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Sentiment != "" && c.Sentiment != f.Sentiment {
		return false
	}
	return true
}
