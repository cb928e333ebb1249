package commenting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/commenting"
)

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		message string
		want    domain.Sentiment
	}{
		{message: "Amei! Recomendo demais", want: domain.SentimentPositive},
		{message: "Produto PÉSSIMO, quero reembolso", want: domain.SentimentNegative},
		{message: "Adorei mas veio com defeito", want: domain.SentimentNegative},
		{message: "Ganhe dinheiro rápido, clique aqui", want: domain.SentimentSpam},
		{message: "confira https://promo.example.com", want: domain.SentimentSpam},
		{message: "Qual o horário de funcionamento?", want: domain.SentimentNeutral},
		{message: "   ", want: domain.SentimentNeutral},
	}

	classifier := commenting.NewKeywordClassifier()
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, err := classifier.Classify(context.Background(), tt.message)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSentiment(t *testing.T) {
	assert.Equal(t, domain.SentimentPositive, commenting.ParseSentiment("positive"))
	assert.Equal(t, domain.SentimentNegative, commenting.ParseSentiment("The comment is NEGATIVE."))
	assert.Equal(t, domain.SentimentNeutral, commenting.ParseSentiment("não sei"))
	assert.Equal(t, domain.SentimentNeutral, commenting.ParseSentiment(""))
}

func TestParseSentiment_PalavraInteiraENegacao(t *testing.T) {
	tests := []struct {
		text string
		want domain.Sentiment
	}{
		{text: "  Spam. ", want: domain.SentimentSpam},
		{text: `"negative"`, want: domain.SentimentNegative},
		{text: "not positive", want: domain.SentimentNeutral},
		{text: "non-negative", want: domain.SentimentNeutral},
		{text: "It isn't negative, I'd say neutral", want: domain.SentimentNeutral},
		{text: "This is not spam; it is positive", want: domain.SentimentPositive},
		{text: "spammer", want: domain.SentimentNeutral},
		{text: "Label: NEGATIVE", want: domain.SentimentNegative},
		{text: "cannot decide, positive overall", want: domain.SentimentPositive},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, commenting.ParseSentiment(tt.text))
		})
	}
}
