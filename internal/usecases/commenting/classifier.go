package commenting

import (
	"context"
	"regexp"
	"strings"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

var (
	spamKeywords = []string{
		"ganhe dinheiro", "clique aqui", "link na bio", "chama no direct", "chama no pv",
		"promoção imperdível", "renda extra", "free money", "click here", "check my profile",
	}

	negativeKeywords = []string{
		"péssimo", "pessimo", "horrível", "horrivel", "golpe", "não recebi", "nao recebi",
		"reclamação", "reclamacao", "atraso", "atrasado", "defeito", "cancelar", "reembolso",
		"não funciona", "nao funciona", "terrible", "scam", "refund", "broken", "worst",
	}

	positiveKeywords = []string{
		"ótimo", "otimo", "excelente", "amei", "adorei", "maravilhoso", "recomendo", "perfeito",
		"obrigado", "obrigada", "parabéns", "parabens", "love", "great", "amazing", "awesome",
	}

	urlPattern = regexp.MustCompile(`https?://|www\.`)
)

// KeywordClassifier classifica localmente por listas de palavras-chave.
// Spam tem prioridade sobre negativo, que tem prioridade sobre positivo.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func (KeywordClassifier) Classify(_ context.Context, message string) (domain.Sentiment, error) {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return domain.SentimentNeutral, nil
	}

	switch {
	case urlPattern.MatchString(text) || containsAny(text, spamKeywords):
		return domain.SentimentSpam, nil
	case containsAny(text, negativeKeywords):
		return domain.SentimentNegative, nil
	case containsAny(text, positiveKeywords):
		return domain.SentimentPositive, nil
	default:
		return domain.SentimentNeutral, nil
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

var sentimentWord = regexp.MustCompile(`\b(positive|negative|neutral|spam)\b`)

// rótulo precedido por negação ("not positive", "non-negative") não conta
var negationSuffixes = []string{"not", "no", "n't", "non", "non-"}

// ParseSentiment extrai o rótulo de uma resposta em texto livre (ex.: saída de um
// modelo de linguagem). Resposta exata vale primeiro; depois o primeiro rótulo
// como palavra inteira e não negado. Sem rótulo retorna neutral.
func ParseSentiment(text string) domain.Sentiment {
	text = strings.ToLower(strings.TrimSpace(text))

	exact := strings.Trim(text, " \t\n\"'`.!:;")
	if s, ok := domain.ParseSentiment(exact); ok {
		return s
	}

	for _, loc := range sentimentWord.FindAllStringSubmatchIndex(text, -1) {
		if negated(text[:loc[0]]) {
			continue
		}
		if s, ok := domain.ParseSentiment(text[loc[2]:loc[3]]); ok {
			return s
		}
	}
	return domain.SentimentNeutral
}

func negated(before string) bool {
	before = strings.TrimRight(before, " \t")
	for _, suffix := range negationSuffixes {
		if !strings.HasSuffix(before, suffix) {
			continue
		}
		rest := before[:len(before)-len(suffix)]
		if rest == "" || !isWordChar(rest[len(rest)-1]) || suffix == "n't" {
			return true
		}
	}
	return false
}

func isWordChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
