package commenting

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

// CommentSource define as chamadas à Graph API usadas pelo ingestor.
// Todas passam pela fila de requisições.
type CommentSource interface {
	GetAdComments(ctx context.Context, accountID string) ([]domain.Comment, error)
	ReplyToComment(ctx context.Context, commentID, message string) error
	HideComment(ctx context.Context, commentID string) error
}

// Classifier classifica o sentimento de um comentário
type Classifier interface {
	Classify(ctx context.Context, message string) (domain.Sentiment, error)
}

// CommentManager é a interface exposta para os handlers HTTP
type CommentManager interface {
	Poll(ctx context.Context) (int, error)
	Subscribe(handler Handler) (unsubscribe func())
	GetComments(filter domain.CommentFilter) []domain.Comment
	ReplyToComment(ctx context.Context, commentID, message string) error
	HideComment(ctx context.Context, commentID string) error
}
