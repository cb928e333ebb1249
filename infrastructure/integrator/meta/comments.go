package meta

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/metaqueue"
	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

const (
	commentFields   = "id,message,from,created_time"
	commentPageSize = "100"
	adCommentFields = "id,comments.limit(" + commentPageSize + "){" + commentFields + "}"
)

// GetAdComments busca todos os anúncios da conta com seus comentários. Não usa cache:
// cada ciclo de polling precisa ver comentários novos.
func (s *MetaIntegrator) GetAdComments(ctx context.Context, accountID string) ([]domain.Comment, error) {
	endpoint, err := accountEndpoint(accountID, "ads")
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("fields", adCommentFields)

	rows, err := fetchAll[metadomain.AdWithComments](ctx, s, metaqueue.NewTask(endpoint, params))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("comments: failed to get ad comments from API")
		return nil, err
	}

	comments := make([]domain.Comment, 0)
	for _, ad := range rows {
		if ad.Comments == nil || ad.Comments.Data == nil {
			continue
		}

		raws := *ad.Comments.Data
		if ad.Comments.Paging.HasNext() {
			rest, err := s.remainingComments(ctx, ad.ID, ad.Comments.Paging.Cursors.After)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id": accountID,
					"ad_id":      ad.ID,
					"error":      err.Error(),
				}).Error("comments: failed to page ad comments")
				return nil, err
			}
			raws = append(raws, rest...)
		}

		for _, raw := range raws {
			comment, err := FactoryComment(endpoint, ad.ID, raw)
			if err != nil {
				return nil, err
			}
			comments = append(comments, *comment)
		}
	}

	return comments, nil
}

// remainingComments continua a lista aninhada de um anúncio em {adID}/comments a partir do cursor,
// uma tarefa da fila por página e sob o mesmo limite META_MAX_PAGES
func (s *MetaIntegrator) remainingComments(ctx context.Context, adID, after string) ([]metadomain.Comment, error) {
	params := url.Values{}
	params.Add("fields", commentFields)
	params.Add("limit", commentPageSize)
	params.Add("after", after)

	return fetchAll[metadomain.Comment](ctx, s, metaqueue.NewTask(fmt.Sprintf("%s/comments", adID), params))
}

// ReplyToComment publica uma resposta ao comentário
func (s *MetaIntegrator) ReplyToComment(ctx context.Context, commentID, message string) error {
	commentID = strings.TrimSpace(commentID)
	if commentID == "" {
		return domain.NewValidationError("comment id is required")
	}

	if strings.TrimSpace(message) == "" {
		return domain.NewValidationError("reply message is required")
	}

	endpoint := fmt.Sprintf("%s/comments", commentID)

	params := url.Values{}
	params.Add("message", message)

	resp, err := s.submitter.Submit(ctx, metaqueue.NewMutation(endpoint, params))
	if err != nil {
		return err
	}

	var result metadomain.MutationResult
	if err := json.Unmarshal(resp.Body, &result); err != nil || result.ID == "" {
		return domain.NewMalformedResponseError(endpoint, "reply response without id")
	}

	logrus.WithFields(logrus.Fields{
		"comment_id": commentID,
		"reply_id":   result.ID,
	}).Info("comments: reply published")

	return nil
}

// HideComment oculta o comentário no anúncio
func (s *MetaIntegrator) HideComment(ctx context.Context, commentID string) error {
	commentID = strings.TrimSpace(commentID)
	if commentID == "" {
		return domain.NewValidationError("comment id is required")
	}

	params := url.Values{}
	params.Add("is_hidden", "true")

	resp, err := s.submitter.Submit(ctx, metaqueue.NewMutation(commentID, params))
	if err != nil {
		return err
	}

	var result metadomain.MutationResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return domain.NewMalformedResponseError(commentID, "invalid hide response")
	}

	if !result.Success {
		return &domain.IntegrationError{Err: domain.ErrAPI, Endpoint: commentID, Details: "comment was not hidden"}
	}

	logrus.WithField("comment_id", commentID).Info("comments: comment hidden")

	return nil
}
