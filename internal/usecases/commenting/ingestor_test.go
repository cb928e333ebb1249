package commenting_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-ingestion-api/internal/config"
	"github.com/vfg2006/ads-ingestion-api/internal/domain"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/commenting"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/commenting/mocks"
	"github.com/vfg2006/ads-ingestion-api/pkg/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		Meta:     config.Meta{AdAccountID: "act_1"},
		Comments: config.Comments{PollInterval: 50 * time.Millisecond, PollTimeout: time.Second},
	}
}

func comment(id, adID, message string, minute int) domain.Comment {
	return domain.Comment{
		ID:        id,
		AdID:      adID,
		Message:   message,
		Author:    domain.CommentAuthor{ID: "u-" + id, Name: "Cliente " + id},
		CreatedAt: time.Date(2025, 3, 10, 12, minute, 0, 0, time.UTC),
		Status:    domain.CommentPending,
	}
}

func TestIngestor_Poll(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(source *mocks.MockCommentSource, classifier *mocks.MockClassifier)
		polls    int
		validate func(t *testing.T, ingestor *commenting.Ingestor, added []int, err error)
	}{
		{
			name:  "Comentário repetido entre dois ciclos é armazenado uma vez",
			polls: 2,
			setup: func(source *mocks.MockCommentSource, classifier *mocks.MockClassifier) {
				gomock.InOrder(
					source.EXPECT().GetAdComments(gomock.Any(), "act_1").
						Return([]domain.Comment{comment("c1", "ad1", "amei", 1), comment("c2", "ad1", "quanto custa?", 2)}, nil),
					source.EXPECT().GetAdComments(gomock.Any(), "act_1").
						Return([]domain.Comment{comment("c2", "ad1", "quanto custa?", 2), comment("c3", "ad2", "péssimo", 3)}, nil),
				)
				classifier.EXPECT().Classify(gomock.Any(), "amei").Return(domain.SentimentPositive, nil)
				classifier.EXPECT().Classify(gomock.Any(), "quanto custa?").Return(domain.SentimentNeutral, nil).Times(1)
				classifier.EXPECT().Classify(gomock.Any(), "péssimo").Return(domain.SentimentNegative, nil)
			},
			validate: func(t *testing.T, ingestor *commenting.Ingestor, added []int, err error) {
				require.NoError(t, err)
				assert.Equal(t, []int{2, 1}, added)

				comments := ingestor.GetComments(domain.CommentFilter{})
				require.Len(t, comments, 3)
				assert.Equal(t, []string{"c3", "c2", "c1"}, []string{comments[0].ID, comments[1].ID, comments[2].ID})

				count := 0
				for _, c := range comments {
					if c.ID == "c2" {
						count++
					}
				}
				assert.Equal(t, 1, count)
			},
		},
		{
			name:  "Falha do classificador vira neutral",
			polls: 1,
			setup: func(source *mocks.MockCommentSource, classifier *mocks.MockClassifier) {
				source.EXPECT().GetAdComments(gomock.Any(), "act_1").
					Return([]domain.Comment{comment("c1", "ad1", "oi", 1)}, nil)
				classifier.EXPECT().Classify(gomock.Any(), "oi").Return(domain.Sentiment(""), errors.New("timeout"))
			},
			validate: func(t *testing.T, ingestor *commenting.Ingestor, added []int, err error) {
				require.NoError(t, err)
				comments := ingestor.GetComments(domain.CommentFilter{})
				require.Len(t, comments, 1)
				assert.Equal(t, domain.SentimentNeutral, comments[0].Sentiment)
				assert.Equal(t, domain.CommentPending, comments[0].Status)
			},
		},
		{
			name:  "Rótulo fora do enum vira neutral e texto livre é normalizado",
			polls: 1,
			setup: func(source *mocks.MockCommentSource, classifier *mocks.MockClassifier) {
				source.EXPECT().GetAdComments(gomock.Any(), "act_1").
					Return([]domain.Comment{comment("c1", "ad1", "a", 1), comment("c2", "ad1", "b", 2)}, nil)
				classifier.EXPECT().Classify(gomock.Any(), "a").Return(domain.Sentiment("furious"), nil)
				classifier.EXPECT().Classify(gomock.Any(), "b").Return(domain.Sentiment("Sentiment: SPAM."), nil)
			},
			validate: func(t *testing.T, ingestor *commenting.Ingestor, added []int, err error) {
				require.NoError(t, err)
				neutral := ingestor.GetComments(domain.CommentFilter{Sentiment: domain.SentimentNeutral})
				require.Len(t, neutral, 1)
				assert.Equal(t, "c1", neutral[0].ID)

				spam := ingestor.GetComments(domain.CommentFilter{Sentiment: domain.SentimentSpam})
				require.Len(t, spam, 1)
				assert.Equal(t, "c2", spam[0].ID)
			},
		},
		{
			name:  "Erro da API é propagado e nada é ingerido",
			polls: 1,
			setup: func(source *mocks.MockCommentSource, classifier *mocks.MockClassifier) {
				source.EXPECT().GetAdComments(gomock.Any(), "act_1").
					Return(nil, &domain.IntegrationError{Err: domain.ErrRateLimitExceeded, Code: 17})
			},
			validate: func(t *testing.T, ingestor *commenting.Ingestor, added []int, err error) {
				assert.ErrorIs(t, err, domain.ErrRateLimitExceeded)
				assert.Empty(t, ingestor.GetComments(domain.CommentFilter{}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mocks.NewMockCommentSource(ctrl)
			classifier := mocks.NewMockClassifier(ctrl)
			tt.setup(source, classifier)

			ingestor := commenting.NewIngestor(testConfig(), source, commenting.WithClassifier(classifier))

			var (
				added []int
				err   error
			)
			for range tt.polls {
				var n int
				n, err = ingestor.Poll(context.Background())
				if err != nil {
					break
				}
				added = append(added, n)
			}

			tt.validate(t, ingestor, added, err)
		})
	}
}

func TestIngestor_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockCommentSource(ctrl)
	gomock.InOrder(
		source.EXPECT().GetAdComments(gomock.Any(), "act_1").
			Return([]domain.Comment{comment("c1", "ad1", "amei o produto", 1)}, nil),
		source.EXPECT().GetAdComments(gomock.Any(), "act_1").
			Return([]domain.Comment{comment("c1", "ad1", "amei o produto", 1), comment("c2", "ad1", "chegou rápido", 2)}, nil),
	)

	ingestor := commenting.NewIngestor(testConfig(), source, commenting.WithClassifier(commenting.NewKeywordClassifier()))

	var first, second []domain.Comment
	unsubscribeFirst := ingestor.Subscribe(func(c domain.Comment) {
		c.Message = "alterado pelo assinante"
		first = append(first, c)
	})
	ingestor.Subscribe(func(c domain.Comment) {
		second = append(second, c)
	})

	_, err := ingestor.Poll(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, domain.SentimentPositive, second[0].Sentiment)
	assert.Equal(t, "amei o produto", ingestor.GetComments(domain.CommentFilter{})[0].Message, "assinante recebe cópia")

	unsubscribeFirst()
	unsubscribeFirst()

	_, err = ingestor.Poll(context.Background())
	require.NoError(t, err)

	assert.Len(t, first, 1)
	require.Len(t, second, 2)
	assert.Equal(t, "c2", second[1].ID)
}

func TestIngestor_ReplyAndHide(t *testing.T) {
	seed := []domain.Comment{comment("c1", "ad1", "qual o prazo?", 1), comment("c2", "ad1", "clique aqui", 2)}

	tests := []struct {
		name     string
		setup    func(source *mocks.MockCommentSource)
		action   func(ingestor *commenting.Ingestor) error
		validate func(t *testing.T, ingestor *commenting.Ingestor, err error)
	}{
		{
			name: "Resposta com sucesso marca como handled",
			setup: func(source *mocks.MockCommentSource) {
				source.EXPECT().ReplyToComment(gomock.Any(), "c1", "Chega em 3 dias").Return(nil)
			},
			action: func(ingestor *commenting.Ingestor) error {
				return ingestor.ReplyToComment(context.Background(), "c1", "Chega em 3 dias")
			},
			validate: func(t *testing.T, ingestor *commenting.Ingestor, err error) {
				require.NoError(t, err)
				handled := ingestor.GetComments(domain.CommentFilter{Status: domain.CommentHandled})
				require.Len(t, handled, 1)
				assert.Equal(t, "c1", handled[0].ID)
			},
		},
		{
			name: "Falha na resposta mantém o estado",
			setup: func(source *mocks.MockCommentSource) {
				source.EXPECT().ReplyToComment(gomock.Any(), "c1", "ok").
					Return(&domain.IntegrationError{Err: domain.ErrAPI, Code: 100})
			},
			action: func(ingestor *commenting.Ingestor) error {
				return ingestor.ReplyToComment(context.Background(), "c1", "ok")
			},
			validate: func(t *testing.T, ingestor *commenting.Ingestor, err error) {
				assert.ErrorIs(t, err, domain.ErrAPI)
				assert.Len(t, ingestor.GetComments(domain.CommentFilter{Status: domain.CommentPending}), 2)
			},
		},
		{
			name:  "Resposta vazia é erro de validação",
			setup: func(source *mocks.MockCommentSource) {},
			action: func(ingestor *commenting.Ingestor) error {
				return ingestor.ReplyToComment(context.Background(), "c1", " ")
			},
			validate: func(t *testing.T, ingestor *commenting.Ingestor, err error) {
				assert.ErrorIs(t, err, domain.ErrValidation)
			},
		},
		{
			name:  "Comentário desconhecido",
			setup: func(source *mocks.MockCommentSource) {},
			action: func(ingestor *commenting.Ingestor) error {
				return ingestor.HideComment(context.Background(), "c99")
			},
			validate: func(t *testing.T, ingestor *commenting.Ingestor, err error) {
				assert.ErrorIs(t, err, commenting.ErrCommentNotFound)
			},
		},
		{
			name: "Ocultar remove do conjunto ativo e o próximo ciclo não o traz de volta",
			setup: func(source *mocks.MockCommentSource) {
				source.EXPECT().HideComment(gomock.Any(), "c2").Return(nil)
				source.EXPECT().GetAdComments(gomock.Any(), "act_1").Return(seed, nil)
			},
			action: func(ingestor *commenting.Ingestor) error {
				if err := ingestor.HideComment(context.Background(), "c2"); err != nil {
					return err
				}
				_, err := ingestor.Poll(context.Background())
				return err
			},
			validate: func(t *testing.T, ingestor *commenting.Ingestor, err error) {
				require.NoError(t, err)
				comments := ingestor.GetComments(domain.CommentFilter{})
				require.Len(t, comments, 1)
				assert.Equal(t, "c1", comments[0].ID)
			},
		},
		{
			name: "Falha ao ocultar mantém o comentário",
			setup: func(source *mocks.MockCommentSource) {
				source.EXPECT().HideComment(gomock.Any(), "c2").
					Return(&domain.IntegrationError{Err: domain.ErrNetwork})
			},
			action: func(ingestor *commenting.Ingestor) error {
				return ingestor.HideComment(context.Background(), "c2")
			},
			validate: func(t *testing.T, ingestor *commenting.Ingestor, err error) {
				assert.ErrorIs(t, err, domain.ErrNetwork)
				assert.Len(t, ingestor.GetComments(domain.CommentFilter{}), 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mocks.NewMockCommentSource(ctrl)
			source.EXPECT().GetAdComments(gomock.Any(), "act_1").Return(seed, nil)
			tt.setup(source)

			ingestor := commenting.NewIngestor(testConfig(), source, commenting.WithClassifier(commenting.NewKeywordClassifier()))
			_, err := ingestor.Poll(context.Background())
			require.NoError(t, err)

			tt.validate(t, ingestor, tt.action(ingestor))
		})
	}
}

func TestIngestor_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockCommentSource(ctrl)

	var mu sync.Mutex
	calls := 0
	source.EXPECT().GetAdComments(gomock.Any(), "act_1").
		DoAndReturn(func(ctx context.Context, accountID string) ([]domain.Comment, error) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			return []domain.Comment{comment("c1", "ad1", "ótimo atendimento", 1)}, nil
		}).
		MinTimes(2)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	ingestor := commenting.NewIngestor(testConfig(), source,
		commenting.WithClassifier(commenting.NewKeywordClassifier()),
		commenting.WithMetrics(m),
	)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, ingestor.Start(ctx))
	assert.ErrorIs(t, ingestor.Start(ctx), commenting.ErrAlreadyStarted)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	ingestor.Stop()

	comments := ingestor.GetComments(domain.CommentFilter{})
	require.Len(t, comments, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommentsIngested.WithLabelValues("positive")))
}

func TestIngestor_StartDuplicadoNaoDuplicaOJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockCommentSource(ctrl)

	var polls int32
	source.EXPECT().GetAdComments(gomock.Any(), "act_1").
		DoAndReturn(func(ctx context.Context, accountID string) ([]domain.Comment, error) {
			atomic.AddInt32(&polls, 1)
			return nil, nil
		}).
		AnyTimes()

	cfg := testConfig()
	cfg.Comments.PollInterval = time.Hour
	ingestor := commenting.NewIngestor(cfg, source)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, ingestor.Start(ctx))
	assert.ErrorIs(t, ingestor.Start(ctx), commenting.ErrAlreadyStarted)
	assert.ErrorIs(t, ingestor.Start(ctx), commenting.ErrAlreadyStarted)

	// só a execução imediata do único job registrado
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&polls) >= 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&polls))

	ingestor.Stop()
}
