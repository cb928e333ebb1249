package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/commenting"
	"github.com/vfg2006/ads-ingestion-api/pkg/log"
)

const (
	streamBuffer    = 32
	streamWriteWait = 10 * time.Second
)

type replyRequest struct {
	Message string `json:"message"`
}

type pollResponse struct {
	New int `json:"new"`
}

func ListComments(service commenting.CommentManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		filter := domain.CommentFilter{}

		if status := query.Get("status"); status != "" {
			switch domain.CommentStatus(status) {
			case domain.CommentPending, domain.CommentHandled:
				filter.Status = domain.CommentStatus(status)
			default:
				respondError(w, domain.NewValidationError("invalid status: "+status))
				return
			}
		}

		if sentiment := query.Get("sentiment"); sentiment != "" {
			parsed, ok := domain.ParseSentiment(sentiment)
			if !ok {
				respondError(w, domain.NewValidationError("invalid sentiment: "+sentiment))
				return
			}
			filter.Sentiment = parsed
		}

		writeJSON(w, logger, http.StatusOK, service.GetComments(filter))
	})
}

func ReplyComment(service commenting.CommentManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body replyRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondError(w, domain.NewValidationError("invalid request body"))
			return
		}

		if err := service.ReplyToComment(r.Context(), id, body.Message); err != nil {
			logger.WithFields(log.Fields{
				"comment_id": id,
				"error":      err.Error(),
			}).Warn("comments: failed to reply comment")

			respondError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func HideComment(service commenting.CommentManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.HideComment(r.Context(), id); err != nil {
			logger.WithFields(log.Fields{
				"comment_id": id,
				"error":      err.Error(),
			}).Warn("comments: failed to hide comment")

			respondError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// PollComments dispara um ciclo de polling fora do agendamento
func PollComments(service commenting.CommentManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		added, err := service.Poll(r.Context())
		if err != nil {
			logger.WithError(err).Error("comments: manual poll failed")
			respondError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, pollResponse{New: added})
	})
}

// StreamComments envia cada comentário novo pelo websocket enquanto o cliente estiver conectado.
// Um cliente lento perde eventos em vez de bloquear o polling.
func StreamComments(service commenting.CommentManager, allowedOrigins []string) http.Handler {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
		},
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Warn("comments: websocket upgrade failed")
			return
		}
		defer conn.Close()

		events := make(chan domain.Comment, streamBuffer)
		unsubscribe := service.Subscribe(func(c domain.Comment) {
			select {
			case events <- c:
			default:
				logger.WithField("comment_id", c.ID).Warn("comments: slow stream client, event dropped")
			}
		})
		defer unsubscribe()

		// o cliente não envia mensagens; a leitura só detecta o fechamento
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		logger.WithField("remote_addr", r.RemoteAddr).Info("comments: stream client connected")

		for {
			select {
			case <-closed:
				logger.Info("comments: stream client disconnected")
				return
			case c := <-events:
				conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
				if err := conn.WriteJSON(c); err != nil {
					logger.WithError(err).Warn("comments: failed to write stream event")
					return
				}
			}
		}
	})
}
