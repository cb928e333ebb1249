package metadomain

type CommentAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Comment struct {
	ID          string         `json:"id"`
	Message     string         `json:"message"`
	From        *CommentAuthor `json:"from"`
	CreatedTime string         `json:"created_time"`
}

// AdWithComments é a linha de act_{id}/ads com o campo comments expandido
type AdWithComments struct {
	ID       string             `json:"id"`
	Comments *Envelope[Comment] `json:"comments"`
}

// MutationResult é a resposta de POSTs como responder e ocultar comentário
type MutationResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

// CreatedTimeLayout é o formato de created_time da Graph API (ex.: 2025-03-10T12:00:00+0000)
const CreatedTimeLayout = "2006-01-02T15:04:05-0700"
