package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// HasNext informa se existe uma próxima página a ser buscada
func (p Paging) HasNext() bool {
	return p.Next != "" && p.Cursors.After != ""
}

// Envelope é o formato { data: [...], paging } das listagens da Graph API.
// Data é ponteiro para distinguir ausência de lista vazia.
type Envelope[T any] struct {
	Data   *[]T   `json:"data"`
	Paging Paging `json:"paging"`
}

type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Objective      string `json:"objective"`
	DailyBudget    string `json:"daily_budget"`
	LifetimeBudget string `json:"lifetime_budget"`
	StartTime      string `json:"start_time"`
	StopTime       string `json:"stop_time"`
}

type AdSet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CampaignID  string `json:"campaign_id"`
	Status      string `json:"status"`
	DailyBudget string `json:"daily_budget"`
}

type Ad struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AdSetID    string `json:"adset_id"`
	CampaignID string `json:"campaign_id"`
	Status     string `json:"status"`
}

type Creative struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ObjectType   string `json:"object_type"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	ThumbnailURL string `json:"thumbnail_url"`
	ImageURL     string `json:"image_url"`
}

// AdWithCreative é a linha retornada ao buscar o criativo de cada anúncio
type AdWithCreative struct {
	ID       string    `json:"id"`
	Creative *Creative `json:"creative"`
}
