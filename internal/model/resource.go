package model

// Resource categories shown on the resources screen.
const (
	CategoryGeneral   = "general"
	CategorySchedules = "schedules"
	CategorySafety    = "safety"
)

// Resource is an educational article, indexed in Elasticsearch.
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Source      string   `json:"source"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags,omitempty"`
}

// ResourceHit is a search result.
type ResourceHit struct {
	Resource
	Score float64 `json:"score"`
}

// TopicStat counts chat exchanges for one topic in one language.
type TopicStat struct {
	Language string `json:"language"`
	Topic    string `json:"topic"`
	Count    int64  `json:"count"`
}
