package analytics

// DayPoint 浏览量曲线上的一天
type DayPoint struct {
	Date  string `json:"date"` // 2006-01-02
	Label string `json:"label"`
	Views int64  `json:"views"`
}

type TopArticle struct {
	ID     uint   `json:"id"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Views  int64  `json:"views"`
}

type TopCategory struct {
	ID       uint   `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Views    int64  `json:"views"`
	Articles int64  `json:"articles"`
}

type TopReporter struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Published int64  `json:"published"`
	Views     int64  `json:"views"`
}

// ReporterResponse 记者个人统计
type ReporterResponse struct {
	Days             int              `json:"days"`
	ArticlesByStatus map[string]int64 `json:"articles_by_status"`
	TotalArticles    int64            `json:"total_articles"`
	TotalViews       int64            `json:"total_views"`
	ApprovedComments int64            `json:"approved_comments"`
	TopArticles      []TopArticle     `json:"top_articles"`
	Series           []DayPoint       `json:"series"`
}

// AdminResponse 全站统计
type AdminResponse struct {
	Days             int              `json:"days"`
	ArticlesByStatus map[string]int64 `json:"articles_by_status"`
	TotalArticles    int64            `json:"total_articles"`
	UsersByRole      map[string]int64 `json:"users_by_role"`
	PendingComments  int64            `json:"pending_comments"`
	MediaCount       int64            `json:"media_count"`
	TotalViews       int64            `json:"total_views"`
	Series           []DayPoint       `json:"series"`
	TopCategories    []TopCategory    `json:"top_categories"`
	TopReporters     []TopReporter    `json:"top_reporters"`
}
