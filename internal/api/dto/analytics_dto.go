package dto

import "time"

// GrowthDetail 同比区间的指标对比
type GrowthDetail struct {
	Percentage    string `json:"percentage"`
	CurrentPeriod int64  `json:"currentPeriod"`
	LastPeriod    int64  `json:"lastPeriod"`
}

// CategoryShare 分类在总帖数中的占比
type CategoryShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// AuthorCategoryMetric 作者榜单分类的互动小计
type AuthorCategoryMetric struct {
	Name     string `json:"name"`
	Views    int64  `json:"views"`
	Comments int64  `json:"comments"`
	Likes    int64  `json:"likes"`
}

// PlatformCategoryMetric 平台榜单分类的互动小计
type PlatformCategoryMetric struct {
	Name  string `json:"name"`
	Views int64  `json:"views"`
	Likes int64  `json:"likes"`
}

// AnalyticsPostDTO 报表中的帖子行
type AnalyticsPostDTO struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	FeaturedImage *string   `json:"featuredImage"`
	Views         int64     `json:"views"`
	Likes         int       `json:"likes"`
	Comments      int       `json:"comments"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AuthorGrowth 作者面板的四项同比指标
type AuthorGrowth struct {
	Views    GrowthDetail `json:"views"`
	Comments GrowthDetail `json:"comments"`
	Likes    GrowthDetail `json:"likes"`
	Posts    GrowthDetail `json:"posts"`
}

// AuthorAnalyticsDTO 作者维度的聚合报表
type AuthorAnalyticsDTO struct {
	CustomTime          int                     `json:"customTime"`
	TotalViews          int64                   `json:"totalViews"`
	TotalComments       int64                   `json:"totalComments"`
	TotalLikes          int64                   `json:"totalLikes"`
	TotalPosts          int64                   `json:"totalPosts"`
	Posts               []*AnalyticsPostDTO     `json:"posts"`
	Growth              AuthorGrowth            `json:"growth"`
	CategoryPercentages []*CategoryShare        `json:"categoryPercentages"`
	CategoryMetrics     []*AuthorCategoryMetric `json:"categoryMetrics"`
}

// ChartPostDTO 浏览量走势图中的贡献帖子
type ChartPostDTO struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Views int64  `json:"views"`
}

// ViewsChartPoint 近一年单月的浏览量
type ViewsChartPoint struct {
	Month string          `json:"month"`
	Views int64           `json:"views"`
	Posts []*ChartPostDTO `json:"posts"`
}

// UsersChartPoint 近一年单月的新增用户数
type UsersChartPoint struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

// PlatformGrowth 平台面板的四项同比指标
type PlatformGrowth struct {
	Views GrowthDetail `json:"views"`
	Users GrowthDetail `json:"users"`
	Likes GrowthDetail `json:"likes"`
	Posts GrowthDetail `json:"posts"`
}

// PlatformAnalyticsDTO 平台维度的聚合报表
type PlatformAnalyticsDTO struct {
	CustomTime          int                       `json:"customTime"`
	TotalViews          int64                     `json:"totalViews"`
	TotalUsers          int64                     `json:"totalUsers"`
	TotalLikes          int64                     `json:"totalLikes"`
	TotalPosts          int64                     `json:"totalPosts"`
	ViewsChart          []*ViewsChartPoint        `json:"viewsChart"`
	UsersChart          []*UsersChartPoint        `json:"usersChart"`
	Posts               []*AnalyticsPostDTO       `json:"posts"`
	Growth              PlatformGrowth            `json:"growth"`
	CategoryPercentages []*CategoryShare          `json:"categoryPercentages"`
	CategoryMetrics     []*PlatformCategoryMetric `json:"categoryMetrics"`
}

// MonthlyMetricsDTO 单月的互动指标与环比增速
type MonthlyMetricsDTO struct {
	Month           string   `json:"month"`
	Views           int64    `json:"views"`
	Likes           int64    `json:"likes"`
	Comments        int64    `json:"comments"`
	Replies         int64    `json:"replies"`
	TotalEngagement int64    `json:"totalEngagement"`
	Posts           int64    `json:"posts"`
	ViewsGrowth     *float64 `json:"viewsGrowth,omitempty"`
	LikesGrowth     *float64 `json:"likesGrowth,omitempty"`
	CommentsGrowth  *float64 `json:"commentsGrowth,omitempty"`
	RepliesGrowth   *float64 `json:"repliesGrowth,omitempty"`
}

// PostEngagementDTO 单帖的互动汇总行
type PostEngagementDTO struct {
	PostID          uint64    `json:"postId"`
	Title           string    `json:"title"`
	Views           int64     `json:"views"`
	Likes           int64     `json:"likes"`
	Comments        int64     `json:"comments"`
	Replies         int64     `json:"replies"`
	TotalEngagement int64     `json:"totalEngagement"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DetailedAnalyticsDTO 近半年的逐月互动明细
type DetailedAnalyticsDTO struct {
	MonthlyAnalytics []*MonthlyMetricsDTO `json:"monthlyAnalytics"`
	PostAnalytics    []*PostEngagementDTO `json:"postAnalytics"`
}

// InteractionsDTO 单月各互动类型计数
type InteractionsDTO struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Replies  int64 `json:"replies"`
}

// MonthlyUserActivityDTO 单月的用户活跃情况
type MonthlyUserActivityDTO struct {
	Month        string          `json:"month"`
	NewUsers     int             `json:"newUsers"`
	ActiveUsers  int             `json:"activeUsers"`
	Interactions InteractionsDTO `json:"interactions"`
}

// UserActivityDTO 平台用户活跃度报表
type UserActivityDTO struct {
	TotalUsers         int64                     `json:"totalUsers"`
	NewUsers           int64                     `json:"newUsers"`
	ActiveUsers        int                       `json:"activeUsers"`
	Authors            int64                     `json:"authors"`
	AllMonthlyActivity []*MonthlyUserActivityDTO `json:"allMonthlyActivity"`
	MonthlyActivity    []*MonthlyUserActivityDTO `json:"monthlyActivity"`
}

// GrowthReportPoint 单月新增数量与环比增速
type GrowthReportPoint struct {
	Month      string  `json:"month"`
	Count      int     `json:"count"`
	GrowthRate float64 `json:"growthRate"`
}

// GrowthReportsDTO 用户与帖子的增长报表
type GrowthReportsDTO struct {
	UserGrowth []*GrowthReportPoint `json:"userGrowth"`
	PostGrowth []*GrowthReportPoint `json:"postGrowth"`
}
