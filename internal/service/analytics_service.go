package service

import (
	"Orbit/internal/api/dto"
	"Orbit/internal/model"
	"Orbit/internal/pkg/consts"
	"Orbit/internal/pkg/util"
	"Orbit/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// topCategoryLimit 榜单只保留帖子数最多的前几个分类
	topCategoryLimit = 4
	// detailMonths 明细类报表固定统计近半年
	detailMonths = 6
	// chartMonths 平台走势图固定统计近一年
	chartMonths = 12
)

type AnalyticsService interface {
	GetAuthorAnalytics(ctx context.Context, authorID uint64, months int) (*dto.AuthorAnalyticsDTO, error)
	GetPlatformOverview(ctx context.Context, months int) (*dto.PlatformAnalyticsDTO, error)
	GetDetailedPostAnalytics(ctx context.Context) (*dto.DetailedAnalyticsDTO, error)
	GetUserActivityAnalytics(ctx context.Context) (*dto.UserActivityDTO, error)
	GetGrowthReports(ctx context.Context) (*dto.GrowthReportsDTO, error)
}

type AnalyticsServiceImpl struct {
	analyticsRepo repository.AnalyticsRepo
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepo) AnalyticsService {
	return &AnalyticsServiceImpl{
		analyticsRepo: analyticsRepo,
	}
}

// growthPercent 计算增长率百分比，基期为零时返回 0
func growthPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// growthDetail 组装同比指标，百分比固定两位小数
func growthDetail(current, previous int64) dto.GrowthDetail {
	return dto.GrowthDetail{
		Percentage:    strconv.FormatFloat(growthPercent(float64(current), float64(previous)), 'f', 2, 64),
		CurrentPeriod: current,
		LastPeriod:    previous,
	}
}

func categoryLabel(post *model.Post) string {
	if post.Category.Label == "" {
		return consts.DefaultCategoryLabel
	}
	return post.Category.Label
}

// topCategories 按帖子数取前几个分类，数量相同时保持首次出现的先后顺序
func topCategories(posts []*model.Post) []*dto.CategoryShare {
	counts := make(map[string]int)
	var order []string
	for _, post := range posts {
		name := categoryLabel(post)
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	shares := make([]*dto.CategoryShare, 0, len(order))
	totalPosts := len(posts)
	for _, name := range order {
		count := counts[name]
		shares = append(shares, &dto.CategoryShare{
			Name:  name,
			Value: float64(count) / float64(totalPosts) * 100,
			Count: count,
		})
	}

	// 稳定排序保证并列分类不打乱出现顺序
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Count > shares[j].Count
	})

	if len(shares) > topCategoryLimit {
		shares = shares[:topCategoryLimit]
	}
	return shares
}

func sumViews(posts []*model.Post) int64 {
	var total int64
	for _, post := range posts {
		total += post.Views
	}
	return total
}

func toAnalyticsPosts(posts []*model.Post) []*dto.AnalyticsPostDTO {
	rows := make([]*dto.AnalyticsPostDTO, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, &dto.AnalyticsPostDTO{
			ID:            post.ID,
			Title:         post.Title,
			FeaturedImage: post.FeaturedImage,
			Views:         post.Views,
			Likes:         len(post.Likes),
			Comments:      len(post.Comments),
			Category:      categoryLabel(post),
			CreatedAt:     post.CreatedAt,
		})
	}
	return rows
}

// GetAuthorAnalytics 作者后台的聚合报表，当前窗口与上一窗口并发拉取
func (s *AnalyticsServiceImpl) GetAuthorAnalytics(ctx context.Context, authorID uint64, months int) (*dto.AuthorAnalyticsDTO, error) {
	now := time.Now()
	start := now.AddDate(0, -months, 0)
	lastStart := start.AddDate(0, -months, 0)
	lastEnd := now.AddDate(0, -months, 0)

	var (
		posts    []*model.Post
		comments []*model.Comment
		likes    []*model.Like

		lastViews, lastComments, lastLikes, lastPosts int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if posts, err = s.analyticsRepo.PostsInRange(gctx, authorID, start, now); err != nil {
			return err
		}
		if comments, err = s.analyticsRepo.CommentsOnAuthorPosts(gctx, authorID, start, now); err != nil {
			return err
		}
		likes, err = s.analyticsRepo.LikesInRange(gctx, authorID, start, now)
		return err
	})
	g.Go(func() error {
		prevPosts, err := s.analyticsRepo.PostsInRange(gctx, authorID, lastStart, lastEnd)
		if err != nil {
			return err
		}
		prevComments, err := s.analyticsRepo.CommentsOnAuthorPosts(gctx, authorID, lastStart, lastEnd)
		if err != nil {
			return err
		}
		prevLikes, err := s.analyticsRepo.LikesInRange(gctx, authorID, lastStart, lastEnd)
		if err != nil {
			return err
		}
		lastViews = sumViews(prevPosts)
		lastComments = int64(len(prevComments))
		lastLikes = int64(len(prevLikes))
		lastPosts = int64(len(prevPosts))
		return nil
	})
	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "作者报表数据拉取失败", "authorID", authorID, "err", err)
		return nil, UnExpectedError
	}

	totalViews := sumViews(posts)
	totalComments := int64(len(comments))
	totalLikes := int64(len(likes))
	totalPosts := int64(len(posts))

	shares := topCategories(posts)

	// 分类小计复用已取回的窗口数据，不再回库
	postIDsByCategory := make(map[string]map[uint64]struct{}, len(shares))
	viewsByCategory := make(map[string]int64, len(shares))
	for _, share := range shares {
		postIDsByCategory[share.Name] = make(map[uint64]struct{})
	}
	for _, post := range posts {
		name := categoryLabel(post)
		ids, ok := postIDsByCategory[name]
		if !ok {
			continue
		}
		ids[post.ID] = struct{}{}
		viewsByCategory[name] += post.Views
	}

	metrics := make([]*dto.AuthorCategoryMetric, 0, len(shares))
	for _, share := range shares {
		ids := postIDsByCategory[share.Name]
		var commentCount, likeCount int64
		for _, comment := range comments {
			if _, ok := ids[comment.PostID]; ok {
				commentCount++
			}
		}
		for _, like := range likes {
			if _, ok := ids[like.PostID]; ok {
				likeCount++
			}
		}
		metrics = append(metrics, &dto.AuthorCategoryMetric{
			Name:     share.Name,
			Views:    viewsByCategory[share.Name],
			Comments: commentCount,
			Likes:    likeCount,
		})
	}

	return &dto.AuthorAnalyticsDTO{
		CustomTime:    months,
		TotalViews:    totalViews,
		TotalComments: totalComments,
		TotalLikes:    totalLikes,
		TotalPosts:    totalPosts,
		Posts:         toAnalyticsPosts(posts),
		Growth: dto.AuthorGrowth{
			Views:    growthDetail(totalViews, lastViews),
			Comments: growthDetail(totalComments, lastComments),
			Likes:    growthDetail(totalLikes, lastLikes),
			Posts:    growthDetail(totalPosts, lastPosts),
		},
		CategoryPercentages: shares,
		CategoryMetrics:     metrics,
	}, nil
}

// GetPlatformOverview 平台总览，无论查询窗口多长，走势图固定取近一年
func (s *AnalyticsServiceImpl) GetPlatformOverview(ctx context.Context, months int) (*dto.PlatformAnalyticsDTO, error) {
	now := time.Now()
	start := now.AddDate(0, -months, 0)
	lastStart := start.AddDate(0, -months, 0)
	lastEnd := now.AddDate(0, -months, 0)
	chartStart := now.AddDate(0, -chartMonths, 0)

	var (
		posts []*model.Post
		users []*model.User
		likes []*model.Like

		lastViews, lastUsers, lastLikes, lastPosts int64

		chartPosts []*model.Post
		chartUsers []*model.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if posts, err = s.analyticsRepo.PostsInRange(gctx, 0, start, now); err != nil {
			return err
		}
		if users, err = s.analyticsRepo.UsersInRange(gctx, start, now); err != nil {
			return err
		}
		likes, err = s.analyticsRepo.LikesInRange(gctx, 0, start, now)
		return err
	})
	g.Go(func() error {
		prevPosts, err := s.analyticsRepo.PostsInRange(gctx, 0, lastStart, lastEnd)
		if err != nil {
			return err
		}
		prevUsers, err := s.analyticsRepo.UsersInRange(gctx, lastStart, lastEnd)
		if err != nil {
			return err
		}
		prevLikes, err := s.analyticsRepo.LikesInRange(gctx, 0, lastStart, lastEnd)
		if err != nil {
			return err
		}
		lastViews = sumViews(prevPosts)
		lastUsers = int64(len(prevUsers))
		lastLikes = int64(len(prevLikes))
		lastPosts = int64(len(prevPosts))
		return nil
	})
	g.Go(func() error {
		var err error
		if chartPosts, err = s.analyticsRepo.PostsForChart(gctx, chartStart, now); err != nil {
			return err
		}
		chartUsers, err = s.analyticsRepo.UsersInRange(gctx, chartStart, now)
		return err
	})
	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "平台报表数据拉取失败", "err", err)
		return nil, UnExpectedError
	}

	totalViews := sumViews(posts)
	totalUsers := int64(len(users))
	totalLikes := int64(len(likes))
	totalPosts := int64(len(posts))

	shares := topCategories(posts)

	viewsByCategory := make(map[string]int64, len(shares))
	postIDsByCategory := make(map[string]map[uint64]struct{}, len(shares))
	for _, share := range shares {
		postIDsByCategory[share.Name] = make(map[uint64]struct{})
	}
	for _, post := range posts {
		name := categoryLabel(post)
		ids, ok := postIDsByCategory[name]
		if !ok {
			continue
		}
		ids[post.ID] = struct{}{}
		viewsByCategory[name] += post.Views
	}

	metrics := make([]*dto.PlatformCategoryMetric, 0, len(shares))
	for _, share := range shares {
		ids := postIDsByCategory[share.Name]
		var likeCount int64
		for _, like := range likes {
			if _, ok := ids[like.PostID]; ok {
				likeCount++
			}
		}
		metrics = append(metrics, &dto.PlatformCategoryMetric{
			Name:  share.Name,
			Views: viewsByCategory[share.Name],
			Likes: likeCount,
		})
	}

	return &dto.PlatformAnalyticsDTO{
		CustomTime: months,
		TotalViews: totalViews,
		TotalUsers: totalUsers,
		TotalLikes: totalLikes,
		TotalPosts: totalPosts,
		ViewsChart: buildViewsChart(chartPosts),
		UsersChart: buildUsersChart(chartUsers),
		Posts:      toAnalyticsPosts(posts),
		Growth: dto.PlatformGrowth{
			Views: growthDetail(totalViews, lastViews),
			Users: growthDetail(totalUsers, lastUsers),
			Likes: growthDetail(totalLikes, lastLikes),
			Posts: growthDetail(totalPosts, lastPosts),
		},
		CategoryPercentages: shares,
		CategoryMetrics:     metrics,
	}, nil
}

func buildViewsChart(posts []*model.Post) []*dto.ViewsChartPoint {
	buckets := make(map[util.Month]*dto.ViewsChartPoint)
	var months []util.Month
	for _, post := range posts {
		month := util.MonthOf(post.CreatedAt)
		point, ok := buckets[month]
		if !ok {
			point = &dto.ViewsChartPoint{Month: month.String()}
			buckets[month] = point
			months = append(months, month)
		}
		point.Views += post.Views
		point.Posts = append(point.Posts, &dto.ChartPostDTO{
			ID:    post.ID,
			Title: post.Title,
			Views: post.Views,
		})
	}

	util.SortMonths(months)
	chart := make([]*dto.ViewsChartPoint, 0, len(months))
	for _, month := range months {
		chart = append(chart, buckets[month])
	}
	return chart
}

func buildUsersChart(users []*model.User) []*dto.UsersChartPoint {
	buckets := make(map[util.Month]*dto.UsersChartPoint)
	var months []util.Month
	for _, user := range users {
		month := util.MonthOf(user.CreatedAt)
		point, ok := buckets[month]
		if !ok {
			point = &dto.UsersChartPoint{Month: month.String()}
			buckets[month] = point
			months = append(months, month)
		}
		point.Users++
	}

	util.SortMonths(months)
	chart := make([]*dto.UsersChartPoint, 0, len(months))
	for _, month := range months {
		chart = append(chart, buckets[month])
	}
	return chart
}

// GetDetailedPostAnalytics 近半年的逐月互动明细，每条互动计入其自身发生的月份
func (s *AnalyticsServiceImpl) GetDetailedPostAnalytics(ctx context.Context) (*dto.DetailedAnalyticsDTO, error) {
	since := time.Now().AddDate(0, -detailMonths, 0)
	posts, err := s.analyticsRepo.PostsWithEngagement(ctx, since)
	if err != nil {
		log.ErrorContext(ctx, "帖子互动明细拉取失败", "err", err)
		return nil, UnExpectedError
	}

	type bucket struct {
		views, likes, comments, replies, posts, engagement int64
	}
	buckets := make(map[util.Month]*bucket)
	monthOf := func(t time.Time) *bucket {
		month := util.MonthOf(t)
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		return b
	}

	postRows := make([]*dto.PostEngagementDTO, 0, len(posts))
	for _, post := range posts {
		postBucket := monthOf(post.CreatedAt)
		postBucket.views += post.Views
		postBucket.engagement += post.Views
		postBucket.posts++

		var replies int64
		for _, like := range post.Likes {
			b := monthOf(like.CreatedAt)
			b.likes++
			b.engagement++
		}
		for _, comment := range post.Comments {
			b := monthOf(comment.CreatedAt)
			b.comments++
			b.engagement++
			for _, reply := range comment.Replies {
				rb := monthOf(reply.CreatedAt)
				rb.replies++
				rb.engagement++
				replies++
			}
		}

		likes := int64(len(post.Likes))
		comments := int64(len(post.Comments))
		postRows = append(postRows, &dto.PostEngagementDTO{
			PostID:          post.ID,
			Title:           post.Title,
			Views:           post.Views,
			Likes:           likes,
			Comments:        comments,
			Replies:         replies,
			TotalEngagement: post.Views + likes + comments + replies,
			CreatedAt:       post.CreatedAt,
		})
	}

	months := make([]util.Month, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	util.SortMonths(months)

	monthly := make([]*dto.MonthlyMetricsDTO, 0, len(months))
	for _, month := range months {
		b := buckets[month]
		monthly = append(monthly, &dto.MonthlyMetricsDTO{
			Month:           month.String(),
			Views:           b.views,
			Likes:           b.likes,
			Comments:        b.comments,
			Replies:         b.replies,
			TotalEngagement: b.engagement,
			Posts:           b.posts,
		})
	}

	// 首月没有环比基期，不输出增速
	for i := 1; i < len(monthly); i++ {
		current, previous := monthly[i], monthly[i-1]
		current.ViewsGrowth = growthPointer(current.Views, previous.Views)
		current.LikesGrowth = growthPointer(current.Likes, previous.Likes)
		current.CommentsGrowth = growthPointer(current.Comments, previous.Comments)
		current.RepliesGrowth = growthPointer(current.Replies, previous.Replies)
	}

	return &dto.DetailedAnalyticsDTO{
		MonthlyAnalytics: monthly,
		PostAnalytics:    postRows,
	}, nil
}

func growthPointer(current, previous int64) *float64 {
	v := growthPercent(float64(current), float64(previous))
	return &v
}

// GetUserActivityAnalytics 平台用户活跃度；新增用户口径为近半年注册数
func (s *AnalyticsServiceImpl) GetUserActivityAnalytics(ctx context.Context) (*dto.UserActivityDTO, error) {
	now := time.Now()

	var (
		totalUsers, newUsers, authors int64
		posts                         []*model.Post
		users                         []*model.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalUsers, err = s.analyticsRepo.CountUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		newUsers, err = s.analyticsRepo.CountUsersCreatedSince(gctx, now.AddDate(0, -detailMonths, 0))
		return err
	})
	g.Go(func() error {
		var err error
		authors, err = s.analyticsRepo.CountAuthors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.analyticsRepo.PostsWithEngagement(gctx, time.Time{})
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.analyticsRepo.AllUsers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "用户活跃度数据拉取失败", "err", err)
		return nil, UnExpectedError
	}

	type bucket struct {
		newUsers     int
		interactions dto.InteractionsDTO
		active       map[uint64]struct{}
	}
	buckets := make(map[util.Month]*bucket)
	monthOf := func(t time.Time) *bucket {
		month := util.MonthOf(t)
		b, ok := buckets[month]
		if !ok {
			b = &bucket{active: make(map[uint64]struct{})}
			buckets[month] = b
		}
		return b
	}

	for _, post := range posts {
		// 浏览量计入发帖月份，但浏览者身份未知，不参与活跃统计
		monthOf(post.CreatedAt).interactions.Views += post.Views

		for _, like := range post.Likes {
			b := monthOf(like.CreatedAt)
			b.interactions.Likes++
			b.active[like.UserID] = struct{}{}
		}
		for _, comment := range post.Comments {
			b := monthOf(comment.CreatedAt)
			b.interactions.Comments++
			b.active[comment.UserID] = struct{}{}
			for _, reply := range comment.Replies {
				rb := monthOf(reply.CreatedAt)
				rb.interactions.Replies++
				rb.active[reply.UserID] = struct{}{}
			}
		}
	}

	for _, user := range users {
		monthOf(user.CreatedAt).newUsers++
	}

	months := make([]util.Month, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	util.SortMonths(months)

	var activeUsers int
	allMonthly := make([]*dto.MonthlyUserActivityDTO, 0, len(months))
	for _, month := range months {
		b := buckets[month]
		activeUsers += len(b.active)
		allMonthly = append(allMonthly, &dto.MonthlyUserActivityDTO{
			Month:        month.String(),
			NewUsers:     b.newUsers,
			ActiveUsers:  len(b.active),
			Interactions: b.interactions,
		})
	}

	monthly := allMonthly
	if len(monthly) > detailMonths {
		monthly = monthly[len(monthly)-detailMonths:]
	}

	return &dto.UserActivityDTO{
		TotalUsers:         totalUsers,
		NewUsers:           newUsers,
		ActiveUsers:        activeUsers,
		Authors:            authors,
		AllMonthlyActivity: allMonthly,
		MonthlyActivity:    monthly,
	}, nil
}

// GetGrowthReports 近半年用户与帖子的逐月新增，两路并发拉取
func (s *AnalyticsServiceImpl) GetGrowthReports(ctx context.Context) (*dto.GrowthReportsDTO, error) {
	since := time.Now().AddDate(0, -detailMonths, 0)

	var (
		users []*model.User
		posts []*model.Post
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.analyticsRepo.UsersInRange(gctx, since, time.Now())
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.analyticsRepo.PostsForChart(gctx, since, time.Now())
		return err
	})
	if err := g.Wait(); err != nil {
		log.ErrorContext(ctx, "增长报表数据拉取失败", "err", err)
		return nil, UnExpectedError
	}

	userTimes := make([]time.Time, 0, len(users))
	for _, user := range users {
		userTimes = append(userTimes, user.CreatedAt)
	}
	postTimes := make([]time.Time, 0, len(posts))
	for _, post := range posts {
		postTimes = append(postTimes, post.CreatedAt)
	}

	return &dto.GrowthReportsDTO{
		UserGrowth: processGrowth(userTimes),
		PostGrowth: processGrowth(postTimes),
	}, nil
}

// processGrowth 按月份分桶计数并计算环比增速，首月增速为 0
func processGrowth(times []time.Time) []*dto.GrowthReportPoint {
	counts := make(map[util.Month]int)
	for _, t := range times {
		counts[util.MonthOf(t)]++
	}

	months := make([]util.Month, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	util.SortMonths(months)

	points := make([]*dto.GrowthReportPoint, 0, len(months))
	for i, month := range months {
		count := counts[month]
		var previous int
		if i > 0 {
			previous = counts[months[i-1]]
		}
		points = append(points, &dto.GrowthReportPoint{
			Month:      month.String(),
			Count:      count,
			GrowthRate: growthPercent(float64(count), float64(previous)),
		})
	}
	return points
}
