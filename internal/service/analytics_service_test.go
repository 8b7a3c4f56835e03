package service

import (
	"Orbit/internal/model"
	"context"
	"reflect"
	"testing"
	"time"
)

// fakeAnalyticsRepo 按预置数据回答查询，窗口参数用于区分当前与上一期
type fakeAnalyticsRepo struct {
	posts      []*model.Post
	prevPosts  []*model.Post
	comments   []*model.Comment
	likes      []*model.Like
	users      []*model.User
	chartPosts []*model.Post

	totalUsers int64
	newUsers   int64
	authors    int64

	chartFrom time.Time
}

// inCurrentWindow 当前窗口的右端点是查询时刻，上一窗口的右端点在过去
func (f *fakeAnalyticsRepo) inCurrentWindow(to time.Time) bool {
	return time.Since(to) < time.Hour
}

func (f *fakeAnalyticsRepo) PostsInRange(_ context.Context, _ uint64, _, to time.Time) ([]*model.Post, error) {
	if f.inCurrentWindow(to) {
		return f.posts, nil
	}
	return f.prevPosts, nil
}

func (f *fakeAnalyticsRepo) PostsForChart(_ context.Context, from, _ time.Time) ([]*model.Post, error) {
	f.chartFrom = from
	return f.chartPosts, nil
}

func (f *fakeAnalyticsRepo) CommentsOnAuthorPosts(_ context.Context, _ uint64, _, to time.Time) ([]*model.Comment, error) {
	if f.inCurrentWindow(to) {
		return f.comments, nil
	}
	return nil, nil
}

func (f *fakeAnalyticsRepo) LikesInRange(_ context.Context, _ uint64, _, to time.Time) ([]*model.Like, error) {
	if f.inCurrentWindow(to) {
		return f.likes, nil
	}
	return nil, nil
}

func (f *fakeAnalyticsRepo) UsersInRange(_ context.Context, _, _ time.Time) ([]*model.User, error) {
	return f.users, nil
}

func (f *fakeAnalyticsRepo) PostsWithEngagement(_ context.Context, _ time.Time) ([]*model.Post, error) {
	return f.posts, nil
}

func (f *fakeAnalyticsRepo) AllUsers(_ context.Context) ([]*model.User, error) {
	return f.users, nil
}

func (f *fakeAnalyticsRepo) CountUsers(_ context.Context) (int64, error) {
	return f.totalUsers, nil
}

func (f *fakeAnalyticsRepo) CountUsersCreatedSince(_ context.Context, _ time.Time) (int64, error) {
	return f.newUsers, nil
}

func (f *fakeAnalyticsRepo) CountAuthors(_ context.Context) (int64, error) {
	return f.authors, nil
}

// monthStamp 返回当前月份向前推 back 个月的月中时刻，避开月末进位
func monthStamp(back int) time.Time {
	now := time.Now().UTC()
	base := time.Date(now.Year(), now.Month(), 15, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, -back, 0)
}

func TestGrowthDetail(t *testing.T) {
	d := growthDetail(150, 100)
	if d.Percentage != "50.00" {
		t.Errorf("期望 50.00，得到 %s", d.Percentage)
	}
	if d.CurrentPeriod != 150 || d.LastPeriod != 100 {
		t.Errorf("区间值不符: %+v", d)
	}

	zero := growthDetail(10, 0)
	if zero.Percentage != "0.00" {
		t.Errorf("基期为零应输出 0.00，得到 %s", zero.Percentage)
	}

	negative := growthDetail(50, 100)
	if negative.Percentage != "-50.00" {
		t.Errorf("期望 -50.00，得到 %s", negative.Percentage)
	}
}

func TestTopCategories(t *testing.T) {
	post := func(label string) *model.Post {
		return &model.Post{Category: model.Category{Label: label}}
	}
	shares := topCategories([]*model.Post{
		post("Go"), post("Go"), post("Go"), post("Rust"),
	})
	if len(shares) != 2 {
		t.Fatalf("期望 2 个分类，得到 %d", len(shares))
	}
	if shares[0].Name != "Go" || shares[0].Value != 75 || shares[0].Count != 3 {
		t.Errorf("首位分类不符: %+v", shares[0])
	}
	if shares[1].Name != "Rust" || shares[1].Value != 25 {
		t.Errorf("次位分类不符: %+v", shares[1])
	}
}

func TestTopCategoriesTieKeepsOrder(t *testing.T) {
	post := func(label string) *model.Post {
		return &model.Post{Category: model.Category{Label: label}}
	}
	shares := topCategories([]*model.Post{
		post("Alpha"), post("Beta"), post("Alpha"), post("Beta"),
	})
	if shares[0].Name != "Alpha" || shares[1].Name != "Beta" {
		t.Errorf("并列分类应保持出现顺序，得到 %s, %s", shares[0].Name, shares[1].Name)
	}
}

func TestTopCategoriesLimit(t *testing.T) {
	post := func(label string, n int) []*model.Post {
		posts := make([]*model.Post, n)
		for i := range posts {
			posts[i] = &model.Post{Category: model.Category{Label: label}}
		}
		return posts
	}
	var posts []*model.Post
	posts = append(posts, post("A", 5)...)
	posts = append(posts, post("B", 4)...)
	posts = append(posts, post("C", 3)...)
	posts = append(posts, post("D", 2)...)
	posts = append(posts, post("E", 1)...)

	shares := topCategories(posts)
	if len(shares) != 4 {
		t.Fatalf("榜单应只保留 4 个分类，得到 %d", len(shares))
	}
	if shares[3].Name != "D" {
		t.Errorf("末位应为 D，得到 %s", shares[3].Name)
	}
}

func TestTopCategoriesFallbackLabel(t *testing.T) {
	shares := topCategories([]*model.Post{{}})
	if len(shares) != 1 || shares[0].Name != "Uncategorized" {
		t.Errorf("缺失分类应归入 Uncategorized，得到 %+v", shares)
	}
}

func TestGetAuthorAnalytics(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		posts: []*model.Post{
			{ID: 1, Title: "a", Views: 120, Category: model.Category{Label: "Go"}},
			{ID: 2, Title: "b", Views: 80, Category: model.Category{Label: "Go"}},
		},
		prevPosts: []*model.Post{
			{ID: 3, Title: "old", Views: 100, Category: model.Category{Label: "Go"}},
		},
		comments: []*model.Comment{{ID: 1, PostID: 1, UserID: 9}},
		likes:    []*model.Like{{UserID: 9, PostID: 1}, {UserID: 8, PostID: 2}},
	}
	svc := NewAnalyticsService(repo)

	got, err := svc.GetAuthorAnalytics(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("GetAuthorAnalytics 失败: %v", err)
	}
	if got.TotalViews != 200 || got.TotalPosts != 2 || got.TotalComments != 1 || got.TotalLikes != 2 {
		t.Errorf("汇总不符: %+v", got)
	}
	if got.Growth.Views.Percentage != "100.00" {
		t.Errorf("浏览量同比应为 100.00，得到 %s", got.Growth.Views.Percentage)
	}
	if got.Growth.Posts.Percentage != "100.00" {
		t.Errorf("发帖同比应为 100.00，得到 %s", got.Growth.Posts.Percentage)
	}
	if len(got.CategoryMetrics) != 1 {
		t.Fatalf("期望 1 条分类小计，得到 %d", len(got.CategoryMetrics))
	}
	metric := got.CategoryMetrics[0]
	if metric.Name != "Go" || metric.Views != 200 || metric.Comments != 1 || metric.Likes != 2 {
		t.Errorf("分类小计不符: %+v", metric)
	}
}

func TestGetDetailedPostAnalytics(t *testing.T) {
	postMonth := monthStamp(2)
	nextMonth := monthStamp(1)

	repo := &fakeAnalyticsRepo{
		posts: []*model.Post{
			{
				ID:        1,
				Title:     "p",
				Views:     100,
				CreatedAt: postMonth,
				Likes: []model.Like{
					{UserID: 1, PostID: 1, CreatedAt: postMonth},
					{UserID: 2, PostID: 1, CreatedAt: postMonth},
				},
				Comments: []model.Comment{
					{ID: 1, PostID: 1, UserID: 3, CreatedAt: nextMonth},
				},
			},
		},
	}
	svc := NewAnalyticsService(repo)

	got, err := svc.GetDetailedPostAnalytics(context.Background())
	if err != nil {
		t.Fatalf("GetDetailedPostAnalytics 失败: %v", err)
	}
	if len(got.MonthlyAnalytics) != 2 {
		t.Fatalf("期望 2 个月份桶，得到 %d", len(got.MonthlyAnalytics))
	}

	first := got.MonthlyAnalytics[0]
	if first.Views != 100 || first.Likes != 2 || first.Comments != 0 || first.TotalEngagement != 102 || first.Posts != 1 {
		t.Errorf("发帖月桶不符: %+v", first)
	}
	if first.ViewsGrowth != nil {
		t.Error("首月不应有环比增速")
	}

	second := got.MonthlyAnalytics[1]
	if second.Comments != 1 || second.TotalEngagement != 1 || second.Posts != 0 {
		t.Errorf("评论月桶不符: %+v", second)
	}
	if second.ViewsGrowth == nil || second.CommentsGrowth == nil {
		t.Fatal("非首月应输出环比增速")
	}
	if *second.ViewsGrowth != -100 {
		t.Errorf("浏览量环比应为 -100，得到 %f", *second.ViewsGrowth)
	}
	if *second.CommentsGrowth != 0 {
		t.Errorf("评论基期为零环比应为 0，得到 %f", *second.CommentsGrowth)
	}

	if len(got.PostAnalytics) != 1 {
		t.Fatalf("期望 1 条帖子行，得到 %d", len(got.PostAnalytics))
	}
	row := got.PostAnalytics[0]
	if row.Views != 100 || row.Likes != 2 || row.Comments != 1 || row.Replies != 0 || row.TotalEngagement != 103 {
		t.Errorf("帖子行不符: %+v", row)
	}
}

func TestGetUserActivityAnalytics(t *testing.T) {
	m1 := monthStamp(2)
	m2 := monthStamp(1)

	repo := &fakeAnalyticsRepo{
		totalUsers: 10,
		newUsers:   4,
		authors:    3,
		users: []*model.User{
			{ID: 1, CreatedAt: m1},
			{ID: 2, CreatedAt: m2},
			{ID: 3, CreatedAt: m2},
		},
		posts: []*model.Post{
			{
				ID:        1,
				Views:     50,
				CreatedAt: m1,
				Likes: []model.Like{
					// 同一用户同月点赞两个动作只计一次活跃
					{UserID: 5, PostID: 1, CreatedAt: m1},
					{UserID: 5, PostID: 1, CreatedAt: m1},
					{UserID: 6, PostID: 1, CreatedAt: m2},
				},
				Comments: []model.Comment{
					{
						ID: 1, PostID: 1, UserID: 7, CreatedAt: m2,
						Replies: []model.Reply{
							{ID: 1, CommentID: 1, UserID: 5, CreatedAt: m2},
						},
					},
				},
			},
		},
	}
	svc := NewAnalyticsService(repo)

	got, err := svc.GetUserActivityAnalytics(context.Background())
	if err != nil {
		t.Fatalf("GetUserActivityAnalytics 失败: %v", err)
	}
	if got.TotalUsers != 10 || got.NewUsers != 4 || got.Authors != 3 {
		t.Errorf("头部指标不符: %+v", got)
	}
	if len(got.AllMonthlyActivity) != 2 {
		t.Fatalf("期望 2 个月份，得到 %d", len(got.AllMonthlyActivity))
	}

	first := got.AllMonthlyActivity[0]
	// 浏览量计入发帖月份，但不产生活跃用户
	if first.Interactions.Views != 50 || first.Interactions.Likes != 1 {
		t.Errorf("首月互动不符: %+v", first.Interactions)
	}
	if first.ActiveUsers != 1 {
		t.Errorf("首月活跃用户应为 1（用户 5 去重），得到 %d", first.ActiveUsers)
	}
	if first.NewUsers != 1 {
		t.Errorf("首月新增用户应为 1，得到 %d", first.NewUsers)
	}

	second := got.AllMonthlyActivity[1]
	if second.Interactions.Likes != 1 || second.Interactions.Comments != 1 || second.Interactions.Replies != 1 {
		t.Errorf("次月互动不符: %+v", second.Interactions)
	}
	if second.ActiveUsers != 3 {
		t.Errorf("次月活跃用户应为 3（用户 5、6、7），得到 %d", second.ActiveUsers)
	}
	if second.NewUsers != 2 {
		t.Errorf("次月新增用户应为 2，得到 %d", second.NewUsers)
	}

	if got.ActiveUsers != 4 {
		t.Errorf("活跃总数应为各月去重数之和 4，得到 %d", got.ActiveUsers)
	}
	if len(got.MonthlyActivity) != 2 {
		t.Errorf("月份不足 6 个时两个列表应一致，得到 %d", len(got.MonthlyActivity))
	}
}

func TestGetGrowthReports(t *testing.T) {
	m1 := monthStamp(2)
	m2 := monthStamp(1)

	repo := &fakeAnalyticsRepo{
		users: []*model.User{
			{ID: 1, CreatedAt: m1},
			{ID: 2, CreatedAt: m2},
			{ID: 3, CreatedAt: m2},
		},
		chartPosts: []*model.Post{
			{ID: 1, CreatedAt: m1},
		},
	}
	svc := NewAnalyticsService(repo)

	got, err := svc.GetGrowthReports(context.Background())
	if err != nil {
		t.Fatalf("GetGrowthReports 失败: %v", err)
	}
	if len(got.UserGrowth) != 2 {
		t.Fatalf("期望 2 个用户增长点，得到 %d", len(got.UserGrowth))
	}
	if got.UserGrowth[0].Count != 1 || got.UserGrowth[0].GrowthRate != 0 {
		t.Errorf("首月增速应为 0: %+v", got.UserGrowth[0])
	}
	if got.UserGrowth[1].Count != 2 || got.UserGrowth[1].GrowthRate != 100 {
		t.Errorf("次月增速应为 100: %+v", got.UserGrowth[1])
	}
	if len(got.PostGrowth) != 1 || got.PostGrowth[0].GrowthRate != 0 {
		t.Errorf("帖子增长点不符: %+v", got.PostGrowth)
	}
}

func TestGetPlatformOverview(t *testing.T) {
	m1 := monthStamp(2)
	m2 := monthStamp(1)

	repo := &fakeAnalyticsRepo{
		posts: []*model.Post{
			{ID: 1, Title: "a", Views: 100, CreatedAt: m2, Category: model.Category{Label: "Go"}},
		},
		prevPosts: []*model.Post{},
		users: []*model.User{
			{ID: 1, CreatedAt: m1},
			{ID: 2, CreatedAt: m2},
		},
		likes: []*model.Like{{UserID: 1, PostID: 1, CreatedAt: m2}},
		chartPosts: []*model.Post{
			{ID: 2, Title: "late", Views: 30, CreatedAt: m2},
			{ID: 1, Title: "early", Views: 100, CreatedAt: m1},
		},
	}
	svc := NewAnalyticsService(repo)

	got, err := svc.GetPlatformOverview(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetPlatformOverview 失败: %v", err)
	}
	if got.TotalViews != 100 || got.TotalUsers != 2 || got.TotalLikes != 1 || got.TotalPosts != 1 {
		t.Errorf("汇总不符: %+v", got)
	}
	// 平台面板的同比对象是用户而非评论
	if got.Growth.Users.CurrentPeriod != 2 {
		t.Errorf("用户同比当前值应为 2，得到 %d", got.Growth.Users.CurrentPeriod)
	}

	if len(got.ViewsChart) != 2 {
		t.Fatalf("期望 2 个走势点，得到 %d", len(got.ViewsChart))
	}
	if got.ViewsChart[0].Views != 100 || got.ViewsChart[1].Views != 30 {
		t.Errorf("走势点应按月份升序: %+v", got.ViewsChart)
	}
	if len(got.ViewsChart[0].Posts) != 1 || got.ViewsChart[0].Posts[0].Title != "early" {
		t.Errorf("走势点的贡献帖子不符: %+v", got.ViewsChart[0].Posts)
	}
	if len(got.UsersChart) != 2 || got.UsersChart[0].Users != 1 {
		t.Errorf("用户走势不符: %+v", got.UsersChart)
	}
}

func TestDetailedPostAnalyticsIdempotent(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		posts: []*model.Post{
			{
				ID:        1,
				Title:     "p",
				Views:     10,
				CreatedAt: monthStamp(1),
				Likes:     []model.Like{{UserID: 1, PostID: 1, CreatedAt: monthStamp(1)}},
			},
		},
	}
	svc := NewAnalyticsService(repo)

	first, err := svc.GetDetailedPostAnalytics(context.Background())
	if err != nil {
		t.Fatalf("首次计算失败: %v", err)
	}
	second, err := svc.GetDetailedPostAnalytics(context.Background())
	if err != nil {
		t.Fatalf("二次计算失败: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("同一数据快照两次计算结果应一致")
	}
}

func TestGetPlatformOverviewChartWindowFixed(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo)

	if _, err := svc.GetPlatformOverview(context.Background(), 1); err != nil {
		t.Fatalf("GetPlatformOverview 失败: %v", err)
	}

	// 查询窗口只有 1 个月时，走势图仍固定取近 12 个月
	want := time.Now().AddDate(0, -12, 0)
	if repo.chartFrom.Before(want.Add(-time.Minute)) || repo.chartFrom.After(want.Add(time.Minute)) {
		t.Errorf("走势图窗口应固定为近 12 个月，起点为 %v", repo.chartFrom)
	}
}
