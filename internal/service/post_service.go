package service

import (
	"Orbit/internal/api/dto"
	"Orbit/internal/model"
	"Orbit/internal/pkg/consts"
	"Orbit/internal/pkg/mailer"
	"Orbit/internal/pkg/realtime"
	"Orbit/internal/pkg/util"
	"Orbit/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID uint64, req *dto.CreatePostDTO, image *multipart.FileHeader) (*model.Post, error)
	UpdatePost(ctx context.Context, userID uint64, role string, postID uint64, req *dto.UpdatePostDTO, image *multipart.FileHeader) (*model.Post, error)
	DeletePost(ctx context.Context, userID uint64, role string, postID uint64) error
	PublishPost(ctx context.Context, userID uint64, role string, postID uint64) error
	UnpublishPost(ctx context.Context, req *dto.UnpublishPostDTO) error
	GetPostBySlug(ctx context.Context, slug string) (*model.Post, error)
	IncrementViews(ctx context.Context, slug string) error
	ListPublished(ctx context.Context) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorID uint64) ([]*model.Post, error)
	ListAll(ctx context.Context) ([]*model.Post, error)
	AddComment(ctx context.Context, userID uint64, slug string, req *dto.CommentDTO) (*model.Comment, error)
	GetComments(ctx context.Context, slug string) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, userID uint64, role string, commentID uint64) error
	AddReply(ctx context.Context, userID uint64, req *dto.ReplyDTO) (*model.Reply, error)
	DeleteReply(ctx context.Context, userID uint64, role string, replyID uint64) error
	ToggleLike(ctx context.Context, userID uint64, postID uint64) (*dto.LikeResultDTO, error)
	ListLikedPosts(ctx context.Context, userID uint64) ([]*model.Post, error)
	RecentActivity(ctx context.Context, authorID uint64) ([]*dto.ActivityDTO, error)
	ListAllComments(ctx context.Context) ([]*model.Comment, error)
}

type PostServiceImpl struct {
	postRepo     repository.PostRepo
	commentRepo  repository.CommentRepo
	likeRepo     repository.LikeRepo
	taxonomyRepo repository.TaxonomyRepo
	userRepo     repository.UserRepo
	mail         *mailer.Mailer
	hub          *realtime.Hub
}

func NewPostService(
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	likeRepo repository.LikeRepo,
	taxonomyRepo repository.TaxonomyRepo,
	userRepo repository.UserRepo,
	mail *mailer.Mailer,
	hub *realtime.Hub,
) PostService {
	return &PostServiceImpl{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		likeRepo:     likeRepo,
		taxonomyRepo: taxonomyRepo,
		userRepo:     userRepo,
		mail:         mail,
		hub:          hub,
	}
}

// uniqueSlug 基于标题生成 slug，冲突时追加自增后缀
func uniqueSlug(ctx context.Context, repo repository.PostRepo, title string) (string, error) {
	base := util.Slugify(title)
	if base == "" {
		base = "post"
	}

	slug := base
	for i := 1; ; i++ {
		exists, err := repo.SlugExists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *PostServiceImpl) resolveCategory(ctx context.Context, label string) (*model.Category, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = consts.DefaultCategoryLabel
	}
	return s.taxonomyRepo.UpsertCategory(ctx, util.Capitalize(label), util.Slugify(label))
}

func (s *PostServiceImpl) resolveTags(ctx context.Context, labels []string) ([]*model.PostTag, error) {
	var tags []*model.PostTag
	seen := make(map[string]struct{})
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		value := util.Slugify(label)
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}

		tag, err := s.taxonomyRepo.UpsertTag(ctx, util.Capitalize(label), value)
		if err != nil {
			return nil, err
		}
		tags = append(tags, &model.PostTag{TagID: tag.ID})
	}
	return tags, nil
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, authorID uint64, req *dto.CreatePostDTO, image *multipart.FileHeader) (*model.Post, error) {
	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, UnExpectedError
	}
	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, UnExpectedError
	}
	slug, err := uniqueSlug(ctx, s.postRepo, req.Title)
	if err != nil {
		return nil, UnExpectedError
	}

	post := &model.Post{
		AuthorID:        authorID,
		CategoryID:      category.ID,
		Title:           req.Title,
		Slug:            slug,
		Description:     req.Description,
		Content:         req.Content,
		MinRead:         util.CalculateReadingTime(req.Content),
		Published:       req.Published,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	}
	if req.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if image != nil {
		url, object, err := uploadImage(ctx, consts.FolderPost, image)
		if err != nil {
			return nil, err
		}
		post.FeaturedImage = &url
		post.FeaturedImageObject = &object
	}

	if err = s.postRepo.CreatePost(ctx, post, tags); err != nil {
		log.ErrorContext(ctx, "创建帖子失败", "authorID", authorID, "err", err)
		return nil, UnExpectedError
	}
	return s.postRepo.GetPost(ctx, post.ID)
}

func (s *PostServiceImpl) getOwnedPost(ctx context.Context, userID uint64, role string, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, UnExpectedError
	}
	if post.AuthorID != userID && role != consts.RoleAdmin {
		return nil, ErrNotPostAuthor
	}
	return post, nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID uint64, role string, postID uint64, req *dto.UpdatePostDTO, image *multipart.FileHeader) (*model.Post, error) {
	post, err := s.getOwnedPost(ctx, userID, role, postID)
	if err != nil {
		return nil, err
	}

	updated := &model.Post{ID: post.ID}
	if req.Title != nil && *req.Title != "" && *req.Title != post.Title {
		updated.Title = *req.Title
		slug, err := uniqueSlug(ctx, s.postRepo, *req.Title)
		if err != nil {
			return nil, UnExpectedError
		}
		updated.Slug = slug
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Content != nil && *req.Content != "" {
		updated.Content = *req.Content
		updated.MinRead = util.CalculateReadingTime(*req.Content)
	}
	if req.MetaTitle != nil {
		updated.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		updated.MetaDescription = *req.MetaDescription
	}
	if req.Category != nil && *req.Category != "" {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, UnExpectedError
		}
		updated.CategoryID = category.ID
	}

	var tags []*model.PostTag
	if req.Tags != nil {
		if tags, err = s.resolveTags(ctx, req.Tags); err != nil {
			return nil, UnExpectedError
		}
		if tags == nil {
			tags = []*model.PostTag{}
		}
	}

	if image != nil {
		url, object, err := uploadImage(ctx, consts.FolderPost, image)
		if err != nil {
			return nil, err
		}
		destroyImage(ctx, post.FeaturedImageObject)
		updated.FeaturedImage = &url
		updated.FeaturedImageObject = &object
	}

	if err = s.postRepo.UpdatePost(ctx, updated, tags); err != nil {
		log.ErrorContext(ctx, "更新帖子失败", "postID", postID, "err", err)
		return nil, UnExpectedError
	}
	return s.postRepo.GetPost(ctx, postID)
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID uint64, role string, postID uint64) error {
	post, err := s.getOwnedPost(ctx, userID, role, postID)
	if err != nil {
		return err
	}

	if err = s.postRepo.DeletePost(ctx, postID); err != nil {
		log.ErrorContext(ctx, "删除帖子失败", "postID", postID, "err", err)
		return UnExpectedError
	}
	destroyImage(ctx, post.FeaturedImageObject)

	// 管理员删除他人帖子时邮件告知作者
	if post.AuthorID != userID {
		html := mailer.NoticeMailHTML("Your post has been removed",
			fmt.Sprintf("Hi %s, your post %q was removed by an administrator.", post.Author.Name, post.Title))
		if err = s.mail.Send(ctx, post.Author.Email, "Your post was removed", html); err != nil {
			log.WarnContext(ctx, "删帖通知邮件发送失败", "postID", postID, "err", err)
		}
	}
	return nil
}

func (s *PostServiceImpl) PublishPost(ctx context.Context, userID uint64, role string, postID uint64) error {
	if _, err := s.getOwnedPost(ctx, userID, role, postID); err != nil {
		return err
	}
	if err := s.postRepo.SetPublished(ctx, postID, true); err != nil {
		return UnExpectedError
	}
	return nil
}

// UnpublishPost 管理员下架帖子并邮件告知作者原因
func (s *PostServiceImpl) UnpublishPost(ctx context.Context, req *dto.UnpublishPostDTO) error {
	post, err := s.postRepo.GetPost(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return UnExpectedError
	}
	if err = s.postRepo.SetPublished(ctx, req.PostID, false); err != nil {
		return UnExpectedError
	}

	html := mailer.NoticeMailHTML("Your post has been unpublished",
		fmt.Sprintf("Post: %s", post.Title),
		fmt.Sprintf("Reason: %s", req.Reason))
	if err = s.mail.Send(ctx, post.Author.Email, "Your Orbit Blog post was unpublished", html); err != nil {
		log.WarnContext(ctx, "下架通知邮件发送失败", "postID", req.PostID, "err", err)
	}
	return nil
}

func (s *PostServiceImpl) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	post, err := s.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, UnExpectedError
	}
	return post, nil
}

func (s *PostServiceImpl) IncrementViews(ctx context.Context, slug string) error {
	if err := s.postRepo.IncrementViews(ctx, slug); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *PostServiceImpl) ListPublished(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.ListPublished(ctx)
	if err != nil {
		return nil, UnExpectedError
	}
	return posts, nil
}

func (s *PostServiceImpl) ListByAuthor(ctx context.Context, authorID uint64) ([]*model.Post, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, UnExpectedError
	}
	return posts, nil
}

func (s *PostServiceImpl) ListAll(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, UnExpectedError
	}
	return posts, nil
}

func (s *PostServiceImpl) AddComment(ctx context.Context, userID uint64, slug string, req *dto.CommentDTO) (*model.Comment, error) {
	if strings.TrimSpace(req.Comment) == "" {
		return nil, ErrCommentEmpty
	}
	post, err := s.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, ErrPostNotPublished
	}

	comment := &model.Comment{
		PostID:  post.ID,
		UserID:  userID,
		Content: req.Comment,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, UnExpectedError
	}
	return s.commentRepo.GetComment(ctx, comment.ID)
}

func (s *PostServiceImpl) GetComments(ctx context.Context, slug string) ([]*model.Comment, error) {
	post, err := s.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, UnExpectedError
	}
	return comments, nil
}

func (s *PostServiceImpl) DeleteComment(ctx context.Context, userID uint64, role string, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return UnExpectedError
	}
	if comment.UserID != userID && role != consts.RoleAdmin {
		return ErrForbidden
	}
	if err = s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return UnExpectedError
	}
	return nil
}

func (s *PostServiceImpl) AddReply(ctx context.Context, userID uint64, req *dto.ReplyDTO) (*model.Reply, error) {
	if strings.TrimSpace(req.Reply) == "" {
		return nil, ErrCommentEmpty
	}
	if _, err := s.commentRepo.GetComment(ctx, req.CommentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, UnExpectedError
	}

	reply := &model.Reply{
		CommentID: req.CommentID,
		UserID:    userID,
		Content:   req.Reply,
	}
	if err := s.commentRepo.CreateReply(ctx, reply); err != nil {
		return nil, UnExpectedError
	}
	return s.commentRepo.GetReply(ctx, reply.ID)
}

func (s *PostServiceImpl) DeleteReply(ctx context.Context, userID uint64, role string, replyID uint64) error {
	reply, err := s.commentRepo.GetReply(ctx, replyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReplyNotFound
		}
		return UnExpectedError
	}
	if reply.UserID != userID && role != consts.RoleAdmin {
		return ErrForbidden
	}
	if err = s.commentRepo.DeleteReply(ctx, replyID); err != nil {
		return UnExpectedError
	}
	return nil
}

// ToggleLike 点赞或取消点赞，结果通过 Websocket 广播给在线读者
func (s *PostServiceImpl) ToggleLike(ctx context.Context, userID uint64, postID uint64) (*dto.LikeResultDTO, error) {
	if _, err := s.postRepo.GetPost(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, UnExpectedError
	}

	existing, err := s.likeRepo.GetLike(ctx, userID, postID)
	if err != nil {
		return nil, UnExpectedError
	}

	liked := existing == nil
	if liked {
		err = s.likeRepo.CreateLike(ctx, &model.Like{UserID: userID, PostID: postID})
	} else {
		err = s.likeRepo.DeleteLike(ctx, userID, postID)
	}
	if err != nil {
		return nil, UnExpectedError
	}

	count, err := s.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, UnExpectedError
	}

	s.hub.BroadcastLikeUpdate(realtime.LikeUpdate{
		PostID:    postID,
		LikeCount: count,
		Liked:     liked,
	})

	return &dto.LikeResultDTO{Liked: liked, LikeCount: count}, nil
}

func (s *PostServiceImpl) ListLikedPosts(ctx context.Context, userID uint64) ([]*model.Post, error) {
	posts, err := s.likeRepo.ListPostsLikedByUser(ctx, userID)
	if err != nil {
		return nil, UnExpectedError
	}
	return posts, nil
}

// RecentActivity 作者帖子下最近收到的评论与点赞，按时间倒序取前 20 条
func (s *PostServiceImpl) RecentActivity(ctx context.Context, authorID uint64) ([]*dto.ActivityDTO, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, UnExpectedError
	}

	var activities []*dto.ActivityDTO
	for _, post := range posts {
		comments, err := s.commentRepo.ListByPost(ctx, post.ID)
		if err != nil {
			return nil, UnExpectedError
		}
		for _, comment := range comments {
			activities = append(activities, &dto.ActivityDTO{
				Type:      "comment",
				PostID:    post.ID,
				PostTitle: post.Title,
				Actor:     comment.User.Name,
				Content:   comment.Content,
				CreatedAt: comment.CreatedAt,
			})
			for _, reply := range comment.Replies {
				activities = append(activities, &dto.ActivityDTO{
					Type:      "reply",
					PostID:    post.ID,
					PostTitle: post.Title,
					Actor:     reply.User.Name,
					Content:   reply.Content,
					CreatedAt: reply.CreatedAt,
				})
			}
		}
		for _, like := range post.Likes {
			user, err := s.userRepo.GetUserByID(ctx, like.UserID)
			if err != nil {
				continue
			}
			activities = append(activities, &dto.ActivityDTO{
				Type:      "like",
				PostID:    post.ID,
				PostTitle: post.Title,
				Actor:     user.Name,
				CreatedAt: like.CreatedAt,
			})
		}
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	if len(activities) > 20 {
		activities = activities[:20]
	}
	return activities, nil
}

func (s *PostServiceImpl) ListAllComments(ctx context.Context) ([]*model.Comment, error) {
	comments, err := s.commentRepo.ListAll(ctx)
	if err != nil {
		return nil, UnExpectedError
	}
	return comments, nil
}
