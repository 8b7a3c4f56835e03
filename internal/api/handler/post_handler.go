package handler

import (
	"Orbit/internal/api/dto"
	"Orbit/internal/pkg/response"
	"Orbit/internal/pkg/util"
	"Orbit/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	image, _ := c.FormFile("featuredImage")
	post, err := s.postSvc.CreatePost(c.Request.Context(), c.GetUint64("user_id"), &req, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "post", post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.UpdatePostDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	image, _ := c.FormFile("featuredImage")
	post, err := s.postSvc.UpdatePost(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), postID, &req, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "post", post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.postSvc.DeletePost(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Post deleted successfully")
}

func (s *PostHandler) PublishPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.postSvc.PublishPost(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Post published successfully")
}

func (s *PostHandler) UnpublishPost(c *gin.Context) {
	var req dto.UnpublishPostDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.postSvc.UnpublishPost(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Post unpublished successfully")
}

func (s *PostHandler) GetPostBySlug(c *gin.Context) {
	post, err := s.postSvc.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "post", post)
}

func (s *PostHandler) IncrementViews(c *gin.Context) {
	if err := s.postSvc.IncrementViews(c.Request.Context(), c.Param("slug")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "View recorded")
}

func (s *PostHandler) ListPublished(c *gin.Context) {
	posts, err := s.postSvc.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "posts", posts)
}

func (s *PostHandler) ListMine(c *gin.Context) {
	posts, err := s.postSvc.ListByAuthor(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "posts", posts)
}

func (s *PostHandler) ListAll(c *gin.Context) {
	posts, err := s.postSvc.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "posts", posts)
}

func (s *PostHandler) AddComment(c *gin.Context) {
	var req dto.CommentDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.postSvc.AddComment(c.Request.Context(), c.GetUint64("user_id"), c.Param("slug"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "comment", comment)
}

func (s *PostHandler) GetComments(c *gin.Context) {
	comments, err := s.postSvc.GetComments(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "comments", comments)
}

func (s *PostHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.postSvc.DeleteComment(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Comment deleted successfully")
}

func (s *PostHandler) AddReply(c *gin.Context) {
	var req dto.ReplyDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	reply, err := s.postSvc.AddReply(c.Request.Context(), c.GetUint64("user_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "reply", reply)
}

func (s *PostHandler) DeleteReply(c *gin.Context) {
	replyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err = s.postSvc.DeleteReply(c.Request.Context(), c.GetUint64("user_id"), c.GetString("role"), replyID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Reply deleted successfully")
}

func (s *PostHandler) ToggleLike(c *gin.Context) {
	var req dto.LikeDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.postSvc.ToggleLike(c.Request.Context(), c.GetUint64("user_id"), req.PostID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "like", result)
}

func (s *PostHandler) ListLikedPosts(c *gin.Context) {
	posts, err := s.postSvc.ListLikedPosts(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "posts", posts)
}

func (s *PostHandler) RecentActivity(c *gin.Context) {
	activities, err := s.postSvc.RecentActivity(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "activities", activities)
}

func (s *PostHandler) ListAllComments(c *gin.Context) {
	comments, err := s.postSvc.ListAllComments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "comments", comments)
}
