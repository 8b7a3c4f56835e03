package handler

import (
	"Orbit/internal/api/dto"
	"Orbit/internal/pkg/response"
	"Orbit/internal/pkg/util"
	"Orbit/internal/service"

	"github.com/gin-gonic/gin"
)

type FeatureHandler struct {
	featureSvc service.FeatureService
}

func NewFeatureHandler(featureSvc service.FeatureService) *FeatureHandler {
	return &FeatureHandler{
		featureSvc: featureSvc,
	}
}

func (s *FeatureHandler) RelatedPosts(c *gin.Context) {
	var req dto.RelatedPostDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	posts, err := s.featureSvc.RelatedPosts(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "posts", posts)
}

func (s *FeatureHandler) FeaturedPosts(c *gin.Context) {
	posts, err := s.featureSvc.FeaturedPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "posts", posts)
}

func (s *FeatureHandler) LatestPosts(c *gin.Context) {
	posts, err := s.featureSvc.LatestPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "posts", posts)
}

func (s *FeatureHandler) PopularTags(c *gin.Context) {
	tags, err := s.featureSvc.PopularTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "tags", tags)
}

func (s *FeatureHandler) FeaturedAuthor(c *gin.Context) {
	author, err := s.featureSvc.FeaturedAuthor(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "author", author)
}

func (s *FeatureHandler) ListCategories(c *gin.Context) {
	categories, err := s.featureSvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "categories", categories)
}

func (s *FeatureHandler) ListTags(c *gin.Context) {
	tags, err := s.featureSvc.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "tags", tags)
}

func (s *FeatureHandler) EditCategory(c *gin.Context) {
	var req dto.EditCategoryDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.featureSvc.EditCategory(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Category updated successfully")
}

func (s *FeatureHandler) EditTag(c *gin.Context) {
	var req dto.EditTagDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.featureSvc.EditTag(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Tag updated successfully")
}
