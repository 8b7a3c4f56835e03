package service

import (
	"Orbit/internal/model"
	"Orbit/internal/repository"
	"context"
	"testing"

	"gorm.io/gorm"
)

// fakeDeleteUserRepo 记录删除调用顺序，其余方法走内嵌接口的空实现
type fakeDeleteUserRepo struct {
	repository.UserRepo
	user        *model.User
	userDeleted bool
}

func (f *fakeDeleteUserRepo) GetUserByID(_ context.Context, id uint64) (*model.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.user, nil
}

func (f *fakeDeleteUserRepo) DeleteUser(_ context.Context, _ uint64) error {
	f.userDeleted = true
	return nil
}

type fakeDeletePostRepo struct {
	repository.PostRepo
	posts    []*model.Post
	deleted  []uint64
	userRepo *fakeDeleteUserRepo
}

func (f *fakeDeletePostRepo) ListByAuthor(_ context.Context, _ uint64) ([]*model.Post, error) {
	return f.posts, nil
}

func (f *fakeDeletePostRepo) DeletePost(_ context.Context, id uint64) error {
	if f.userRepo.userDeleted {
		return gorm.ErrInvalidData
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestDeleteUserCascadesAuthoredPosts(t *testing.T) {
	userRepo := &fakeDeleteUserRepo{user: &model.User{ID: 7, Role: "AUTHOR"}}
	postRepo := &fakeDeletePostRepo{
		posts: []*model.Post{
			{ID: 11, AuthorID: 7},
			{ID: 12, AuthorID: 7},
		},
		userRepo: userRepo,
	}
	svc := NewUserService(userRepo, postRepo, nil, nil)

	if err := svc.DeleteUser(context.Background(), 7); err != nil {
		t.Fatalf("DeleteUser 失败: %v", err)
	}

	if len(postRepo.deleted) != 2 {
		t.Fatalf("用户名下帖子应全部删除，实际删除 %d 篇", len(postRepo.deleted))
	}
	if postRepo.deleted[0] != 11 || postRepo.deleted[1] != 12 {
		t.Errorf("删除的帖子不符: %v", postRepo.deleted)
	}
	if !userRepo.userDeleted {
		t.Error("帖子清理后用户本身也应删除")
	}
}

func TestDeleteUserWithoutPosts(t *testing.T) {
	userRepo := &fakeDeleteUserRepo{user: &model.User{ID: 3, Role: "USER"}}
	postRepo := &fakeDeletePostRepo{userRepo: userRepo}
	svc := NewUserService(userRepo, postRepo, nil, nil)

	if err := svc.DeleteUser(context.Background(), 3); err != nil {
		t.Fatalf("DeleteUser 失败: %v", err)
	}
	if len(postRepo.deleted) != 0 {
		t.Errorf("无帖用户不应触发帖子删除: %v", postRepo.deleted)
	}
	if !userRepo.userDeleted {
		t.Error("用户应被删除")
	}
}

func TestDeleteUserUnknown(t *testing.T) {
	userRepo := &fakeDeleteUserRepo{}
	postRepo := &fakeDeletePostRepo{userRepo: userRepo}
	svc := NewUserService(userRepo, postRepo, nil, nil)

	if err := svc.DeleteUser(context.Background(), 99); err != ErrUserNotFound {
		t.Errorf("不存在的用户应返回 ErrUserNotFound，得到 %v", err)
	}
}
