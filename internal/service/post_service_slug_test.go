package service

import (
	"Orbit/internal/repository"
	"context"
	"testing"
)

// fakeSlugRepo 只回答 SlugExists，其余方法走内嵌接口的空实现
type fakeSlugRepo struct {
	repository.PostRepo
	taken map[string]bool
}

func (f *fakeSlugRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	return f.taken[slug], nil
}

func TestUniqueSlug(t *testing.T) {
	repo := &fakeSlugRepo{taken: map[string]bool{}}
	slug, err := uniqueSlug(context.Background(), repo, "Hello World")
	if err != nil {
		t.Fatalf("uniqueSlug 失败: %v", err)
	}
	if slug != "hello-world" {
		t.Errorf("期望 hello-world，得到 %s", slug)
	}
}

func TestUniqueSlugConflict(t *testing.T) {
	repo := &fakeSlugRepo{taken: map[string]bool{
		"hello-world":   true,
		"hello-world-1": true,
	}}
	slug, err := uniqueSlug(context.Background(), repo, "Hello World")
	if err != nil {
		t.Fatalf("uniqueSlug 失败: %v", err)
	}
	if slug != "hello-world-2" {
		t.Errorf("冲突时应追加后缀，期望 hello-world-2，得到 %s", slug)
	}
}

func TestUniqueSlugEmptyTitle(t *testing.T) {
	repo := &fakeSlugRepo{taken: map[string]bool{}}
	slug, err := uniqueSlug(context.Background(), repo, "!!!")
	if err != nil {
		t.Fatalf("uniqueSlug 失败: %v", err)
	}
	if slug != "post" {
		t.Errorf("无有效字符时应回退到 post，得到 %s", slug)
	}
}
