package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinhadasgracas/storefront-service/internal/domain"
)

type fakeBlogRepo struct {
	mu    sync.Mutex
	posts map[string]*domain.BlogPost
}

func newFakeBlogRepo(posts ...*domain.BlogPost) *fakeBlogRepo {
	repo := &fakeBlogRepo{posts: make(map[string]*domain.BlogPost)}
	for _, post := range posts {
		copied := *post
		repo.posts[post.ID] = &copied
	}
	return repo
}

func (r *fakeBlogRepo) CreateBlogPost(post *domain.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakeBlogRepo) UpdateBlogPost(post *domain.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *post
	r.posts[post.ID] = &copied
	return nil
}

func (r *fakeBlogRepo) DeleteBlogPost(postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, postID)
	return nil
}

func (r *fakeBlogRepo) GetBlogPostByID(postID string) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[postID]
	if !ok {
		return nil, domain.ErrBlogPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (r *fakeBlogRepo) GetBlogPostBySlug(storeID, slug string) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, post := range r.posts {
		if post.StoreID == storeID && post.Slug == slug {
			copied := *post
			return &copied, nil
		}
	}
	return nil, domain.ErrBlogPostNotFound
}

func (r *fakeBlogRepo) GetBlogPostsByStoreID(storeID string, publishedOnly bool) ([]*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var posts []*domain.BlogPost
	for _, post := range r.posts {
		if post.StoreID != storeID {
			continue
		}
		if publishedOnly && !post.Published {
			continue
		}
		copied := *post
		posts = append(posts, &copied)
	}
	return posts, nil
}

type fakeWishlistRepo struct {
	mu    sync.Mutex
	items map[string]*domain.WishlistItem
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: make(map[string]*domain.WishlistItem)}
}

func (r *fakeWishlistRepo) AddWishlistItem(item *domain.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeWishlistRepo) RemoveWishlistItem(storeID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok || item.StoreID != storeID {
		return domain.ErrWishlistItemNotFound
	}
	delete(r.items, itemID)
	return nil
}

func (r *fakeWishlistRepo) GetWishlistByEmail(storeID, customerEmail string) ([]*domain.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []*domain.WishlistItem
	for _, item := range r.items {
		if item.StoreID == storeID && item.CustomerEmail == customerEmail {
			copied := *item
			items = append(items, &copied)
		}
	}
	return items, nil
}

func testBlogPost(id, storeID, slug, title string) *domain.BlogPost {
	now := time.Now().Add(-time.Hour)
	return &domain.BlogPost{
		ID:        id,
		StoreID:   storeID,
		Title:     title,
		Slug:      slug,
		Body:      "corpo",
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newContentUsecaseWithBlog(blogRepo *fakeBlogRepo) *DefaultContentUsecase {
	return NewDefaultContentUsecase(nil, newFakeWishlistRepo(), blogRepo, nil, nil)
}

func TestUpdateBlogPostRenamesSlug(t *testing.T) {
	blogRepo := newFakeBlogRepo(testBlogPost("post-a", testStoreID, "lancamento", "Lançamento"))
	uc := newContentUsecaseWithBlog(blogRepo)

	err := uc.UpdateBlogPost(&domain.BlogPost{
		ID:        "post-a",
		Title:     "Lançamento de inverno",
		Slug:      "lancamento-inverno",
		Body:      "corpo novo",
		Published: true,
	}, testStoreID)
	require.NoError(t, err)

	renamed, err := uc.GetBlogPostBySlug(testStoreID, "lancamento-inverno")
	require.NoError(t, err)
	assert.Equal(t, "post-a", renamed.ID)
	assert.Equal(t, "Lançamento de inverno", renamed.Title)

	_, err = uc.GetBlogPostBySlug(testStoreID, "lancamento")
	assert.ErrorIs(t, err, domain.ErrBlogPostNotFound)
}

func TestUpdateBlogPostRejectsSlugCollision(t *testing.T) {
	blogRepo := newFakeBlogRepo(
		testBlogPost("post-a", testStoreID, "velas", "Velas"),
		testBlogPost("post-b", testStoreID, "ceramica", "Cerâmica"),
	)
	uc := newContentUsecaseWithBlog(blogRepo)

	err := uc.UpdateBlogPost(&domain.BlogPost{
		ID:    "post-a",
		Title: "Velas renomeada",
		Slug:  "ceramica",
		Body:  "corpo",
	}, testStoreID)
	assert.ErrorIs(t, err, domain.ErrBlogSlugTaken)

	// the colliding post is untouched
	other, err := uc.GetBlogPostBySlug(testStoreID, "ceramica")
	require.NoError(t, err)
	assert.Equal(t, "post-b", other.ID)
	assert.Equal(t, "Cerâmica", other.Title)
}

func TestUpdateBlogPostKeepsSlugWithoutCollisionCheck(t *testing.T) {
	blogRepo := newFakeBlogRepo(testBlogPost("post-a", testStoreID, "velas", "Velas"))
	uc := newContentUsecaseWithBlog(blogRepo)

	err := uc.UpdateBlogPost(&domain.BlogPost{
		ID:    "post-a",
		Title: "Velas artesanais",
		Slug:  "velas",
		Body:  "corpo",
	}, testStoreID)
	require.NoError(t, err)

	updated, err := uc.GetBlogPostBySlug(testStoreID, "velas")
	require.NoError(t, err)
	assert.Equal(t, "Velas artesanais", updated.Title)
}

func TestUpdateBlogPostScoping(t *testing.T) {
	blogRepo := newFakeBlogRepo(testBlogPost("post-a", "outra-loja", "velas", "Velas"))
	uc := newContentUsecaseWithBlog(blogRepo)

	err := uc.UpdateBlogPost(&domain.BlogPost{
		ID:    "post-a",
		Title: "Velas",
		Slug:  "velas",
		Body:  "corpo",
	}, testStoreID)
	assert.ErrorIs(t, err, domain.ErrStoreScopeMismatch)
}

func TestRemoveWishlistItemScoping(t *testing.T) {
	wishlistRepo := newFakeWishlistRepo()
	uc := NewDefaultContentUsecase(nil, wishlistRepo, newFakeBlogRepo(), nil, nil)

	created, err := uc.AddWishlistItem(&domain.WishlistItem{
		StoreID:       testStoreID,
		CustomerEmail: "maria@example.com",
		ProductID:     "p1",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.RemoveWishlistItem(created.ID, "outra-loja"), domain.ErrWishlistItemNotFound)

	require.NoError(t, uc.RemoveWishlistItem(created.ID, testStoreID))
	items, err := uc.GetWishlistByEmail(testStoreID, "maria@example.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}
