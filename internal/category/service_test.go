package category

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsbangla24/portal/internal/article"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/model/category"
	"newsbangla24/portal/internal/testutils"
	"newsbangla24/portal/pkg/response"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context, activeOnly bool) ([]category.Category, error) {
	args := m.Called(ctx, activeOnly)
	cats, _ := args.Get(0).([]category.Category)
	return cats, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *mockRepository) FindBySlug(ctx context.Context, slug string) (*category.Category, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *mockRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, c *category.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) Update(ctx context.Context, c *category.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) ArticleCounts(ctx context.Context, publishedOnly bool) (map[uint]int64, error) {
	args := m.Called(ctx, publishedOnly)
	counts, _ := args.Get(0).(map[uint]int64)
	return counts, args.Error(1)
}

func (m *mockRepository) CountChildren(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type stubLister struct {
	got article.ListQuery
}

func (s *stubLister) List(_ context.Context, q article.ListQuery, _ locale.Lang) (*response.PageData, error) {
	s.got = q
	return &response.PageData{Items: []article.Summary{}, Page: 1, PageSize: 20}, nil
}

func uintPtr(v uint) *uint { return &v }

func sampleCategories() []category.Category {
	return []category.Category{
		{ID: 1, Slug: "sports", Name: locale.Localized{Bn: "খেলা", En: "Sports"}, IsActive: true},
		{ID: 2, Slug: "cricket", Name: locale.Localized{Bn: "ক্রিকেট"}, ParentID: uintPtr(1), IsActive: true},
		{ID: 3, Slug: "politics", Name: locale.Localized{Bn: "রাজনীতি", En: "Politics"}, IsActive: true},
		{ID: 4, Slug: "orphan", ParentID: uintPtr(99), IsActive: true},
	}
}

func codeOf(t *testing.T, err error) response.ResponseCode {
	t.Helper()
	var be *response.BusinessError
	require.ErrorAs(t, err, &be)
	return be.Code
}

func TestBuildTree(t *testing.T) {
	tree := buildTree(sampleCategories(), map[uint]int64{1: 2, 2: 3, 3: 1}, locale.English)

	require.Len(t, tree, 2)
	assert.Equal(t, "Sports", tree[0].Name)
	assert.Equal(t, int64(5), tree[0].ArticleCount, "parent count includes children")
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "ক্রিকেট", tree[0].Children[0].Name, "falls back to Bengali")
	assert.Equal(t, int64(3), tree[0].Children[0].ArticleCount)
	assert.Equal(t, "politics", tree[1].Slug)
}

func TestCategoryServiceDetail(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	lister := &stubLister{}
	svc := NewCategoryService(repo, lister)

	repo.On("List", ctx, true).Return(sampleCategories(), nil)
	repo.On("ArticleCounts", ctx, true).Return(map[uint]int64{2: 4}, nil)

	result, err := svc.Detail(ctx, "cricket", locale.Bengali, 2, 10, "popular")
	require.NoError(t, err)
	assert.Equal(t, "ক্রিকেট", result.Category.Name)
	assert.Equal(t, int64(4), result.Category.ArticleCount)
	assert.Equal(t, article.ListQuery{Category: "cricket", Sort: "popular", Page: 2, PageSize: 10}, lister.got)

	_, err = svc.Detail(ctx, "weather", locale.Bengali, 1, 20, "")
	assert.Equal(t, response.NotFound, codeOf(t, err))
}

func TestCategoryServiceAdminListFilters(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewCategoryService(repo, &stubLister{})

	repo.On("List", ctx, false).Return(sampleCategories(), nil)
	repo.On("ArticleCounts", ctx, false).Return(map[uint]int64{3: 7}, nil)

	cats, err := svc.AdminList(ctx, "রাজনীতি")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, uint(3), cats[0].ID)
	assert.Equal(t, int64(7), cats[0].ArticleCount)
}

func TestCategoryServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("slug from english name", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewCategoryService(repo, &stubLister{})
		repo.On("SlugExists", ctx, "science-tech", uint(0)).Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		c, err := svc.Create(ctx, CategoryRequest{Name: locale.Localized{Bn: "বিজ্ঞান", En: "Science & Tech"}})
		require.NoError(t, err)
		assert.Equal(t, "science-tech", c.Slug)
		assert.True(t, c.IsActive)
	})

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewCategoryService(repo, &stubLister{})
		repo.On("SlugExists", ctx, "sports", uint(0)).Return(true, nil)

		_, err := svc.Create(ctx, CategoryRequest{Name: locale.Localized{En: "Sports"}})
		assert.Equal(t, response.Conflict, codeOf(t, err))
	})

	t.Run("bengali only name needs a slug", func(t *testing.T) {
		svc := NewCategoryService(new(mockRepository), &stubLister{})
		_, err := svc.Create(ctx, CategoryRequest{Name: locale.Localized{Bn: "খেলা"}})
		assert.Equal(t, response.InvalidParameter, codeOf(t, err))
	})

	t.Run("parent must exist and be top level", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewCategoryService(repo, &stubLister{})
		repo.On("SlugExists", ctx, mock.Anything, uint(0)).Return(false, nil)
		repo.On("FindByID", ctx, uint(99)).Return(nil, ErrNotFound)
		repo.On("FindByID", ctx, uint(2)).Return(&category.Category{ID: 2, ParentID: uintPtr(1)}, nil)

		_, err := svc.Create(ctx, CategoryRequest{Name: locale.Localized{En: "Football"}, ParentID: uintPtr(99)})
		assert.Equal(t, response.InvalidParameter, codeOf(t, err))

		_, err = svc.Create(ctx, CategoryRequest{Name: locale.Localized{En: "Football"}, ParentID: uintPtr(2)})
		assert.Equal(t, response.InvalidParameter, codeOf(t, err))
	})
}

func TestCategoryServiceUpdateRejectsSelfParent(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewCategoryService(repo, &stubLister{})
	repo.On("FindByID", ctx, uint(3)).Return(&category.Category{ID: 3, Slug: "politics"}, nil)
	repo.On("SlugExists", ctx, "politics", uint(3)).Return(false, nil)

	_, err := svc.Update(ctx, 3, CategoryRequest{Name: locale.Localized{En: "Politics"}, ParentID: uintPtr(3)})
	assert.Equal(t, response.InvalidParameter, codeOf(t, err))
}

func TestCategoryServiceDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewCategoryService(repo, &stubLister{})

	repo.On("FindByID", ctx, mock.Anything).Return(&category.Category{}, nil)
	repo.On("ArticleCounts", ctx, false).Return(map[uint]int64{1: 3}, nil)
	repo.On("CountChildren", ctx, uint(1)).Return(int64(0), nil)
	repo.On("CountChildren", ctx, uint(2)).Return(int64(2), nil)
	repo.On("CountChildren", ctx, uint(3)).Return(int64(0), nil)
	repo.On("Delete", ctx, uint(3)).Return(nil)

	assert.Equal(t, response.Conflict, codeOf(t, svc.Delete(ctx, 1)), "has articles")
	assert.Equal(t, response.Conflict, codeOf(t, svc.Delete(ctx, 2)), "has children")
	assert.NoError(t, svc.Delete(ctx, 3))
	repo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestCategoryHandlerTree(t *testing.T) {
	repo := new(mockRepository)
	repo.On("List", mock.Anything, true).Return(sampleCategories(), nil)
	repo.On("ArticleCounts", mock.Anything, true).Return(map[uint]int64{}, nil)

	handler := NewCategoryHandler(NewCategoryService(repo, &stubLister{}))
	r := testutils.NewRouter(nil)
	r.GET("/categories", handler.Tree)

	w := testutils.DoJSON(t, r, http.MethodGet, "/categories?lang=en", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var nodes []Node
	testutils.DecodeResponse(t, w, &nodes)
	require.Len(t, nodes, 2)
	assert.Equal(t, "Sports", nodes[0].Name)
}
