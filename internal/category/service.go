// Package category 栏目树和栏目管理
package category

import (
	"context"
	"errors"
	"strings"

	"newsbangla24/portal/internal/article"
	"newsbangla24/portal/internal/listing"
	"newsbangla24/portal/internal/locale"
	"newsbangla24/portal/internal/model/category"
	"newsbangla24/portal/pkg/response"
)

// ArticleLister 栏目页的文章列表
type ArticleLister interface {
	List(ctx context.Context, q article.ListQuery, lang locale.Lang) (*response.PageData, error)
}

type CategoryService struct {
	repo     Repository
	articles ArticleLister
}

func NewCategoryService(repo Repository, articles ArticleLister) *CategoryService {
	return &CategoryService{repo: repo, articles: articles}
}

// buildTree 组装两级栏目树；父栏目的文章数包含子栏目
// 父栏目不在 cats 中（如已停用）的子栏目被丢弃
func buildTree(cats []category.Category, counts map[uint]int64, lang locale.Lang) []*Node {
	nodes := make(map[uint]*Node, len(cats))
	for _, c := range cats {
		nodes[c.ID] = &Node{
			ID:           c.ID,
			Slug:         c.Slug,
			Name:         locale.Pick(c.Name, lang),
			Description:  locale.Pick(c.Description, lang),
			Color:        c.Color,
			ArticleCount: counts[c.ID],
		}
	}

	roots := make([]*Node, 0, len(cats))
	for _, c := range cats {
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Children = append(parent.Children, node)
			parent.ArticleCount += node.ArticleCount
		}
	}
	return roots
}

// Tree 启用中的栏目树，附已发布文章数
func (s *CategoryService) Tree(ctx context.Context, lang locale.Lang) ([]*Node, error) {
	cats, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, response.NewInternal("failed to load categories", err)
	}
	counts, err := s.repo.ArticleCounts(ctx, true)
	if err != nil {
		return nil, response.NewInternal("failed to count articles", err)
	}
	return buildTree(cats, counts, lang), nil
}

// Detail 栏目信息和一页已发布文章
func (s *CategoryService) Detail(ctx context.Context, slug string, lang locale.Lang, page, pageSize int, sort string) (*DetailResponse, error) {
	tree, err := s.Tree(ctx, lang)
	if err != nil {
		return nil, err
	}
	node := findNode(tree, slug)
	if node == nil {
		return nil, response.NewNotFound("category not found")
	}

	articles, err := s.articles.List(ctx, article.ListQuery{
		Category: slug,
		Sort:     sort,
		Page:     page,
		PageSize: pageSize,
	}, lang)
	if err != nil {
		return nil, err
	}
	return &DetailResponse{Category: node, Articles: articles}, nil
}

func findNode(nodes []*Node, slug string) *Node {
	for _, n := range nodes {
		if n.Slug == slug {
			return n
		}
		if found := findNode(n.Children, slug); found != nil {
			return found
		}
	}
	return nil
}

// AdminList 全部栏目（含停用），按双语名称和 slug 在内存中搜索
func (s *CategoryService) AdminList(ctx context.Context, q string) ([]category.Category, error) {
	cats, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, response.NewInternal("failed to load categories", err)
	}
	counts, err := s.repo.ArticleCounts(ctx, false)
	if err != nil {
		return nil, response.NewInternal("failed to count articles", err)
	}
	for i := range cats {
		cats[i].ArticleCount = counts[cats[i].ID]
	}
	return listing.Filter(cats, q, func(c category.Category) []string {
		return c.SearchFields()
	}), nil
}

func (s *CategoryService) load(ctx context.Context, id uint) (*category.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, response.NewNotFound("category not found")
	}
	if err != nil {
		return nil, response.NewInternal("failed to load category", err)
	}
	return c, nil
}

// apply 校验名称、slug 和父栏目后写入 c
func (s *CategoryService) apply(ctx context.Context, c *category.Category, req CategoryRequest) error {
	name := locale.Localized{Bn: strings.TrimSpace(req.Name.Bn), En: strings.TrimSpace(req.Name.En)}
	if name.IsEmpty() {
		return response.NewInvalid("name is required in Bengali or English")
	}

	slug := article.Slugify(req.Slug)
	if slug == "" {
		slug = article.Slugify(name.En)
	}
	if slug == "" {
		return response.NewInvalid("slug is required when the name has no English text")
	}
	exists, err := s.repo.SlugExists(ctx, slug, c.ID)
	if err != nil {
		return response.NewInternal("failed to check slug", err)
	}
	if exists {
		return response.NewConflict("slug already in use")
	}

	if req.ParentID != nil {
		if *req.ParentID == c.ID && c.ID != 0 {
			return response.NewInvalid("a category cannot be its own parent")
		}
		parent, err := s.repo.FindByID(ctx, *req.ParentID)
		if errors.Is(err, ErrNotFound) {
			return response.NewInvalid("parent category does not exist")
		}
		if err != nil {
			return response.NewInternal("failed to load parent category", err)
		}
		if parent.ParentID != nil {
			return response.NewInvalid("categories can only be nested one level deep")
		}
		if c.ID != 0 {
			children, err := s.repo.CountChildren(ctx, c.ID)
			if err != nil {
				return response.NewInternal("failed to check subcategories", err)
			}
			if children > 0 {
				return response.NewInvalid("a category with subcategories cannot have a parent")
			}
		}
	}

	c.Name = name
	c.Slug = slug
	c.Description = req.Description
	c.ParentID = req.ParentID
	c.Color = strings.TrimSpace(req.Color)
	c.SortOrder = req.SortOrder
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	return nil
}

// Create 新建栏目，默认启用
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (*category.Category, error) {
	c := &category.Category{IsActive: true}
	if err := s.apply(ctx, c, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, response.NewInternal("failed to create category", err)
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req CategoryRequest) (*category.Category, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, c, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, response.NewInternal("failed to update category", err)
	}
	return c, nil
}

// Delete 仍有文章或子栏目时拒绝删除
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}

	counts, err := s.repo.ArticleCounts(ctx, false)
	if err != nil {
		return response.NewInternal("failed to count articles", err)
	}
	if counts[id] > 0 {
		return response.NewConflict("category still has articles")
	}
	children, err := s.repo.CountChildren(ctx, id)
	if err != nil {
		return response.NewInternal("failed to check subcategories", err)
	}
	if children > 0 {
		return response.NewConflict("category still has subcategories")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return response.NewInternal("failed to delete category", err)
	}
	return nil
}
