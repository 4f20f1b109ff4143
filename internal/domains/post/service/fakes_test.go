package service

import (
	"context"
	"sort"
	"sync"
	"time"

	categoryModel "blogicum-backend/internal/domains/category/model"
	commentModel "blogicum-backend/internal/domains/comment/model"
	locationModel "blogicum-backend/internal/domains/location/model"
	"blogicum-backend/internal/domains/post/model"
	"blogicum-backend/internal/domains/post/repository"
	userModel "blogicum-backend/internal/domains/user/model"
	"blogicum-backend/internal/domains/visibility"
)

// memoryPostRepository applies PostFilter with the same gates the SQL
// predicate renders, so service tests can run without Postgres.
type memoryPostRepository struct {
	mu         sync.Mutex
	nextID     int64
	posts      map[int64]*model.Post
	users      map[int64]string
	categories map[int64]*categoryModel.Category
	locations  map[int64]*locationModel.Location
	comments   map[int64][]*commentModel.Comment
}

func newMemoryPostRepository() *memoryPostRepository {
	return &memoryPostRepository{
		posts:      make(map[int64]*model.Post),
		users:      make(map[int64]string),
		categories: make(map[int64]*categoryModel.Category),
		locations:  make(map[int64]*locationModel.Location),
		comments:   make(map[int64][]*commentModel.Comment),
	}
}

func (r *memoryPostRepository) hydrate(p *model.Post) *model.Post {
	out := *p
	out.AuthorUsername = r.users[p.AuthorID]
	out.Category = nil
	out.Location = nil
	if p.CategoryID != nil {
		if c, ok := r.categories[*p.CategoryID]; ok {
			out.Category = &model.CategoryRef{ID: c.ID, Title: c.Title, Slug: c.Slug, IsPublished: c.IsPublished}
		}
	}
	if p.LocationID != nil {
		if l, ok := r.locations[*p.LocationID]; ok {
			out.Location = &model.LocationRef{ID: l.ID, Name: l.Name, IsPublished: l.IsPublished}
		}
	}
	out.CommentCount = len(r.comments[p.ID])
	return &out
}

func (r *memoryPostRepository) matching(f repository.PostFilter) []*model.Post {
	var out []*model.Post
	for _, p := range r.posts {
		h := r.hydrate(p)
		if f.AuthorID != nil && h.AuthorID != *f.AuthorID {
			continue
		}
		if f.CategoryID != nil && (h.CategoryID == nil || *h.CategoryID != *f.CategoryID) {
			continue
		}
		if f.OnlyVisible && !visibility.IsPublic(h.Subject(), f.Now) {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.After(out[j].PubDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *memoryPostRepository) List(ctx context.Context, f repository.PostFilter) ([]*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.matching(f)
	if f.Offset >= len(all) {
		return []*model.Post{}, nil
	}
	all = all[f.Offset:]
	if f.Limit > 0 && len(all) > f.Limit {
		all = all[:f.Limit]
	}
	return all, nil
}

func (r *memoryPostRepository) Count(ctx context.Context, f repository.PostFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.matching(f)), nil
}

func (r *memoryPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	return r.hydrate(p), nil
}

func (r *memoryPostRepository) Create(ctx context.Context, p *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	stored := *p
	r.posts[p.ID] = &stored
	return nil
}

func (r *memoryPostRepository) Update(ctx context.Context, p *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[p.ID]; !ok {
		return model.ErrPostNotFound
	}
	stored := *p
	r.posts[p.ID] = &stored
	return nil
}

func (r *memoryPostRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return model.ErrPostNotFound
	}
	delete(r.posts, id)
	delete(r.comments, id)
	return nil
}

// The same store answers the user, category, location and comment lookups.

type usersResolver struct{ repo *memoryPostRepository }

func (u usersResolver) GetByUsername(ctx context.Context, username string) (*userModel.User, error) {
	for id, name := range u.repo.users {
		if name == username {
			return &userModel.User{ID: id, Username: name}, nil
		}
	}
	return nil, userModel.NewUserNotFoundError()
}

type categoriesResolver struct{ repo *memoryPostRepository }

func (c categoriesResolver) GetPublishedBySlug(ctx context.Context, slug string) (*categoryModel.Category, error) {
	for _, cat := range c.repo.categories {
		if cat.Slug == slug && cat.IsPublished {
			return cat, nil
		}
	}
	return nil, categoryModel.NewCategoryNotFoundError()
}

func (c categoriesResolver) GetByID(ctx context.Context, id int64) (*categoryModel.Category, error) {
	if cat, ok := c.repo.categories[id]; ok {
		return cat, nil
	}
	return nil, categoryModel.NewCategoryNotFoundError()
}

type locationsResolver struct{ repo *memoryPostRepository }

func (l locationsResolver) GetByID(ctx context.Context, id int64) (*locationModel.Location, error) {
	if loc, ok := l.repo.locations[id]; ok {
		return loc, nil
	}
	return nil, locationModel.NewLocationNotFoundError()
}

type commentsLister struct{ repo *memoryPostRepository }

func (c commentsLister) ListByPost(ctx context.Context, postID int64) ([]*commentModel.Comment, error) {
	return c.repo.comments[postID], nil
}

type scheduledPublication struct {
	PostID int64
	At     time.Time
}

type recordingScheduler struct {
	mu    sync.Mutex
	calls []scheduledPublication
}

func (s *recordingScheduler) SchedulePublication(ctx context.Context, postID int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, scheduledPublication{PostID: postID, At: at})
	return nil
}
