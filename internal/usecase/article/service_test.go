package article_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"pressbox/internal/common/pagination"
	"pressbox/internal/domain/entity"
	"pressbox/internal/usecase/article"
)

/* ───────── stub article repository ───────── */

type stubArticles struct {
	byID   map[int64]*entity.Article
	nextID int64
	err    error
}

func newStubArticles(articles ...*entity.Article) *stubArticles {
	s := &stubArticles{byID: map[int64]*entity.Article{}, nextID: 1}
	for _, a := range articles {
		s.byID[a.ID] = a
		if a.ID >= s.nextID {
			s.nextID = a.ID + 1
		}
	}
	return s
}

func (s *stubArticles) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	s.nextID++
	cp := *a
	s.byID[a.ID] = &cp
	return nil
}

func (s *stubArticles) Get(_ context.Context, id int64) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *stubArticles) Update(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	stored, ok := s.byID[a.ID]
	if !ok {
		return errors.New("no such article")
	}
	stored.Title = a.Title
	stored.Text = a.Text
	return nil
}

func (s *stubArticles) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.byID, id)
	return nil
}

func (s *stubArticles) sorted() []*entity.Article {
	all := make([]*entity.Article, 0, len(s.byID))
	for _, a := range s.byID {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DatePosted.After(all[j].DatePosted) })
	return all
}

func (s *stubArticles) ListPaginated(_ context.Context, offset, limit int) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return slice(s.sorted(), offset, limit), nil
}

func (s *stubArticles) ListByUserPaginated(_ context.Context, userID int64, offset, limit int) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var mine []*entity.Article
	for _, a := range s.sorted() {
		if a.UserID == userID {
			mine = append(mine, a)
		}
	}
	return slice(mine, offset, limit), nil
}

func (s *stubArticles) CountArticles(_ context.Context) (int64, error) {
	return int64(len(s.byID)), s.err
}

func slice(all []*entity.Article, offset, limit int) []*entity.Article {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

func newService(repo *stubArticles) *article.Service {
	return &article.Service{Repo: repo, Pages: pagination.Config{PageSize: 2}}
}

func posted(id, userID int64, title string, minutesAgo int) *entity.Article {
	return &entity.Article{
		ID:         id,
		UserID:     userID,
		Title:      title,
		Text:       "body of " + title,
		DatePosted: time.Now().Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

/* ───────── Create ───────── */

func TestCreate(t *testing.T) {
	repo := newStubArticles()
	svc := newService(repo)

	art, err := svc.Create(context.Background(), 1, "First Post", "Hello world.")
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if art.ID == 0 {
		t.Fatal("ID not assigned")
	}
	if art.UserID != 1 {
		t.Fatalf("UserID=%d, want 1", art.UserID)
	}
	if art.DatePosted.IsZero() {
		t.Fatal("DatePosted not set")
	}
}

func TestCreate_MissingFields(t *testing.T) {
	svc := newService(newStubArticles())

	_, err := svc.Create(context.Background(), 1, "", "some text")
	var verr *entity.ValidationError
	if !errors.As(err, &verr) || verr.Field != "Article title" {
		t.Fatalf("missing title err=%v, want ValidationError{Article title}", err)
	}

	_, err = svc.Create(context.Background(), 1, "a title", "")
	if !errors.As(err, &verr) || verr.Field != "Article text" {
		t.Fatalf("missing text err=%v, want ValidationError{Article text}", err)
	}
}

/* ───────── Get ───────── */

func TestGet(t *testing.T) {
	repo := newStubArticles(posted(3, 1, "Kept", 5))
	svc := newService(repo)

	art, err := svc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if art.Title != "Kept" {
		t.Fatalf("Title=%q, want Kept", art.Title)
	}

	_, err = svc.Get(context.Background(), 99)
	var nf *entity.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("missing article err=%v, want NotFoundError", err)
	}
	if nf.Error() != "Article with id=99 was not found" {
		t.Fatalf("message=%q", nf.Error())
	}
}

/* ───────── List / ListByUser ───────── */

func TestList_OrderAndPaging(t *testing.T) {
	repo := newStubArticles(
		posted(1, 1, "oldest", 30),
		posted(2, 2, "middle", 20),
		posted(3, 1, "newest", 10),
	)
	svc := newService(repo) // page size 2

	page1, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(page1) != 2 || page1[0].Title != "newest" || page1[1].Title != "middle" {
		t.Fatalf("page1=%v", titles(page1))
	}

	page2, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(page2) != 1 || page2[0].Title != "oldest" {
		t.Fatalf("page2=%v", titles(page2))
	}

	empty, err := svc.List(context.Background(), 3)
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("page3=%v, want empty", titles(empty))
	}
}

func TestListByUser(t *testing.T) {
	repo := newStubArticles(
		posted(1, 1, "mine-old", 30),
		posted(2, 2, "theirs", 20),
		posted(3, 1, "mine-new", 10),
	)
	svc := newService(repo)

	mine, err := svc.ListByUser(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("ListByUser err=%v", err)
	}
	if len(mine) != 2 || mine[0].Title != "mine-new" || mine[1].Title != "mine-old" {
		t.Fatalf("got %v", titles(mine))
	}

	none, err := svc.ListByUser(context.Background(), 42, 1)
	if err != nil {
		t.Fatalf("ListByUser err=%v", err)
	}
	if len(none) != 0 {
		t.Fatalf("unknown user got %v, want empty", titles(none))
	}
}

func titles(articles []*entity.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Title
	}
	return out
}

/* ───────── Update ───────── */

func TestUpdate(t *testing.T) {
	repo := newStubArticles(posted(1, 7, "Draft", 5))
	svc := newService(repo)
	owner := &entity.User{ID: 7, Username: "alice"}

	art, err := svc.Update(context.Background(), owner, 1, "Final", "Polished text.")
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if art.Title != "Final" || art.Text != "Polished text." {
		t.Fatalf("updated article=%+v", art)
	}

	stored, _ := repo.Get(context.Background(), 1)
	if stored.Title != "Final" {
		t.Fatalf("store not updated: %+v", stored)
	}
}

func TestUpdate_CheckOrder(t *testing.T) {
	repo := newStubArticles(posted(1, 7, "Draft", 5))
	svc := newService(repo)
	owner := &entity.User{ID: 7, Username: "alice"}
	stranger := &entity.User{ID: 8, Username: "bobby"}

	// Missing article reports not found even for a non-owner with bad fields.
	_, err := svc.Update(context.Background(), stranger, 99, "", "")
	var nf *entity.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("missing article err=%v, want NotFoundError", err)
	}

	// Ownership is checked before field validation.
	_, err = svc.Update(context.Background(), stranger, 1, "", "")
	var forbidden *entity.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("non-owner err=%v, want ForbiddenError", err)
	}

	// Owner with a missing field gets the validation error.
	_, err = svc.Update(context.Background(), owner, 1, "", "text")
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("owner blank title err=%v, want ValidationError", err)
	}

	stored, _ := repo.Get(context.Background(), 1)
	if stored.Title != "Draft" {
		t.Fatalf("article mutated by failed update: %+v", stored)
	}
}

/* ───────── Delete ───────── */

func TestDelete(t *testing.T) {
	repo := newStubArticles(posted(1, 7, "Doomed", 5))
	svc := newService(repo)
	owner := &entity.User{ID: 7, Username: "alice"}

	art, err := svc.Delete(context.Background(), owner, 1)
	if err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if art.Title != "Doomed" {
		t.Fatalf("returned article=%+v, want last state", art)
	}

	if got, _ := repo.Get(context.Background(), 1); got != nil {
		t.Fatal("article still present after delete")
	}
}

func TestDelete_Denied(t *testing.T) {
	repo := newStubArticles(posted(1, 7, "Kept", 5))
	svc := newService(repo)
	stranger := &entity.User{ID: 8, Username: "bobby"}

	_, err := svc.Delete(context.Background(), stranger, 1)
	var forbidden *entity.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("non-owner err=%v, want ForbiddenError", err)
	}

	_, err = svc.Delete(context.Background(), stranger, 99)
	var nf *entity.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("missing article err=%v, want NotFoundError", err)
	}

	if got, _ := repo.Get(context.Background(), 1); got == nil {
		t.Fatal("article removed despite denial")
	}
}
