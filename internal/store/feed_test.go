package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmeshcher/abhiko-system/internal/catalog"
	"github.com/mmeshcher/abhiko-system/internal/model"
	"github.com/mmeshcher/abhiko-system/internal/repository"
)

func newFeedEnv() (*FeedStore, *AccountStore, KV) {
	repo := repository.NewMemoryRepository()
	return NewFeedStore(repo, catalog.New(0)), NewAccountStore(repo), repo
}

func TestAddPost_DenormalizesSnapshot(t *testing.T) {
	feed, accounts, _ := newFeedEnv()
	ctx := context.Background()

	author, err := accounts.Signup(ctx, testProfile("poster@example.com"), "secret")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	post, err := feed.AddPost(ctx, model.Post{
		Title:        "Great biryani",
		Description:  "Worth every rupee.",
		RestaurantID: "r4",
		Image:        "https://placehold.co/600x400.png",
	}, *author)
	if err != nil {
		t.Fatalf("add post: %v", err)
	}

	if post.PostID == "" {
		t.Fatalf("post id must be allocated")
	}
	if post.RestaurantName != "Nizami Kitchens" {
		t.Fatalf("restaurant name = %q, want Nizami Kitchens", post.RestaurantName)
	}
	if post.Author.FullName != author.FullName {
		t.Fatalf("author name = %q, want %q", post.Author.FullName, author.FullName)
	}
	if post.Timestamp.IsZero() {
		t.Fatalf("timestamp must be stamped at creation")
	}
}

func TestAddPost_UnknownRestaurant(t *testing.T) {
	feed, accounts, _ := newFeedEnv()
	ctx := context.Background()

	author, err := accounts.Signup(ctx, testProfile("poster@example.com"), "secret")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, err = feed.AddPost(ctx, model.Post{Title: "x", RestaurantID: "r999"}, *author)
	if !errors.Is(err, ErrUnknownRestaurant) {
		t.Fatalf("expected ErrUnknownRestaurant, got %v", err)
	}

	posts, err := feed.Posts(ctx)
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("post list must be unchanged, got %d posts", len(posts))
	}
}

func TestAddPost_KeepsPersistedPosts(t *testing.T) {
	feed, accounts, kv := newFeedEnv()
	ctx := context.Background()

	// Публикация сохранена до первой загрузки ленты в память.
	raw := []model.Post{
		{PostID: "existing", UserID: "ghost", Title: "older", RestaurantID: "r1", Timestamp: time.Now().Add(-time.Hour)},
	}
	if err := setJSON(ctx, kv, keyPosts, raw); err != nil {
		t.Fatalf("seed raw posts: %v", err)
	}

	author, err := accounts.Signup(ctx, testProfile("poster@example.com"), "secret")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := feed.AddPost(ctx, model.Post{Title: "newer", RestaurantID: "r1"}, *author); err != nil {
		t.Fatalf("add post: %v", err)
	}

	posts, err := feed.Posts(ctx)
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].Title != "newer" || posts[1].PostID != "existing" {
		t.Fatalf("unexpected feed: %+v", posts)
	}
}

func TestStartWatch_RefetchesOnExternalChange(t *testing.T) {
	feed, _, kv := newFeedEnv()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := feed.StartWatch(ctx); err != nil {
		t.Fatalf("start watch: %v", err)
	}

	// Лента загружена пустой: новое состояние может прийти только по сигналу.
	if posts, err := feed.Posts(ctx); err != nil || len(posts) != 0 {
		t.Fatalf("initial posts = %v, %v", posts, err)
	}

	raw := []model.Post{
		{PostID: "external", UserID: "ghost", Title: "T1", RestaurantID: "r1", Timestamp: time.Now()},
	}
	if err := setJSON(ctx, kv, keyPosts, raw); err != nil {
		t.Fatalf("store raw: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		posts, err := feed.Posts(ctx)
		if err != nil {
			t.Fatalf("posts: %v", err)
		}
		if len(posts) == 1 && posts[0].PostID == "external" {
			return
		}

		select {
		case <-deadline:
			t.Fatalf("watch did not reconcile external change, got %d posts", len(posts))
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestPosts_NewestFirst(t *testing.T) {
	feed, _, kv := newFeedEnv()
	ctx := context.Background()

	base := time.Now()
	raw := []model.Post{
		{PostID: "p1", UserID: "u", Title: "T1", RestaurantID: "r1", Timestamp: base.Add(-2 * time.Hour)},
		{PostID: "p3", UserID: "u", Title: "T3", RestaurantID: "r1", Timestamp: base},
		{PostID: "p2", UserID: "u", Title: "T2", RestaurantID: "r1", Timestamp: base.Add(-time.Hour)},
	}
	if err := setJSON(ctx, kv, keyPosts, raw); err != nil {
		t.Fatalf("seed raw posts: %v", err)
	}

	posts, err := feed.Posts(ctx)
	if err != nil {
		t.Fatalf("posts: %v", err)
	}

	got := make([]string, 0, len(posts))
	for _, p := range posts {
		got = append(got, p.Title)
	}
	want := []string{"T3", "T2", "T1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestPosts_UnknownAuthorSentinel(t *testing.T) {
	feed, _, kv := newFeedEnv()
	ctx := context.Background()

	raw := []model.Post{
		{PostID: "p1", UserID: "ghost", Title: "T1", RestaurantID: "r1", Timestamp: time.Now()},
	}
	if err := setJSON(ctx, kv, keyPosts, raw); err != nil {
		t.Fatalf("seed raw posts: %v", err)
	}

	posts, err := feed.Posts(ctx)
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	if posts[0].Author.FullName != "Unknown User" || posts[0].Author.Avatar != "" {
		t.Fatalf("missing author must render as sentinel, got %+v", posts[0].Author)
	}
}

func TestRefetch_ReconcilesExternalChange(t *testing.T) {
	feed, accounts, kv := newFeedEnv()
	ctx := context.Background()

	author, err := accounts.Signup(ctx, testProfile("poster@example.com"), "secret")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := feed.AddPost(ctx, model.Post{Title: "mine", RestaurantID: "r1"}, *author); err != nil {
		t.Fatalf("add post: %v", err)
	}

	// Другой экземпляр дописывает публикацию напрямую в хранилище.
	var raw []model.Post
	if err := getJSON(ctx, kv, keyPosts, &raw); err != nil {
		t.Fatalf("load raw: %v", err)
	}
	raw = append([]model.Post{{
		PostID:       "external",
		UserID:       author.ID,
		Title:        "from another tab",
		RestaurantID: "r2",
		Timestamp:    time.Now().Add(time.Minute),
	}}, raw...)
	if err := setJSON(ctx, kv, keyPosts, raw); err != nil {
		t.Fatalf("store raw: %v", err)
	}

	if err := feed.Refetch(ctx); err != nil {
		t.Fatalf("refetch: %v", err)
	}

	posts, err := feed.Posts(ctx)
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].PostID != "external" {
		t.Fatalf("external post must sort first, got %s", posts[0].PostID)
	}
}

func TestSeed_RunsOnce(t *testing.T) {
	feed, _, _ := newFeedEnv()
	ctx := context.Background()

	if err := feed.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := feed.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	posts, err := feed.Posts(ctx)
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("seed must provision exactly two posts, got %d", len(posts))
	}

	// Авторы демонстрационных публикаций должны разрешаться.
	for _, p := range posts {
		if p.Author.FullName == "Unknown User" {
			t.Fatalf("seeded author not resolvable: %+v", p.Post)
		}
	}
}
