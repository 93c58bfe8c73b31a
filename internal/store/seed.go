package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mmeshcher/abhiko-system/internal/catalog"
	"github.com/mmeshcher/abhiko-system/internal/model"
)

// Seed наполняет пустое хранилище двумя демонстрационными аккаунтами и двумя
// публикациями. Маркер гарантирует, что наполнение выполняется один раз.
func (s *FeedStore) Seed(ctx context.Context) error {
	created, err := s.kv.SetIfAbsent(ctx, keySeeded, []byte(`true`))
	if err != nil {
		return fmt.Errorf("set seed marker: %w", err)
	}
	if !created {
		return nil
	}

	users := []model.User{
		{
			ID:       "user_1",
			FullName: "Aarav Sharma",
			Email:    "aarav@example.com",
			Phone:    "1234567890",
			Address:  "Mumbai",
			Avatar:   catalog.Avatars[0],
			Points:   120,
		},
		{
			ID:       "user_2",
			FullName: "Priya Patel",
			Email:    "priya@example.com",
			Phone:    "0987654321",
			Address:  "Chennai",
			Avatar:   catalog.Avatars[1],
			Points:   250,
		},
	}

	for _, u := range users {
		if err := setJSON(ctx, s.kv, profileKey(u.Email), &u); err != nil {
			return err
		}
		if err := setJSON(ctx, s.kv, profileByIDKey(u.ID), &u); err != nil {
			return err
		}
	}

	now := time.Now()
	posts := []model.Post{
		{
			PostID:         "post_seed_1",
			UserID:         users[0].ID,
			Title:          "Absolutely delicious Paneer Butter Masala!",
			Description:    "The Royal Tandoor never disappoints. The paneer was so soft and the gravy was perfectly creamy. A must-try!",
			RestaurantID:   "r1",
			RestaurantName: "The Royal Tandoor",
			Image:          "https://placehold.co/600x400.png",
			Timestamp:      now,
		},
		{
			PostID:         "post_seed_2",
			UserID:         users[1].ID,
			Title:          "Best Masala Dosa in town!",
			Description:    "Went to Coastal Curry House for breakfast and was blown away. The dosa was crispy and the potato filling was perfectly spiced. Highly recommend!",
			RestaurantID:   "r2",
			RestaurantName: "Coastal Curry House",
			Image:          "https://placehold.co/600x400.png",
			Timestamp:      now.Add(-24 * time.Hour),
		},
	}

	return setJSON(ctx, s.kv, keyPosts, posts)
}
