package memstore

import (
	"sort"
	"time"

	"github.com/katelinlis/SocialHub/internal/app/model"
	"github.com/nleeper/goment"
)

// CurrentUserID is the id of the seeded viewer.
const CurrentUserID = "current"

func avatar(photo string) string {
	return "https://images.unsplash.com/" + photo + "?w=150&h=150&fit=crop"
}

func picture(photo string) string {
	return "https://images.unsplash.com/" + photo + "?w=800&h=600&fit=crop"
}

// hoursAgo keeps seeded content recent relative to the store clock.
func (s *Store) hoursAgo(hours int) time.Time {
	// goment only fails to parse string inputs.
	g, _ := goment.New(s.now())
	return g.Subtract(hours, "hours").ToTime().UTC()
}

func (s *Store) seed() {
	s.currentUser = &model.User{
		ID:       CurrentUserID,
		Name:     "Jan Kowalski",
		Avatar:   avatar("photo-1535713875002-d1d0cf377fde"),
		Title:    model.String("Software Engineer"),
		Bio:      model.String("Pasjonuję się technologią i innowacjami. Zawsze szukam nowych wyzwań!"),
		Location: model.String("Warszawa, Polska"),
		Website:  model.String(""),
	}

	s.seedPosts()
	s.seedFriendRequests()
}

func (s *Store) seedPosts() {
	anna := &model.User{
		ID:     "u1",
		Name:   "Anna Kowalska",
		Avatar: avatar("photo-1494790108377-be9c29b29330"),
		Title:  model.String("Senior Developer @ Tech Corp"),
	}
	piotr := &model.User{
		ID:     "u3",
		Name:   "Piotr Wiśniewski",
		Avatar: avatar("photo-1500648767791-00dcc994a43e"),
		Title:  model.String("Product Designer"),
	}
	maria := &model.User{
		ID:     "u4",
		Name:   "Maria Lewandowska",
		Avatar: avatar("photo-1438761681033-6461ffad8d80"),
		Title:  model.String("Marketing Manager"),
	}

	posts := []*model.Post{
		{
			ID:          "1",
			User:        anna,
			Content:     "Właśnie ukończyłam świetny projekt! Współpraca z zespołem była niesamowita. 🚀",
			Images:      []string{picture("photo-1522071820081-009f0129c71c")},
			Timestamp:   s.hoursAgo(2),
			Likes:       42,
			LikedByUser: false,
			Comments: []model.Comment{
				{
					ID: "c1",
					User: &model.User{
						ID:     "u2",
						Name:   "Jan Nowak",
						Avatar: avatar("photo-1472099645785-5658abf4ff4e"),
					},
					Content:   "Gratulacje! Świetna robota!",
					Timestamp: s.hoursAgo(1),
					Likes:     5,
				},
			},
		},
		{
			ID:      "2",
			User:    piotr,
			Content: "Nowy design system gotowy! Co myślicie o tych kolorach?",
			Images:  []string{picture("photo-1561070791-2526d30994b5")},
			Files: []model.FileAttachment{
				{
					Name: "design-system.pdf",
					Type: "application/pdf",
					URL:  "https://example.com/design-system.pdf",
				},
			},
			Timestamp:   s.hoursAgo(5),
			Likes:       28,
			LikedByUser: true,
			Comments:    []model.Comment{},
		},
		{
			ID:          "3",
			User:        maria,
			Content:     "Dzisiaj na konferencji MarketingPro 2025! Dużo inspiracji i nowych pomysłów. #marketing #konferencja",
			Timestamp:   s.hoursAgo(8),
			Likes:       15,
			LikedByUser: false,
			Comments: []model.Comment{
				{
					ID: "c2",
					User: &model.User{
						ID:     "u5",
						Name:   "Tomasz Zając",
						Avatar: avatar("photo-1507003211169-0a1dd7228f2d"),
					},
					Content:   "Też tam jestem! Może się spotkamy?",
					Timestamp: s.hoursAgo(7),
					Likes:     2,
				},
			},
		},
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp.After(posts[j].Timestamp)
	})
	for _, post := range posts {
		s.posts.Set(post.ID, post)
	}
}

func (s *Store) seedFriendRequests() {
	requests := []*model.FriendRequest{
		{
			ID: "fr1",
			From: &model.User{
				ID:     "u5",
				Name:   "Tomasz Lewandowski",
				Avatar: avatar("photo-1507003211169-0a1dd7228f2d"),
				Title:  model.String("Backend Developer"),
			},
			Timestamp: s.hoursAgo(24),
		},
		{
			ID: "fr2",
			From: &model.User{
				ID:     "u6",
				Name:   "Magdalena Zielińska",
				Avatar: avatar("photo-1438761681033-6461ffad8d80"),
				Title:  model.String("Marketing Manager"),
			},
			Timestamp: s.hoursAgo(48),
		},
	}

	for _, request := range requests {
		s.friendRequests.Set(request.ID, request)
	}
}
