package store

import "github.com/katelinlis/SocialHub/internal/app/model"

/*
Store репозитории данных
*/
type Store interface {
	Post() PostRepository       // посты, комментарии, лайки
	User() UserRepository       // текущий пользователь и все известные пользователи
	Friends() FriendsRepository // друзья и заявки в друзья
	Feed() model.Feed
}
