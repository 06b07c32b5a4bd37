package apiserver

import (
	"net/http"

	"github.com/katelinlis/SocialHub/internal/app/model"
)

func (s *server) ConfigureFriendsRouter() {

	router := s.router.PathPrefix("/friends").Subrouter()
	router.HandleFunc("", s.HandleAddFriend()).Methods("POST")              // Добавить в друзья
	router.HandleFunc("", s.HandleRemoveFriend()).Methods("DELETE")         // Удаление человека из друзей
	router.HandleFunc("/suggestions", s.HandleSuggestions()).Methods("GET") // Возможные друзья

	requests := s.router.PathPrefix("/friend-requests").Subrouter()
	requests.HandleFunc("/accept", s.HandleRequestAccept()).Methods("POST") // Принять заявку
	requests.HandleFunc("/reject", s.HandleRequestReject()).Methods("POST") // Отклонить заявку
}

type friendResponse struct {
	Friend model.User `json:"friend"`
}

func (s *server) HandleSuggestions() http.HandlerFunc {
	type Users struct {
		Users []model.User `json:"users"`
	}
	return func(w http.ResponseWriter, request *http.Request) {
		s.respond(w, request, http.StatusOK, Users{Users: s.store.Friends().Suggestions()})
	}
}

func (s *server) HandleAddFriend() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		var payload model.FriendActionRequest
		if err := s.decode(request, &payload); err != nil {
			s.error(w, request, http.StatusBadRequest, err)
			return
		}

		friend, err := s.store.Friends().Add(*payload.UserID)
		if err != nil {
			s.storeError(w, request, err)
			return
		}

		s.respond(w, request, http.StatusOK, friendResponse{Friend: friend})
	}
}

func (s *server) HandleRemoveFriend() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		var payload model.FriendActionRequest
		if err := s.decode(request, &payload); err != nil {
			s.error(w, request, http.StatusBadRequest, err)
			return
		}

		s.store.Friends().Remove(*payload.UserID)

		s.respond(w, request, http.StatusOK, map[string]bool{"removed": true})
	}
}

func (s *server) HandleRequestAccept() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		var decision model.FriendRequestDecision
		if err := s.decode(request, &decision); err != nil {
			s.error(w, request, http.StatusBadRequest, err)
			return
		}

		friend, err := s.store.Friends().Decide(*decision.RequestID, true)
		if err != nil {
			s.storeError(w, request, err)
			return
		}

		s.respond(w, request, http.StatusOK, friendResponse{Friend: *friend})
	}
}

func (s *server) HandleRequestReject() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		var decision model.FriendRequestDecision
		if err := s.decode(request, &decision); err != nil {
			s.error(w, request, http.StatusBadRequest, err)
			return
		}

		if _, err := s.store.Friends().Decide(*decision.RequestID, false); err != nil {
			s.storeError(w, request, err)
			return
		}

		s.respond(w, request, http.StatusOK, map[string]bool{"rejected": true})
	}
}
