package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/katelinlis/SocialHub/internal/app/model"
)

func (s *server) ConfigureUserRouter() {

	s.router.HandleFunc("/feed", s.HandleGetFeed()).Methods("GET")
	s.router.HandleFunc("/users", s.HandleGetUsers()).Methods("GET")
	s.router.HandleFunc("/users/{id}", s.HandleGetUser()).Methods("GET")
	s.router.HandleFunc("/profile", s.HandleUpdateProfile()).Methods("PATCH")
}

func (s *server) HandleGetFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		s.respond(w, request, http.StatusOK, s.store.Feed())
	}
}

func (s *server) HandleGetUsers() http.HandlerFunc {
	type Users struct {
		Users []model.User `json:"users"`
	}
	return func(w http.ResponseWriter, request *http.Request) {
		s.respond(w, request, http.StatusOK, Users{Users: s.store.User().List()})
	}
}

func (s *server) HandleGetUser() http.HandlerFunc {
	type User struct {
		User model.User `json:"user"`
	}
	return func(w http.ResponseWriter, request *http.Request) {
		vars := mux.Vars(request)

		user, err := s.store.User().Find(vars["id"])
		if err != nil {
			s.storeError(w, request, err)
			return
		}

		s.respond(w, request, http.StatusOK, User{User: user})
	}
}

func (s *server) HandleUpdateProfile() http.HandlerFunc {
	type User struct {
		User model.User `json:"user"`
	}
	return func(w http.ResponseWriter, request *http.Request) {
		var payload model.UpdateProfileRequest
		if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
			s.error(w, request, http.StatusBadRequest, err)
			return
		}

		user := s.store.User().UpdateProfile(payload)

		s.respond(w, request, http.StatusOK, User{User: user})
	}
}
