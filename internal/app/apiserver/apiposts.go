package apiserver

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/katelinlis/SocialHub/internal/app/model"
)

func (s *server) ConfigurePostRouter() {

	router := s.router.PathPrefix("/posts").Subrouter()

	router.HandleFunc("", s.HandleCreatePost()).Methods("POST")
	router.HandleFunc("/{id}", s.HandleUpdatePost()).Methods("PATCH")
	router.HandleFunc("/{id}", s.HandleDeletePost()).Methods("DELETE")
	router.HandleFunc("/{id}/like", s.HandleLikePost()).Methods("POST")
	router.HandleFunc("/{id}/comments", s.HandleAddComment()).Methods("POST")
	router.HandleFunc("/{id}/comments/{commentId}/like", s.HandleLikeComment()).Methods("POST")
}

func (s *server) HandleCreatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		var payload model.CreatePostRequest
		if err := s.decode(request, &payload); err != nil {
			s.error(w, request, http.StatusBadRequest, err)
			return
		}

		post := s.store.Post().Create(*payload.Content, payload.Images, model.Attachments(payload.Files))

		s.respond(w, request, http.StatusOK, post)
	}
}

func (s *server) HandleLikePost() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		vars := mux.Vars(request)

		post, err := s.store.Post().ToggleLike(vars["id"])
		if err != nil {
			s.storeError(w, request, err)
			return
		}

		s.respond(w, request, http.StatusOK, post)
	}
}

func (s *server) HandleAddComment() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		vars := mux.Vars(request)

		var payload model.CreateCommentRequest
		if err := s.decode(request, &payload); err != nil {
			s.error(w, request, http.StatusBadRequest, err)
			return
		}

		post, err := s.store.Post().AddComment(vars["id"], *payload.Content)
		if err != nil {
			s.storeError(w, request, err)
			return
		}

		s.respond(w, request, http.StatusOK, post)
	}
}

func (s *server) HandleLikeComment() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		vars := mux.Vars(request)

		post, err := s.store.Post().LikeComment(vars["id"], vars["commentId"])
		if err != nil {
			s.storeError(w, request, err)
			return
		}

		s.respond(w, request, http.StatusOK, post)
	}
}

func (s *server) HandleUpdatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		vars := mux.Vars(request)

		var payload model.UpdatePostRequest
		if err := s.decode(request, &payload); err != nil {
			s.error(w, request, http.StatusBadRequest, err)
			return
		}

		post, err := s.store.Post().Update(vars["id"], payload)
		if err != nil {
			s.storeError(w, request, err)
			return
		}

		s.respond(w, request, http.StatusOK, post)
	}
}

func (s *server) HandleDeletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		vars := mux.Vars(request)

		s.store.Post().Delete(vars["id"])

		s.respond(w, request, http.StatusOK, map[string]bool{"deleted": true})
	}
}
