package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"shoplite/internal/metrics"
	"shoplite/internal/user"
)

type UsersServer struct {
	users  *user.Store
	logger *slog.Logger
	mux    *http.ServeMux
}

func NewUsersServer(users *user.Store, logger *slog.Logger, m *metrics.ServerMetrics) *UsersServer {
	s := &UsersServer{
		users:  users,
		logger: logger,
		mux:    http.NewServeMux(),
	}

	s.routes(m)
	return s
}

func (s *UsersServer) routes(m *metrics.ServerMetrics) {
	s.mux.HandleFunc("GET /users", s.listUsers)
	s.mux.HandleFunc("GET /users/search", s.searchUsers)
	s.mux.HandleFunc("GET /users/{id}", s.getUser)
	s.mux.HandleFunc("POST /users", s.createUser)
	s.mux.HandleFunc("GET /users/{id}/profile", s.getProfile)
	s.mux.HandleFunc("PUT /users/{id}/profile", s.updateProfile)
	s.mux.HandleFunc("GET /healthz", health)
	s.mux.Handle("GET /metrics", m.Handler())
}

func (s *UsersServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *UsersServer) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.users.List())
}

func (s *UsersServer) searchUsers(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	username := r.URL.Query().Get("username")
	writeJSON(w, http.StatusOK, s.users.Search(email, username))
}

func (s *UsersServer) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := s.users.Get(id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.Error("get user", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func (s *UsersServer) createUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	u := s.users.Create(user.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})

	w.Header().Set("Location", fmt.Sprintf("/users/%d", u.ID))
	writeJSON(w, http.StatusCreated, u)
}

func (s *UsersServer) getProfile(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	p, err := s.users.Profile(id)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.logger.Error("get profile", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (s *UsersServer) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := intPathValue(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var p user.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if p.Preferences == nil {
		p.Preferences = map[string]string{}
	}

	updated, err := s.users.UpdateProfile(id, p)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.logger.Error("update profile", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
