package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/guidebook/internal/auth"
	"github.com/pkordes/guidebook/internal/domain"
)

// SignUpRequest is the body of POST /auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignInRequest is the body of POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account. The password hash never leaves.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// SessionResponse is returned on sign-up and sign-in. Token is the same value
// as the session cookie, for clients that prefer a Bearer header.
type SessionResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// postSignUp handles POST /auth/signup.
func (s *Server) postSignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sess, err := s.svc.Auth.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		s.respondErr(w, r, err, "account")
		return
	}
	s.setSessionCookie(w, sess)
	writeJSON(w, http.StatusCreated, sessionToResponse(sess))
}

// postSignIn handles POST /auth/signin.
func (s *Server) postSignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sess, err := s.svc.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondErr(w, r, err, "")
		return
	}
	s.setSessionCookie(w, sess)
	writeJSON(w, http.StatusOK, sessionToResponse(sess))
}

// postSignOut handles POST /auth/signout. It always clears the cookie; the
// session row and board entry are dropped when the request carried a live session.
func (s *Server) postSignOut(w http.ResponseWriter, r *http.Request) {
	if sess, ok := auth.FromContext(r.Context()); ok {
		if err := s.svc.Auth.SignOut(r.Context(), sess.Token); err != nil {
			s.respondErr(w, r, err, "")
			return
		}
		s.svc.Search.Forget(sess.Token)
	}
	s.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// getMe handles GET /auth/me.
func (s *Server) getMe(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	writeJSON(w, http.StatusOK, userToResponse(sess.User))
}

func (s *Server) setSessionCookie(w http.ResponseWriter, sess auth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt}
}

func sessionToResponse(sess auth.Session) SessionResponse {
	return SessionResponse{User: userToResponse(sess.User), Token: sess.Token, ExpiresAt: sess.ExpiresAt}
}
