package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"donatehub/internal/auth"
	"donatehub/internal/domain"
)

// userPayload is the public view of an account; the password hash and
// refresh token never leave the server.
type userPayload struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserPayload(u *domain.User) userPayload {
	return userPayload{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a *App) UsersRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	if strings.TrimSpace(req.Password) == "" {
		a.fail(w, r, domain.NewValidation("all fields (username, email, fullName, password) are required"))
		return
	}

	role := domain.RoleDonor
	if req.Role != "" {
		role = domain.Role(req.Role)
		if !role.Valid() {
			a.fail(w, r, domain.NewValidation("invalid role, must be either 'ngo' or 'donor'"))
			return
		}
	}

	exists, err := a.Users.Exists(r.Context(), req.Username, req.Email)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if exists {
		a.fail(w, r, domain.NewValidation("user with the email or username already exists"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.fail(w, r, &domain.InternalError{Err: err})
		return
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
		Role:         role,
	}
	if err := a.Users.Create(r.Context(), user); err != nil {
		a.fail(w, r, err)
		return
	}

	a.json(w, http.StatusCreated, "user registered successfully", toUserPayload(user))
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *App) UsersLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}

	login := req.Username
	if login == "" {
		login = req.Email
	}
	if login == "" {
		a.fail(w, r, domain.NewValidation("username or email is required"))
		return
	}
	if req.Password == "" {
		a.fail(w, r, domain.NewValidation("password is required"))
		return
	}

	user, err := a.Users.GetByLogin(r.Context(), login)
	if err != nil {
		a.fail(w, r, domain.NewValidation("user does not exist"))
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		a.json(w, http.StatusUnauthorized, "incorrect password", nil)
		return
	}

	p := domain.Principal{ID: user.ID, Role: user.Role}
	accessToken, err := a.Tokens.Access(p)
	if err != nil {
		a.fail(w, r, &domain.InternalError{Err: err})
		return
	}
	refreshToken, err := a.Tokens.Refresh(p)
	if err != nil {
		a.fail(w, r, &domain.InternalError{Err: err})
		return
	}
	if err := a.Users.SetRefreshToken(r.Context(), user.ID, refreshToken); err != nil {
		a.fail(w, r, err)
		return
	}

	a.json(w, http.StatusOK, "user logged in successfully", map[string]any{
		"user":         toUserPayload(user),
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func (a *App) UsersLogout(w http.ResponseWriter, r *http.Request) {
	p := a.principal(r)
	if err := a.Users.SetRefreshToken(r.Context(), p.ID, ""); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "user logged out successfully", nil)
}

type updateDetailsRequest struct {
	FullName string `json:"fullName"`
}

func (a *App) UsersUpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req updateDetailsRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	if strings.TrimSpace(req.FullName) == "" {
		a.fail(w, r, domain.NewValidation("fullName is required"))
		return
	}

	p := a.principal(r)
	if err := a.Users.UpdateFullName(r.Context(), p.ID, strings.TrimSpace(req.FullName)); err != nil {
		a.fail(w, r, err)
		return
	}
	user, err := a.Users.GetByID(r.Context(), p.ID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "user updated successfully", toUserPayload(user))
}

type changePasswordRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (a *App) UsersChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decode(r, &req); err != nil {
		a.fail(w, r, err)
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		a.fail(w, r, domain.NewValidation("all fields are required"))
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		a.fail(w, r, domain.NewValidation("confirm password does not match"))
		return
	}

	p := a.principal(r)
	user, err := a.Users.GetByID(r.Context(), p.ID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		a.fail(w, r, domain.NewValidation("incorrect current password"))
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		a.fail(w, r, &domain.InternalError{Err: err})
		return
	}
	if err := a.Users.UpdatePassword(r.Context(), p.ID, hash); err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "password changed successfully", nil)
}

func (a *App) UsersCurrent(w http.ResponseWriter, r *http.Request) {
	p := a.principal(r)
	user, err := a.Users.GetByID(r.Context(), p.ID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, "user fetched successfully", toUserPayload(user))
}
