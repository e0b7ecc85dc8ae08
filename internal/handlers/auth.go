package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/calebfernandez/levelup/internal/auth"
	"github.com/calebfernandez/levelup/internal/models"
	"github.com/calebfernandez/levelup/internal/responses"
	"github.com/calebfernandez/levelup/internal/store"
	"github.com/calebfernandez/levelup/internal/utils"

	"github.com/gorilla/mux"
)

// ResetMailer delivers an issued reset token out of band. The handlers only
// hand it the token string.
type ResetMailer interface {
	SendResetEmail(to, token string) error
}

func Signup(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := utils.Validate.Struct(req); err != nil {
			responses.SendValidationError(w, err)
			return
		}

		passwordHash, err := auth.HashPassword(req.Password)
		if err != nil {
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
			return
		}

		user := &models.User{
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: passwordHash,
		}

		if err := users.CreateUser(r.Context(), user); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				responses.SendErrorResponse(w, http.StatusConflict, "Email address already in use")
				return
			}
			log.Printf("Error creating user: %v", err)
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
			return
		}

		responses.SendSuccessResponse(w, http.StatusCreated, map[string]string{
			"message": "User created successfully",
		})
	}
}

func Login(users store.UserStore, jwtUtil *utils.JWTUtil) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Email == "" || req.Password == "" {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		// Unknown email and wrong password produce the same response so a
		// caller cannot probe which emails are registered.
		user, err := users.GetUserByEmail(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
			} else {
				log.Printf("Error fetching user by email: %v", err)
				responses.SendErrorResponse(w, http.StatusInternalServerError, "Database error")
			}
			return
		}

		if !auth.CheckPassword(user.PasswordHash, req.Password) {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := jwtUtil.GenerateToken(user.ID)
		if err != nil {
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		if err := users.UpdateSessionToken(r.Context(), user.ID, &token); err != nil {
			log.Printf("Error updating session token for user %d: %v", user.ID, err)
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to update login status")
			return
		}

		userResponse := models.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		}

		responses.SendSuccessResponse(w, http.StatusOK, map[string]interface{}{
			"token": token,
			"user":  userResponse,
		})
	}
}

func Logout(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(userClaimsKey).(*utils.Claims)
		if !ok {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
			return
		}

		if err := users.UpdateSessionToken(r.Context(), claims.UserID, nil); err != nil {
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to logout")
			return
		}

		responses.SendSuccessResponse(w, http.StatusOK, map[string]string{
			"message": "Logged out successfully",
		})
	}
}

func Status(users store.UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(userClaimsKey).(*utils.Claims)
		if !ok {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid user context")
			return
		}

		user, err := users.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				responses.SendErrorResponse(w, http.StatusUnauthorized, "User not found")
			} else {
				responses.SendErrorResponse(w, http.StatusInternalServerError, "Database error")
			}
			return
		}

		responses.SendSuccessResponse(w, http.StatusOK, map[string]interface{}{
			"logged_in": true,
			"user": models.UserResponse{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
			},
		})
	}
}

func ForgotPassword(users store.UserStore, resetUtil *auth.ResetTokenUtil, mailer ResetMailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ForgotPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		if err := utils.Validate.Struct(req); err != nil {
			responses.SendValidationError(w, err)
			return
		}

		// The response below never varies with the lookup result, so the
		// flow cannot be used to discover registered emails. Token issuance
		// and delivery happen only internally when there is a match.
		user, err := users.GetUserByEmail(r.Context(), req.Email)
		if err == nil {
			token, issueErr := resetUtil.Issue(user.ID)
			if issueErr != nil {
				log.Printf("Error issuing reset token for user %d: %v", user.ID, issueErr)
			} else if sendErr := mailer.SendResetEmail(user.Email, token); sendErr != nil {
				log.Printf("Error sending reset email: %v", sendErr)
			}
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Error fetching user by email: %v", err)
		}

		responses.SendSuccessResponse(w, http.StatusOK, map[string]string{
			"message": "If an account with that email exists, a reset link has been generated.",
		})
	}
}

func ResetPassword(users store.UserStore, resetUtil *auth.ResetTokenUtil) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := mux.Vars(r)["token"]

		// Verify before touching storage: a bad token never reaches the DB.
		userID, err := resetUtil.Verify(token)
		if err != nil {
			responses.SendErrorResponse(w, http.StatusUnauthorized, "Token is invalid or has expired")
			return
		}

		var req models.ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responses.SendErrorResponse(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		if err := utils.Validate.Struct(req); err != nil {
			responses.SendValidationError(w, err)
			return
		}

		passwordHash, err := auth.HashPassword(req.Password)
		if err != nil {
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to update password")
			return
		}

		if err := users.UpdatePassword(r.Context(), userID, passwordHash); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				responses.SendErrorResponse(w, http.StatusUnauthorized, "Token is invalid or has expired")
				return
			}
			responses.SendErrorResponse(w, http.StatusInternalServerError, "Failed to update password")
			return
		}

		responses.SendSuccessResponse(w, http.StatusOK, map[string]string{
			"message": "Your password has been updated successfully.",
		})
	}
}
