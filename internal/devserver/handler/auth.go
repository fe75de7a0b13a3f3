package handler

import (
	"net/http"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

type signUpRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) SignUp(c *ginext.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.handleError(c, err)
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), domain.SignUpInput{
		Username: req.Username,
		Email:    req.Email,
	}, string(hash))
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.log.Info("user registered",
		logger.Int64("user_id", user.ID),
		logger.String("email", user.Email),
	)

	c.JSON(http.StatusCreated, ginext.H{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, hash, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		// Do not leak whether the account exists.
		h.handleError(c, domain.ErrInvalidCredentials)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		h.handleError(c, domain.ErrInvalidCredentials)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"success": true,
		"user":    user,
		"token":   token,
	})
}
