package wishes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vpoletaev/giftwell/internal/domain"
	"github.com/vpoletaev/giftwell/internal/dto"
	"github.com/vpoletaev/giftwell/internal/service/wishservice"
	"github.com/vpoletaev/giftwell/internal/view"
	"github.com/vpoletaev/giftwell/pkg/auth"
	"github.com/vpoletaev/giftwell/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, ownerID int, wish *domain.Wish) (*domain.Wish, error)
	Get(ctx context.Context, id int) (*domain.Wish, error)
	Last(ctx context.Context) ([]domain.Wish, error)
	Top(ctx context.Context) ([]domain.Wish, error)
	Update(ctx context.Context, id, userID int, upd domain.WishUpdate) (*domain.Wish, error)
	Delete(ctx context.Context, id, userID int) (*domain.Wish, error)
	Copy(ctx context.Context, id, userID int) (*domain.Wish, error)
}

type WishHandler struct {
	wishService Service
}

func New(wishService Service) *WishHandler {
	return &WishHandler{
		wishService: wishService,
	}
}

func wishID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// Create godoc
//
//	@Summary		Create a wish
//	@Description	Add a new gift wish with a target price.
//	@Tags			Wishes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWishRequestDTO	true	"Wish payload"
//	@Success		201		{object}	dto.WishViewDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or price"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wishes [post]
func (h *WishHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateWishRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Wish name is required")
		return
	}

	wish := &domain.Wish{
		Name:        req.Name,
		Link:        req.Link,
		Image:       req.Image,
		Description: req.Description,
		Price:       req.Price.Decimal,
	}
	created, err := h.wishService.Create(r.Context(), userID, wish)
	if err != nil {
		switch {
		case errors.Is(err, wishservice.ErrInvalidPrice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, view.Wish(created, userID))
}

// GetLast godoc
//
//	@Summary		List latest wishes
//	@Description	Most recently created wishes, newest first.
//	@Tags			Wishes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WishViewDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wishes/last [get]
func (h *WishHandler) GetLast(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wishes, err := h.wishService.Last(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view.Wishes(wishes, userID))
}

// GetTop godoc
//
//	@Summary		List most copied wishes
//	@Description	Wishes ordered by how often they were copied.
//	@Tags			Wishes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WishViewDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wishes/top [get]
func (h *WishHandler) GetTop(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wishes, err := h.wishService.Top(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view.Wishes(wishes, userID))
}

// Get godoc
//
//	@Summary		Get a wish
//	@Description	Viewer-scoped wish projection: raised and the contribution list are derived for the requesting user.
//	@Tags			Wishes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Wish id"
//	@Success		200	{object}	dto.WishViewDTO
//	@Failure		400	{object}	utils.Response	"Invalid wish id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wish not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wishes/{id} [get]
func (h *WishHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := wishID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wish id")
		return
	}

	wish, err := h.wishService.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, wishservice.ErrWishNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view.Wish(wish, userID))
}

// Update godoc
//
//	@Summary		Update a wish
//	@Description	Change wish fields. Forbidden once anyone has chipped in.
//	@Tags			Wishes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Wish id"
//	@Param			request	body		dto.UpdateWishRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.WishViewDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the owner or wish already funded"
//	@Failure		404		{object}	utils.Response	"Wish not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wishes/{id} [patch]
func (h *WishHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := wishID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wish id")
		return
	}

	var req dto.UpdateWishRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := domain.WishUpdate{
		Name:        req.Name,
		Link:        req.Link,
		Image:       req.Image,
		Description: req.Description,
	}
	if req.Price != nil {
		price := req.Price.Decimal
		upd.Price = &price
	}

	updated, err := h.wishService.Update(r.Context(), id, userID, upd)
	if err != nil {
		h.respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view.Wish(updated, userID))
}

// Delete godoc
//
//	@Summary		Delete a wish
//	@Description	Remove a wish. Forbidden once anyone has chipped in.
//	@Tags			Wishes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Wish id"
//	@Success		200	{object}	dto.WishViewDTO	"The deleted wish"
//	@Failure		400	{object}	utils.Response	"Invalid wish id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the owner or wish already funded"
//	@Failure		404	{object}	utils.Response	"Wish not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wishes/{id} [delete]
func (h *WishHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := wishID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wish id")
		return
	}

	deleted, err := h.wishService.Delete(r.Context(), id, userID)
	if err != nil {
		h.respondMutationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view.Wish(deleted, userID))
}

// Copy godoc
//
//	@Summary		Copy a wish
//	@Description	Clone another user's wish into your own list.
//	@Tags			Wishes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Wish id"
//	@Success		201	{object}	dto.WishViewDTO	"The new copy"
//	@Failure		400	{object}	utils.Response	"Invalid wish id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wish not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wishes/{id}/copy [post]
func (h *WishHandler) Copy(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := wishID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid wish id")
		return
	}

	copied, err := h.wishService.Copy(r.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, wishservice.ErrWishNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, view.Wish(copied, userID))
}

func (h *WishHandler) respondMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, wishservice.ErrWishNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, wishservice.ErrNotOwner),
		errors.Is(err, wishservice.ErrChangeAfterFunding):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, wishservice.ErrInvalidPrice):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
