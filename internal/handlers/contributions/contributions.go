package contributions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/vpoletaev/giftwell/internal/domain"
	"github.com/vpoletaev/giftwell/internal/dto"
	"github.com/vpoletaev/giftwell/internal/service/contributionservice"
	"github.com/vpoletaev/giftwell/internal/view"
	"github.com/vpoletaev/giftwell/pkg/auth"
	"github.com/vpoletaev/giftwell/pkg/utils"
)

type Service interface {
	Admit(ctx context.Context, wishID, contributorID int, amount decimal.Decimal, hidden bool) (*domain.Contribution, error)
	List(ctx context.Context, viewerID int) ([]domain.Contribution, error)
	Get(ctx context.Context, id, viewerID int) (*domain.Contribution, error)
}

type ContributionHandler struct {
	contributionService Service
}

func New(contributionService Service) *ContributionHandler {
	return &ContributionHandler{
		contributionService: contributionService,
	}
}

// Create godoc
//
//	@Summary		Chip in on a wish
//	@Description	Pledge an amount toward another user's wish. The pledge is rejected when the wish is yours, already fully funded from your point of view, or the amount overshoots what's left.
//	@Tags			Contributions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateContributionRequestDTO	true	"Contribution payload"
//	@Success		201		{object}	dto.ContributionViewDTO
//	@Failure		400		{object}	utils.Response	"Invalid body, amount below minimum or above remaining"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Own wish or wish already fully funded"
//	@Failure		404		{object}	utils.Response	"Wish not found"
//	@Failure		409		{object}	utils.Response	"Lost a concurrent admission race"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/contributions [post]
func (h *ContributionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateContributionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.WishID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Wish id is required")
		return
	}

	contribution, err := h.contributionService.Admit(r.Context(), req.WishID, userID, req.Amount.Decimal, req.Hidden)
	if err != nil {
		switch {
		case errors.Is(err, contributionservice.ErrWishNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, contributionservice.ErrSelfFunding),
			errors.Is(err, contributionservice.ErrAlreadyFunded):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, contributionservice.ErrAmountExceedsRemaining),
			errors.Is(err, contributionservice.ErrAmountBelowMinimum):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, contributionservice.ErrAdmissionConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, view.Contribution(contribution, userID))
}

// List godoc
//
//	@Summary		List contributions
//	@Description	All contributions visible to the requesting user, newest first. Hidden pledges of other users are not listed.
//	@Tags			Contributions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ContributionViewDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contributions [get]
func (h *ContributionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	contributions, err := h.contributionService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch contributions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view.Contributions(contributions, userID))
}

// Get godoc
//
//	@Summary		Get a contribution
//	@Description	A single contribution by id. Responds 404 when it does not exist or is not visible to the requesting user.
//	@Tags			Contributions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Contribution id"
//	@Success		200	{object}	dto.ContributionViewDTO
//	@Failure		400	{object}	utils.Response	"Invalid contribution id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Contribution not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/contributions/{id} [get]
func (h *ContributionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contribution id")
		return
	}

	contribution, err := h.contributionService.Get(r.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, contributionservice.ErrContributionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view.Contribution(contribution, userID))
}
