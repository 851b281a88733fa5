package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-gaming-platform/internal/jwt"
	"github.com/sbilibin2017/gw-gaming-platform/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionCreator records ledger entries.
type TransactionCreator interface {
	Create(
		ctx context.Context,
		userID uuid.UUID,
		role models.Role,
		amount decimal.Decimal,
		category models.Category,
		referenceID *string,
	) (*models.TransactionDB, error)
}

// NewCreateTransactionHandler returns an HTTP handler that records a ledger entry
// for the authenticated player.
// @Summary Create transaction
// @Description Record a wallet top-up, game fee, winning or withdrawal for the caller. Only users with role user may call it.
// @Tags user
// @Accept json
// @Produce json
// @Param request body models.CreateTransactionRequest true "Transaction"
// @Success 201 {object} models.CreateTransactionResponse "Transaction recorded"
// @Failure 400 {object} models.CreateTransactionErrorResponse "Invalid amount or type"
// @Failure 401 {object} models.CreateTransactionErrorResponse "Unauthorized"
// @Failure 403 {object} models.CreateTransactionErrorResponse "Only users can perform transactions"
// @Failure 500 {object} models.CreateTransactionErrorResponse "Failed to create transaction"
// @Router /user/create_transaction [post]
// @Security BearerAuth
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwt.ClaimsFromContext(r.Context())
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		txn, err := svc.Create(r.Context(), claims.UserID, models.Role(claims.Role), req.Amount, req.Type, req.ReferenceID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewCreateTransactionResponse(*txn))
	}
}
