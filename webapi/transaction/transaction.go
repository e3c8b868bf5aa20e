// Package transaction exposes the transaction-records operations over HTTP.
package transaction

import (
	"fmt"
	"iter"
	"time"

	"github.com/amirasaad/txrecords/pkg/config"
	"github.com/amirasaad/txrecords/pkg/domain"
	"github.com/amirasaad/txrecords/pkg/dto"
	"github.com/amirasaad/txrecords/pkg/middleware"
	"github.com/amirasaad/txrecords/pkg/query"
	txsvc "github.com/amirasaad/txrecords/pkg/service/transaction"
	"github.com/amirasaad/txrecords/webapi/common"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the transaction endpoints under /v1/transactions. When a JWT
// secret is configured every route requires a bearer token.
//
// Routes:
//   - POST   /v1/transactions                                  : Create a transaction.
//   - GET    /v1/transactions                                  : List one page, filtered by productId and/or cardId.
//   - GET    /v1/transactions/product/:productId               : List every transaction of a product.
//   - GET    /v1/transactions/commissions                      : List commission-bearing transactions in a date range.
//   - GET    /v1/transactions/clients/:clientId/daily-averages : Daily average balances per product.
//   - GET    /v1/transactions/:id                              : Get one transaction.
//   - PUT    /v1/transactions/:id                              : Replace a transaction.
//   - DELETE /v1/transactions/:id                              : Delete a transaction.
func Routes(app *fiber.App, svc *txsvc.Service, cfg *config.App) {
	v := common.NewValidator(cfg.TransactionTypes())
	var jwtCfg *config.Jwt
	if cfg.Auth != nil {
		jwtCfg = cfg.Auth.Jwt
	}

	g := app.Group("/v1/transactions", middleware.JwtProtected(jwtCfg))
	g.Post("/", CreateTransaction(svc, v))
	g.Get("/", ListTransactions(svc))
	// Fixed paths go before /:id.
	g.Get("/product/:productId", GetTransactionsByAccount(svc))
	g.Get("/commissions", GetCommissions(svc))
	g.Get("/clients/:clientId/daily-averages", GetDailyAverages(svc))
	g.Get("/:id", GetTransaction(svc))
	g.Put("/:id", UpdateTransaction(svc, v))
	g.Delete("/:id", DeleteTransaction(svc))
}

// CreateTransaction returns a Fiber handler that stores a new transaction.
// @Summary Create a transaction
// @Description Stores a transaction. Commission defaults to 0, description to "No description" and status to COMPLETED.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Transaction"
// @Success 201 {object} common.Response "Transaction created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /v1/transactions [post]
// @Security Bearer
func CreateTransaction(svc *txsvc.Service, v *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransactionRequest](c, v)
		if input == nil {
			return err // error response already written
		}
		tx, err := svc.CreateTransaction(c.UserContext(), input.ToInput())
		if err != nil {
			log.Errorf("Failed to create transaction: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", tx)
	}
}

// ListTransactions returns a Fiber handler listing one page of transactions,
// newest first.
// @Summary List transactions
// @Description Lists transactions matching productId or cardId. Pages are 1-based.
// @Tags transactions
// @Produce json
// @Param productId query string false "Product ID"
// @Param cardId query string false "Card ID"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size"
// @Success 200 {object} common.Response "Transactions fetched"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /v1/transactions [get]
// @Security Bearer
func ListTransactions(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, err := collect(svc.ListTransactions(c.UserContext(), dto.ListFilter{
			ProductID: c.Query("productId"),
			CardID:    c.Query("cardId"),
			Page:      c.QueryInt("page", 1),
			Size:      c.QueryInt("size", 0),
		}))
		if err != nil {
			log.Errorf("Failed to list transactions: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", txs)
	}
}

// GetTransaction returns a Fiber handler fetching one transaction.
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response "Transaction fetched"
// @Failure 404 {object} common.ProblemDetails "Transaction not found"
// @Router /v1/transactions/{id} [get]
// @Security Bearer
func GetTransaction(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := svc.GetTransactionByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction fetched", tx)
	}
}

// UpdateTransaction returns a Fiber handler replacing every field of a
// transaction except its identifier and creation date.
// @Summary Replace a transaction
// @Description Omitting status keeps the stored status.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body TransactionRequest true "Transaction"
// @Success 200 {object} common.Response "Transaction updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Transaction not found"
// @Router /v1/transactions/{id} [put]
// @Security Bearer
func UpdateTransaction(svc *txsvc.Service, v *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransactionRequest](c, v)
		if input == nil {
			return err // error response already written
		}
		tx, err := svc.UpdateTransaction(c.UserContext(), c.Params("id"), input.ToInput())
		if err != nil {
			log.Errorf("Failed to update transaction %s: %v", c.Params("id"), err)
			return common.ProblemDetailsJSON(c, "Failed to update transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", tx)
	}
}

// DeleteTransaction returns a Fiber handler removing a transaction.
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response "Transaction deleted"
// @Failure 404 {object} common.ProblemDetails "Transaction not found"
// @Router /v1/transactions/{id} [delete]
// @Security Bearer
func DeleteTransaction(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteTransaction(c.UserContext(), c.Params("id")); err != nil {
			log.Errorf("Failed to delete transaction %s: %v", c.Params("id"), err)
			return common.ProblemDetailsJSON(c, "Failed to delete transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}

// GetTransactionsByAccount returns a Fiber handler listing every transaction of
// a product account, newest first.
// @Summary List transactions of a product
// @Tags transactions
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} common.Response "Transactions fetched"
// @Router /v1/transactions/product/{productId} [get]
// @Security Bearer
func GetTransactionsByAccount(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		txs, err := collect(svc.GetTransactionsByAccountID(c.UserContext(), c.Params("productId")))
		if err != nil {
			log.Errorf("Failed to list transactions of %s: %v", c.Params("productId"), err)
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", txs)
	}
}

// GetCommissions returns a Fiber handler listing the commission-bearing
// transactions of a product between two dates, both inclusive.
// @Summary List commissions of a product
// @Tags transactions
// @Produce json
// @Param productId query string true "Product ID"
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} common.Response "Commissions fetched"
// @Failure 400 {object} common.ProblemDetails "Invalid dates"
// @Router /v1/transactions/commissions [get]
// @Security Bearer
func GetCommissions(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID := c.Query("productId")
		if productID == "" {
			return common.ProblemDetailsJSON(c, "Invalid query",
				fmt.Errorf("%w: productId is required", domain.ErrValidation))
		}
		start, end, err := dateRange(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		seq, err := svc.GetCommissionsByProductAndPeriod(c.UserContext(), productID, start, end)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		txs, err := collect(seq)
		if err != nil {
			log.Errorf("Failed to list commissions of %s: %v", productID, err)
			return common.ProblemDetailsJSON(c, "Failed to list commissions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Commissions fetched", txs)
	}
}

// GetDailyAverages returns a Fiber handler reporting the daily average balance
// of every product of a client between two dates, both inclusive.
// @Summary Daily average balances of a client
// @Tags transactions
// @Produce json
// @Param clientId path string true "Client ID"
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} common.Response "Report computed"
// @Failure 400 {object} common.ProblemDetails "Invalid dates"
// @Router /v1/transactions/clients/{clientId}/daily-averages [get]
// @Security Bearer
func GetDailyAverages(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end, err := dateRange(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		rep, err := svc.GetDailyAverageBalancesForClient(c.UserContext(), c.Params("clientId"), start, end)
		if err != nil {
			log.Errorf("Failed to compute daily averages for %s: %v", c.Params("clientId"), err)
			return common.ProblemDetailsJSON(c, "Failed to compute daily averages", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Report computed", rep)
	}
}

func dateRange(c *fiber.Ctx) (start, end time.Time, err error) {
	start, err = parseDate("startDate", c.Query("startDate"))
	if err != nil {
		return
	}
	end, err = parseDate("endDate", c.Query("endDate"))
	return
}

func parseDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
	}
	t, err := time.Parse(query.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q is not a YYYY-MM-DD date", domain.ErrValidation, name, value)
	}
	return t, nil
}

// collect drains seq. The first error aborts and nothing is returned.
func collect(seq iter.Seq2[*dto.TransactionRead, error]) ([]*dto.TransactionRead, error) {
	out := []*dto.TransactionRead{}
	for tx, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}
