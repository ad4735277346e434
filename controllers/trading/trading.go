package tradingController

import (
	"errors"
	"log"

	"finsim/middleware"
	"finsim/portfolio"
	"finsim/quotes"
	"finsim/store"
	"finsim/utils"
	tradingValidator "finsim/validators/trading"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Controller handles portfolio, quote, buy, sell and history.
type Controller struct {
	Store  store.Store
	Quotes quotes.Provider
}

func New(db store.Store, provider quotes.Provider) *Controller {
	return &Controller{Store: db, Quotes: provider}
}

type positionResponse struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Shares   int64  `json:"shares"`
	Price    string `json:"price"`
	Value    string `json:"value"`
	PriceUSD string `json:"priceUsd"`
	ValueUSD string `json:"valueUsd"`
}

// Index renders the portfolio: each net holding priced at the current
// quote, plus cash and grand total.
func (ctrl *Controller) Index(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	user, err := ctrl.Store.UserByID(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	trades, err := ctrl.Store.TradeLog(userId)
	if err != nil {
		log.Printf("Error loading trade log: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load portfolio!", nil)
	}

	basket := portfolio.Basket(trades)

	pf, err := portfolio.Price(c.UserContext(), basket, user.Cash, ctrl.Quotes)
	if err != nil {
		if errors.Is(err, quotes.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A held symbol can no longer be priced!", nil)
		}
		log.Printf("Error pricing portfolio: %v", err)
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Quote service unavailable!", nil)
	}

	positions := make([]positionResponse, 0, len(pf.Positions))
	for _, p := range pf.Positions {
		positions = append(positions, positionResponse{
			Symbol:   p.Symbol,
			Name:     p.Name,
			Shares:   p.Shares,
			Price:    p.Price.StringFixed(2),
			Value:    p.Value.StringFixed(2),
			PriceUSD: utils.USD(p.Price),
			ValueUSD: utils.USD(p.Value),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Portfolio fetched!", fiber.Map{
		"positions": positions,
		"cash":      pf.Cash.StringFixed(2),
		"cashUsd":   utils.USD(pf.Cash),
		"total":     pf.Total.StringFixed(2),
		"totalUsd":  utils.USD(pf.Total),
	})
}

// Quote looks up a ticker and returns its current price.
func (ctrl *Controller) Quote(c *fiber.Ctx) error {
	var symbol string
	if reqData, ok := c.Locals("validatedQuote").(*tradingValidator.QuoteRequest); ok {
		symbol = reqData.Symbol
	} else {
		symbol = c.Query("symbol")
	}
	if symbol == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Symbol is required!", nil)
	}

	quote, err := ctrl.Quotes.Lookup(c.UserContext(), symbol)
	if err != nil {
		if errors.Is(err, quotes.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid ticker!", nil)
		}
		log.Printf("Error looking up quote: %v", err)
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Quote service unavailable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quote fetched!", fiber.Map{
		"symbol":   quote.Symbol,
		"name":     quote.Name,
		"price":    quote.Price.StringFixed(2),
		"priceUsd": utils.USD(quote.Price),
	})
}

// Buy purchases shares at the current quote price. The transaction row
// and the cash debit are applied atomically by the store.
func (ctrl *Controller) Buy(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedTrade").(*tradingValidator.TradeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quote, err := ctrl.Quotes.Lookup(c.UserContext(), reqData.Symbol)
	if err != nil {
		if errors.Is(err, quotes.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid symbol!", nil)
		}
		log.Printf("Error looking up quote: %v", err)
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Quote service unavailable!", nil)
	}

	record, remaining, err := ctrl.Store.ExecuteTrade(userId, quote.Symbol, reqData.WholeShares, quote.Price)
	if err != nil {
		if errors.Is(err, store.ErrInsufficientCash) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot afford!", nil)
		}
		log.Printf("Error executing buy: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to execute trade!", nil)
	}

	value := quote.Price.Mul(decimal.NewFromInt(reqData.WholeShares))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Bought!", fiber.Map{
		"transactionId": record.ID,
		"symbol":        quote.Symbol,
		"shares":        reqData.WholeShares,
		"price":         quote.Price.StringFixed(2),
		"priceUsd":      utils.USD(quote.Price),
		"value":         value.StringFixed(2),
		"valueUsd":      utils.USD(value),
		"cash":          remaining.StringFixed(2),
		"cashUsd":       utils.USD(remaining),
	})
}

// Sell disposes shares at the current quote price. Selling more shares
// than the net holding is rejected with no mutation.
func (ctrl *Controller) Sell(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedTrade").(*tradingValidator.TradeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quote, err := ctrl.Quotes.Lookup(c.UserContext(), reqData.Symbol)
	if err != nil {
		if errors.Is(err, quotes.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid symbol!", nil)
		}
		log.Printf("Error looking up quote: %v", err)
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Quote service unavailable!", nil)
	}

	record, remaining, err := ctrl.Store.ExecuteTrade(userId, quote.Symbol, -reqData.WholeShares, quote.Price)
	if err != nil {
		if errors.Is(err, store.ErrInsufficientShares) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Too many shares!", nil)
		}
		log.Printf("Error executing sell: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to execute trade!", nil)
	}

	value := quote.Price.Mul(decimal.NewFromInt(reqData.WholeShares))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sold!", fiber.Map{
		"transactionId": record.ID,
		"symbol":        quote.Symbol,
		"shares":        reqData.WholeShares,
		"price":         quote.Price.StringFixed(2),
		"priceUsd":      utils.USD(quote.Price),
		"value":         value.StringFixed(2),
		"valueUsd":      utils.USD(value),
		"cash":          remaining.StringFixed(2),
		"cashUsd":       utils.USD(remaining),
	})
}

// Holdings returns the net basket, the data behind the sell form.
func (ctrl *Controller) Holdings(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	trades, err := ctrl.Store.TradeLog(userId)
	if err != nil {
		log.Printf("Error loading trade log: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load holdings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Holdings fetched!", portfolio.Basket(trades))
}

// History lists the user's transactions, newest first.
func (ctrl *Controller) History(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	transactions, total, err := ctrl.Store.TransactionsByUser(userId, page, limit)
	if err != nil {
		log.Printf("Error loading history: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction history fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
