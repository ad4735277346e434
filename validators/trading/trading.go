package tradingValidator

import (
	"math"
	"strings"

	"finsim/middleware"

	"github.com/gofiber/fiber/v2"
)

// QuoteRequest is the validated quote lookup payload.
type QuoteRequest struct {
	Symbol string `json:"symbol"`
}

// maxShareCount bounds a single order. Above 2^53 a float64 no longer
// represents integers exactly, so the whole-number check below says
// nothing and the int64 conversion can wrap.
const maxShareCount = 1 << 53

// TradeRequest is the validated buy/sell payload. Shares arrives as a
// number so fractional input can be rejected explicitly rather than
// silently truncated.
type TradeRequest struct {
	Symbol string  `json:"symbol"`
	Shares float64 `json:"shares"`

	// WholeShares is Shares after the whole-number check passed.
	WholeShares int64 `json:"-"`
}

// Quote validates the quote lookup request
func Quote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuoteRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Symbol = strings.ToUpper(strings.TrimSpace(reqData.Symbol))

		errors := make(map[string]string)
		if reqData.Symbol == "" {
			errors["symbol"] = "Symbol is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuote", reqData)
		return c.Next()
	}
}

// Trade validates a buy or sell request: symbol present, share count a
// positive whole number.
func Trade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TradeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Symbol = strings.ToUpper(strings.TrimSpace(reqData.Symbol))

		errors := make(map[string]string)

		if reqData.Symbol == "" {
			errors["symbol"] = "Symbol is required!"
		}
		if reqData.Shares <= 0 {
			errors["shares"] = "Share count must be a positive number!"
		} else if reqData.Shares > maxShareCount {
			errors["shares"] = "Share count is too large!"
		} else if reqData.Shares != math.Trunc(reqData.Shares) {
			errors["shares"] = "Share count must be a whole number!"
		} else {
			reqData.WholeShares = int64(reqData.Shares)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrade", reqData)
		return c.Next()
	}
}
