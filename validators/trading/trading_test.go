package tradingValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTradeApp() *fiber.App {
	app := fiber.New()
	app.Post("/trade", Trade(), func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedTrade").(*TradeRequest)
		return c.JSON(fiber.Map{"symbol": reqData.Symbol, "shares": reqData.WholeShares})
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestTradeValidShares(t *testing.T) {
	app := newTradeApp()
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/trade", `{"symbol":"aapl","shares":10}`))
}

func TestTradeRejectsFractionalShares(t *testing.T) {
	app := newTradeApp()
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/trade", `{"symbol":"AAPL","shares":1.5}`))
}

func TestTradeRejectsNonPositiveShares(t *testing.T) {
	app := newTradeApp()
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/trade", `{"symbol":"AAPL","shares":0}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/trade", `{"symbol":"AAPL","shares":-3}`))
}

func TestTradeRejectsOversizedShares(t *testing.T) {
	app := newTradeApp()
	// Counts past float64 integer precision pass the whole-number check
	// but cannot be converted to int64 safely.
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/trade", `{"symbol":"AAPL","shares":1e19}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/trade", `{"symbol":"AAPL","shares":9007199254740994}`))
}

func TestTradeRejectsNonNumericShares(t *testing.T) {
	app := newTradeApp()
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/trade", `{"symbol":"AAPL","shares":"ten"}`))
}

func TestTradeRejectsMissingSymbol(t *testing.T) {
	app := newTradeApp()
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/trade", `{"shares":10}`))
}

func TestQuoteNormalizesSymbol(t *testing.T) {
	app := fiber.New()
	app.Post("/quote", Quote(), func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedQuote").(*QuoteRequest)
		return c.SendString(reqData.Symbol)
	})

	req := httptest.NewRequest("POST", "/quote", strings.NewReader(`{"symbol":" nflx "}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
