package handler

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"salesboard/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only coerce parameters and shape envelopes; all logic lives in the
// service.
func RegisterRoutes(app *fiber.App, db *sql.DB, saleSvc service.SaleService) {
	// Health endpoint: checks DB connectivity only
	app.Get("/health", HealthCheck(db))
	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/initialize-database", InitializeDatabase(saleSvc))
	api.Get("/transactions", ListTransactions(saleSvc))
	api.Get("/statistics", MonthlyStatistics(saleSvc))
	api.Get("/bar-chart", BarChart(saleSvc))
	api.Get("/pie-chart", PieChart(saleSvc))
	api.Get("/combined-data", CombinedData(saleSvc))
}

// HealthCheck pings the database with a short timeout.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeFailure(c, fiber.StatusServiceUnavailable, "Dependency unavailable.")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// InitializeDatabase seeds the store from the external dataset. Re-seeding
// appends the dataset again.
func InitializeDatabase(svc service.SaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.InitializeDatabase(c.UserContext())
		if err != nil {
			return writeFailure(c, fiber.StatusInternalServerError, "Error initializing database.")
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": res.Message,
		})
	}
}

// ListTransactions returns one page of records with an optional search term.
// Non-numeric page/perPage values fall back to their defaults; the service
// clamps non-positive ones.
func ListTransactions(svc service.SaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := queryInt(c, "page", 1)
		perPage := queryInt(c, "perPage", 10)
		search := c.Query("search")

		transactions, err := svc.ListTransactions(c.UserContext(), page, perPage, search)
		if err != nil {
			return writeFailure(c, fiber.StatusInternalServerError, "Error fetching transactions.")
		}
		return c.JSON(fiber.Map{
			"success":      true,
			"transactions": transactions,
		})
	}
}

// MonthlyStatistics returns the month's sale amount and item counts.
func MonthlyStatistics(svc service.SaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.MonthlyStatistics(c.UserContext(), c.Query("month"))
		if err != nil {
			return writeFailure(c, fiber.StatusInternalServerError, "Error calculating statistics.")
		}
		return c.JSON(fiber.Map{
			"success":           true,
			"totalSaleAmount":   stats.TotalSaleAmount,
			"totalSoldItems":    stats.TotalSoldItems,
			"totalNotSoldItems": stats.TotalNotSoldItems,
		})
	}
}

// BarChart returns the month's price histogram, empty buckets included.
func BarChart(svc service.SaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		buckets, err := svc.PriceHistogram(c.UserContext(), c.Query("month"))
		if err != nil {
			return writeFailure(c, fiber.StatusInternalServerError, "Error generating bar chart data.")
		}
		return c.JSON(fiber.Map{
			"success":      true,
			"barChartData": buckets,
		})
	}
}

// PieChart returns the month's per-category counts.
func PieChart(svc service.SaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups, err := svc.CategoryBreakdown(c.UserContext(), c.Query("month"))
		if err != nil {
			return writeFailure(c, fiber.StatusInternalServerError, "Error generating pie chart data.")
		}
		return c.JSON(fiber.Map{
			"success":      true,
			"pieChartData": groups,
		})
	}
}

// CombinedData merges all the above payloads; one failing sub-operation sinks
// the whole response.
func CombinedData(svc service.SaleService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		combined, err := svc.CombinedView(c.UserContext(), c.Query("month"))
		if err != nil {
			return writeFailure(c, fiber.StatusInternalServerError, "Error fetching combined data.")
		}
		return c.JSON(fiber.Map{
			"success":      true,
			"combinedData": combined,
		})
	}
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}
