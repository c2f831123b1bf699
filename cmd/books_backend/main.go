package main

// @title Books Backend API
// @version 1.0
// @description Accounting core for small businesses: chart of accounts, catalogue, orders, bills, invoices, payments and ledger reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	Execute()
}
