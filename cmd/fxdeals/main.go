package main

import "github.com/SscSPs/fx_deal_system/internal/cli"

// @title FX Deal System API
// @version 1.0
// @description Imports FX deals, rejects invalid and duplicate ones, and stores them in PostgreSQL.

// @host localhost:8080
// @BasePath /api
func main() {
	cli.Execute()
}
