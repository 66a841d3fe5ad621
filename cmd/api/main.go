package main

import (
	appfx "FinMate/internal/fx"

	"go.uber.org/fx"
)

// @title FinMate API
// @version 1.0
// @description API de planejamento financeiro pessoal: metas, despesas, renda e relatorios.
// @BasePath /api
func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
