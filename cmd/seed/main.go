// seed siembra los 7 bancos del sistema con saldo cero. Es idempotente: los
// bancos existentes conservan su capital y sus históricos.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/chronos/tesoreria-api/internal/domain/entity"
	"github.com/chronos/tesoreria-api/internal/infrastructure/postgres"
	"github.com/chronos/tesoreria-api/pkg/config"
	"github.com/chronos/tesoreria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: "seed",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	bancoRepo := postgres.NewBancoRepository(pool)
	for _, banco := range entity.BancosSeed() {
		if err := bancoRepo.Upsert(banco); err != nil {
			log.Fatal().Err(err).Str("banco", banco.ID).Msg("sembrar banco")
		}
		log.Info().Str("banco", banco.ID).Str("moneda", banco.Moneda).Msg("banco sembrado")
	}
	log.Info().Int("bancos", len(entity.BancoIDs)).Msg("siembra completada")
}
