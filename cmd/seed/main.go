// seed carga datos de arranque: un usuario admin y un catálogo de ejemplo.
//
// Uso: go run ./cmd/seed
// Idempotente: si el usuario admin ya existe no hace nada.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Taller-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByUsername("admin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "buscar admin: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Println("el usuario admin ya existe, nada que hacer")
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	admin := &entity.User{
		Username:     "admin",
		Email:        "admin@taller.local",
		PasswordHash: string(hash),
		Name:         "Administrador",
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("usuario admin creado (id=%d)\n", admin.ID)

	// Catálogo de ejemplo
	productRepo := postgres.NewProductRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)

	products := []*entity.Product{
		{Name: "Silla rústica", Category: "Sillas", EstimatedPrice: decimal.NewFromInt(85000), CreatedBy: &admin.ID},
		{Name: "Mesa de comedor", Category: "Mesas", EstimatedPrice: decimal.NewFromInt(450000), CreatedBy: &admin.ID},
		{Name: "Repisa flotante", Category: "Repisas", EstimatedPrice: decimal.NewFromInt(60000), CreatedBy: &admin.ID},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %q: %v\n", p.Name, err)
			os.Exit(1)
		}
		fmt.Printf("producto %q creado (id=%d)\n", p.Name, p.ID)
	}

	if _, err := settingRepo.Set(entity.SettingInitialCapital, "0"); err != nil {
		fmt.Fprintf(os.Stderr, "configurar capital inicial: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("seed completado")
}
