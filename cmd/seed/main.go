package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"petshop/internal/database"
	"petshop/internal/domain"
)

// Seeds a local database with two demo shops so subdomain routing can be
// exercised right away (Host: banhocao.localhost etc.).
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "petshop.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM refunds")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM pets")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM tenants")

	tenants := []domain.Tenant{
		{Name: "Banho do Cão", Subdomain: "banhocao", IsActive: true},
		{Name: "PetLove Centro", Subdomain: "petlove", IsActive: true},
		{Name: "Dev Local", Subdomain: "localhost", IsActive: true},
	}
	for i := range tenants {
		if err := db.Create(&tenants[i]).Error; err != nil {
			log.Fatal("seed tenants failed:", err)
		}
	}

	services := []domain.Service{
		{TenantID: tenants[0].ID, Name: "Banho", Price: decimal.RequireFromString("60.00"), DurationMinutes: 45, IsActive: true},
		{TenantID: tenants[0].ID, Name: "Banho e Tosa", Price: decimal.RequireFromString("100.00"), DurationMinutes: 90, IsActive: true},
		{TenantID: tenants[1].ID, Name: "Consulta", Price: decimal.RequireFromString("150.00"), DurationMinutes: 30, IsActive: true},
		{TenantID: tenants[2].ID, Name: "Banho", Price: decimal.RequireFromString("50.00"), DurationMinutes: 60, IsActive: true},
	}
	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			log.Fatal("seed services failed:", err)
		}
	}

	customers := []domain.Customer{
		{TenantID: tenants[0].ID, Name: "Maria Souza", CPF: "52998224725", Email: "maria@example.com", Phone: "11999990000"},
		{TenantID: tenants[1].ID, Name: "João Lima", CPF: "52998224725", Email: "joao@example.com", Phone: "11888880000"},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			log.Fatal("seed customers failed:", err)
		}
	}

	pets := []domain.Pet{
		{TenantID: tenants[0].ID, CustomerID: customers[0].ID, Name: "Rex", Species: domain.SpeciesDog, Breed: "Vira-lata"},
		{TenantID: tenants[1].ID, CustomerID: customers[1].ID, Name: "Mimi", Species: domain.SpeciesCat},
	}
	for i := range pets {
		if err := db.Create(&pets[i]).Error; err != nil {
			log.Fatal("seed pets failed:", err)
		}
	}

	log.Printf("seed completed: tenants=%d services=%d customers=%d pets=%d",
		len(tenants), len(services), len(customers), len(pets))
}
