package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed a demo user, a demo company and its default chart of accounts, cost centers and payment methods.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		demoEmail := "demo@gestorfin.com.br"
		var userID int64
		row := db.Raw("SELECT id FROM users WHERE email = ?", demoEmail).Row()
		if err := row.Scan(&userID); err == nil {
			fmt.Println("demo user already exists:", demoEmail)
		} else {
			row = db.Raw(
				"INSERT INTO users (email, name, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now()) RETURNING id",
				demoEmail, "Demo", string(hash),
			).Row()
			if err := row.Scan(&userID); err != nil {
				log.Fatalf("failed to insert demo user: %v", err)
			}
			fmt.Println("Seeded demo user:", demoEmail)
		}

		companyName := "Mercado Demo"
		var companyID int64
		row = db.Raw("SELECT id FROM companies WHERE name = ?", companyName).Row()
		if err := row.Scan(&companyID); err == nil {
			fmt.Println("demo company already exists:", companyName)
		} else {
			row = db.Raw(
				"INSERT INTO companies (name, created_at, updated_at) VALUES (?, now(), now()) RETURNING id",
				companyName,
			).Row()
			if err := row.Scan(&companyID); err != nil {
				log.Fatalf("failed to insert demo company: %v", err)
			}
			fmt.Println("Seeded demo company:", companyName)
		}

		if err := db.Exec(
			"INSERT INTO company_users (user_id, company_id, role, created_at) VALUES (?, ?, 'OWNER', now()) ON CONFLICT DO NOTHING",
			userID, companyID,
		).Error; err != nil {
			log.Fatalf("failed to link demo user to company: %v", err)
		}

		// Retail chart of accounts.
		accounts := []struct {
			Name  string
			Type  string
			Group string
			Order int
		}{
			{"Vendas em Dinheiro", "REVENUE", "RECEITA_BRUTA", 1},
			{"Vendas em Pix", "REVENUE", "RECEITA_BRUTA", 2},
			{"Vendas em Cartão", "REVENUE", "RECEITA_BRUTA", 3},
			{"Vendas em Vale", "REVENUE", "RECEITA_BRUTA", 4},
			{"Fornecedor à Vista", "EXPENSE", "CUSTOS", 20},
			{"Fornecedor a Prazo", "EXPENSE", "CUSTOS", 21},
			{"Pagamento de DAS (Simples Nacional)", "EXPENSE", "DEDUCOES", 30},
			{"INSS", "EXPENSE", "DEDUCOES", 31},
			{"Água", "EXPENSE", "DESPESAS_ADMIN", 40},
			{"Energia", "EXPENSE", "DESPESAS_ADMIN", 41},
			{"Internet", "EXPENSE", "DESPESAS_ADMIN", 42},
			{"Aluguel", "EXPENSE", "DESPESAS_ADMIN", 43},
			{"Sistema", "EXPENSE", "DESPESAS_ADMIN", 44},
			{"Contador", "EXPENSE", "DESPESAS_ADMIN", 45},
			{"Folha de Pagamento", "EXPENSE", "DESPESAS_ADMIN", 60},
			{"Hora Extra", "EXPENSE", "DESPESAS_ADMIN", 61},
			{"Pró-labore", "EXPENSE", "DESPESAS_ADMIN", 62},
		}
		created := 0
		for _, a := range accounts {
			var exists int
			row := db.Raw("SELECT 1 FROM accounts WHERE company_id = ? AND lower(name) = lower(?)", companyID, a.Name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO accounts (company_id, name, type, dre_group, sort_order, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				companyID, a.Name, a.Type, a.Group, a.Order,
			).Error; err != nil {
				log.Fatalf("failed to insert account %q: %v", a.Name, err)
			}
			created++
		}
		fmt.Printf("Seeded %d accounts\n", created)

		costCenters := []struct {
			Name  string
			Type  string
			Class string
		}{
			{"Administrativo", "EXPENSE", "FIXED"},
			{"Comercial", "REVENUE", "VARIABLE"},
			{"Operação", "EXPENSE", "VARIABLE"},
		}
		created = 0
		for _, cc := range costCenters {
			var exists int
			row := db.Raw("SELECT 1 FROM cost_centers WHERE company_id = ? AND lower(name) = lower(?)", companyID, cc.Name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO cost_centers (company_id, name, type, expense_class, created_at, updated_at) VALUES (?, ?, ?, ?, now(), now())",
				companyID, cc.Name, cc.Type, cc.Class,
			).Error; err != nil {
				log.Fatalf("failed to insert cost center %q: %v", cc.Name, err)
			}
			created++
		}
		fmt.Printf("Seeded %d cost centers\n", created)

		paymentMethods := []string{"Dinheiro", "Pix", "Cartão", "Vale", "Boleto", "Transferência"}
		for _, name := range paymentMethods {
			if err := db.Exec(
				"INSERT INTO payment_methods (company_id, name, active, created_at, updated_at) VALUES (?, ?, true, now(), now()) ON CONFLICT DO NOTHING",
				companyID, name,
			).Error; err != nil {
				log.Fatalf("failed to insert payment method %q: %v", name, err)
			}
		}
		fmt.Printf("Seeded %d payment methods\n", len(paymentMethods))
	},
}
