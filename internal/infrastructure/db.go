package infrastructure

import (
	"Bolso/config"
	"Bolso/internal/domain/budget"
	"Bolso/internal/domain/category"
	"Bolso/internal/domain/goal"
	"Bolso/internal/domain/transaction"
	"Bolso/internal/domain/user"
	"Bolso/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Conexão com banco de dados estabelecida")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	entities := []interface{}{
		&user.User{},
		&budget.Budget{},
		&category.Category{},
		&transaction.Transaction{},
		&goal.Goal{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().Err(err).Msg("Erro ao migrar entidade")
			return err
		}
	}

	if err := ensureTransactionCategoryFK(db); err != nil {
		logger.Warn().Err(err).Msg("Aviso ao garantir FK de categoria em transactions")
	}

	logger.Info().Msg("Migrations executadas com sucesso")
	return nil
}

// Apagar uma categoria deve deixar as transações dela sem categoria, não
// removê-las nem falhar: a FK precisa de ON DELETE SET NULL.
func ensureTransactionCategoryFK(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	queries := []string{
		`ALTER TABLE transactions DROP CONSTRAINT IF EXISTS fk_transactions_category`,
		`ALTER TABLE transactions
			ADD CONSTRAINT fk_transactions_category
			FOREIGN KEY (category_id) REFERENCES categories(id)
			ON DELETE SET NULL`,
	}
	for _, query := range queries {
		if _, err := sqlDB.Exec(query); err != nil {
			return err
		}
	}
	return nil
}
