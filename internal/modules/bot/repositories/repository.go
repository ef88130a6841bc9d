package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

// ErrNotFound is returned when a row addressed by id does not exist for the tenant.
var ErrNotFound = errors.New("not found")

type ConfigRepo interface {
	// GetOrCreateConfig returns the tenant's config, inserting the default row
	// if missing. created is true only for the call that inserted it.
	GetOrCreateConfig(ctx context.Context, tenantID string) (cfg *models.BotConfig, created bool, err error)
	UpdateConfig(ctx context.Context, tenantID string, updates map[string]interface{}) (*models.BotConfig, error)
	MarkRulesSeeded(ctx context.Context, tenantID string, at time.Time) error
}

type RuleRepo interface {
	// ListRules returns rules ordered by priority DESC, id ASC. An empty modes
	// slice returns every mode.
	ListRules(ctx context.Context, tenantID string, modes []string) ([]models.BusinessRule, error)
	CreateRule(ctx context.Context, rule *models.BusinessRule) error
	UpdateRule(ctx context.Context, rule *models.BusinessRule) error
	DeleteRule(ctx context.Context, tenantID string, id uint) error
	// ReplaceRules atomically swaps the tenant's whole rule set.
	ReplaceRules(ctx context.Context, tenantID string, rules []models.BusinessRule) error
}

type ProductRepo interface {
	// ListProducts returns the newest products first.
	ListProducts(ctx context.Context, tenantID string) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	ListCatalog(ctx context.Context, tenantID string, limit int) ([]string, error)
	FindProductByName(ctx context.Context, tenantID, name string) (*models.Product, error)
	// FindBestMatch returns nil without error when nothing matches.
	FindBestMatch(ctx context.Context, tenantID, normalizedMessage string) (*models.Product, error)
}

type AppointmentRepo interface {
	ListAppointments(ctx context.Context, tenantID string) ([]models.Appointment, error)
	HasConflict(ctx context.Context, tenantID string, from, to time.Time) (bool, error)
	CreateAppointment(ctx context.Context, appt *models.Appointment, from, to time.Time) error
}

type ConversationRepo interface {
	LogConversation(ctx context.Context, conv *models.Conversation) error
	PruneConversations(ctx context.Context, before time.Time) (int64, error)
}

// Store is every repository the bot needs.
type Store interface {
	ConfigRepo
	RuleRepo
	ProductRepo
	AppointmentRepo
	ConversationRepo
}

type postgresStore struct {
	ConfigRepo
	RuleRepo
	ProductRepo
	AppointmentRepo
	ConversationRepo
}

// NewStore assembles the Postgres-backed repositories.
func NewStore(db *gorm.DB) Store {
	return &postgresStore{
		ConfigRepo:       NewConfigRepo(db),
		RuleRepo:         NewRuleRepo(db),
		ProductRepo:      NewProductRepo(db),
		AppointmentRepo:  NewAppointmentRepo(db),
		ConversationRepo: NewConversationRepo(db),
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
