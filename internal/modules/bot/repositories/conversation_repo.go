package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/pyme-bot-be/internal/modules/bot/models"
)

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) LogConversation(ctx context.Context, conv *models.Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

// PruneConversations deletes turns logged before the cutoff.
func (r *conversationRepo) PruneConversations(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", before).Delete(&models.Conversation{})
	return res.RowsAffected, res.Error
}
