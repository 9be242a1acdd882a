package polls

import (
	"context"
	"errors"
	"fmt"
	"time"

	"polls/internal/db"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps questions, choices and the admin change log in Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(conn *gorm.DB) *GormStore {
	return &GormStore{db: conn}
}

func (s *GormStore) ListPublished(ctx context.Context, now time.Time, limit int) ([]Question, error) {
	var records []db.Question
	query := s.db.WithContext(ctx).
		Where("pub_date <= ?", now).
		Order("pub_date desc").
		Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list published questions: %w", err)
	}
	return toQuestions(records), nil
}

func (s *GormStore) GetPublished(ctx context.Context, id uint, now time.Time) (Question, error) {
	var record db.Question
	err := s.withChoices(ctx).
		Where("pub_date <= ?", now).
		First(&record, id).Error
	if err != nil {
		return Question{}, notFound(err, "get published question")
	}
	return toQuestion(record), nil
}

func (s *GormStore) Get(ctx context.Context, id uint) (Question, error) {
	var record db.Question
	if err := s.withChoices(ctx).First(&record, id).Error; err != nil {
		return Question{}, notFound(err, "get question")
	}
	return toQuestion(record), nil
}

// IncrementVote relies on a single UPDATE so concurrent votes never lose counts.
func (s *GormStore) IncrementVote(ctx context.Context, questionID, choiceID uint) error {
	result := s.db.WithContext(ctx).
		Model(&db.Choice{}).
		Where("id = ? AND question_id = ?", choiceID, questionID).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("increment vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrChoiceNotFound
	}
	return nil
}

func (s *GormStore) ListQuestions(ctx context.Context, filter QuestionFilter) ([]Question, int64, error) {
	query := s.db.WithContext(ctx).Model(&db.Question{})
	if !filter.From.IsZero() {
		query = query.Where("pub_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("pub_date < ?", filter.To)
	}
	query = query.Session(&gorm.Session{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count questions: %w", err)
	}
	switch filter.Order {
	case OrderPubDate:
		query = query.Order("pub_date asc")
	case OrderPubDateDesc:
		query = query.Order("pub_date desc")
	case OrderQuestionText:
		query = query.Order("question_text asc")
	case OrderQuestionTextDesc:
		query = query.Order("question_text desc")
	}
	query = query.Order("id desc")
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	var records []db.Question
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("list questions: %w", err)
	}
	return toQuestions(records), total, nil
}

func (s *GormStore) CreateQuestion(ctx context.Context, in QuestionInput) (Question, error) {
	record := db.Question{
		QuestionText: in.QuestionText,
		PubDate:      in.PubDate.UTC(),
	}
	for _, text := range in.NewChoices {
		record.Choices = append(record.Choices, db.Choice{ChoiceText: text})
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return createEvent(tx, additionEvent(toQuestion(record)))
	})
	if err != nil {
		return Question{}, fmt.Errorf("create question: %w", err)
	}
	return toQuestion(record), nil
}

func (s *GormStore) UpdateQuestion(ctx context.Context, id uint, in QuestionInput) (Question, error) {
	var updated db.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record db.Question
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Choices", orderChoices).
			First(&record, id).Error; err != nil {
			return err
		}
		before := toQuestion(record)
		if err := tx.Model(&db.Question{}).Where("id = ?", record.ID).Updates(map[string]any{
			"question_text": in.QuestionText,
			"pub_date":      in.PubDate.UTC(),
		}).Error; err != nil {
			return err
		}
		added := make([]db.Choice, 0, len(in.NewChoices))
		for _, text := range in.NewChoices {
			added = append(added, db.Choice{QuestionID: record.ID, ChoiceText: text})
		}
		if len(added) > 0 {
			if err := tx.Create(&added).Error; err != nil {
				return err
			}
		}
		record.QuestionText = in.QuestionText
		record.PubDate = in.PubDate.UTC()
		record.Choices = append(record.Choices, added...)
		updated = record
		return createEvent(tx, changeEvent(before, toQuestion(record), toChoices(added)))
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return Question{}, ErrNotFound
		}
		return Question{}, notFound(err, "update question")
	}
	return toQuestion(updated), nil
}

func (s *GormStore) DeleteQuestion(ctx context.Context, id uint) (Question, error) {
	var deleted db.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Choices", orderChoices).
			First(&deleted, id).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&db.Choice{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db.Question{}, id).Error; err != nil {
			return err
		}
		return createEvent(tx, deletionEvent(toQuestion(deleted)))
	})
	if err != nil {
		return Question{}, notFound(err, "delete question")
	}
	return toQuestion(deleted), nil
}

func (s *GormStore) ListEvents(ctx context.Context, questionID uint) ([]Event, error) {
	var records []db.AdminEvent
	if err := s.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("created_at desc").
		Order("id desc").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]Event, 0, len(records))
	for _, record := range records {
		out = append(out, Event{
			ID:         record.ID,
			QuestionID: record.QuestionID,
			Action:     record.Action,
			Label:      record.Label,
			Message:    record.Message,
			Payload:    []byte(record.Payload),
			CreatedAt:  record.CreatedAt,
		})
	}
	return out, nil
}

func (s *GormStore) withChoices(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Choices", orderChoices)
}

func orderChoices(tx *gorm.DB) *gorm.DB {
	return tx.Order("choices.id asc")
}

func createEvent(tx *gorm.DB, event Event) error {
	record := db.AdminEvent{
		QuestionID: event.QuestionID,
		Action:     event.Action,
		Label:      truncate(event.Label, 200),
		Message:    truncate(event.Message, 512),
		Payload:    datatypes.JSON(event.Payload),
	}
	return tx.Create(&record).Error
}

func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}

func toQuestions(records []db.Question) []Question {
	out := make([]Question, 0, len(records))
	for _, record := range records {
		out = append(out, toQuestion(record))
	}
	return out
}

func toQuestion(record db.Question) Question {
	return Question{
		ID:           record.ID,
		QuestionText: record.QuestionText,
		PubDate:      record.PubDate,
		Choices:      toChoices(record.Choices),
	}
}

func toChoices(records []db.Choice) []Choice {
	if len(records) == 0 {
		return nil
	}
	out := make([]Choice, 0, len(records))
	for _, record := range records {
		out = append(out, Choice{
			ID:         record.ID,
			QuestionID: record.QuestionID,
			ChoiceText: record.ChoiceText,
			Votes:      record.Votes,
		})
	}
	return out
}
