package repository

import (
	"context"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FlashcardRepository struct {
	Col *mongo.Collection
}

func NewFlashcardRepository(db *mongo.Database) *FlashcardRepository {
	return &FlashcardRepository{Col: db.Collection("flashcards")}
}

func (r *FlashcardRepository) FindByUser(ctx context.Context, userID string) ([]models.Flashcard, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var cards []models.Flashcard
	for cur.Next(ctx) {
		var card models.Flashcard
		if err := cur.Decode(&card); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (r *FlashcardRepository) FindByID(ctx context.Context, id string) (*models.Flashcard, error) {
	var card models.Flashcard
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&card)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *FlashcardRepository) Create(ctx context.Context, card *models.Flashcard) error {
	_, err := r.Col.InsertOne(ctx, card)
	return err
}

func (r *FlashcardRepository) CreateMany(ctx context.Context, cards []models.Flashcard) error {
	docs := make([]interface{}, len(cards))
	for i := range cards {
		docs[i] = cards[i]
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

// UpdateScheduling upserts the scheduling state after a rating. All numeric
// fields go in one $set so a write never leaves a card half-updated.
func (r *FlashcardRepository) UpdateScheduling(ctx context.Context, card *models.Flashcard) error {
	update := bson.M{"$set": bson.M{
		"interval":    card.Interval,
		"ease":        card.Ease,
		"due_date":    card.DueDate,
		"reviews":     card.Reviews,
		"last_review": card.LastReview,
		"difficulty":  card.Difficulty,
	}}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": card.ID, "user_id": card.UserID}, update)
	return err
}

func (r *FlashcardRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	return err
}
