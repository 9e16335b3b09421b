// internal/domain/models/boardconfig.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Board status values.
const (
	BoardActive   = "Active"
	BoardInactive = "Inactive"
)

// Default sorting orders offered to the frontend.
const (
	SortMostVoted   = "MostVoted"
	SortNewestFirst = "NewestFirst"
	SortOldestFirst = "OldestFirst"
)

// Field length limits for the board configuration.
const (
	MaxBoardName        = 25
	MaxBoardTitle       = 25
	MaxBoardDescription = 255
)

// BoardConfig is the single board-wide configuration document that
// controls presentation. Admin-editable; exactly one document exists.
type BoardConfig struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	LogoURL      string             `bson:"logo_url" json:"logoUrl"`
	BoardStatus  string             `bson:"board_status" json:"boardStatus"`   // Active | Inactive
	SortingOrder string             `bson:"sorting_order" json:"sortingOrder"` // MostVoted | NewestFirst | OldestFirst

	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
	UpdatedByID *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"updated_by_id,omitempty"`
}

// ValidBoardStatus reports whether s is a known board status.
func ValidBoardStatus(s string) bool {
	return s == BoardActive || s == BoardInactive
}

// ValidSortingOrder reports whether s is a known sorting order.
func ValidSortingOrder(s string) bool {
	return s == SortMostVoted || s == SortNewestFirst || s == SortOldestFirst
}