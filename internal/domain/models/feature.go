// internal/domain/models/feature.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feature statuses. The set is flat: any authorized caller may move a
// feature to any status, there is no enforced transition order.
const (
	StatusPending     = "pending"
	StatusUnderReview = "under-review"
	StatusPlanned     = "planned"
	StatusInProgress  = "in-progress"
	StatusComplete    = "complete"
)

// FeatureStatuses lists every valid feature status.
var FeatureStatuses = []string{
	StatusPending,
	StatusUnderReview,
	StatusPlanned,
	StatusInProgress,
	StatusComplete,
}

// ValidFeatureStatus reports whether s is one of the known statuses.
func ValidFeatureStatus(s string) bool {
	for _, v := range FeatureStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Feature is the feature-request aggregate: the request itself plus its
// embedded likes and comments. The embedded counters are kept in lock
// step with their collections by the store (atomic $inc alongside every
// $addToSet/$pull/$push).
type Feature struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	CreatedBy   primitive.ObjectID `bson:"created_by" json:"created_by"`
	Likes       Likes              `bson:"likes" json:"likes"`
	Comments    Comments           `bson:"comments" json:"comments"`
	IsDeleted   bool               `bson:"is_deleted" json:"is_deleted"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Likes holds the like counter and the set of users who liked the
// feature. Count always equals len(Users).
type Likes struct {
	Count int                  `bson:"count" json:"count"`
	Users []primitive.ObjectID `bson:"users" json:"users"`
}

// LikedBy reports whether the given user is in the like set.
func (l Likes) LikedBy(userID primitive.ObjectID) bool {
	for _, u := range l.Users {
		if u == userID {
			return true
		}
	}
	return false
}

// Comments holds the comment counter and the ordered comment sequence.
// Count always equals len(Data).
type Comments struct {
	Count int       `bson:"count" json:"count"`
	Data  []Comment `bson:"data" json:"data"`
}

// Find returns the comment with the given ID, if present.
func (c Comments) Find(commentID string) (Comment, bool) {
	for _, cm := range c.Data {
		if cm.ID == commentID {
			return cm, true
		}
	}
	return Comment{}, false
}

// Comment is embedded in its parent feature and has no independent
// lifecycle. IDs are UUIDs, unique within the parent sequence.
type Comment struct {
	ID         string             `bson:"id" json:"id"`
	CommentsBy primitive.ObjectID `bson:"comments_by" json:"comments_by"`
	Comment    string             `bson:"comment" json:"comment"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}