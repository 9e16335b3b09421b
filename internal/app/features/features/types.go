// internal/app/features/features/types.go
package features

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sjihq/featureboard/internal/domain/models"
)

// userRef is the expanded form of a user reference. References that
// fail to resolve (owner deleted) stay nil in views that keep the item,
// or drop the item in listings.
type userRef struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL,omitempty"`
}

type likesView struct {
	Count int       `json:"count"`
	Users []userRef `json:"users"`
}

type commentView struct {
	ID         string    `json:"id"`
	CommentsBy *userRef  `json:"commentsBy"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

type commentsView struct {
	Count int           `json:"count"`
	Data  []commentView `json:"data"`
}

// featureView is the full projection: owner, like users, and comment
// authors all expanded, comment bodies included.
type featureView struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	CreatedBy   *userRef     `json:"createdBy"`
	Likes       likesView    `json:"likes"`
	Comments    commentsView `json:"comments"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// listItemView is the trimmed listing projection: likes in full,
// comment count only, never comment bodies.
type listItemView struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	CreatedBy     userRef   `json:"createdBy"`
	Likes         likesView `json:"likes"`
	TotalComments int       `json:"totalComments"`
	CreatedAt     time.Time `json:"createdAt"`
}

// refIDs collects every user reference a set of features carries so one
// store round trip can resolve them all.
func refIDs(items []models.Feature) []primitive.ObjectID {
	var ids []primitive.ObjectID
	for _, f := range items {
		ids = append(ids, f.CreatedBy)
		ids = append(ids, f.Likes.Users...)
		for _, c := range f.Comments.Data {
			ids = append(ids, c.CommentsBy)
		}
	}
	return ids
}

func toRef(u models.User) userRef {
	return userRef{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Email:    u.Email,
		PhotoURL: u.PhotoURL,
	}
}

func buildLikes(l models.Likes, users map[primitive.ObjectID]models.User) likesView {
	v := likesView{Count: l.Count, Users: []userRef{}}
	for _, id := range l.Users {
		if u, ok := users[id]; ok {
			v.Users = append(v.Users, toRef(u))
		}
	}
	return v
}

func buildFeatureView(f models.Feature, users map[primitive.ObjectID]models.User) featureView {
	v := featureView{
		ID:          f.ID.Hex(),
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status,
		Likes:       buildLikes(f.Likes, users),
		Comments:    commentsView{Count: f.Comments.Count, Data: []commentView{}},
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
	if owner, ok := users[f.CreatedBy]; ok {
		ref := toRef(owner)
		v.CreatedBy = &ref
	}
	for _, c := range f.Comments.Data {
		cv := commentView{
			ID:        c.ID,
			Comment:   c.Comment,
			CreatedAt: c.CreatedAt,
		}
		if author, ok := users[c.CommentsBy]; ok {
			ref := toRef(author)
			cv.CommentsBy = &ref
		}
		v.Comments.Data = append(v.Comments.Data, cv)
	}
	return v
}

// hydrateOne resolves every user reference one feature carries and
// returns the full projection.
func (h *Handler) hydrateOne(ctx context.Context, f models.Feature) (featureView, error) {
	users, err := h.Users.ByIDs(ctx, refIDs([]models.Feature{f}))
	if err != nil {
		return featureView{}, err
	}
	return buildFeatureView(f, users), nil
}

// hydrateList resolves references for a page of features and builds the
// trimmed listing projection. Items whose owner no longer resolves are
// dropped after the page was cut, so a page may come back short.
func (h *Handler) hydrateList(ctx context.Context, items []models.Feature) ([]listItemView, error) {
	users, err := h.Users.ByIDs(ctx, refIDs(items))
	if err != nil {
		return nil, err
	}

	out := make([]listItemView, 0, len(items))
	for _, f := range items {
		owner, ok := users[f.CreatedBy]
		if !ok {
			continue
		}
		out = append(out, listItemView{
			ID:            f.ID.Hex(),
			Title:         f.Title,
			Description:   f.Description,
			Status:        f.Status,
			CreatedBy:     toRef(owner),
			Likes:         buildLikes(f.Likes, users),
			TotalComments: f.Comments.Count,
			CreatedAt:     f.CreatedAt,
		})
	}
	return out, nil
}

// hydrateFull is hydrateList with the full projection, used by search.
func (h *Handler) hydrateFull(ctx context.Context, items []models.Feature) ([]featureView, error) {
	users, err := h.Users.ByIDs(ctx, refIDs(items))
	if err != nil {
		return nil, err
	}

	out := make([]featureView, 0, len(items))
	for _, f := range items {
		if _, ok := users[f.CreatedBy]; !ok {
			continue
		}
		out = append(out, buildFeatureView(f, users))
	}
	return out, nil
}