package food

import "time"

// Food is the persisted menu item. ID is assigned by the repository on save
// and never changes afterwards.
type Food struct {
	ID        string    `json:"id" bson:"_id" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty" db:"image"`
	Price     *float64  `json:"price,omitempty" bson:"price,omitempty" db:"price"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
}

// FoodRequest is the body accepted by POST /food.
type FoodRequest struct {
	Name  string   `json:"name" binding:"required"`
	Image string   `json:"image"`
	Price *float64 `json:"price"`
}

// FoodResponse is one element of the GET /food listing.
type FoodResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Image string   `json:"image,omitempty"`
	Price *float64 `json:"price,omitempty"`
}

// NewFood builds an unsaved record from a request; the ID is left empty.
func NewFood(req FoodRequest) *Food {
	f := &Food{Name: req.Name, Image: req.Image}
	if req.Price != nil {
		p := *req.Price
		f.Price = &p
	}
	return f
}

// NewFoodResponse projects a stored record onto the response shape.
func NewFoodResponse(f *Food) FoodResponse {
	resp := FoodResponse{ID: f.ID, Name: f.Name, Image: f.Image}
	if f.Price != nil {
		p := *f.Price
		resp.Price = &p
	}
	return resp
}
