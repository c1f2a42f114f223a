package models

// User represents a store customer
// Stored in the "user" collection; no endpoint exposes it yet
type User struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Address  string `json:"address" bson:"address"`
	Age      *int   `json:"age" bson:"age"`
	IsActive bool   `json:"is_active" bson:"is_active"`
}

// CreateUserRequest describes the accepted shape of a new user
type CreateUserRequest struct {
	Name     *string `json:"name" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Address  *string `json:"address" validate:"required"`
	Age      *int    `json:"age" validate:"omitempty,gte=0,lte=120"`
	IsActive *bool   `json:"is_active"`
}

// User converts a validated request into a User, applying defaults
func (r CreateUserRequest) User() User {
	u := User{
		Name:     deref(r.Name),
		Email:    deref(r.Email),
		Address:  deref(r.Address),
		Age:      r.Age,
		IsActive: true,
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
	return u
}
