package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"omitempty,max=120"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Users ---

type createUserRequest struct {
	Name  string `json:"name"  validate:"omitempty,max=120"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo" validate:"omitempty,url"`
}

type createUserResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// --- Generic write results ---

type insertResultResponse struct {
	InsertedID string `json:"insertedId"`
}

type updateResultResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type deleteResultResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// --- Menu ---

type menuItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Recipe   string  `json:"recipe"   validate:"required"`
	Image    string  `json:"image"    validate:"omitempty,url"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
}

type menuNameResponse struct {
	Name string `json:"name"`
}

// --- Reviews, bookings, carts ---

type reviewRequest struct {
	Name    string  `json:"name"    validate:"required"`
	User    string  `json:"user"    validate:"omitempty,email"`
	Details string  `json:"details" validate:"required"`
	Rating  float64 `json:"rating"  validate:"gte=0,lte=5"`
}

type bookingRequest struct {
	Name   string    `json:"name"   validate:"required"`
	Phone  string    `json:"phone"  validate:"omitempty,max=32"`
	Date   time.Time `json:"date"   validate:"required"`
	Guests int       `json:"guests" validate:"required,gte=1,lte=50"`
}

type cartItemRequest struct {
	MenuID string  `json:"menuId" validate:"required,mongodb"`
	Email  string  `json:"email"  validate:"required,email"`
	Name   string  `json:"name"   validate:"required"`
	Image  string  `json:"image"  validate:"omitempty,url"`
	Price  float64 `json:"price"  validate:"required,gt=0"`
}

// --- Payments ---

type paymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type paymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// paymentRequest is the checkout confirmed by the client. Menu item ids are
// not format-checked: ids that match nothing simply drop out of the reports.
type paymentRequest struct {
	Email         string    `json:"email"         validate:"required,email"`
	Price         float64   `json:"price"         validate:"required,gt=0"`
	TransactionID string    `json:"transactionId" validate:"required,max=255"`
	Date          time.Time `json:"date"`
	CartIDs       []string  `json:"cartIds"       validate:"dive,mongodb"`
	MenuItemIDs   []string  `json:"menuItemIds"   validate:"dive,required"`
}

type paymentResponse struct {
	PaymentResult insertResultResponse `json:"paymentResult"`
	DeleteResult  deleteResultResponse `json:"deleteResult"`
}
