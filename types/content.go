package types

import (
	"encoding/json"
	"time"
)

// BlogPost is an article shown in the public news section.
type BlogPost struct {
	ID            int        `json:"id" db:"id"`
	Title         string     `json:"title" db:"title" validate:"required,max=255"`
	Slug          string     `json:"slug" db:"slug" validate:"omitempty,max=255"`
	Excerpt       *string    `json:"excerpt" db:"excerpt"`
	Content       string     `json:"content" db:"content" validate:"required"`
	FeaturedImage *string    `json:"featuredImage" db:"featured_image"`
	Category      *string    `json:"category" db:"category"`
	Tags          []string   `json:"tags" db:"tags"`
	Published     bool       `json:"published" db:"published"`
	PublishedAt   *time.Time `json:"publishedAt" db:"published_at"`
	AuthorID      *string    `json:"authorId" db:"author_id"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// Product is an item of the seafood catalogue.
type Product struct {
	ID             int             `json:"id" db:"id"`
	Name           string          `json:"name" db:"name" validate:"required,max=255"`
	Slug           string          `json:"slug" db:"slug" validate:"omitempty,max=255"`
	Description    string          `json:"description" db:"description" validate:"required"`
	Category       string          `json:"category" db:"category" validate:"required,max=100"`
	ImageURL       *string         `json:"imageUrl" db:"image_url"`
	Specifications json.RawMessage `json:"specifications" db:"specifications"`
	Featured       bool            `json:"featured" db:"featured"`
	Active         bool            `json:"active" db:"active"`
	SortOrder      int             `json:"sortOrder" db:"sort_order"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

// Testimonial is a customer quote. Only approved testimonials are public.
type Testimonial struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required,max=255"`
	Company   *string   `json:"company" db:"company"`
	Country   *string   `json:"country" db:"country"`
	Content   string    `json:"content" db:"content" validate:"required"`
	Rating    int       `json:"rating" db:"rating" validate:"omitempty,min=1,max=5"`
	ImageURL  *string   `json:"imageUrl" db:"image_url"`
	Approved  bool      `json:"approved" db:"approved"`
	Featured  bool      `json:"featured" db:"featured"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

const (
	InquiryStatusNew     = "new"
	InquiryStatusRead    = "read"
	InquiryStatusReplied = "replied"
	InquiryStatusClosed  = "closed"
)

// Inquiry is a message submitted through the public contact form.
type Inquiry struct {
	ID              int       `json:"id" db:"id"`
	Name            string    `json:"name" db:"name" validate:"required,max=255"`
	Email           string    `json:"email" db:"email" validate:"required,email"`
	Phone           *string   `json:"phone" db:"phone"`
	Company         *string   `json:"company" db:"company"`
	Country         *string   `json:"country" db:"country"`
	Subject         *string   `json:"subject" db:"subject"`
	Message         string    `json:"message" db:"message" validate:"required,max=5000"`
	ProductInterest *string   `json:"productInterest" db:"product_interest"`
	Status          string    `json:"status" db:"status" validate:"omitempty,oneof=new read replied closed"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// ContentBlock is a free-form piece of website copy addressed by section
// and key, e.g. ("home", "hero_title").
type ContentBlock struct {
	ID        int       `json:"id" db:"id"`
	Section   string    `json:"section" db:"section" validate:"required,max=100"`
	Key       string    `json:"key" db:"key" validate:"required,max=100"`
	Value     string    `json:"value" db:"value"`
	Type      string    `json:"type" db:"type" validate:"omitempty,oneof=text html image json"`
	UpdatedBy *string   `json:"updatedBy" db:"updated_by"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Setting is a single site-wide key/value configuration entry.
type Setting struct {
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
