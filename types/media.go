package types

import "time"

// DefaultMediaCategory is applied when an upload names no category.
const DefaultMediaCategory = "general"

// MediaFile is the metadata record of an uploaded image. URL always points at
// a retrievable copy of the bytes, either in object storage or on local disk.
type MediaFile struct {
	ID           int       `json:"id" db:"id"`
	Filename     string    `json:"filename" db:"filename"`
	OriginalName string    `json:"originalName" db:"original_name"`
	MimeType     string    `json:"mimeType" db:"mime_type"`
	Size         int64     `json:"size" db:"size"`
	URL          string    `json:"url" db:"url"`
	Alt          *string   `json:"alt" db:"alt"`
	Category     string    `json:"category" db:"category"`
	UploadedBy   string    `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
