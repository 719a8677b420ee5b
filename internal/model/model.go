// Package model contains the domain records shared by the repository, service and
// HTTP layers. It carries no persistence tags and no business logic beyond
// normalizing its own values.
package model

import "time"

// Role is an application role assignment. Only RoleAdmin grants extra access.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Profile mirrors an authenticated user of the hosted identity provider.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Image is an uploaded blob referenced from page content.
type Image struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// SiteStat keys.
const StatCustomersCount = "customers_count"

// SlugRef pairs a page id with its slug for availability checks.
type SlugRef struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
}
