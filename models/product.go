package models

import "time"

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	Photo       string    `json:"photo"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
