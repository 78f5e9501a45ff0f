package models

import "time"

type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Query     string    `json:"query"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
