package domain

import "time"

type Client struct {
	ID            string     `json:"id" firestore:"-"`
	FirstName     string     `json:"first_name" firestore:"first_name"`
	LastName      string     `json:"last_name" firestore:"last_name"`
	Email         string     `json:"email" firestore:"email"`
	Phone         string     `json:"phone" firestore:"phone"`
	LicenseNumber string     `json:"license_number" firestore:"license_number"`
	Notes         string     `json:"notes" firestore:"notes"`
	CreatedOn     time.Time  `json:"created_on" firestore:"created_on"`
	UpdatedOn     time.Time  `json:"updated_on" firestore:"updated_on"`
	DeletedOn     *time.Time `json:"deleted_on,omitempty" firestore:"deleted_on"`
}

func (c *Client) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	return c.FirstName + " " + c.LastName
}
