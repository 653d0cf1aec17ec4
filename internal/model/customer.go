package model

import "time"

const CustomerCollection = "customer"

// Customer is the stored form of a customer.
type Customer struct {
	ID               string    `json:"id" bson:"_id"`
	CustomerName     string    `json:"customerName" bson:"customerName"`
	CreatedDate      time.Time `json:"createdDate" bson:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate" bson:"lastModifiedDate"`
}

func (c Customer) DocumentID() string {
	return c.ID
}

func (c Customer) WithDocumentID(id string) Customer {
	c.ID = id
	return c
}
