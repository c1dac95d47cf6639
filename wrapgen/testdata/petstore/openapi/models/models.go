// Package models holds the petstore schemas.
package models

type Pet struct {
	Id   int64
	Name string
	Tags []string
}

type Problem struct {
	Status int
	Title  string
}

type Order struct {
	Id       int64
	PetId    int64
	Quantity int32
}

type User struct {
	Username string
	Email    string
}

type ApiResponse struct {
	Code    int32
	Message string
}

type Token struct {
	Value     string
	ExpiresIn int
}

type TokenRequest struct {
	Scopes []string
}
