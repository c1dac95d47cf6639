package client

import "example.com/petstore/openapi"

// Client calls the petstore API with one shared configuration.
type Client struct {
	config *openapi.Configuration
}

func New(config *openapi.Configuration) *Client {
	return &Client{config: config}
}
