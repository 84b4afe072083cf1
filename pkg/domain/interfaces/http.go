package interfaces

//go:generate moq -out mocks/http_mock.go -pkg mocks . HTTPClient

import "net/http"

// HTTPClient sends a single HTTP request. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
