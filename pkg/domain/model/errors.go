package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization of a failed invocation
var (
	// ErrTagConfiguration marks invalid or missing parameters. No request is sent.
	ErrTagConfiguration = goerr.NewTag("configuration_error")
	// ErrTagTransport marks connection, DNS and TLS failures. No status code is available.
	ErrTagTransport = goerr.NewTag("transport_error")
	// ErrTagAPI marks a response with a status code other than 200.
	ErrTagAPI = goerr.NewTag("api_error")
)
