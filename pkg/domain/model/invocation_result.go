package model

import (
	"log/slog"
)

// StatusTransportFailure is the http_code reported when no HTTP response was received
const StatusTransportFailure = 0

// Outcome is the mapped meaning of one Checkmk status code
type Outcome struct {
	Changed bool
	Failed  bool
	Message string
}

var outcomes = map[int]Outcome{
	200: {Changed: true, Failed: false, Message: "Discovery successful."},
	400: {Changed: false, Failed: true, Message: "Bad Request."},
	403: {Changed: false, Failed: true, Message: "Forbidden: Configuration via WATO is disabled."},
	404: {Changed: false, Failed: true, Message: "Not Found: Host could not be found."},
	406: {Changed: false, Failed: true, Message: "Not Acceptable."},
	415: {Changed: false, Failed: true, Message: "Unsupported Media Type."},
}

var unmappedOutcome = Outcome{Changed: false, Failed: true, Message: "Error calling API"}

// LookupOutcome returns the outcome for a status code, falling back to a
// generic failure for codes the table does not list
func LookupOutcome(status int) Outcome {
	if o, ok := outcomes[status]; ok {
		return o
	}
	return unmappedOutcome
}

// InvocationResult is what a single discovery invocation reports to its caller
type InvocationResult struct {
	Changed  bool   `json:"changed"`
	Failed   bool   `json:"failed"`
	HTTPCode int    `json:"http_code"`
	Msg      string `json:"msg"`
}

// Classify maps an HTTP status code to an InvocationResult
func Classify(status int) *InvocationResult {
	o := LookupOutcome(status)
	return &InvocationResult{
		Changed:  o.Changed,
		Failed:   o.Failed,
		HTTPCode: status,
		Msg:      o.Message,
	}
}

// TransportFailure builds the result for a request that never got a response
func TransportFailure(cause error) *InvocationResult {
	msg := "Transport error"
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &InvocationResult{
		Changed:  false,
		Failed:   true,
		HTTPCode: StatusTransportFailure,
		Msg:      msg,
	}
}

// LogValue returns structured log value
func (r InvocationResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("changed", r.Changed),
		slog.Bool("failed", r.Failed),
		slog.Int("http_code", r.HTTPCode),
		slog.String("msg", r.Msg),
	)
}

// ConfigurationFailure builds the result for a request rejected before sending
func ConfigurationFailure(cause error) *InvocationResult {
	msg := "Invalid parameters"
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &InvocationResult{
		Changed:  false,
		Failed:   true,
		HTTPCode: StatusTransportFailure,
		Msg:      msg,
	}
}
