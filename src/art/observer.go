package art

import (
	"errors"

	"github.com/charmbracelet/log"
)

// Observer receives events about every step Client takes while resolving. It is
// the only way Client reports diagnostics; Client itself never logs.
type Observer interface {
	// RequestStarted is called right before a request is sent.
	RequestStarted(service, url string)

	// ResponseReceived is called with the raw body of every response.
	ResponseReceived(service string, status int, body []byte)

	// CandidatesFound lists everything a search returned, in order.
	CandidatesFound(service string, candidates []string)

	// Resolved is called with the value a lookup step produced.
	Resolved(service, value string)

	// Failed is called with the error a lookup step is about to return.
	Failed(service string, err error)
}

type nopObserver struct{}

func (nopObserver) RequestStarted(string, string) {}
func (nopObserver) ResponseReceived(string, int, []byte) {}
func (nopObserver) CandidatesFound(string, []string) {}
func (nopObserver) Resolved(string, string) {}
func (nopObserver) Failed(string, error) {}

// LogObserver is an Observer which writes every event to a logger. Requests,
// bodies and candidates are logged at debug level, resolved values at info. A
// not-found error is a warning while every other failure is an error.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver returns a LogObserver writing to logger.
func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// RequestStarted implements Observer.
func (o *LogObserver) RequestStarted(service, url string) {
	o.logger.Debug("fetching", "service", service, "url", url)
}

// ResponseReceived implements Observer.
func (o *LogObserver) ResponseReceived(service string, status int, body []byte) {
	o.logger.Debug("response", "service", service, "status", status, "body", string(body))
}

// CandidatesFound implements Observer.
func (o *LogObserver) CandidatesFound(service string, candidates []string) {
	for i, candidate := range candidates {
		o.logger.Debug("candidate", "service", service, "position", i, "value", candidate)
	}
}

// Resolved implements Observer.
func (o *LogObserver) Resolved(service, value string) {
	o.logger.Info("resolved", "service", service, "value", value)
}

// Failed implements Observer.
func (o *LogObserver) Failed(service string, err error) {
	if errors.Is(err, ErrNotFound) {
		o.logger.Warn("nothing found", "service", service, "err", err)
		return
	}
	o.logger.Error("lookup failed", "service", service, "err", err)
}
