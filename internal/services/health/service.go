package health

// Status is the /health response body.
type Status struct {
	OK       bool   `json:"ok"`
	Provider string `json:"provider,omitempty"`
}

// Service reports liveness along with the configured completion provider.
type Service struct {
	provider string
}

// NewService constructs a new health service.
func NewService(provider string) *Service {
	return &Service{provider: provider}
}

// Status returns the health payload. The process is live whenever it can answer.
func (s *Service) Status() Status {
	return Status{OK: true, Provider: s.provider}
}
