package conditions

import "log/slog"

// Service provides weather code classification lookups.
type Service interface {
	Classify(code *Code, opts Options) Classification
}

type classificationService struct {
	logger *slog.Logger
}

// NewService creates a new classification service.
func NewService(logger *slog.Logger) Service {
	return &classificationService{
		logger: logger.With("component", "conditions-service"),
	}
}

func (s *classificationService) Classify(code *Code, opts Options) Classification {
	result := Classify(code, opts)

	attrs := []any{
		"icon", result.Icon.String(),
		"color", string(result.Color),
		"night", opts.Night,
	}
	if code != nil {
		attrs = append(attrs, "code", int(*code))
	}
	s.logger.Debug("classified weather code", attrs...)

	return result
}
