package submission

import (
	"context"

	"go.uber.org/zap"

	"sevanear/internal/domain"
	"sevanear/internal/domain/types"
)

// Form is the raw add-service input: foreign keys, coordinates, and the
// free-text fields, all as entered. Nothing is validated here beyond the
// numeric coercion performed by Draft.
type Form struct {
	HospitalID    string
	ServiceTypeID string
	Name          string
	Provider      string
	Contact       string
	Description   string
	Timings       string
	Eligibility   string
	RequiredDocs  string
	Latitude      string
	Longitude     string
}

// Draft coerces the form into the submission payload. Numeric fields that
// fail to parse become NaN and travel to the backend as JSON null, exactly
// as entered input has always been passed through.
func (f Form) Draft() domain.ServiceDraft {
	return domain.ServiceDraft{
		HospitalID:    types.ParseFormNumber(f.HospitalID),
		ServiceTypeID: types.ParseFormNumber(f.ServiceTypeID),
		Name:          f.Name,
		Provider:      f.Provider,
		Contact:       f.Contact,
		Description:   f.Description,
		Timings:       f.Timings,
		Eligibility:   f.Eligibility,
		RequiredDocs:  f.RequiredDocs,
		Latitude:      types.ParseFormNumber(f.Latitude),
		Longitude:     types.ParseFormNumber(f.Longitude),
	}
}

// Service posts new listings through the data source. On failure the caller
// keeps its form so the user can retry with the same values; on success the
// caller clears the form, shows the ack, and resets navigation to home.
type Service struct {
	source domain.Source
	log    *zap.Logger
}

// New constructs a submission service. log may be nil.
func New(source domain.Source, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{source: source, log: log}
}

// Submit coerces and posts the form.
func (s *Service) Submit(ctx context.Context, form Form) (domain.CreateAck, error) {
	ack, err := s.source.CreateService(ctx, form.Draft())
	if err != nil {
		s.log.Warn("submission failed", zap.Error(err))
		return domain.CreateAck{}, err
	}
	s.log.Info("service submitted", zap.String("id", ack.ID))
	return ack, nil
}
