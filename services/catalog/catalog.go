package catalog

import "tranquilflow/models"

// CatalogService exposes the bookable treatment catalogue. The commerce
// product listing consumed by the browsing pages is an external collaborator;
// this table carries only what scheduling needs: durations and prices.
type CatalogService interface {
	ListTreatments() []models.Treatment
	FindTreatment(id string) (*models.Treatment, bool)
}

// DefaultCatalogService serves the static in-memory treatment table.
type DefaultCatalogService struct{}

// treatments is built once at process start and never mutated.
var treatments = []models.Treatment{
	{ID: "signature-ritual", Name: "Signature Ritual", Icon: "flower", DurationMinutes: 90, Price: 185},
	{ID: "deep-tissue", Name: "Deep Tissue Recovery", Icon: "fitness", DurationMinutes: 60, Price: 140},
	{ID: "hot-stone", Name: "Hot Stone Therapy", Icon: "flame", DurationMinutes: 75, Price: 160},
	{ID: "prenatal", Name: "Prenatal Support", Icon: "heart", DurationMinutes: 60, Price: 130},
	{ID: "aromatherapy", Name: "Aromatherapy Journey", Icon: "leaf", DurationMinutes: 60, Price: 125},
	{ID: "lymphatic", Name: "Lymphatic Drainage", Icon: "water", DurationMinutes: 45, Price: 110},
}

// ListTreatments returns the treatment catalogue in presentation order.
func (svc *DefaultCatalogService) ListTreatments() []models.Treatment {
	out := make([]models.Treatment, len(treatments))
	copy(out, treatments)
	return out
}

// FindTreatment looks up a treatment by id.
func (svc *DefaultCatalogService) FindTreatment(id string) (*models.Treatment, bool) {
	for _, t := range treatments {
		if t.ID == id {
			treatment := t
			return &treatment, true
		}
	}
	return nil, false
}
