//go:build unit || e2e

package builder

import (
	"estate-booking/internal/domain/pricing"
	"estate-booking/internal/domain/property"
)

type PropertyBuilder struct {
	ID            string
	Title         string
	ListingType   string
	NightlyRate   pricing.Money
	InspectionFee pricing.Money
	MaxGuests     int
}

// NewPropertyBuilder defaults to a shortlet at ₦20,000 per night.
func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:          "prop-1",
		Title:       "Lekki Phase 1 Apartment",
		ListingType: "shortlet",
		NightlyRate: pricing.Naira(20000),
		MaxGuests:   4,
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PropertyBuilder) BuildDomain() (*property.Property, error) {
	lt, err := property.NewListingType(p.ListingType)
	if err != nil {
		return nil, err
	}
	return property.NewProperty(p.ID, p.Title, lt, p.NightlyRate, p.InspectionFee, p.MaxGuests)
}

func (p *PropertyBuilder) MustBuild() *property.Property {
	prop, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return prop
}

// Fluent builder methods
func (p *PropertyBuilder) AsRental(inspectionFee pricing.Money) *PropertyBuilder {
	p.ListingType = "rent"
	p.NightlyRate = pricing.Money{}
	p.InspectionFee = inspectionFee
	p.MaxGuests = 0
	return p
}

func (p *PropertyBuilder) WithNightlyRate(rate pricing.Money) *PropertyBuilder {
	p.NightlyRate = rate
	return p
}

func (p *PropertyBuilder) WithMaxGuests(n int) *PropertyBuilder {
	p.MaxGuests = n
	return p
}
