package property

import (
	"errors"
	"strings"

	"estate-booking/internal/domain/pricing"
)

var (
	ErrEmptyPropertyID     = errors.New("property id cannot be empty")
	ErrInvalidListingType  = errors.New("invalid listing type")
	ErrMissingNightlyRate  = errors.New("date-range listings need a nightly rate")
	ErrNegativeGuestsLimit = errors.New("max guests cannot be negative")
)

type ListingType string

const (
	ListingShortlet ListingType = "shortlet"
	ListingHotel    ListingType = "hotel"
	ListingRent     ListingType = "rent"
	ListingSale     ListingType = "sale"
)

func NewListingType(s string) (ListingType, error) {
	lt := ListingType(strings.ToLower(strings.TrimSpace(s)))
	switch lt {
	case ListingShortlet, ListingHotel, ListingRent, ListingSale:
		return lt, nil
	default:
		return "", ErrInvalidListingType
	}
}

func (t ListingType) String() string {
	return string(t)
}

// IsDateRange is true for stays priced per night; rent and sale listings are
// booked as inspections instead.
func (t ListingType) IsDateRange() bool {
	return t == ListingShortlet || t == ListingHotel
}

type Property struct {
	id            string
	title         string
	listingType   ListingType
	nightlyRate   pricing.Money
	inspectionFee pricing.Money
	maxGuests     int
}

func NewProperty(id, title string, listingType ListingType, nightlyRate, inspectionFee pricing.Money, maxGuests int) (*Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyPropertyID
	}
	if _, err := NewListingType(listingType.String()); err != nil {
		return nil, err
	}
	if listingType.IsDateRange() && nightlyRate.IsZero() {
		return nil, ErrMissingNightlyRate
	}
	if maxGuests < 0 {
		return nil, ErrNegativeGuestsLimit
	}

	return &Property{
		id:            id,
		title:         strings.TrimSpace(title),
		listingType:   listingType,
		nightlyRate:   nightlyRate,
		inspectionFee: inspectionFee,
		maxGuests:     maxGuests,
	}, nil
}

func (p *Property) ID() string                   { return p.id }
func (p *Property) Title() string                { return p.title }
func (p *Property) ListingType() ListingType     { return p.listingType }
func (p *Property) NightlyRate() pricing.Money   { return p.nightlyRate }
func (p *Property) InspectionFee() pricing.Money { return p.inspectionFee }

// MaxGuests of zero means the listing does not limit the party size.
func (p *Property) MaxGuests() int { return p.maxGuests }
