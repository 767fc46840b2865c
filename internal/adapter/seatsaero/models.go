package seatsaero

import (
	"github.com/awardscan/award-scraper/internal/domain"
)

// searchResponse is the wire shape of the partial-search endpoint. Only the
// metadata entries are consumed; result counts and paging hints are ignored.
type searchResponse struct {
	Metadata []offerMeta `json:"metadata"`
}

// offerMeta is one candidate offer as the search API reports it.
type offerMeta struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Origin      string `json:"oa"`
	Destination string `json:"da"`
	Date        string `json:"date"`
	Stops       *int   `json:"stops"`
}

func (m offerMeta) toDomain() domain.RawOffer {
	return domain.RawOffer{
		ID:          m.ID,
		Source:      m.Source,
		Origin:      m.Origin,
		Destination: m.Destination,
		Date:        m.Date,
		Stops:       m.Stops,
	}
}

// enrichmentResponse is the wire shape of the modern enrichment endpoint.
// Offer-level fields arrive camelCase; trip and segment fields PascalCase.
type enrichmentResponse struct {
	DepartureDate      string       `json:"departureDate"`
	OriginAirport      string       `json:"originAirport"`
	DestinationAirport string       `json:"destinationAirport"`
	LastUpdatedMinutes *float64     `json:"lastUpdatedMinutes"`
	Trips              []tripDetail `json:"trips"`
}

type tripDetail struct {
	Cabin               *string         `json:"Cabin"`
	TotalDuration       *float64        `json:"TotalDuration"`
	Stops               *int            `json:"Stops"`
	FlightNumbers       *string         `json:"FlightNumbers"`
	MileageCost         *float64        `json:"MileageCost"`
	TotalTaxes          *float64        `json:"TotalTaxes"`
	TaxesCurrency       *string         `json:"TaxesCurrency"`
	TaxesCurrencySymbol *string         `json:"TaxesCurrencySymbol"`
	Segments            []segmentDetail `json:"AvailabilitySegments"`
}

type segmentDetail struct {
	DepartsAt    *string  `json:"DepartsAt"`
	ArrivesAt    *string  `json:"ArrivesAt"`
	FlightNumber *string  `json:"FlightNumber"`
	Distance     *float64 `json:"Distance"`
	AircraftName *string  `json:"AircraftName"`
	Cabin        *string  `json:"Cabin"`
}

func (r enrichmentResponse) toDomain() domain.EnrichmentDetail {
	trips := make([]domain.Trip, 0, len(r.Trips))
	for _, t := range r.Trips {
		segments := make([]domain.TripSegment, 0, len(t.Segments))
		for _, s := range t.Segments {
			segments = append(segments, domain.TripSegment{
				DepartsAt:    s.DepartsAt,
				ArrivesAt:    s.ArrivesAt,
				FlightNumber: s.FlightNumber,
				Distance:     s.Distance,
				AircraftName: s.AircraftName,
				Cabin:        s.Cabin,
			})
		}
		trips = append(trips, domain.Trip{
			Cabin:               t.Cabin,
			TotalDuration:       t.TotalDuration,
			Stops:               t.Stops,
			FlightNumbers:       t.FlightNumbers,
			MileageCost:         t.MileageCost,
			TotalTaxes:          t.TotalTaxes,
			TaxesCurrency:       t.TaxesCurrency,
			TaxesCurrencySymbol: t.TaxesCurrencySymbol,
			Segments:            segments,
		})
	}
	return domain.EnrichmentDetail{
		DepartureDate:      r.DepartureDate,
		OriginAirport:      r.OriginAirport,
		DestinationAirport: r.DestinationAirport,
		LastUpdatedMinutes: r.LastUpdatedMinutes,
		Trips:              trips,
	}
}
