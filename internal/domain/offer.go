package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// RunTimestampLayout is the layout for run_timestamp_utc values.
const RunTimestampLayout = "2006-01-02T15:04:05Z"

// RawOffer is search-result-level metadata for one candidate offer. It is
// enough to decide enrichment eligibility and to build a minimal fallback
// record, but carries no pricing detail.
type RawOffer struct {
	// ID is the opaque availability identifier used to key enrichment
	ID string

	// Source is the loyalty program tag reported by the search API
	Source string

	// Origin and Destination are the offer's airport codes
	Origin      string
	Destination string

	// Date is the offer's departure date (YYYY-MM-DD), when reported
	Date string

	// Stops is the reported stop count, when present
	Stops *int
}

// EnrichmentDetail is the offer-level detail returned by the enrichment call.
type EnrichmentDetail struct {
	DepartureDate      string
	OriginAirport      string
	DestinationAirport string

	// LastUpdatedMinutes is how stale the availability data is, in minutes
	LastUpdatedMinutes *float64

	Trips []Trip
}

// Trip is one concrete priced itinerary within an enriched offer.
type Trip struct {
	Cabin               *string
	TotalDuration       *float64
	Stops               *int
	FlightNumbers       *string
	MileageCost         *float64
	TotalTaxes          *float64
	TaxesCurrency       *string
	TaxesCurrencySymbol *string
	Segments            []TripSegment
}

// TripSegment is one flown leg within a trip, as reported by the API.
type TripSegment struct {
	DepartsAt    *string
	ArrivesAt    *string
	FlightNumber *string
	Distance     *float64
	AircraftName *string
	Cabin        *string
}

// BuildTripRecords expands an enriched offer into one FlightRecord per trip,
// applying the pricing derivation rules:
//
//	cents_per_point = round(taxes/mileage*100, 4)  (null if mileage 0/absent)
//	cash_copay      = round(taxes/100, 2)          (taxes are in minor units)
//
// now is used to back-date last_updated by the API's staleness indicator;
// runTimestamp is the fallback when no staleness is reported.
func BuildTripRecords(offer RawOffer, detail EnrichmentDetail, now time.Time, runTimestamp string) []FlightRecord {
	date := offer.Date
	if date == "" {
		date = detail.DepartureDate
	}
	from := detail.OriginAirport
	if from == "" {
		from = offer.Origin
	}
	to := detail.DestinationAirport
	if to == "" {
		to = offer.Destination
	}

	lastUpdated := runTimestamp
	if detail.LastUpdatedMinutes != nil {
		lastUpdated = now.UTC().Add(-time.Duration(*detail.LastUpdatedMinutes) * time.Minute).Format(time.RFC3339)
	}

	program := offer.Source
	records := make([]FlightRecord, 0, len(detail.Trips))
	for _, trip := range detail.Trips {
		legs := make([]Leg, 0, len(trip.Segments))
		for _, seg := range trip.Segments {
			legs = append(legs, Leg{
				DepartureDateTime: seg.DepartsAt,
				ArrivalDateTime:   seg.ArrivesAt,
				FlightNumber:      seg.FlightNumber,
				Distance:          seg.Distance,
				Airplane:          seg.AircraftName,
				Class:             seg.Cabin,
			})
		}

		var cpp *float64
		if trip.MileageCost != nil && *trip.MileageCost != 0 && trip.TotalTaxes != nil {
			v := roundTo((*trip.TotalTaxes / *trip.MileageCost) * 100, 4)
			cpp = &v
		}

		var cash *float64
		if trip.TotalTaxes != nil {
			v := roundTo(*trip.TotalTaxes/100, 2)
			cash = &v
		}

		records = append(records, FlightRecord{
			InputsFrom:    nilIfEmpty(from),
			InputsTo:      nilIfEmpty(to),
			Program:       nilIfEmpty(program),
			DepartureDate: nilIfEmpty(date),
			Duration:      durationFromTrip(trip),
			Class:         trip.Cabin,
			Stops:         trip.Stops,
			FlightNumber:  trip.FlightNumbers,
			LastUpdated:   &lastUpdated,
			Legs:          legs,
			Pricing: Pricing{
				PointsPriceRaw:        pointsPriceRaw(trip, cash),
				PointsAmount:          trip.MileageCost,
				PointsProgramCurrency: nilIfEmpty(program),
				CashCopayRaw:          cashCopayRaw(trip, cash),
				CashCopayAmount:       cash,
				CashCopayCurrency:     trip.TaxesCurrency,
				CentsPerPoint:         cpp,
				TotalValueUSD:         nil,
			},
		})
	}
	return records
}

// NewMinimalRecord builds the fallback record used when enrichment is
// unavailable: search-stage metadata only, pricing entirely null. Partial data
// is preferred over losing the offer.
func NewMinimalRecord(offer RawOffer, targetDate, runTimestamp string) FlightRecord {
	date := offer.Date
	if date == "" {
		date = targetDate
	}
	return FlightRecord{
		InputsFrom:    nilIfEmpty(offer.Origin),
		InputsTo:      nilIfEmpty(offer.Destination),
		Program:       nilIfEmpty(offer.Source),
		DepartureDate: nilIfEmpty(date),
		Duration:      Duration{},
		Class:         nil,
		Stops:         offer.Stops,
		FlightNumber:  nil,
		LastUpdated:   &runTimestamp,
		Legs:          []Leg{},
		Pricing: Pricing{
			PointsProgramCurrency: nilIfEmpty(offer.Source),
		},
	}
}

// durationFromTrip renders the trip's total duration as formatted text.
func durationFromTrip(trip Trip) Duration {
	if trip.TotalDuration == nil {
		return Duration{}
	}
	return DurationFromText(FormatMinutes(int(*trip.TotalDuration)))
}

// pointsPriceRaw composes the display string "75000 pts + $123.00 USD".
func pointsPriceRaw(trip Trip, cash *float64) *string {
	if trip.MileageCost == nil {
		return nil
	}
	miles := strconv.FormatFloat(*trip.MileageCost, 'f', -1, 64)
	if cash == nil {
		s := miles + " pts"
		return &s
	}
	symbol := deref(trip.TaxesCurrencySymbol)
	currency := deref(trip.TaxesCurrency)
	s := strings.TrimSpace(miles + " pts + " + symbol + strconv.FormatFloat(*cash, 'f', 2, 64) + " " + currency)
	return &s
}

// cashCopayRaw composes the display string "$123.00 USD".
func cashCopayRaw(trip Trip, cash *float64) *string {
	if cash == nil {
		return nil
	}
	symbol := deref(trip.TaxesCurrencySymbol)
	currency := deref(trip.TaxesCurrency)
	s := strings.TrimSpace(symbol + strconv.FormatFloat(*cash, 'f', 2, 64) + " " + currency)
	return &s
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
