package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Leg is one flown segment within a trip.
type Leg struct {
	DepartureDateTime *string  `json:"leg_departure_datetime"`
	ArrivalDateTime   *string  `json:"leg_arrival_datetime"`
	FlightNumber      *string  `json:"leg_flight_number"`
	Distance          *float64 `json:"leg_distance"`
	Airplane          *string  `json:"leg_airplane"`
	Class             *string  `json:"leg_class"`
}

// Pricing carries the points/cash cost breakdown of a record. Pointer fields
// express explicit nulls in the snapshot JSON: a field that could not be
// derived is written as null, never omitted.
type Pricing struct {
	PointsPriceRaw        *string  `json:"points_price_raw"`
	PointsAmount          *float64 `json:"points_amount"`
	PointsProgramCurrency *string  `json:"points_program_currency"`
	CashCopayRaw          *string  `json:"cash_copay_raw"`
	CashCopayAmount       *float64 `json:"cash_copay_amount"`
	CashCopayCurrency     *string  `json:"cash_copay_currency"`
	CentsPerPoint         *float64 `json:"cents_per_point"`
	TotalValueUSD         *float64 `json:"total_value_usd"`
}

// Duration is a flight duration that may arrive either as a formatted string
// ("2h 30m") or as a raw minute count, depending on which stage produced the
// snapshot. The normalizer converts minute counts to the formatted form.
type Duration struct {
	// Text is the formatted "Xh Ym" representation, when known
	Text *string

	// Minutes is the raw minute count, when the source supplied a number
	Minutes *float64
}

// DurationFromText builds a Duration holding an already-formatted value.
func DurationFromText(s string) Duration {
	return Duration{Text: &s}
}

// DurationFromMinutes builds a Duration holding a raw minute count.
func DurationFromMinutes(m float64) Duration {
	return Duration{Minutes: &m}
}

// IsNull reports whether no value is present.
func (d Duration) IsNull() bool {
	return d.Text == nil && d.Minutes == nil
}

// MarshalJSON writes the formatted text when present, the minute count
// otherwise, and null when neither is set.
func (d Duration) MarshalJSON() ([]byte, error) {
	if d.Text != nil {
		return json.Marshal(*d.Text)
	}
	if d.Minutes != nil {
		return json.Marshal(*d.Minutes)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts a string, a number, or null. Any other token is kept
// verbatim as text so a malformed snapshot never aborts a transform.
func (d *Duration) UnmarshalJSON(data []byte) error {
	*d = Duration{}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Text = &s
		return nil
	}
	var m float64
	if err := json.Unmarshal(data, &m); err == nil {
		d.Minutes = &m
		return nil
	}
	d.Text = &trimmed
	return nil
}

// FormatMinutes renders a minute count as the canonical "Xh Ym" form.
func FormatMinutes(minutes int) string {
	return strconv.Itoa(minutes/60) + "h " + strconv.Itoa(minutes%60) + "m"
}

// FlightRecord is the canonical output unit: one priced itinerary for a
// route/date/program, or a minimal fallback when enrichment was unavailable.
// Records are never mutated after creation.
type FlightRecord struct {
	InputsFrom    *string  `json:"inputs_from"`
	InputsTo      *string  `json:"inputs_to"`
	Program       *string  `json:"program"`
	DepartureDate *string  `json:"departure_date"`
	Duration      Duration `json:"duration"`
	Class         *string  `json:"class"`
	Stops         *int     `json:"stops"`
	FlightNumber  *string  `json:"flight_number"`
	LastUpdated   *string  `json:"last_updated"`
	Legs          []Leg    `json:"legs"`
	Pricing       Pricing  `json:"pricing"`
}

// RunOutput is the raw snapshot of one acquisition run. It is owned
// exclusively by the acquisition engine for the run's lifetime and written
// once at the end.
type RunOutput struct {
	RunTimestampUTC string         `json:"run_timestamp_utc"`
	OriginDestPairs []FlightRecord `json:"origin_dest_pairs"`
}

// NewRunOutput creates an empty run snapshot stamped with the run time.
func NewRunOutput(runTimestamp string) *RunOutput {
	return &RunOutput{
		RunTimestampUTC: runTimestamp,
		OriginDestPairs: []FlightRecord{},
	}
}

// Append adds records to the run in encounter order.
func (o *RunOutput) Append(records ...FlightRecord) {
	o.OriginDestPairs = append(o.OriginDestPairs, records...)
}

// TransformedOutput is the contract-facing document produced from a raw
// snapshot by the transform stage.
type TransformedOutput struct {
	RunTimestampUTC string         `json:"run_timestamp_utc"`
	Flights         []FlightRecord `json:"flights"`
}

// String implements fmt.Stringer for log-friendly summaries.
func (o *RunOutput) String() string {
	return fmt.Sprintf("run %s: %d record(s)", o.RunTimestampUTC, len(o.OriginDestPairs))
}
