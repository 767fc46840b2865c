package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/awardscan/award-scraper/internal/domain"
	"github.com/awardscan/award-scraper/internal/infrastructure/logger"
)

type fakeUploader struct {
	uploaded []string
	err      error
}

func (f *fakeUploader) Upload(_ context.Context, path string) (string, error) {
	f.uploaded = append(f.uploaded, path)
	return "drive-id", f.err
}

func writeContract(t *testing.T) string {
	t.Helper()
	schema := `{
		"type": "object",
		"required": ["run_timestamp_utc", "flights"],
		"properties": {
			"run_timestamp_utc": {"type": "string"},
			"flights": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["inputs_from", "inputs_to", "program", "pricing"],
					"properties": {
						"inputs_from": {"type": ["string", "null"]},
						"inputs_to": {"type": ["string", "null"]},
						"program": {"type": ["string", "null"]},
						"stops": {"type": ["integer", "null"]},
						"pricing": {
							"type": "object",
							"properties": {
								"points_amount": {"type": ["number", "null"]},
								"cash_copay_amount": {"type": ["number", "null"]}
							}
						}
					}
				}
			}
		}
	}`
	path := filepath.Join(t.TempDir(), "data_contract.json")
	require.NoError(t, os.WriteFile(path, []byte(schema), 0o644))
	return path
}

func newPipeline(t *testing.T, client domain.AvailabilityClient, uploader SnapshotUploader) (*Pipeline, string) {
	t.Helper()
	outputDir := t.TempDir()
	acq, _ := newAcquirer(client, []domain.Route{acquireRoute()}, domain.ScrapeSettings{Retries: 1})
	return NewPipeline(acq, outputDir, writeContract(t), uploader, logger.Nop()), outputDir
}

func TestPipelineRun(t *testing.T) {
	ctx := context.Background()

	t.Run("writes raw and transformed snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := domain.NewMockAvailabilityClient(ctrl)

		client.EXPECT().Warmup(gomock.Any()).Return(nil)
		client.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]domain.RawOffer{{ID: "avail-1", Source: "aeroplan", Origin: "JFK", Destination: "LHR", Date: "2026-03-08"}}, nil)
		client.EXPECT().Enrich(gomock.Any(), "avail-1", gomock.Any(), gomock.Any()).
			Return(enrichedDetail(), nil)

		pipeline, outputDir := newPipeline(t, client, nil)

		result, err := pipeline.Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(outputDir, "run_2026-03-01T12-00-00Z.json"), result.RawPath)
		assert.Equal(t, filepath.Join(outputDir, "run_2026-03-01T12-00-00Z_transformed.json"), result.TransformedPath)
		assert.Equal(t, 1, result.Records)
		assert.Empty(t, result.Violations)

		rawData, err := os.ReadFile(result.RawPath)
		require.NoError(t, err)
		var raw domain.RunOutput
		require.NoError(t, json.Unmarshal(rawData, &raw))
		assert.Equal(t, "2026-03-01T12:00:00Z", raw.RunTimestampUTC)
		require.Len(t, raw.OriginDestPairs, 1)

		transformedData, err := os.ReadFile(result.TransformedPath)
		require.NoError(t, err)
		var transformed domain.TransformedOutput
		require.NoError(t, json.Unmarshal(transformedData, &transformed))
		require.Len(t, transformed.Flights, 1)
		assert.Equal(t, 75000.0, *transformed.Flights[0].Pricing.PointsAmount)
	})

	t.Run("mirrors both snapshots when an uploader is configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := domain.NewMockAvailabilityClient(ctrl)

		client.EXPECT().Warmup(gomock.Any()).Return(nil)
		client.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.RawOffer{}, nil)

		uploader := &fakeUploader{}
		pipeline, _ := newPipeline(t, client, uploader)

		result, err := pipeline.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{result.RawPath, result.TransformedPath}, uploader.uploaded)
	})

	t.Run("upload failure does not fail the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := domain.NewMockAvailabilityClient(ctrl)

		client.EXPECT().Warmup(gomock.Any()).Return(nil)
		client.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.RawOffer{}, nil)

		uploader := &fakeUploader{err: errors.New("quota exceeded")}
		pipeline, _ := newPipeline(t, client, uploader)

		_, err := pipeline.Run(ctx)
		assert.NoError(t, err)
	})

	t.Run("minimal records pass the data contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := domain.NewMockAvailabilityClient(ctrl)

		client.EXPECT().Warmup(gomock.Any()).Return(nil)
		client.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]domain.RawOffer{{ID: "avail-1", Source: "aeroplan", Origin: "JFK", Destination: "LHR"}}, nil)
		client.EXPECT().Enrich(gomock.Any(), "avail-1", gomock.Any(), gomock.Any()).
			Return(domain.EnrichmentDetail{}, domain.NewStatusError("enrich", 429))

		pipeline, _ := newPipeline(t, client, nil)

		result, err := pipeline.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Records)
		assert.Empty(t, result.Violations, "null-heavy fallback records are contract-clean")
	})
}

func TestTransformSnapshot(t *testing.T) {
	ctx := context.Background()

	newStandalonePipeline := func(t *testing.T) *Pipeline {
		return NewPipeline(nil, t.TempDir(), writeContract(t), nil, logger.Nop())
	}

	t.Run("normalizes records from a raw snapshot", func(t *testing.T) {
		raw := `{
			"run_timestamp_utc": "2026-03-01T12:00:00Z",
			"origin_dest_pairs": [{
				"inputs_from": "JFK",
				"inputs_to": "LHR",
				"program": "aeroplan",
				"departure_date": "2026-03-08",
				"duration": 150,
				"class": null,
				"stops": 1,
				"flight_number": null,
				"last_updated": "2026-03-01T12:00:00Z",
				"legs": [],
				"pricing": {
					"points_price_raw": "57.5k AAdvantage miles",
					"points_amount": null,
					"points_program_currency": null,
					"cash_copay_raw": "$123.45",
					"cash_copay_amount": null,
					"cash_copay_currency": null,
					"cents_per_point": null,
					"total_value_usd": null
				}
			}]
		}`
		inputPath := filepath.Join(t.TempDir(), "run_test.json")
		require.NoError(t, os.WriteFile(inputPath, []byte(raw), 0o644))

		pipeline := newStandalonePipeline(t)
		outputPath, violations, err := pipeline.TransformSnapshot(ctx, inputPath, "")
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(filepath.Dir(inputPath), "run_test_transformed.json"), outputPath)
		assert.Empty(t, violations)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		var doc domain.TransformedOutput
		require.NoError(t, json.Unmarshal(data, &doc))

		require.Len(t, doc.Flights, 1)
		rec := doc.Flights[0]
		assert.Equal(t, 57500.0, *rec.Pricing.PointsAmount)
		assert.Equal(t, "Aadvantage Miles", *rec.Pricing.PointsProgramCurrency)
		assert.Equal(t, 123.45, *rec.Pricing.CashCopayAmount)
		assert.Equal(t, "USD", *rec.Pricing.CashCopayCurrency)
		require.NotNil(t, rec.Duration.Text)
		assert.Equal(t, "2h 30m", *rec.Duration.Text)
	})

	t.Run("transforming twice is byte-identical", func(t *testing.T) {
		raw := `{
			"run_timestamp_utc": "2026-03-01T12:00:00Z",
			"origin_dest_pairs": [{
				"inputs_from": "JFK",
				"inputs_to": "LHR",
				"program": "aeroplan",
				"departure_date": "2026-03-08",
				"duration": "2h 30m",
				"class": "business",
				"stops": 0,
				"flight_number": "AC 871",
				"last_updated": "2026-03-01T12:00:00Z",
				"legs": [],
				"pricing": {
					"points_price_raw": "75000 pts + $123.00 USD",
					"points_amount": 75000,
					"points_program_currency": "aeroplan",
					"cash_copay_raw": "$123.00 USD",
					"cash_copay_amount": 123,
					"cash_copay_currency": "USD",
					"cents_per_point": 16.4,
					"total_value_usd": null
				}
			}]
		}`
		dir := t.TempDir()
		inputPath := filepath.Join(dir, "run_test.json")
		require.NoError(t, os.WriteFile(inputPath, []byte(raw), 0o644))

		pipeline := newStandalonePipeline(t)

		firstPath, _, err := pipeline.TransformSnapshot(ctx, inputPath, filepath.Join(dir, "first.json"))
		require.NoError(t, err)
		first, err := os.ReadFile(firstPath)
		require.NoError(t, err)

		// Feed the transformed doc back through as if it were a raw snapshot.
		var doc domain.TransformedOutput
		require.NoError(t, json.Unmarshal(first, &doc))
		rewrapped, err := json.MarshalIndent(domain.RunOutput{
			RunTimestampUTC: doc.RunTimestampUTC,
			OriginDestPairs: doc.Flights,
		}, "", "  ")
		require.NoError(t, err)
		secondInput := filepath.Join(dir, "second_input.json")
		require.NoError(t, os.WriteFile(secondInput, rewrapped, 0o644))

		secondPath, _, err := pipeline.TransformSnapshot(ctx, secondInput, filepath.Join(dir, "second.json"))
		require.NoError(t, err)
		second, err := os.ReadFile(secondPath)
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
	})

	t.Run("unreadable input is a setup error", func(t *testing.T) {
		pipeline := newStandalonePipeline(t)
		_, _, err := pipeline.TransformSnapshot(ctx, filepath.Join(t.TempDir(), "absent.json"), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSetup)
	})

	t.Run("malformed input is a setup error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"origin_dest_pairs": `), 0o644))

		pipeline := newStandalonePipeline(t)
		_, _, err := pipeline.TransformSnapshot(ctx, path, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSetup)
	})

	t.Run("missing contract skips validation without failing", func(t *testing.T) {
		raw := `{"run_timestamp_utc": "2026-03-01T12:00:00Z", "origin_dest_pairs": []}`
		inputPath := filepath.Join(t.TempDir(), "run_test.json")
		require.NoError(t, os.WriteFile(inputPath, []byte(raw), 0o644))

		pipeline := NewPipeline(nil, t.TempDir(), "/nonexistent/contract.json", nil, logger.Nop())
		_, violations, err := pipeline.TransformSnapshot(ctx, inputPath, "")
		require.NoError(t, err)
		assert.Nil(t, violations)
	})
}
