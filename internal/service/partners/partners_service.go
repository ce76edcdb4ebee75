package partners

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/DrRobsonAmuiJr/ROE/internal/domain"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/store"
)

// Service ingests partner-relation spreadsheets. One upload replaces the
// whole month it is keyed to, for the metric it carries.
type Service struct {
	store store.Store
	now   func() time.Time
}

func NewPartnersService(store store.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Upload parses an xlsx batch and replaces the month's records. The first
// column is the dentist name, the second the metric value. A header row is
// skipped when the value cell does not parse as a number.
func (s *Service) Upload(ctx context.Context, metric string, month domain.MonthKey, fileName string, size int64, r io.Reader) (domain.UploadMeta, error) {
	meta := domain.UploadMeta{
		ID:         uuid.New(),
		Metric:     metric,
		Month:      month,
		FileName:   fileName,
		FileSize:   size,
		UploadedAt: s.now(),
	}

	file, err := excelize.OpenReader(r)
	if err != nil {
		return domain.UploadMeta{}, constants.Invalidf("open xlsx: %s", err.Error())
	}
	defer file.Close() //nolint:errcheck

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		return domain.UploadMeta{}, fmt.Errorf("read sheet: %w", err)
	}

	switch metric {
	case domain.MetricValue:
		records, err := parseValueRows(rows)
		if err != nil {
			return domain.UploadMeta{}, err
		}
		if err := s.store.ReplacePartnerBatch(ctx, meta, records); err != nil {
			return domain.UploadMeta{}, fmt.Errorf("store.ReplacePartnerBatch: %w", err)
		}
	case domain.MetricExams:
		records, err := parseExamRows(rows)
		if err != nil {
			return domain.UploadMeta{}, err
		}
		if err := s.store.ReplacePartnerExamBatch(ctx, meta, records); err != nil {
			return domain.UploadMeta{}, fmt.Errorf("store.ReplacePartnerExamBatch: %w", err)
		}
	default:
		return domain.UploadMeta{}, constants.Invalidf("unknown metric %q", metric)
	}

	return meta, nil
}

func (s *Service) Uploads(ctx context.Context, metric string) ([]domain.UploadMeta, error) {
	if metric != domain.MetricValue && metric != domain.MetricExams {
		return nil, constants.Invalidf("unknown metric %q", metric)
	}

	uploads, err := s.store.ListUploads(ctx, metric)
	if err != nil {
		return nil, fmt.Errorf("store.ListUploads: %w", err)
	}
	return uploads, nil
}

func parseValueRows(rows [][]string) ([]domain.PartnerRecord, error) {
	records := make([]domain.PartnerRecord, 0, len(rows))
	for i, row := range rows {
		name, raw, ok := splitRow(row)
		if !ok {
			continue
		}

		value, err := parseMoney(raw)
		if err != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, constants.Invalidf("row %d: bad value %q", i+1, raw)
		}

		records = append(records, domain.PartnerRecord{DentistName: name, ExamValue: value})
	}
	if len(records) == 0 {
		return nil, constants.ErrEmptyUpload
	}
	return records, nil
}

func parseExamRows(rows [][]string) ([]domain.PartnerExamRecord, error) {
	records := make([]domain.PartnerExamRecord, 0, len(rows))
	for i, row := range rows {
		name, raw, ok := splitRow(row)
		if !ok {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, constants.Invalidf("row %d: bad count %q", i+1, raw)
		}

		records = append(records, domain.PartnerExamRecord{DentistName: name, ExamCount: count})
	}
	if len(records) == 0 {
		return nil, constants.ErrEmptyUpload
	}
	return records, nil
}

func splitRow(row []string) (name, value string, ok bool) {
	if len(row) < 2 {
		return "", "", false
	}
	name = strings.TrimSpace(row[0])
	value = strings.TrimSpace(row[1])
	if name == "" || value == "" {
		return "", "", false
	}
	return name, value, true
}

// parseMoney accepts both spreadsheet numbers ("1234.56") and pt-BR
// formatted currency ("R$ 1.234,56").
func parseMoney(raw string) (float64, error) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "R$"))
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, err
	}
	return value.InexactFloat64(), nil
}
