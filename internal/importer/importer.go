// Package importer turns extracted spreadsheet rows into validated core
// inputs. Spreadsheet parsing itself happens upstream; this package only
// normalizes values, most importantly dates, which arrive either as
// ISO-like strings or as spreadsheet serial day counts.
package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"candidate-tracker/internal/domain"
)

var validate = validator.New()

// Row is one uploaded row keyed by column name.
type Row map[string]any

var requiredColumns = []string{
	"name", "national_id", "birth_date", "region",
	"qualification", "marital_status", "company",
}

// Excel counts days from this anchor (the off-by-two of the 1900 system
// folded in).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var ddmmyyyy = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)

// ParseCandidates validates and converts rows for the working collection.
// A missing required column fails the whole batch; a malformed value fails
// only its row, and the row errors are returned for the caller to fold
// into the import result.
func ParseCandidates(rows []Row) ([]domain.CreateCandidateInput, []string, error) {
	if err := checkColumns(rows); err != nil {
		return nil, nil, err
	}

	var inputs []domain.CreateCandidateInput
	var rowErrs []string
	for i, row := range rows {
		birthDate, err := NormalizeDate(row["birth_date"])
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: birth_date: %v", i+1, err))
			continue
		}
		offerDate, err := NormalizeDate(row["offer_date"])
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: offer_date: %v", i+1, err))
			continue
		}

		input := domain.CreateCandidateInput{
			Name:          stringValue(row["name"]),
			NationalID:    stringValue(row["national_id"]),
			BirthDate:     birthDate,
			Region:        stringValue(row["region"]),
			Qualification: stringValue(row["qualification"]),
			MaritalStatus: maritalStatus(row["marital_status"]),
			Company:       stringValue(row["company"]),
			Position:      stringValue(row["position"]),
			OfferDate:     offerDate,
			Notes:         stringValue(row["notes"]),
		}
		if err := validate.Struct(input); err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs, rowErrs, nil
}

// ParseSavedCandidates validates and converts rows for direct archive
// import.
func ParseSavedCandidates(rows []Row) ([]domain.SavedCandidateInput, []string, error) {
	if err := checkColumns(rows); err != nil {
		return nil, nil, err
	}

	var inputs []domain.SavedCandidateInput
	var rowErrs []string
	for i, row := range rows {
		birthDate, err := NormalizeDate(row["birth_date"])
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: birth_date: %v", i+1, err))
			continue
		}
		offerDate, err := NormalizeDate(row["offer_date"])
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: offer_date: %v", i+1, err))
			continue
		}
		decisionDate, err := NormalizeDate(row["decision_date"])
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: decision_date: %v", i+1, err))
			continue
		}

		result := domain.FinalResult(stringValue(row["final_result"]))
		if result == "" {
			result = domain.FinalAccepted
		}

		input := domain.SavedCandidateInput{
			Name:          stringValue(row["name"]),
			NationalID:    stringValue(row["national_id"]),
			BirthDate:     birthDate,
			Region:        stringValue(row["region"]),
			Qualification: stringValue(row["qualification"]),
			MaritalStatus: maritalStatus(row["marital_status"]),
			Company:       stringValue(row["company"]),
			Position:      stringValue(row["position"]),
			OfferDate:     offerDate,
			FinalResult:   result,
			DecisionDate:  decisionDate,
			DecisionBy:    stringValue(row["decision_by"]),
			Notes:         stringValue(row["notes"]),
		}
		if err := validate.Struct(input); err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs, rowErrs, nil
}

func checkColumns(rows []Row) error {
	if len(rows) == 0 {
		return &domain.ValidationError{Msg: "import file contains no rows"}
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := rows[0][col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Msg: "missing required columns: " + strings.Join(missing, ", ")}
	}
	return nil
}

// NormalizeDate accepts a YYYY-MM-DD string, a DD-MM-YYYY string, or a
// spreadsheet serial day count, and returns the canonical YYYY-MM-DD
// form. Empty input stays empty: optional date columns may be blank.
func NormalizeDate(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case float64:
		return serialEpoch.AddDate(0, 0, int(t)).Format("2006-01-02"), nil
	case int:
		return serialEpoch.AddDate(0, 0, t).Format("2006-01-02"), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return "", nil
		}
		if _, err := time.Parse("2006-01-02", s); err == nil {
			return s, nil
		}
		if m := ddmmyyyy.FindStringSubmatch(s); m != nil {
			day, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			return fmt.Sprintf("%s-%02d-%02d", m[3], month, day), nil
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return serialEpoch.AddDate(0, 0, int(serial)).Format("2006-01-02"), nil
		}
		return "", fmt.Errorf("unrecognized date %q", s)
	default:
		return "", fmt.Errorf("unsupported date value %v", v)
	}
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

func maritalStatus(v any) domain.MaritalStatus {
	s := domain.MaritalStatus(stringValue(v))
	if s == "" {
		return domain.MaritalSingle
	}
	return s
}
