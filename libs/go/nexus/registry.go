package nexus

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sails-app/sails-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed thresholds.yaml
var defaultThresholds []byte

// ErrInvalidRegistry is returned when the threshold table is missing or malformed.
var ErrInvalidRegistry = errors.New("invalid nexus threshold registry")

// requiredStates lists the jurisdictions every registry must cover.
var requiredStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// Registry exposes the per-state nexus rules.
type Registry interface {
	GetThreshold(stateCode string) (business.StateThreshold, bool)
	ListAll() []business.StateThreshold
}

// StaticRegistry is an immutable Registry built once at startup.
type StaticRegistry struct {
	byCode map[string]business.StateThreshold
	all    []business.StateThreshold
}

type thresholdFile struct {
	States []thresholdRow `yaml:"states"`
}

type thresholdRow struct {
	Code                 string `yaml:"code"`
	Name                 string `yaml:"name"`
	HasSalesTax          bool   `yaml:"has_sales_tax"`
	SalesThreshold       *int64 `yaml:"sales_threshold"`
	TransactionThreshold *int64 `yaml:"transaction_threshold"`
	MeasurementPeriod    string `yaml:"measurement_period"`
	BaseRate             string `yaml:"base_rate"`
	Notes                string `yaml:"notes"`
}

// LoadDefaultRegistry parses the threshold table compiled into the binary.
func LoadDefaultRegistry() (*StaticRegistry, error) {
	registry, err := ParseRegistry(defaultThresholds)
	if err != nil {
		return nil, err
	}
	if err := registry.requireStates(requiredStates); err != nil {
		return nil, err
	}
	return registry, nil
}

// ParseRegistry builds a registry from a YAML threshold table.
func ParseRegistry(data []byte) (*StaticRegistry, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty threshold table", ErrInvalidRegistry)
	}

	var file thresholdFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}

	thresholds := make([]business.StateThreshold, 0, len(file.States))
	for i, row := range file.States {
		threshold, err := row.toThreshold()
		if err != nil {
			return nil, fmt.Errorf("%w: row %d (%s): %v", ErrInvalidRegistry, i, row.Code, err)
		}
		thresholds = append(thresholds, threshold)
	}

	return NewStaticRegistry(thresholds)
}

// NewStaticRegistry validates the given thresholds and indexes them by code.
// Tests use it to build synthetic registries.
func NewStaticRegistry(thresholds []business.StateThreshold) (*StaticRegistry, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("%w: no states defined", ErrInvalidRegistry)
	}

	registry := &StaticRegistry{
		byCode: make(map[string]business.StateThreshold, len(thresholds)),
		all:    make([]business.StateThreshold, 0, len(thresholds)),
	}

	for _, threshold := range thresholds {
		threshold.StateCode = normalizeCode(threshold.StateCode)
		if err := validateThreshold(threshold); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRegistry, threshold.StateCode, err)
		}
		if _, exists := registry.byCode[threshold.StateCode]; exists {
			return nil, fmt.Errorf("%w: duplicate state %s", ErrInvalidRegistry, threshold.StateCode)
		}
		registry.byCode[threshold.StateCode] = threshold
		registry.all = append(registry.all, threshold)
	}

	sort.Slice(registry.all, func(i, j int) bool {
		return registry.all[i].StateCode < registry.all[j].StateCode
	})

	return registry, nil
}

// GetThreshold returns the rule for stateCode.
func (r *StaticRegistry) GetThreshold(stateCode string) (business.StateThreshold, bool) {
	threshold, ok := r.byCode[normalizeCode(stateCode)]
	return threshold, ok
}

// ListAll returns every rule ordered by state code. The slice is a copy.
func (r *StaticRegistry) ListAll() []business.StateThreshold {
	out := make([]business.StateThreshold, len(r.all))
	copy(out, r.all)
	return out
}

func (r *StaticRegistry) requireStates(codes []string) error {
	var missing []string
	for _, code := range codes {
		if _, ok := r.byCode[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing states %s", ErrInvalidRegistry, strings.Join(missing, ","))
	}
	return nil
}

func (row thresholdRow) toThreshold() (business.StateThreshold, error) {
	threshold := business.StateThreshold{
		StateCode:            row.Code,
		StateName:            row.Name,
		HasSalesTax:          row.HasSalesTax,
		TransactionThreshold: row.TransactionThreshold,
		MeasurementPeriod:    business.MeasurementPeriod(row.MeasurementPeriod),
		BaseRate:             decimal.Zero,
		Notes:                row.Notes,
	}

	if row.SalesThreshold != nil {
		sales := decimal.NewFromInt(*row.SalesThreshold)
		threshold.SalesThreshold = &sales
	}

	if row.BaseRate != "" {
		rate, err := decimal.NewFromString(row.BaseRate)
		if err != nil {
			return business.StateThreshold{}, fmt.Errorf("base_rate: %w", err)
		}
		threshold.BaseRate = rate
	}

	return threshold, nil
}

func validateThreshold(t business.StateThreshold) error {
	if len(t.StateCode) != 2 {
		return fmt.Errorf("state code must have two letters")
	}
	if t.StateName == "" {
		return fmt.Errorf("state name is required")
	}
	if !t.MeasurementPeriod.Valid() {
		return fmt.Errorf("unknown measurement period %q", t.MeasurementPeriod)
	}
	if !t.HasSalesTax && (t.SalesThreshold != nil || t.TransactionThreshold != nil) {
		return fmt.Errorf("state without sales tax cannot define thresholds")
	}
	if t.SalesThreshold != nil && t.SalesThreshold.IsNegative() {
		return fmt.Errorf("sales threshold is negative")
	}
	if t.TransactionThreshold != nil && *t.TransactionThreshold < 0 {
		return fmt.Errorf("transaction threshold is negative")
	}
	if t.BaseRate.IsNegative() {
		return fmt.Errorf("base rate is negative")
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
