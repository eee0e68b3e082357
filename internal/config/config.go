package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/mworkman/scheduleme/pkg/core/model"
	"github.com/mworkman/scheduleme/pkg/core/scheduler"
)

const configFileName = "scheduleme.yaml"

// RulesConfig is the YAML surface of the scheduling rule set. Loading
// starts from the stock defaults, so an absent field keeps its default
// rather than zeroing out.
type RulesConfig struct {
	ScheduleDays         int      `yaml:"scheduleDays" validate:"min=1,max=30"`
	ShiftTypes           []string `yaml:"shiftTypes" validate:"required,min=1,dive,oneof=Morning Afternoon Night"`
	ActiveLocations      []string `yaml:"activeLocations" validate:"required,min=1"`
	MinStaffThreshold    int      `yaml:"minStaffThreshold" validate:"min=1"`
	MaxStaffPerShift     int      `yaml:"maxStaffPerShift" validate:"min=1,gtefield=MinStaffThreshold"`
	MaxShiftsPerEmployee int      `yaml:"maxShiftsPerEmployee" validate:"min=1"`

	EnforceWorkPattern         bool `yaml:"enforceWorkPattern"`
	EnforceMaxOneShiftPerDay   bool `yaml:"enforceMaxOneShiftPerDay"`
	EnforceNoMorningAfterNight bool `yaml:"enforceNoMorningAfterNight"`
	EnforceConsecutiveDayLimit bool `yaml:"enforceConsecutiveDayLimit"`
	EnforceShiftCooldown       bool `yaml:"enforceShiftCooldown"`

	ShiftPreferenceMode    string `yaml:"shiftPreferenceMode" validate:"oneof=strict soft ignore"`
	LocationPreferenceMode string `yaml:"locationPreferenceMode" validate:"oneof=strict soft ignore"`
	UseSeniorityWeighting  bool   `yaml:"useSeniorityWeighting"`

	MaxConsecutiveDays    int `yaml:"maxConsecutiveDays" validate:"min=1,max=10"`
	MinHoursBetweenShifts int `yaml:"minHoursBetweenShifts" validate:"min=1,max=24"`

	// HolidayDates are explicit blocked dates; HolidayRules are RRULE
	// strings expanded over the horizon at run time (recurring closures)
	HolidayDates []string `yaml:"holidayDates,omitempty" validate:"dive,datetime=2006-01-02"`
	HolidayRules []string `yaml:"holidayRules,omitempty"`

	LockedLocations []string `yaml:"lockedLocations,omitempty"`

	BalanceEnabled         bool `yaml:"balanceEnabled"`
	BalancePreferSeniority bool `yaml:"balancePreferSeniority"`
}

// Config represents the application configuration
type Config struct {
	// DataDir is where the CSV session store keeps its files
	DataDir string `yaml:"dataDir" validate:"required"`

	// DatabaseURL switches persistence to PostgreSQL when set
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	Rules RulesConfig `yaml:"rules"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// defaultConfig mirrors scheduler.DefaultRules plus store defaults
func defaultConfig() *Config {
	rules := scheduler.DefaultRules()
	return &Config{
		DataDir: "data",
		Rules: RulesConfig{
			ScheduleDays:               rules.ScheduleDays,
			ShiftTypes:                 rules.ShiftTypes,
			ActiveLocations:            rules.ActiveLocations,
			MinStaffThreshold:          rules.MinStaffThreshold,
			MaxStaffPerShift:           rules.MaxStaffPerShift,
			MaxShiftsPerEmployee:       rules.MaxShiftsPerEmployee,
			EnforceWorkPattern:         rules.EnforceWorkPattern,
			EnforceMaxOneShiftPerDay:   rules.EnforceMaxOneShiftPerDay,
			EnforceNoMorningAfterNight: rules.EnforceNoMorningAfterNight,
			EnforceConsecutiveDayLimit: rules.EnforceConsecutiveDayLimit,
			EnforceShiftCooldown:       rules.EnforceShiftCooldown,
			ShiftPreferenceMode:        string(rules.ShiftPreferenceMode),
			LocationPreferenceMode:     string(rules.LocationPreferenceMode),
			UseSeniorityWeighting:      rules.UseSeniorityWeighting,
			MaxConsecutiveDays:         rules.MaxConsecutiveDays,
			MinHoursBetweenShifts:      rules.MinHoursBetweenShifts,
			BalanceEnabled:             rules.BalanceEnabled,
			BalancePreferSeniority:     rules.BalancePreferSeniority,
		},
	}
}

// Load loads and validates the configuration, looking for
// scheduleme.yaml in the current directory first, then in the user's
// home directory. A missing config file yields the stock defaults.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return defaultConfig(), nil
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.Rules.HolidayRules {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}
	}

	for _, loc := range cfg.Rules.LockedLocations {
		if !slices.Contains(cfg.Rules.ActiveLocations, loc) {
			return fmt.Errorf("locked location %q is not an active location", loc)
		}
	}

	return nil
}

// BuildRuleSet converts the validated configuration into the engine's
// rule set for a horizon starting at start, expanding recurring holiday
// rules into concrete dates within the horizon.
func (c *Config) BuildRuleSet(start time.Time) (scheduler.RuleSet, error) {
	rules := scheduler.DefaultRules()
	rc := c.Rules

	rules.ScheduleDays = rc.ScheduleDays
	rules.ShiftTypes = rc.ShiftTypes
	rules.ActiveLocations = rc.ActiveLocations
	rules.MinStaffThreshold = rc.MinStaffThreshold
	rules.MaxStaffPerShift = rc.MaxStaffPerShift
	rules.MaxShiftsPerEmployee = rc.MaxShiftsPerEmployee
	rules.EnforceWorkPattern = rc.EnforceWorkPattern
	rules.EnforceMaxOneShiftPerDay = rc.EnforceMaxOneShiftPerDay
	rules.EnforceNoMorningAfterNight = rc.EnforceNoMorningAfterNight
	rules.EnforceConsecutiveDayLimit = rc.EnforceConsecutiveDayLimit
	rules.EnforceShiftCooldown = rc.EnforceShiftCooldown
	rules.ShiftPreferenceMode = scheduler.PreferenceMode(rc.ShiftPreferenceMode)
	rules.LocationPreferenceMode = scheduler.PreferenceMode(rc.LocationPreferenceMode)
	rules.UseSeniorityWeighting = rc.UseSeniorityWeighting
	rules.MaxConsecutiveDays = rc.MaxConsecutiveDays
	rules.MinHoursBetweenShifts = rc.MinHoursBetweenShifts
	rules.LockedLocations = model.NewSet(rc.LockedLocations)
	rules.BalanceEnabled = rc.BalanceEnabled
	rules.BalancePreferSeniority = rc.BalancePreferSeniority

	holidays := make(map[string]bool, len(rc.HolidayDates))
	for _, date := range rc.HolidayDates {
		holidays[date] = true
	}

	horizonStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	horizonEnd := horizonStart.AddDate(0, 0, rc.ScheduleDays)
	for i, raw := range rc.HolidayRules {
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return scheduler.RuleSet{}, fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}
		if r.OrigOptions.Dtstart.IsZero() {
			r.DTStart(horizonStart)
		}
		for _, occurrence := range r.Between(horizonStart, horizonEnd, true) {
			holidays[model.DateKey(occurrence)] = true
		}
	}
	rules.HolidayDates = holidays

	return rules, nil
}

// findConfigFile searches for scheduleme.yaml in the current directory
// and the home directory.
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
