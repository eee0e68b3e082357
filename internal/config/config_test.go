package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mworkman/scheduleme/pkg/core/scheduler"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scheduleme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadFromPath_OverridesKeepDefaultsElsewhere(t *testing.T) {
	path := writeConfig(t, `
dataDir: /tmp/rosters
rules:
  scheduleDays: 14
  minStaffThreshold: 3
  maxStaffPerShift: 4
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/rosters", cfg.DataDir)
	assert.Equal(t, 14, cfg.Rules.ScheduleDays)
	assert.Equal(t, 3, cfg.Rules.MinStaffThreshold)
	assert.Equal(t, 4, cfg.Rules.MaxStaffPerShift)

	// Absent fields keep their stock values
	defaults := scheduler.DefaultRules()
	assert.Equal(t, defaults.ShiftTypes, cfg.Rules.ShiftTypes)
	assert.Equal(t, defaults.MaxShiftsPerEmployee, cfg.Rules.MaxShiftsPerEmployee)
	assert.Equal(t, string(defaults.ShiftPreferenceMode), cfg.Rules.ShiftPreferenceMode)
}

func TestLoadFromPath_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"unknown shift type": `
dataDir: data
rules:
  shiftTypes: ["Morning", "Graveyard"]
`,
		"max below min": `
dataDir: data
rules:
  minStaffThreshold: 4
  maxStaffPerShift: 2
`,
		"bad preference mode": `
dataDir: data
rules:
  shiftPreferenceMode: maybe
`,
		"bad holiday date": `
dataDir: data
rules:
  holidayDates: ["25/12/2025"]
`,
		"bad rrule": `
dataDir: data
rules:
  holidayRules: ["FREQ=FORTNIGHTLY"]
`,
		"locked location not active": `
dataDir: data
rules:
  activeLocations: ["ZoneA"]
  lockedLocations: ["ZoneB"]
`,
	}

	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFromPath(writeConfig(t, contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestBuildRuleSet_ExplicitHolidayDates(t *testing.T) {
	cfg := defaultConfig()
	cfg.Rules.HolidayDates = []string{"2025-06-03"}

	rules, err := cfg.BuildRuleSet(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, rules.IsHoliday("2025-06-03"))
	assert.False(t, rules.IsHoliday("2025-06-04"))
}

func TestBuildRuleSet_ExpandsRecurringHolidays(t *testing.T) {
	cfg := defaultConfig()
	cfg.Rules.ScheduleDays = 14
	// Weekly Wednesday closure; 2025-06-04 and 2025-06-11 fall in range
	cfg.Rules.HolidayRules = []string{"FREQ=WEEKLY;BYDAY=WE"}

	rules, err := cfg.BuildRuleSet(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, rules.IsHoliday("2025-06-04"))
	assert.True(t, rules.IsHoliday("2025-06-11"))
	assert.False(t, rules.IsHoliday("2025-06-05"))
}

func TestBuildRuleSet_LockedLocationsBecomeSet(t *testing.T) {
	cfg := defaultConfig()
	cfg.Rules.ActiveLocations = []string{"ZoneA", "ZoneB", "ZoneC"}
	cfg.Rules.LockedLocations = []string{"ZoneC"}

	rules, err := cfg.BuildRuleSet(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, []string{"ZoneA", "ZoneB"}, rules.SchedulableLocations())
}

func TestBuildRuleSet_PreferenceModes(t *testing.T) {
	cfg := defaultConfig()
	cfg.Rules.ShiftPreferenceMode = "strict"
	cfg.Rules.LocationPreferenceMode = "ignore"

	rules, err := cfg.BuildRuleSet(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, scheduler.PreferenceStrict, rules.ShiftPreferenceMode)
	assert.Equal(t, scheduler.PreferenceIgnore, rules.LocationPreferenceMode)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, Validate(defaultConfig()))
}
