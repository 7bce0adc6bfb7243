package house

import (
	"encoding/json"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
)

// TerminalKind identifies which room's terminal this is
type TerminalKind string

const (
	TerminalSecurity   TerminalKind = "SECURITY"
	TerminalOffice     TerminalKind = "OFFICE"
	TerminalLaboratory TerminalKind = "LABORATORY"
	TerminalShelter    TerminalKind = "SHELTER"
)

// OfflineMode is the setting security doors fall back to when power is lost
type OfflineMode string

const (
	OfflineLocked   OfflineMode = "LOCKED"
	OfflineUnlocked OfflineMode = "UNLOCKED"
)

// ParseOfflineMode normalizes user input into an OfflineMode
func ParseOfflineMode(s string) (OfflineMode, error) {
	switch OfflineMode(upper(s)) {
	case OfflineLocked:
		return OfflineLocked, nil
	case OfflineUnlocked:
		return OfflineUnlocked, nil
	default:
		return "", errors.InvalidArgumentf("invalid offline mode %q, must be LOCKED or UNLOCKED", s)
	}
}

// SecurityLevel controls how many keycard doors the estate deploys
type SecurityLevel string

const (
	SecurityLow    SecurityLevel = "LOW"
	SecurityMedium SecurityLevel = "MEDIUM"
	SecurityHigh   SecurityLevel = "HIGH"
)

// ParseSecurityLevel normalizes user input into a SecurityLevel
func ParseSecurityLevel(s string) (SecurityLevel, error) {
	switch SecurityLevel(upper(s)) {
	case SecurityLow:
		return SecurityLow, nil
	case SecurityMedium:
		return SecurityMedium, nil
	case SecurityHigh:
		return SecurityHigh, nil
	default:
		return "", errors.InvalidArgumentf("invalid security level %q, must be LOW, MEDIUM or HIGH", s)
	}
}

// defaultNetworkPassword is the estate network password printed on the staff
// notice board
const defaultNetworkPassword = "SWANSONG"

// Terminal is the in-room computer attached to the SECURITY, OFFICE,
// LABORATORY and SHELTER rooms. Only the security terminal's OfflineMode
// feeds the map's lock propagation; the rest is per-room bookkeeping.
type Terminal struct {
	Kind            TerminalKind
	NetworkPassword string
	KnowsPassword   bool

	// SECURITY
	EstateInventory map[string]int
	SecurityLevel   SecurityLevel
	OfflineMode     OfflineMode
	KeycardSystem   string

	// OFFICE
	PayrollRan bool
	GoldSpread bool

	// LABORATORY
	ExperimentalHouseFeature map[string]string

	// SHELTER
	TimeLockEngaged bool
	RadiationLevel  string
}

// NewTerminal creates a terminal with the default state for the given kind
func NewTerminal(kind TerminalKind) *Terminal {
	t := &Terminal{
		Kind:            kind,
		NetworkPassword: defaultNetworkPassword,
	}
	switch kind {
	case TerminalSecurity:
		t.EstateInventory = map[string]int{"FRUIT": 0, "GEMS": 0, "KEYS": 0, "COINS": 0}
		t.SecurityLevel = SecurityMedium
		t.OfflineMode = OfflineLocked
		t.KeycardSystem = "OPERATIONAL"
	case TerminalLaboratory:
		t.ExperimentalHouseFeature = map[string]string{}
	case TerminalShelter:
		t.TimeLockEngaged = true
		t.RadiationLevel = "NORMAL"
	}
	return t
}

// Login attempts a network login, remembering success
func (t *Terminal) Login(password string) bool {
	if password == t.NetworkPassword {
		t.KnowsPassword = true
		return true
	}
	return false
}

// Commands returns the terminal's menu command names for its kind
func (t *Terminal) Commands() []string {
	base := []string{"Login to Network", "Exit"}
	if t.KnowsPassword {
		base = append(base, "Special Orders")
	}
	switch t.Kind {
	case TerminalSecurity:
		return append(base, "View Estate Inventory", "Alter Security Level", "Alter Mode")
	case TerminalOffice:
		return append(base, "Run Payroll", "Spread Gold in Estate")
	case TerminalLaboratory:
		return append(base, "Experiment Setup", "Pause Experiment")
	case TerminalShelter:
		return append(base, "Time Lock Safe", "Radiation Monitor")
	default:
		return base
	}
}

// SpecialOrderItems returns the items the commissary takes special orders for
func (t *Terminal) SpecialOrderItems() []string {
	return []string{
		"BRASS COMPASS",
		"MAGNIFYING GLASS",
		"METAL DETECTOR",
		"RUNNING SHOES",
		"SHOVEL",
		"SLEEPING MASK",
		"SLEDGE HAMMER",
	}
}

// SetOfflineMode sets the offline mode on a security terminal
func (t *Terminal) SetOfflineMode(mode OfflineMode) error {
	if t.Kind != TerminalSecurity {
		return errors.InvalidArgumentf("%s terminal has no offline mode", t.Kind)
	}
	parsed, err := ParseOfflineMode(string(mode))
	if err != nil {
		return err
	}
	t.OfflineMode = parsed
	return nil
}

// SetSecurityLevel sets the security level on a security terminal
func (t *Terminal) SetSecurityLevel(level SecurityLevel) error {
	if t.Kind != TerminalSecurity {
		return errors.InvalidArgumentf("%s terminal has no security level", t.Kind)
	}
	parsed, err := ParseSecurityLevel(string(level))
	if err != nil {
		return err
	}
	t.SecurityLevel = parsed
	return nil
}

// terminalJSON is the serialized form; only the fields belonging to the
// terminal's kind are emitted so the stored shape matches the recorded data
type terminalJSON struct {
	NetworkPassword string `json:"network_password"`
	KnowsPassword   bool   `json:"knows_password"`

	EstateInventory map[string]int `json:"estate_inventory,omitempty"`
	SecurityLevel   *SecurityLevel `json:"security_level,omitempty"`
	OfflineMode     *OfflineMode   `json:"offline_mode,omitempty"`
	KeycardSystem   *string        `json:"keycard_system,omitempty"`

	PayrollRan *bool `json:"payroll_ran,omitempty"`
	GoldSpread *bool `json:"gold_spread,omitempty"`

	ExperimentalHouseFeature map[string]string `json:"experimental_house_feature,omitempty"`

	TimeLockEngaged *bool   `json:"time_lock_engaged,omitempty"`
	RadiationLevel  *string `json:"radiation_level,omitempty"`
}

// MarshalJSON emits the kind-specific field set
func (t *Terminal) MarshalJSON() ([]byte, error) {
	out := terminalJSON{
		NetworkPassword: t.NetworkPassword,
		KnowsPassword:   t.KnowsPassword,
	}
	switch t.Kind {
	case TerminalSecurity:
		out.EstateInventory = t.EstateInventory
		out.SecurityLevel = &t.SecurityLevel
		out.OfflineMode = &t.OfflineMode
		out.KeycardSystem = &t.KeycardSystem
	case TerminalOffice:
		out.PayrollRan = &t.PayrollRan
		out.GoldSpread = &t.GoldSpread
	case TerminalLaboratory:
		if t.ExperimentalHouseFeature == nil {
			out.ExperimentalHouseFeature = map[string]string{}
		} else {
			out.ExperimentalHouseFeature = t.ExperimentalHouseFeature
		}
	case TerminalShelter:
		out.TimeLockEngaged = &t.TimeLockEngaged
		out.RadiationLevel = &t.RadiationLevel
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a stored terminal. The kind is not part of the
// stored shape, so callers decode into a terminal built by NewTerminal for
// the owning room's kind; fields the stored data omits keep their defaults.
func (t *Terminal) UnmarshalJSON(data []byte) error {
	var in terminalJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	t.NetworkPassword = in.NetworkPassword
	if t.NetworkPassword == "" {
		t.NetworkPassword = defaultNetworkPassword
	}
	t.KnowsPassword = in.KnowsPassword
	if in.EstateInventory != nil {
		t.EstateInventory = in.EstateInventory
	}
	if in.SecurityLevel != nil {
		t.SecurityLevel = *in.SecurityLevel
	}
	if in.OfflineMode != nil {
		t.OfflineMode = *in.OfflineMode
	}
	if in.KeycardSystem != nil {
		t.KeycardSystem = *in.KeycardSystem
	}
	if in.PayrollRan != nil {
		t.PayrollRan = *in.PayrollRan
	}
	if in.GoldSpread != nil {
		t.GoldSpread = *in.GoldSpread
	}
	if in.ExperimentalHouseFeature != nil {
		t.ExperimentalHouseFeature = in.ExperimentalHouseFeature
	}
	if in.TimeLockEngaged != nil {
		t.TimeLockEngaged = *in.TimeLockEngaged
	}
	if in.RadiationLevel != nil {
		t.RadiationLevel = *in.RadiationLevel
	}
	return nil
}
