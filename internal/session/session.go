package session

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoSource is returned when no snapshot path is configured.
var ErrNoSource = errors.New("no session source configured")

// State is a read-only snapshot of the session/account data the header is
// built from. Nested objects are optional; use the accessor methods rather
// than dereferencing fields directly.
type State struct {
	IsSignedIn  bool         `yaml:"isSignedIn" json:"isSignedIn"`
	Balance     *Balance     `yaml:"balance,omitempty" json:"balance,omitempty"`
	Settings    *Settings    `yaml:"settings,omitempty" json:"settings,omitempty"`
	AccountInfo *AccountInfo `yaml:"accountInfo,omitempty" json:"accountInfo,omitempty"`
	Brand       *Brand       `yaml:"brand,omitempty" json:"brand,omitempty"`
}

// Balance carries the postage balance. AmountAvailable is left untyped so
// that non-numeric payloads can be detected and treated as zero.
type Balance struct {
	AmountAvailable interface{} `yaml:"amountAvailable" json:"amountAvailable"`
}

type Settings struct {
	ShowMarketing       bool   `yaml:"ShowMarketing" json:"ShowMarketing"`
	HasShipStationToken bool   `yaml:"HasShipStationToken" json:"HasShipStationToken"`
	Page                string `yaml:"Page" json:"Page"`
}

type AccountInfo struct {
	CustomerDetails    *CustomerDetails `yaml:"customerDetails,omitempty" json:"customerDetails,omitempty"`
	Globalpost         *Globalpost      `yaml:"globalpost,omitempty" json:"globalpost,omitempty"`
	ConfiguredCarriers *[]Carrier       `yaml:"configuredCarriers,omitempty" json:"configuredCarriers,omitempty"`
}

type CustomerDetails struct {
	Username string `yaml:"username" json:"username"`
}

type Globalpost struct {
	FirstMileCarrier string `yaml:"firstMileCarrier" json:"firstMileCarrier"`
}

// Carrier is an opaque carrier configuration record; only the presence of
// the configured list matters to the header.
type Carrier = interface{}

type Brand struct {
	BrandName string `yaml:"brandName" json:"brandName"`
}

// SignedIn reports whether the viewer is authenticated.
func (s State) SignedIn() bool {
	return s.IsSignedIn
}

// Page returns the settings page, or "" when settings are absent.
func (s State) Page() string {
	if s.Settings == nil {
		return ""
	}
	return s.Settings.Page
}

func (s State) ShowMarketing() bool {
	return s.Settings != nil && s.Settings.ShowMarketing
}

func (s State) HasShipStationToken() bool {
	return s.Settings != nil && s.Settings.HasShipStationToken
}

// Username returns the customer's username or "".
func (s State) Username() string {
	if s.AccountInfo == nil || s.AccountInfo.CustomerDetails == nil {
		return ""
	}
	return s.AccountInfo.CustomerDetails.Username
}

// FirstMileCarrier returns the GlobalPost first-mile carrier or "".
func (s State) FirstMileCarrier() string {
	if s.AccountInfo == nil || s.AccountInfo.Globalpost == nil {
		return ""
	}
	return s.AccountInfo.Globalpost.FirstMileCarrier
}

// HasConfiguredCarriers reports whether a carrier list is present. An empty
// list still counts; only an absent or null list does not.
func (s State) HasConfiguredCarriers() bool {
	return s.AccountInfo != nil && s.AccountInfo.ConfiguredCarriers != nil
}

// BrandName returns the brand name or "".
func (s State) BrandName() string {
	if s.Brand == nil {
		return ""
	}
	return s.Brand.BrandName
}

// AmountAvailable returns the raw balance value, or nil when absent.
func (s State) AmountAvailable() interface{} {
	if s.Balance == nil {
		return nil
	}
	return s.Balance.AmountAvailable
}

// Decode parses a YAML or JSON snapshot.
func Decode(data []byte) (State, error) {
	var st State
	if strings.TrimSpace(string(data)) == "" {
		return st, nil
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("decode session snapshot: %w", err)
	}
	return st, nil
}

// Load reads a snapshot from path.
func Load(path string) (State, error) {
	if strings.TrimSpace(path) == "" {
		return State{}, ErrNoSource
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("read session snapshot %s: %w", path, err)
	}
	return Decode(data)
}
