// Package shipper provides the Shipper aggregate: a business that posts loads.
package shipper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const EventShipperRegistered = "shipper.registered"

type RegisteredEvent struct {
	kernel.Event
	CompanyName  string `json:"companyName"`
	IndustryType string `json:"industryType"`
}

// IndustryType is the closed list of sectors a shipper declares.
type IndustryType int

const (
	UnknownIndustry IndustryType = iota
	Agriculture
	Textiles
	Electronics
	Chemicals
	Automotive
	FMCG
	Pharmaceuticals
	Construction
	Retail
	Other
)

func getIndustryStrings() map[IndustryType]string {
	//nolint:exhaustive // UnknownIndustry is not a wire value
	return map[IndustryType]string{
		Agriculture:     "AGRICULTURE",
		Textiles:        "TEXTILES",
		Electronics:     "ELECTRONICS",
		Chemicals:       "CHEMICALS",
		Automotive:      "AUTOMOTIVE",
		FMCG:            "FMCG",
		Pharmaceuticals: "PHARMACEUTICALS",
		Construction:    "CONSTRUCTION",
		Retail:          "RETAIL",
		Other:           "OTHER",
	}
}

func ParseIndustryType(s string) (IndustryType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "" {
		return UnknownIndustry, errs.NewValueIsRequiredError("industryType")
	}
	for t, name := range getIndustryStrings() {
		if name == normalized {
			return t, nil
		}
	}
	return UnknownIndustry, errs.NewValueIsInvalidErrorWithCause("industryType", fmt.Errorf("%q is not a known industry", s))
}

func (t IndustryType) String() string {
	if str, ok := getIndustryStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

func (t IndustryType) Validate() error {
	if _, ok := getIndustryStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("industryType", fmt.Errorf("%d is not a valid industry", t))
	}
	return nil
}

var ErrShipperIsNotConstructed = errors.New("Shipper must be created via NewShipper constructor")

type Shipper struct {
	id        kernel.UUID
	profile   kernel.Profile
	industry  IndustryType
	createdAt time.Time
	events    kernel.EventRecorder
	guard     guard.ConstructorGuard
}

func NewShipper(id kernel.UUID, profile kernel.Profile, industry IndustryType, now time.Time) (*Shipper, error) {
	if err := errors.Join(id.Validate(), profile.Validate(), industry.Validate()); err != nil {
		return nil, err
	}
	s := &Shipper{
		id:        id,
		profile:   profile,
		industry:  industry,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}
	s.events.Record(RegisteredEvent{
		Event:        kernel.NewEvent(EventShipperRegistered, id, now),
		CompanyName:  profile.CompanyName(),
		IndustryType: industry.String(),
	})
	return s, nil
}

func RestoreShipper(id kernel.UUID, profile kernel.Profile, industry IndustryType, createdAt time.Time) (*Shipper, error) {
	if err := errors.Join(id.Validate(), profile.Validate(), industry.Validate()); err != nil {
		return nil, err
	}
	return &Shipper{
		id:        id,
		profile:   profile,
		industry:  industry,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (s *Shipper) Validate() error {
	if s == nil {
		return ErrShipperIsNotConstructed
	}
	return s.guard.Validate(ErrShipperIsNotConstructed)
}

func (s *Shipper) ID() kernel.UUID {
	return s.id
}

func (s *Shipper) Profile() kernel.Profile {
	return s.profile
}

func (s *Shipper) IndustryType() IndustryType {
	return s.industry
}

func (s *Shipper) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Shipper) DomainEvents() []kernel.DomainEvent {
	return s.events.Events()
}

func (s *Shipper) ClearDomainEvents() {
	s.events.Clear()
}
