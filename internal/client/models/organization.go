package models

import (
	"strings"
	"unicode/utf8"
)

type OrgType string

const (
	OrgTypeIP  OrgType = "ИП"
	OrgTypeOOO OrgType = "ООО"
	OrgTypeAO  OrgType = "АО"
)

var OrgTypes = []OrgType{OrgTypeIP, OrgTypeOOO, OrgTypeAO}

func (t OrgType) Valid() bool {
	for _, v := range OrgTypes {
		if t == v {
			return true
		}
	}
	return false
}

func ParseOrgType(s string) (OrgType, error) {
	t := OrgType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidOrgType
	}
	return t, nil
}

type TaxSystem string

const (
	TaxOSNO TaxSystem = "ОСНО"
	TaxUSN  TaxSystem = "УСН"
	TaxESHN TaxSystem = "ЕСХН"
	TaxPSN  TaxSystem = "ПСН"
	TaxNPD  TaxSystem = "НПД"
	TaxAUSN TaxSystem = "АУСН"
)

var TaxSystems = []TaxSystem{TaxOSNO, TaxUSN, TaxESHN, TaxPSN, TaxNPD, TaxAUSN}

func (t TaxSystem) Valid() bool {
	for _, v := range TaxSystems {
		if t == v {
			return true
		}
	}
	return false
}

// ParseTaxSystem returns nil for an empty string: the tax system is optional.
func ParseTaxSystem(s string) (*TaxSystem, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	t := TaxSystem(s)
	if !t.Valid() {
		return nil, ErrInvalidTaxSystem
	}
	return &t, nil
}

const maxOrgNameLen = 255

// Organization is scoped to a user and, unlike transactions and goals,
// supports editing.
type Organization struct {
	ID        ID         `json:"id"`
	Name      string     `json:"name"`
	Type      OrgType    `json:"type"`
	TaxSystem *TaxSystem `json:"tax_system"`
	CreatedAt Timestamp  `json:"created_at"`
	UpdatedAt Timestamp  `json:"updated_at"`
}

func (o Organization) Key() ID { return o.ID }

// Input returns the editable fields of o, ready for an update request.
func (o Organization) Input() OrganizationInput {
	return OrganizationInput{ID: o.ID, Name: o.Name, Type: o.Type, TaxSystem: o.TaxSystem}
}

// OrganizationInput is the body of create and update requests. ID is set
// only for updates; an unset tax system is sent as null.
type OrganizationInput struct {
	ID        ID         `json:"id,omitempty"`
	Name      string     `json:"name"`
	Type      OrgType    `json:"type"`
	TaxSystem *TaxSystem `json:"tax_system"`
}

func (in OrganizationInput) Validate() error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxOrgNameLen {
		return ErrNameTooLong
	}
	if !in.Type.Valid() {
		return ErrInvalidOrgType
	}
	if in.TaxSystem != nil && !in.TaxSystem.Valid() {
		return ErrInvalidTaxSystem
	}
	return nil
}
