package product

import (
	"terea-store/internal/category"

	"github.com/shopspring/decimal"
)

type Color string

const (
	ColorRed    Color = "red"
	ColorBlack  Color = "black"
	ColorBeige  Color = "beige"
	ColorBlue   Color = "blue"
	ColorOrange Color = "orange"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorYellow Color = "yellow"
	ColorGrey   Color = "grey"
)

type Strength string

const (
	StrengthLight  Strength = "light"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Base holds the attributes shared by every product line.
type Base struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Price       decimal.Decimal   `json:"price"`
	InStock     bool              `json:"in_stock"`
	IsNew       bool              `json:"is_new"`
	IsHit       *bool             `json:"is_hit"`
	Ref         string            `json:"ref"`
	Type        string            `json:"type"`
	CategoryID  int64             `json:"category_id"`
	Category    category.Category `json:"category"`
}

// Device is an accessory (caps, cases, holders).
type Device struct {
	Base
	Color Color `json:"color"`
}

// HeatedDevice is a heat-not-burn device.
type HeatedDevice struct {
	Base
	Model       *string          `json:"model"`
	Color       Color            `json:"color"`
	IsExclusive *bool            `json:"is_exclusive"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
}

// Stick is a tobacco stick product sold by block and optionally by pack.
type Stick struct {
	Base
	PackImage  *string          `json:"pack_image"`
	PackPrice  *decimal.Decimal `json:"pack_price"`
	HasCapsule bool             `json:"has_capsule"`
	Flavors    []string         `json:"flavors"`
	Country    string           `json:"country"`
	Brand      string           `json:"brand"`
	Strength   Strength         `json:"strength"`
}

// Catalog is the whole storefront in one response.
type Catalog struct {
	Devices       []*Device       `json:"devices"`
	HeatedDevices []*HeatedDevice `json:"heated_devices"`
	Sticks        []*Stick        `json:"sticks"`
}

type DeviceInput struct {
	Name        string          `json:"name" validate:"required,max=256"`
	Description string          `json:"description" validate:"required"`
	Image       string          `json:"image" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"money"`
	InStock     bool            `json:"in_stock"`
	IsNew       bool            `json:"is_new"`
	IsHit       *bool           `json:"is_hit"`
	Color       Color           `json:"color" validate:"required,oneof=red black beige blue orange green purple yellow grey"`
	Ref         string          `json:"ref" validate:"required,max=256"`
	Type        string          `json:"type" validate:"required,max=256"`
	CategoryID  int64           `json:"category_id" validate:"gt=0"`
}

type HeatedDeviceInput struct {
	Name        string           `json:"name" validate:"required,max=256"`
	Model       *string          `json:"model"`
	Description string           `json:"description" validate:"required"`
	Image       string           `json:"image" validate:"required"`
	Price       decimal.Decimal  `json:"price" validate:"money"`
	SalePrice   *decimal.Decimal `json:"sale_price" validate:"omitempty,money"`
	Color       Color            `json:"color" validate:"required,oneof=red black beige blue orange green purple yellow grey"`
	InStock     bool             `json:"in_stock"`
	IsNew       bool             `json:"is_new"`
	IsHit       *bool            `json:"is_hit"`
	IsExclusive *bool            `json:"is_exclusive"`
	Ref         string           `json:"ref" validate:"required,max=256"`
	Type        string           `json:"type" validate:"required,max=256"`
	CategoryID  int64            `json:"category_id" validate:"gt=0"`
}

type StickInput struct {
	Name        string           `json:"name" validate:"required,max=256"`
	Description string           `json:"description" validate:"required"`
	Image       string           `json:"image" validate:"required"`
	PackImage   *string          `json:"pack_image" validate:"omitempty,max=256"`
	Price       decimal.Decimal  `json:"price" validate:"money"`
	PackPrice   *decimal.Decimal `json:"pack_price" validate:"omitempty,money"`
	HasCapsule  bool             `json:"has_capsule"`
	Flavors     []string         `json:"flavors" validate:"required,min=1,unique,dive,required,max=64"`
	Country     string           `json:"country" validate:"required"`
	Brand       string           `json:"brand" validate:"required,max=256"`
	Strength    Strength         `json:"strength" validate:"required,oneof=light medium strong"`
	InStock     bool             `json:"in_stock"`
	IsNew       bool             `json:"is_new"`
	IsHit       *bool            `json:"is_hit"`
	Ref         string           `json:"ref" validate:"required,max=256"`
	Type        string           `json:"type" validate:"required,max=256"`
	CategoryID  int64            `json:"category_id" validate:"gt=0"`
}
