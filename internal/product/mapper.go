package product

import (
	"sort"
	"strings"
)

func (in DeviceInput) ToDevice() *Device {
	return &Device{
		Base: Base{
			Name:        strings.TrimSpace(in.Name),
			Description: in.Description,
			Image:       in.Image,
			Price:       in.Price,
			InStock:     in.InStock,
			IsNew:       in.IsNew,
			IsHit:       in.IsHit,
			Ref:         in.Ref,
			Type:        in.Type,
			CategoryID:  in.CategoryID,
		},
		Color: in.Color,
	}
}

func (in HeatedDeviceInput) ToHeatedDevice() *HeatedDevice {
	return &HeatedDevice{
		Base: Base{
			Name:        strings.TrimSpace(in.Name),
			Description: in.Description,
			Image:       in.Image,
			Price:       in.Price,
			InStock:     in.InStock,
			IsNew:       in.IsNew,
			IsHit:       in.IsHit,
			Ref:         in.Ref,
			Type:        in.Type,
			CategoryID:  in.CategoryID,
		},
		Model:       in.Model,
		Color:       in.Color,
		IsExclusive: in.IsExclusive,
		SalePrice:   in.SalePrice,
	}
}

// ToStick normalises the flavour set to a sorted list.
func (in StickInput) ToStick() *Stick {
	flavors := make([]string, 0, len(in.Flavors))
	for _, f := range in.Flavors {
		flavors = append(flavors, strings.TrimSpace(f))
	}
	sort.Strings(flavors)

	return &Stick{
		Base: Base{
			Name:        strings.TrimSpace(in.Name),
			Description: in.Description,
			Image:       in.Image,
			Price:       in.Price,
			InStock:     in.InStock,
			IsNew:       in.IsNew,
			IsHit:       in.IsHit,
			Ref:         in.Ref,
			Type:        in.Type,
			CategoryID:  in.CategoryID,
		},
		PackImage:  in.PackImage,
		PackPrice:  in.PackPrice,
		HasCapsule: in.HasCapsule,
		Flavors:    flavors,
		Country:    in.Country,
		Brand:      in.Brand,
		Strength:   in.Strength,
	}
}
