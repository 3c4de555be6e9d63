package report

import (
	"encoding/json"
	"fmt"

	"github.com/findit-app/findit-backend/src/models"
)

// Details holds the attributes a category asks for. Each category has its own
// variant; categories without extra questions use NoDetails.
type Details interface {
	Category() models.Category
	set(name, value string) bool
}

type ElectronicsDetails struct {
	DeviceType string `json:"deviceType,omitempty"`
	Brand      string `json:"brand,omitempty"`
}

func (ElectronicsDetails) Category() models.Category { return models.CategoryElectronics }

func (d *ElectronicsDetails) set(name, value string) bool {
	switch name {
	case "deviceType":
		d.DeviceType = value
	case "brand":
		d.Brand = value
	default:
		return false
	}
	return true
}

type BagsDetails struct {
	BagType string `json:"bagType,omitempty"`
	Color   string `json:"color,omitempty"`
}

func (BagsDetails) Category() models.Category { return models.CategoryBags }

func (d *BagsDetails) set(name, value string) bool {
	switch name {
	case "bagType":
		d.BagType = value
	case "color":
		d.Color = value
	default:
		return false
	}
	return true
}

type ClothingDetails struct {
	ClothingType string `json:"clothingType,omitempty"`
	Size         string `json:"size,omitempty"`
}

func (ClothingDetails) Category() models.Category { return models.CategoryClothing }

func (d *ClothingDetails) set(name, value string) bool {
	switch name {
	case "clothingType":
		d.ClothingType = value
	case "size":
		d.Size = value
	default:
		return false
	}
	return true
}

// NoDetails is the variant of Accessories, Documents and Others.
type NoDetails struct {
	category models.Category
}

func (d NoDetails) Category() models.Category { return d.category }

func (d *NoDetails) set(string, string) bool { return false }

func (NoDetails) MarshalJSON() ([]byte, error) { return []byte("{}"), nil }

// emptyDetails returns the zero variant for c.
func emptyDetails(c models.Category) (Details, error) {
	switch c {
	case models.CategoryElectronics:
		return &ElectronicsDetails{}, nil
	case models.CategoryBags:
		return &BagsDetails{}, nil
	case models.CategoryClothing:
		return &ClothingDetails{}, nil
	case models.CategoryAccessories, models.CategoryDocuments, models.CategoryOthers:
		return &NoDetails{category: c}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}

// DecodeDetails parses raw JSON into the variant of c. Unknown attributes are rejected.
func DecodeDetails(c models.Category, raw json.RawMessage) (Details, error) {
	d, err := emptyDetails(c)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return d, nil
	}

	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode %s details: %w", c, err)
	}
	for name, value := range fields {
		if !d.set(name, value) {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownAttribute, name, c)
		}
	}
	return d, nil
}
