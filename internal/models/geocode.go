package models

// GeocodeRequest carries the address to resolve
type GeocodeRequest struct {
	Address string `form:"address" json:"address" validate:"required"`
}
