package dto

type ConcreteRequest struct {
	Volume float64 `json:"volume" validate:"gte=0"`
	Ratio  string  `json:"ratio" validate:"omitempty,mix_ratio"`
}

type ConcreteResponse struct {
	Ratio      string  `json:"ratio"`
	Cement     float64 `json:"cement"`
	CementBags int     `json:"cement_bags"`
	Sand       float64 `json:"sand"`
	Aggregate  float64 `json:"aggregate"`
}

type BricksRequest struct {
	Length      float64 `json:"length" validate:"gte=0"`
	Height      float64 `json:"height" validate:"gte=0"`
	Thickness   float64 `json:"thickness" validate:"gte=0"`
	MortarRatio string  `json:"mortar_ratio" validate:"omitempty,binder_ratio"`
}

type BricksResponse struct {
	Bricks       int     `json:"bricks"`
	MortarRatio  string  `json:"mortar_ratio"`
	MortarCement float64 `json:"mortar_cement"`
	MortarSand   float64 `json:"mortar_sand"`
}

type SteelRequest struct {
	Volume  float64 `json:"volume" validate:"gte=0"`
	KgPerM3 float64 `json:"kg_per_m3" validate:"gt=0"`
}

type SteelResponse struct {
	Steel float64 `json:"steel"`
}

type PlasterRequest struct {
	Area        float64 `json:"area" validate:"gte=0"`
	ThicknessMM float64 `json:"thickness_mm" validate:"gt=0"`
	Ratio       string  `json:"ratio" validate:"omitempty,binder_ratio"`
}

type PlasterResponse struct {
	Ratio      string  `json:"ratio"`
	Cement     float64 `json:"cement"`
	CementBags int     `json:"cement_bags"`
	Sand       float64 `json:"sand"`
}
