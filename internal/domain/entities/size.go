package entities

// SizeSpec is a uniform size row from the size-service: measurement ranges
// used by the front end to scale logo previews.
type SizeSpec struct {
	Gender      string
	GarmentType string
	Label       string
	MinHeight   float64
	MaxHeight   float64
	MinWeight   float64
	MaxWeight   float64
}
