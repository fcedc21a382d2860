package services

// ManufacturerOptions returns the list of supported equipment manufacturers.
// "Other" routes the caller to the manual-entry path; everything else also
// appears in the manufacturer difficulty table.
var ManufacturerOptions = []string{
	"CNH (Case/New Holland)",
	"Caterpillar",
	"John Deere",
	"Komatsu",
	"Volvo",
	"Hitachi",
	"Liebherr",
	"JCB",
	"Doosan",
	"Kubota",
	"Other",
}

// DefaultLaborRate is the shop labor rate in currency units per hour, used
// when a quote does not specify its own rate.
const DefaultLaborRate = 125.00
