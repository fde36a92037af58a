package models

// MachineRecord is one row of the machines table. The table is rebuilt from
// scratch on every spreadsheet upload, so there are no timestamps and no
// relations — ids restart from 1 after each replace.
//
// Every column except machine is nullable; the ingest layer substitutes a
// sentinel when the machine cell is blank. Date columns hold normalized
// YYYY-MM-DD strings (or NULL), never spreadsheet serial numbers.
type MachineRecord struct {
	ID             uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Customs        *string `gorm:"column:customs" json:"customs"`
	Reference      *string `gorm:"column:reference" json:"reference"`
	Machine        string  `gorm:"column:machine;not null" json:"machine"`
	PartNumber     *string `gorm:"column:pn" json:"pn"`
	ETB            *string `gorm:"column:etb" json:"etb"`
	ETAPort        *string `gorm:"column:eta_port" json:"eta_port"`
	ETADestination *string `gorm:"column:eta_destination" json:"eta_destination"`
	Ship           *string `gorm:"column:ship" json:"ship"`
	Division       *string `gorm:"column:division" json:"division"`
	Status         *string `gorm:"column:status" json:"status"`
	BillOfLading   *string `gorm:"column:bl" json:"bl"`
}

func (MachineRecord) TableName() string {
	return "machines"
}
