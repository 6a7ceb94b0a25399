package models

// MCMember mirrors the legacy mc_members table, column names included.
// Rows are written through a raw insert (see internal/members), never through
// gorm; the model exists so AutoMigrate and schema dumps know the table.
type MCMember struct {
	ID        uint64 `gorm:"primaryKey;column:id"`
	Name      string `gorm:"column:name;size:255;not null"`
	Email     string `gorm:"column:email;size:255"`
	Phone     string `gorm:"column:phone;size:64"`
	IsActive  string `gorm:"column:isActive;size:8"`
	JoinDate  string `gorm:"column:joinDate;size:10"`
	Gender    string `gorm:"column:gender;size:32"`
	MCName    string `gorm:"column:mcName;size:255;not null"`
	DOB       string `gorm:"column:dob;size:10"`
	DLMMember string `gorm:"column:dlm_member;size:8"`
}

func (MCMember) TableName() string { return "mc_members" }
