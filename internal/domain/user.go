package domain

// User Model (employee record)
// Column names keep the legacy i_/v_ prefixes of the original schema;
// JSON uses the camelCase aliases the API has always exposed.
type User struct {
	ID        uint   `gorm:"column:i_id;primaryKey" json:"id"`    // Primary key
	FirstName string `gorm:"column:v_firstName" json:"firstName"` // First name
	LastName  string `gorm:"column:v_lastName" json:"lastName"`   // Last name
	EmailID   string `gorm:"column:v_email" json:"emailId"`       // Email address
}

// TableName keeps the legacy table name
func (User) TableName() string { return "users" }
