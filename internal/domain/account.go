package domain

// Account Model (per-user balance)
// Balance is an integer and always starts at 0. The schema allows a user to
// own any number of accounts; there is deliberately no uniqueness on i_idUser.
type Account struct {
	ID      uint  `gorm:"column:i_id;primaryKey" json:"id"`               // Primary key
	Balance int64 `gorm:"column:i_balance;not null;default:0" json:"balance"` // Account balance
	UserID  uint  `gorm:"column:i_idUser;not null" json:"idUser"`         // Foreign key to User
	User    User  `gorm:"foreignKey:UserID" json:"-"`                     // Owning user relation
}

// TableName keeps the legacy table name
func (Account) TableName() string { return "account" }
