package db_models

type Account struct {
	BaseModel
	Email          string `gorm:"uniqueIndex"`
	PasswordHash   string
	Role           string `gorm:"default:user"` // "user" | "admin"
	EmailConfirmed bool   `gorm:"default:false"`

	Profile Profile `gorm:"constraint:OnDelete:CASCADE"`
	Shows   []Show  `gorm:"constraint:OnDelete:CASCADE"`
}
