package model

// Roles.
const (
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// User account table. Maps to users.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'volunteer'"  json:"role"`
	BaseModel

	Profile *Profile `gorm:"foreignKey:UserID;references:UserID" json:"profile,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// Profile per-volunteer descriptive record. Maps to profiles (1:1 with
// users, created lazily on first login).
type Profile struct {
	UserID       string `gorm:"type:uuid;primaryKey"       json:"user_id"`
	Skills       string `gorm:"type:text;not null;default:''" json:"skills"`
	Interests    string `gorm:"type:text;not null;default:''" json:"interests"`
	Availability string `gorm:"type:text;not null;default:''" json:"availability"`
	Phone        string `gorm:"type:varchar(30);not null;default:''" json:"phone"`
	BaseModel
}

// TableName sets the table name.
func (Profile) TableName() string { return "profiles" }
