package model

type Store struct {
	BaseModel
	Name     string `db:"name" json:"name"`
	Address  string `db:"address" json:"address"`
	Phone    string `db:"phone" json:"phone"`
	Email    string `db:"email" json:"email"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type Warehouse struct {
	BaseModel
	Name          string `db:"name" json:"name"`
	ContactPerson string `db:"contact_person" json:"contact_person"` // user id
	Phone         string `db:"phone" json:"phone"`
	Email         string `db:"email" json:"email"`
	Address       string `db:"address" json:"address"`
	IsActive      bool   `db:"is_active" json:"is_active"`
}

type Customer struct {
	BaseModel
	Name     string  `db:"name" json:"name"`
	Email    string  `db:"email" json:"email"`
	Phone    string  `db:"phone" json:"phone"`
	Address  string  `db:"address" json:"address"`
	ImageURL *string `db:"image_url" json:"image_url"`
	IsActive bool    `db:"is_active" json:"is_active"`
}

type User struct {
	BaseModel
	FullName string `db:"full_name" json:"full_name"`
	Email    string `db:"email" json:"email"`
	Role     string `db:"role" json:"role"`
	IsActive bool   `db:"is_active" json:"is_active"`
}
